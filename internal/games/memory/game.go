// Package memory implements the picture matching game: pairs of symbols
// are shuffled face down and the player turns two at a time looking for
// matches. Fewer moves give a higher score.
package memory

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/playzone/internal/config"
	"github.com/vovakirdan/playzone/internal/core"
	"github.com/vovakirdan/playzone/internal/registry"
)

// ID is the registry id of the game.
const ID = "memory"

// Stats keys of the lower-is-better records.
const (
	BestTimeKey  = "pictureMatchingBestTime"
	BestMovesKey = "pictureMatchingBestMoves"
)

const (
	cardPitchX = 6
	cardPitchY = 2
	hudHeight  = 2
)

var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// Game is the picture matching game.
type Game struct {
	cfg     config.MemoryConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand

	deck      *Deck
	cursor    core.Point
	started   bool
	completed bool
	score     int

	elapsedMs int // play time since the first flip
	resolveIn int // ms until the pending pair settles; 0 when none
}

// New creates a new picture matching game.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Picture Matching" }

// Description returns the menu blurb.
func (g *Game) Description() string {
	return "Test your memory by matching pairs of cards."
}

// RecordKeys lists the records shown as best time and best moves.
func (g *Game) RecordKeys() []string {
	return []string{BestTimeKey, BestMovesKey}
}

// Reset loads the config and deals a fresh deck.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	cfg, err := config.LoadMemory(configPath)
	if err != nil {
		cfg = config.DefaultMemoryConfig()
	}
	if cfg.Columns <= 0 {
		cfg.Columns = 4
	}
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.deal()
}

func (g *Game) deal() {
	g.deck = NewDeck(g.cfg.Symbols, g.rng)
	g.cursor = core.Point{}
	g.started = false
	g.completed = false
	g.score = 0
	g.elapsedMs = 0
	g.resolveIn = 0
}

func (g *Game) rows() int {
	return (g.deck.Len() + g.cfg.Columns - 1) / g.cfg.Columns
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.deal()
		return core.StepResult{State: g.State()}
	}
	if g.completed {
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)
	if in.Has(core.ActionConfirm) || in.Has(core.ActionRotate) {
		g.flip()
	}

	dt := g.runtime.TickMillis()
	if g.started {
		g.elapsedMs += dt
	}
	if g.resolveIn > 0 {
		g.resolveIn -= dt
		if g.resolveIn <= 0 {
			g.resolveIn = 0
			g.deck.Resolve()
			if g.deck.Complete() {
				g.complete()
			}
		}
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(in core.InputFrame) {
	switch {
	case in.Has(core.ActionLeft):
		g.cursor.X--
	case in.Has(core.ActionRight):
		g.cursor.X++
	case in.Has(core.ActionUp):
		g.cursor.Y--
	case in.Has(core.ActionDown):
		g.cursor.Y++
	}
	g.cursor.X = core.Clamp(g.cursor.X, 0, g.cfg.Columns-1)
	g.cursor.Y = core.Clamp(g.cursor.Y, 0, g.rows()-1)
}

func (g *Game) flip() {
	g.started = true
	idx := g.cursor.Y*g.cfg.Columns + g.cursor.X
	if !g.deck.Flip(idx) {
		return
	}
	if match, ok := g.deck.PendingMatch(); ok {
		if match {
			g.resolveIn = g.cfg.MatchDelayMs
		} else {
			g.resolveIn = g.cfg.MismatchDelayMs
		}
		// A zero delay resolves on this same step.
		g.resolveIn = max(g.resolveIn, 1)
	}
}

func (g *Game) complete() {
	g.completed = true
	g.score = max(g.cfg.BaseScore-g.deck.Moves(), g.cfg.MinScore)
}

// Seconds returns the whole seconds played so far.
func (g *Game) Seconds() int { return g.elapsedMs / 1000 }

// Bests returns the finished game's time and moves, or nil before completion.
func (g *Game) Bests() map[string]int {
	if !g.completed {
		return nil
	}
	return map[string]int{
		BestTimeKey:  g.Seconds(),
		BestMovesKey: g.deck.Moves(),
	}
}

// RunDetail reports the moves and seconds of a completed board.
func (g *Game) RunDetail() (moves, seconds int, ok bool) {
	if !g.completed {
		return 0, 0, false
	}
	return g.deck.Moves(), g.Seconds(), true
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.completed,
	}
}

// Render draws the card grid and the counters.
func (g *Game) Render(dst *core.Screen) {
	d := g.deck
	dst.DrawText(0, 0, fmt.Sprintf(" Picture Matching | Time: %s  Moves: %d  Pairs: %d/%d",
		core.FormatClock(g.Seconds()), d.Moves(), d.Pairs(), d.TotalPairs()))

	gridW := g.cfg.Columns * cardPitchX
	gridH := g.rows() * cardPitchY
	if dst.Width() < gridW || dst.Height() < gridH+hudHeight+3 {
		dst.DrawOverlay("Window too small", fmt.Sprintf("Need %dx%d", gridW, gridH+hudHeight+3))
		return
	}

	ox := (dst.Width() - gridW) / 2
	oy := hudHeight + 1
	for i := range d.Len() {
		col, row := i%g.cfg.Columns, i/g.cfg.Columns
		x := ox + col*cardPitchX
		y := oy + row*cardPitchY
		g.drawCard(dst, x, y, d.Card(i), g.cursor.X == col && g.cursor.Y == row)
	}

	footer := oy + gridH + 1
	bests := "Best: -"
	if t, ok := g.runtime.Record(BestTimeKey); ok {
		bests = fmt.Sprintf("Best time: %s", core.FormatClock(t))
		if m, ok := g.runtime.Record(BestMovesKey); ok {
			bests += fmt.Sprintf("  Best moves: %d", m)
		}
	}
	dst.DrawTextCentered(footer, bests)
	dst.DrawTextCentered(footer+1, "Arrows: move  Enter: flip  R: new game")

	if g.completed {
		dst.DrawOverlay("Congratulations!",
			fmt.Sprintf("%d moves in %s  Score %d", d.Moves(), core.FormatClock(g.Seconds()), g.score))
	}
}

func (g *Game) drawCard(dst *core.Screen, x, y int, c Card, selected bool) {
	if selected {
		dst.SetColor(x, y, '[', core.ColorBrightYellow)
		dst.SetColor(x+3, y, ']', core.ColorBrightYellow)
	}
	switch {
	case c.Matched:
		dst.DrawTextColor(x+1, y, c.Symbol, core.ColorGreen)
	case c.Flipped:
		dst.DrawText(x+1, y, c.Symbol)
	default:
		dst.DrawTextColor(x+1, y, "░░", core.ColorBlue)
	}
}
