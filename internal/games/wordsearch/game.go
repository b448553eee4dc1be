// Package wordsearch implements the word puzzle: find hidden words in a
// letter grid by selecting straight lines of cells.
package wordsearch

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/playzone/internal/config"
	"github.com/vovakirdan/playzone/internal/core"
	"github.com/vovakirdan/playzone/internal/registry"
)

// ID is the registry id of the game. Its high score lives under
// "wordPuzzleHighScore".
const ID = "wordsearch"

const (
	cellPitch  = 2
	panelWidth = 20
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

// Game is the word puzzle.
type Game struct {
	cfg     config.WordSearchConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand

	puzzle     *Puzzle
	cursor     core.Point
	anchor     core.Point
	selecting  bool
	found      map[string]bool
	foundCells map[core.Point]bool
	hints      bool

	started   bool
	completed bool
	elapsedMs int
	score     int
	bestScore int
}

// New creates a new word puzzle.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Word Puzzle" }

// Description returns the menu blurb.
func (g *Game) Description() string {
	return "Find hidden words in a grid of letters."
}

// Reset loads the config and generates a puzzle.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.bestScore = runtime.BestScore
	cfg, err := config.LoadWordSearch(configPath)
	if err != nil {
		cfg = config.DefaultWordSearchConfig()
	}
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.newPuzzle()
}

func (g *Game) newPuzzle() {
	g.puzzle = Generate(g.cfg.Words, g.cfg.GridSize, g.cfg.WordCount, g.cfg.MaxAttempts, g.rng)
	g.cursor = core.Point{}
	g.selecting = false
	g.found = make(map[string]bool)
	g.foundCells = make(map[core.Point]bool)
	g.started = false
	g.completed = false
	g.elapsedMs = 0
	g.bestScore = max(g.bestScore, g.score)
	g.score = 0
}

// Puzzle exposes the current grid.
func (g *Game) Puzzle() *Puzzle { return g.puzzle }

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.newPuzzle()
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionHint) {
		g.hints = !g.hints
	}
	if g.completed {
		return core.StepResult{State: g.State()}
	}

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
	last := g.puzzle.Size() - 1
	g.cursor.X = core.Clamp(g.cursor.X, 0, last)
	g.cursor.Y = core.Clamp(g.cursor.Y, 0, last)

	if in.Has(core.ActionConfirm) {
		if g.selecting {
			g.Select(g.anchor, g.cursor)
			g.selecting = false
		} else {
			g.started = true
			g.anchor = g.cursor
			g.selecting = true
		}
	}

	if g.started {
		g.elapsedMs += g.runtime.TickMillis()
	}
	return core.StepResult{State: g.State()}
}

// Select checks the line from a to b against the unfound words, reading it
// forwards and backwards. It returns the word found, if any.
func (g *Game) Select(a, b core.Point) (string, bool) {
	g.started = true
	cells := Line(a, b)
	text := g.puzzle.Text(cells)
	rev := Reverse(text)
	for _, w := range g.puzzle.Words() {
		if g.found[w] || (w != text && w != rev) {
			continue
		}
		g.found[w] = true
		for _, c := range cells {
			g.foundCells[c] = true
		}
		if len(g.found) == len(g.puzzle.Words()) {
			g.complete()
		}
		return w, true
	}
	return "", false
}

func (g *Game) complete() {
	g.completed = true
	g.score = len(g.puzzle.Words())*g.cfg.PointsPerWord - g.Seconds()
}

// Seconds returns the whole seconds since the first selection.
func (g *Game) Seconds() int { return g.elapsedMs / 1000 }

// Found reports whether word has been found.
func (g *Game) Found(word string) bool { return g.found[word] }

// State returns the current game state. The score may be negative on a
// very slow solve.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.completed,
	}
}

// Render draws the letter grid and the word list.
func (g *Game) Render(dst *core.Screen) {
	words := g.puzzle.Words()
	dst.DrawText(0, 0, fmt.Sprintf(" Word Puzzle | Time: %s  Found: %d/%d  Best: %d",
		core.FormatClock(g.Seconds()), len(g.found), len(words), g.bestScore))

	gw := g.puzzle.Size()*cellPitch + 1 + 2
	gh := g.puzzle.Size() + 2
	if dst.Width() < gw+panelWidth || dst.Height() < gh+hudHeight {
		dst.DrawOverlay("Window too small", fmt.Sprintf("Need %dx%d", gw+panelWidth, gh+hudHeight))
		return
	}

	ox := (dst.Width() - gw - panelWidth) / 2
	oy := hudHeight
	dst.DrawBox(core.NewRect(ox, oy, gw, gh))

	preview := map[core.Point]bool{}
	if g.selecting {
		for _, c := range Line(g.anchor, g.cursor) {
			preview[c] = true
		}
	}

	for y := range g.puzzle.Size() {
		for x := range g.puzzle.Size() {
			p := core.Point{X: x, Y: y}
			color := core.ColorDefault
			switch {
			case p == g.cursor:
				color = core.ColorBrightMagenta
			case preview[p]:
				color = core.ColorBrightYellow
			case g.foundCells[p]:
				color = core.ColorGreen
			}
			dst.SetColor(ox+2+x*cellPitch, oy+1+y, rune(g.puzzle.Letter(x, y)), color)
		}
	}

	px := ox + gw + 2
	dst.DrawText(px, oy, "Words")
	row := oy + 2
	for _, w := range words {
		switch {
		case g.found[w]:
			dst.DrawTextColor(px, row, "✓ "+w, core.ColorGreen)
		case g.hints:
			dst.DrawText(px, row, "  "+w)
		default:
			dst.DrawText(px, row, "  ???")
		}
		row++
	}
	dst.DrawText(px, row+1, "Enter: select")
	dst.DrawText(px, row+2, "H: hints")

	if g.completed {
		dst.DrawOverlay("Puzzle Complete!",
			fmt.Sprintf("Time %s  Score %d  R: new puzzle", core.FormatClock(g.Seconds()), g.score))
	}
}
