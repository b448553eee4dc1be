package tetris

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/playzone/internal/config"
	"github.com/vovakirdan/playzone/internal/core"
	"github.com/vovakirdan/playzone/internal/registry"
)

// ID is the registry id and the prefix of the "tetrisHighScore" key.
const ID = "tetris"

const (
	cellWidth  = 2  // terminal columns per board cell
	panelWidth = 18 // side panel next to the board
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

// Game adapts the Engine to the fixed-rate registry.Game loop.
// Gravity is driven by accumulating simulated milliseconds per step.
type Game struct {
	engine  *Engine
	runtime core.RuntimeConfig
	cfg     config.TetrisConfig

	tick      uint64
	elapsedMs int // time since the last gravity tick
	bestScore int

	screenW, screenH int
}

// New creates a new Tetris game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return ID }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Tetris" }

// Description returns the menu blurb.
func (g *Game) Description() string {
	return "Arrange falling blocks to clear lines and achieve high scores."
}

// Reset loads the config and builds a fresh, idle engine.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.screenW = runtime.ScreenW
	g.screenH = runtime.ScreenH
	g.bestScore = runtime.BestScore

	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		cfg = config.DefaultTetrisConfig()
	}
	g.cfg = cfg

	g.engine = NewEngine(cfg, rand.New(rand.NewSource(runtime.Seed)))
	g.tick = 0
	g.elapsedMs = 0
}

// Engine exposes the underlying engine.
func (g *Game) Engine() *Engine { return g.engine }

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	e := g.engine

	if in.Has(core.ActionRestart) {
		g.bestScore = max(g.bestScore, e.Score())
		e.Reset()
		e.Start()
		g.elapsedMs = 0
		return core.StepResult{State: g.State()}
	}

	if e.Over() {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionPause):
		switch e.Status() {
		case StatusRunning:
			e.Pause()
		case StatusPaused:
			e.Start()
		}
	case in.Has(core.ActionStart), in.Has(core.ActionConfirm):
		e.Start()
	}

	if !e.Running() {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionLeft):
		e.Move(-1, 0)
	case in.Has(core.ActionRight):
		e.Move(1, 0)
	}
	if in.Has(core.ActionRotate) || in.Has(core.ActionUp) {
		e.Rotate()
	}
	if in.Has(core.ActionDown) {
		e.Tick()
	}

	g.elapsedMs += g.runtime.TickMillis()
	if g.elapsedMs >= e.DropIntervalMs() {
		g.elapsedMs -= e.DropIntervalMs()
		e.Tick()
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: g.engine.Over(),
		Paused:   g.engine.Status() == StatusPaused,
	}
}

// Render draws the board, the next piece preview and the counters.
func (g *Game) Render(dst *core.Screen) {
	e := g.engine
	bw := e.Board().Width()*cellWidth + 2
	bh := e.Board().Height() + 2

	dst.DrawText(0, 0, fmt.Sprintf(" Tetris | Score: %d  Level: %d  Lines: %d", e.Score(), e.Level(), e.Lines()))

	if dst.Width() < bw+panelWidth || dst.Height() < bh+hudHeight {
		dst.DrawOverlay("Window too small", fmt.Sprintf("Need %dx%d", bw+panelWidth, bh+hudHeight))
		return
	}

	originX := (dst.Width() - bw - panelWidth) / 2
	originY := hudHeight
	dst.DrawBox(core.NewRect(originX, originY, bw, bh))

	for y, row := range e.Compose() {
		for x, c := range row {
			sx := originX + 1 + x*cellWidth
			sy := originY + 1 + y
			if c.Filled {
				dst.SetColor(sx, sy, '█', c.Color)
				dst.SetColor(sx+1, sy, '█', c.Color)
			} else {
				dst.SetColor(sx, sy, ' ', core.ColorDefault)
				dst.SetColor(sx+1, sy, '·', core.ColorGray)
			}
		}
	}

	g.renderPanel(dst, originX+bw+2, originY)

	switch e.Status() {
	case StatusIdle:
		dst.DrawOverlay("Tetris", "G/Enter: start")
	case StatusPaused:
		dst.DrawOverlay("Paused", "P: resume")
	case StatusOver:
		dst.DrawOverlay("Game Over", fmt.Sprintf("Score %d  R: restart", e.Score()))
	}
}

func (g *Game) renderPanel(dst *core.Screen, x, y int) {
	e := g.engine
	dst.DrawText(x, y, "Next")
	if kind, ok := e.Next(); ok {
		for sy, row := range kind.BaseShape() {
			for sx, on := range row {
				if on {
					dst.SetColor(x+sx*cellWidth, y+2+sy, '█', kind.Color())
					dst.SetColor(x+sx*cellWidth+1, y+2+sy, '█', kind.Color())
				}
			}
		}
	}

	best := max(g.bestScore, e.Score())
	lines := []string{
		fmt.Sprintf("Score  %d", e.Score()),
		fmt.Sprintf("Best   %d", best),
		fmt.Sprintf("Level  %d", e.Level()),
		fmt.Sprintf("Lines  %d", e.Lines()),
		fmt.Sprintf("Speed  %dms", e.DropIntervalMs()),
		"",
		"←/→  move",
		"↑/Space rotate",
		"↓    drop",
		"P    pause",
	}
	for i, l := range lines {
		dst.DrawText(x, y+5+i, l)
	}
}
