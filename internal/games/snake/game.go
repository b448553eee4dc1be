// Package snake implements classic single-player Snake on a fixed grid.
// The snake moves one cell per interval; eating food grows it and shortens
// the interval down to a configured floor.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/playzone/internal/config"
	"github.com/vovakirdan/playzone/internal/core"
	"github.com/vovakirdan/playzone/internal/registry"
)

// ID is the registry id and the prefix of the "snakeHighScore" key.
const ID = "snake"

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Status is the lifecycle of a snake game.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusPaused
	StatusOver
)

const hudHeight = 2

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the speed preset applied on every Reset.
// Unknown values fall back to the config file.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// Game implements the Snake game.
type Game struct {
	cfg     config.SnakeConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand

	tick      uint64
	status    Status
	score     int
	bestScore int

	snake      []core.Point // head at index 0
	direction  Direction
	nextDir    Direction // applied on the next move
	food       core.Point
	intervalMs int
	elapsedMs  int
}

// New creates a new Snake game.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Snake" }

// Description returns the menu blurb.
func (g *Game) Description() string {
	return "Guide the snake to eat food and grow longer without hitting walls."
}

// Reset loads the config and places the snake at its starting cell.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.bestScore = runtime.BestScore

	cfg, err := config.LoadSnake(configPath)
	if err != nil {
		cfg = config.DefaultSnakeConfig()
	}
	if difficultyPreset != "" {
		config.ApplySnakePreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.restart()
}

func (g *Game) restart() {
	grid := g.cfg.Grid
	g.tick = 0
	g.status = StatusIdle
	g.bestScore = max(g.bestScore, g.score)
	g.score = 0
	g.snake = []core.Point{{X: grid.StartX, Y: grid.StartY}}
	g.direction = DirRight
	g.nextDir = DirRight
	g.food = core.Point{X: grid.FoodX, Y: grid.FoodY}
	g.intervalMs = g.cfg.Speed.StartMs
	g.elapsedMs = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) {
		g.restart()
		g.status = StatusRunning
		return core.StepResult{State: g.State()}
	}

	if g.status == StatusOver {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionPause):
		if g.status == StatusRunning {
			g.status = StatusPaused
		} else {
			g.status = StatusRunning
		}
	case in.Has(core.ActionStart), in.Has(core.ActionConfirm):
		g.status = StatusRunning
	}

	if g.status != StatusRunning {
		return core.StepResult{State: g.State()}
	}

	g.steer(in)

	g.elapsedMs += g.runtime.TickMillis()
	if g.elapsedMs >= g.intervalMs {
		g.elapsedMs -= g.intervalMs
		g.move()
	}

	return core.StepResult{State: g.State()}
}

// steer buffers a direction change for the next move.
func (g *Game) steer(in core.InputFrame) {
	dir := g.nextDir
	switch {
	case in.Has(core.ActionUp):
		dir = DirUp
	case in.Has(core.ActionDown):
		dir = DirDown
	case in.Has(core.ActionLeft):
		dir = DirLeft
	case in.Has(core.ActionRight):
		dir = DirRight
	}
	if !dir.Opposite(g.direction) {
		g.nextDir = dir
	}
}

// move advances the snake one cell, handling collisions and food.
func (g *Game) move() {
	g.direction = g.nextDir
	d := g.direction.Delta()
	head := g.snake[0].Add(d.X, d.Y)

	if head.X < 0 || head.X >= g.cfg.Grid.Width || head.Y < 0 || head.Y >= g.cfg.Grid.Height {
		g.status = StatusOver
		return
	}
	if g.occupied(head) {
		g.status = StatusOver
		return
	}

	g.snake = append([]core.Point{head}, g.snake...)
	if head == g.food {
		g.score += g.cfg.FoodPoints
		g.intervalMs = max(g.intervalMs-g.cfg.Speed.StepMs, g.cfg.Speed.MinMs)
		if !g.spawnFood() {
			// Board is full.
			g.status = StatusOver
		}
		return
	}
	g.snake = g.snake[:len(g.snake)-1]
}

func (g *Game) occupied(p core.Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// spawnFood places food on a random free cell. Reports false when there is none.
func (g *Game) spawnFood() bool {
	var free []core.Point
	for y := range g.cfg.Grid.Height {
		for x := range g.cfg.Grid.Width {
			p := core.Point{X: x, Y: y}
			if !g.occupied(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		g.food = core.Point{X: -1, Y: -1}
		return false
	}
	g.food = free[g.rng.Intn(len(free))]
	return true
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.status == StatusOver,
		Paused:   g.status == StatusPaused,
	}
}

// Render draws the grid, the snake and the food.
func (g *Game) Render(dst *core.Screen) {
	gw := g.cfg.Grid.Width*2 + 2
	gh := g.cfg.Grid.Height + 2

	best := max(g.bestScore, g.score)
	dst.DrawText(0, 0, fmt.Sprintf(" Snake | Score: %d  Best: %d  Length: %d  Speed: %dms",
		g.score, best, len(g.snake), g.intervalMs))

	if dst.Width() < gw || dst.Height() < gh+hudHeight {
		dst.DrawOverlay("Window too small", fmt.Sprintf("Need %dx%d", gw, gh+hudHeight))
		return
	}

	ox := (dst.Width() - gw) / 2
	oy := hudHeight
	dst.DrawBox(core.NewRect(ox, oy, gw, gh))

	cell := func(p core.Point) (int, int) {
		return ox + 1 + p.X*2, oy + 1 + p.Y
	}

	if g.food.X >= 0 {
		x, y := cell(g.food)
		dst.SetColor(x, y, '●', core.ColorRed)
	}
	for i, seg := range g.snake {
		x, y := cell(seg)
		ch := '■'
		if i == 0 {
			ch = '◆'
		}
		dst.SetColor(x, y, ch, core.ColorGreen)
	}

	switch g.status {
	case StatusIdle:
		dst.DrawOverlay("Snake", "G/Enter: start  Arrows: steer")
	case StatusPaused:
		dst.DrawOverlay("Paused", "P: resume")
	case StatusOver:
		dst.DrawOverlay("Game Over", fmt.Sprintf("Score %d  R: restart", g.score))
	}
}

// Delta returns the one-cell offset for the direction.
func (d Direction) Delta() core.Point {
	switch d {
	case DirUp:
		return core.Point{X: 0, Y: -1}
	case DirDown:
		return core.Point{X: 0, Y: 1}
	case DirLeft:
		return core.Point{X: -1, Y: 0}
	default:
		return core.Point{X: 1, Y: 0}
	}
}

// Opposite reports whether d points the other way from o.
func (d Direction) Opposite(o Direction) bool {
	return (d+2)%4 == o
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
