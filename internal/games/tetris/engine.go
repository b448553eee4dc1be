// Package tetris implements the Tetris engine and its PlayZone game adapter.
//
// The Engine is a deterministic state machine driven by discrete commands
// (Move, Rotate, Tick, Start, Pause, Reset). Invalid moves are silently
// ignored; the only terminal condition is a spawn collision (game over).
package tetris

import (
	"math/rand"

	"github.com/vovakirdan/playzone/internal/config"
)

// Status is the engine lifecycle state.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusPaused
	StatusOver
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusOver:
		return "over"
	}
	return "unknown"
}

// Engine owns the board, the active and next piece, and the scoring counters.
type Engine struct {
	cfg   config.TetrisConfig
	rng   *rand.Rand
	board *Board

	active *Piece
	next   Kind

	running bool
	over    bool

	score          int
	level          int
	lines          int
	dropIntervalMs int
}

// NewEngine creates an engine in the Idle state.
func NewEngine(cfg config.TetrisConfig, rng *rand.Rand) *Engine {
	if cfg.Board.Width <= 0 || cfg.Board.Height <= 0 {
		cfg.Board = config.DefaultTetrisConfig().Board
	}
	if cfg.Scoring.LinesPerLevel <= 0 {
		cfg.Scoring.LinesPerLevel = config.DefaultTetrisConfig().Scoring.LinesPerLevel
	}
	e := &Engine{cfg: cfg, rng: rng}
	e.Reset()
	return e
}

// Reset empties the board, zeroes the counters and clears both pieces.
// It is the only way out of the game over state.
func (e *Engine) Reset() {
	e.board = NewBoard(e.cfg.Board.Width, e.cfg.Board.Height)
	e.active = nil
	e.next = KindNone
	e.running = false
	e.over = false
	e.score = 0
	e.lines = 0
	e.level = 1
	e.dropIntervalMs = e.intervalFor(1)
}

// Start begins or resumes play, spawning a piece when none is active.
func (e *Engine) Start() {
	if e.over {
		return
	}
	e.running = true
	if e.active == nil {
		e.Spawn()
	}
}

// Pause stops gravity and input without losing state.
func (e *Engine) Pause() {
	if e.over {
		return
	}
	e.running = false
}

// Spawn promotes the queued next piece (or a random one) to the active
// piece at the top center and queues a new random next piece. A spawn
// that collides ends the game.
func (e *Engine) Spawn() {
	if e.over {
		return
	}

	kind := e.next
	if kind == KindNone {
		kind = e.randomKind()
	}
	e.next = e.randomKind()

	p := Piece{Kind: kind, X: e.board.Width()/2 - 1, Y: 0}
	e.active = &p

	if !e.board.IsValidPosition(p.Shape(), p.X, p.Y) {
		e.over = true
		e.running = false
	}
}

func (e *Engine) randomKind() Kind {
	return Kinds[e.rng.Intn(len(Kinds))]
}

func (e *Engine) acceptsInput() bool {
	return e.running && !e.over && e.active != nil
}

// Move shifts the active piece by (dx, dy) if the target is valid.
// Returns true when the piece moved.
func (e *Engine) Move(dx, dy int) bool {
	if !e.acceptsInput() {
		return false
	}
	shape := e.active.Shape()
	if !e.board.IsValidPosition(shape, e.active.X+dx, e.active.Y+dy) {
		return false
	}
	e.active.X += dx
	e.active.Y += dy
	return true
}

// Rotate turns the active piece a quarter clockwise if the result fits.
// There are no wall kicks.
func (e *Engine) Rotate() bool {
	if !e.acceptsInput() {
		return false
	}
	rotation := (e.active.Rotation + 1) % 4
	shape := e.active.Kind.ShapeAt(rotation)
	if !e.board.IsValidPosition(shape, e.active.X, e.active.Y) {
		return false
	}
	e.active.Rotation = rotation
	return true
}

// Tick applies one row of gravity. When the piece cannot fall it locks,
// full lines clear, scoring updates and the next piece spawns.
func (e *Engine) Tick() {
	if !e.acceptsInput() {
		return
	}
	if e.Move(0, 1) {
		return
	}
	e.lock()
}

func (e *Engine) lock() {
	p := *e.active
	e.board.Place(p.Shape(), p.X, p.Y, p.Kind.Color())
	e.active = nil

	cleared := e.board.ClearLines()

	// The bonus uses the level the piece was played at.
	e.score += cleared*e.cfg.Scoring.LinePoints*e.level + e.cfg.Scoring.LockPoints
	e.lines += cleared
	e.level = e.lines/e.cfg.Scoring.LinesPerLevel + 1
	e.dropIntervalMs = e.intervalFor(e.level)

	e.Spawn()
}

// intervalFor returns the gravity interval in milliseconds for level.
func (e *Engine) intervalFor(level int) int {
	g := e.cfg.Gravity
	return max(g.MinIntervalMs, g.BaseIntervalMs-(level-1)*g.StepMs)
}

// Compose returns the locked cells with the active piece drawn on top.
// The active piece's cells above the board are not shown.
func (e *Engine) Compose() [][]Cell {
	rows := e.board.Rows()
	if e.active == nil {
		return rows
	}
	p := *e.active
	color := p.Kind.Color()
	for sy, row := range p.Shape() {
		for sx, on := range row {
			x, y := p.X+sx, p.Y+sy
			if on && y >= 0 && y < len(rows) && x >= 0 && x < len(rows[y]) {
				rows[y][x] = Cell{Filled: true, Color: color}
			}
		}
	}
	return rows
}

// Status reports the lifecycle state.
func (e *Engine) Status() Status {
	switch {
	case e.over:
		return StatusOver
	case e.running:
		return StatusRunning
	case e.active != nil:
		return StatusPaused
	}
	return StatusIdle
}

// Next returns the queued piece, if any.
func (e *Engine) Next() (Kind, bool) {
	return e.next, e.next != KindNone
}

// Active returns a copy of the falling piece, if any.
func (e *Engine) Active() (Piece, bool) {
	if e.active == nil {
		return Piece{}, false
	}
	return *e.active, true
}

// Board exposes the locked cells.
func (e *Engine) Board() *Board { return e.board }

func (e *Engine) Score() int          { return e.score }
func (e *Engine) Level() int          { return e.level }
func (e *Engine) Lines() int          { return e.lines }
func (e *Engine) DropIntervalMs() int { return e.dropIntervalMs }
func (e *Engine) Running() bool       { return e.running }
func (e *Engine) Over() bool          { return e.over }
