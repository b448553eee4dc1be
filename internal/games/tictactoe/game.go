// Package tictactoe implements tic-tac-toe in three modes: against a CPU
// strategy, hot-seat on one keyboard, and a simulated online match where a
// scripted opponent joins a room and plays with human-like delays.
package tictactoe

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/playzone/internal/config"
	"github.com/vovakirdan/playzone/internal/core"
	"github.com/vovakirdan/playzone/internal/multiplayer"
	"github.com/vovakirdan/playzone/internal/registry"
)

// Registry ids, one per mode.
const (
	IDCPU    = "tictactoe"
	IDLocal  = "tictactoe_local"
	IDOnline = "tictactoe_online"
)

// Move errors.
var (
	ErrGameOver     = errors.New("tictactoe: round is over")
	ErrOccupied     = errors.New("tictactoe: cell is taken")
	ErrOutOfRange   = errors.New("tictactoe: no such cell")
	ErrNotConnected = errors.New("tictactoe: waiting for opponent")
)

// Tally counts session results per mark.
type Tally struct {
	X     int
	O     int
	Draws int
}

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset tunes the CPU thinking time. Unknown values are ignored.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

func init() {
	registry.Register(IDCPU, func() registry.Game { return New(multiplayer.MatchModeVsCPU) })
	registry.Register(IDLocal, func() registry.Game { return New(multiplayer.MatchModeLocal) })
	registry.Register(IDOnline, func() registry.Game { return New(multiplayer.MatchModeSimulatedOnline) })
}

// Game is one tic-tac-toe session.
type Game struct {
	mode    multiplayer.MatchMode
	cfg     config.TicTacToeConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	match   *multiplayer.Match

	board   Board
	turn    Mark
	winner  Mark
	winLine [3]int
	over    bool
	score   int
	tally   Tally

	cursor    int
	seats     [2]seat // X, O
	connected bool
	joinInMs  int
	notice    string
}

// New creates a game for the given mode. Solo is treated as vs CPU.
func New(mode multiplayer.MatchMode) *Game {
	if mode == multiplayer.MatchModeSolo {
		mode = multiplayer.MatchModeVsCPU
	}
	return &Game{mode: mode}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	switch g.mode {
	case multiplayer.MatchModeLocal:
		return IDLocal
	case multiplayer.MatchModeSimulatedOnline:
		return IDOnline
	default:
		return IDCPU
	}
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.mode {
	case multiplayer.MatchModeLocal:
		return "Tic Tac Toe (Local 2P)"
	case multiplayer.MatchModeSimulatedOnline:
		return "Tic Tac Toe (Online)"
	default:
		return "Tic Tac Toe"
	}
}

// Description returns the menu blurb.
func (g *Game) Description() string {
	switch g.mode {
	case multiplayer.MatchModeLocal:
		return "Two players take turns on one keyboard."
	case multiplayer.MatchModeSimulatedOnline:
		return "Create a room and wait for an opponent to join."
	default:
		return "Classic strategy game against the computer."
	}
}

// Mode returns the match mode.
func (g *Game) Mode() multiplayer.MatchMode { return g.mode }

// Reset loads the config, seats the players and starts the first round.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	cfg, err := config.LoadTicTacToe(configPath)
	if err != nil {
		cfg = config.DefaultTicTacToeConfig()
	}
	if difficultyPreset != "" {
		config.ApplyTicTacToePreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.match = multiplayer.NewMatch(g.mode)
	g.tally = Tally{}
	g.notice = ""

	g.seats[0] = &humanSeat{cursor: &g.cursor}
	switch g.mode {
	case multiplayer.MatchModeLocal:
		g.seats[1] = &humanSeat{cursor: &g.cursor}
		g.connected = true
	case multiplayer.MatchModeSimulatedOnline:
		g.seats[1] = &scriptedSeat{opp: NewRandomOpponent(g.rng), delay: cfg.MoveDelay, rng: g.rng}
		g.match.RoomCode = multiplayer.NewRoomCode(g.rng)
		g.connected = false
		g.joinInMs = drawDelay(g.rng, cfg.JoinDelay)
	default:
		cpu := HeuristicOpponent{Fallback: NewRandomOpponent(g.rng)}
		g.seats[1] = &scriptedSeat{opp: cpu, delay: cfg.CPUDelay, rng: g.rng}
		g.connected = true
	}

	g.newRound()
}

func (g *Game) newRound() {
	g.board = Board{}
	g.turn = X
	g.winner = Empty
	g.over = false
	g.score = 0
	g.cursor = 4
	if g.connected {
		g.seat(g.turn).begin(g.board, g.turn)
	}
}

func (g *Game) seat(m Mark) seat {
	if m == O {
		return g.seats[1]
	}
	return g.seats[0]
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	dt := g.runtime.TickMillis()

	if in.Has(core.ActionRestart) || (g.over && in.Has(core.ActionConfirm)) {
		g.notice = ""
		g.newRound()
		return core.StepResult{State: g.State()}
	}
	if g.over {
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	if !g.connected {
		g.joinInMs -= dt
		if g.joinInMs <= 0 {
			g.connected = true
			g.notice = "Player2 joined the room"
			g.seat(g.turn).begin(g.board, g.turn)
		} else if in.Has(core.ActionConfirm) {
			g.notice = "Waiting for opponent..."
		}
		return core.StepResult{State: g.State()}
	}

	cell := g.seat(g.turn).next(in, dt)
	if cell < 0 {
		if in.Has(core.ActionConfirm) {
			g.notice = "Not your turn"
		}
		return core.StepResult{State: g.State()}
	}
	if err := g.Move(cell); err != nil {
		g.notice = "That cell is taken"
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(in core.InputFrame) {
	x, y := g.cursor%3, g.cursor/3
	switch {
	case in.Has(core.ActionLeft):
		x--
	case in.Has(core.ActionRight):
		x++
	case in.Has(core.ActionUp):
		y--
	case in.Has(core.ActionDown):
		y++
	}
	g.cursor = core.Clamp(y, 0, 2)*3 + core.Clamp(x, 0, 2)
	for i, c := range []core.Action{core.ActionChoice1, core.ActionChoice2, core.ActionChoice3} {
		// Number keys pick a column in the cursor's row.
		if in.Has(c) {
			g.cursor = core.Clamp(y, 0, 2)*3 + i
		}
	}
}

// Move places the current player's mark on cell. Human and scripted seats
// both play through here.
func (g *Game) Move(cell int) error {
	switch {
	case g.over:
		return ErrGameOver
	case !g.connected:
		return ErrNotConnected
	case cell < 0 || cell >= len(g.board):
		return ErrOutOfRange
	case g.board[cell] != Empty:
		return ErrOccupied
	}

	g.board[cell] = g.turn
	g.notice = ""

	if w, line, ok := g.board.Winner(); ok {
		g.over = true
		g.winner = w
		g.winLine = line
		if w == X {
			g.tally.X++
			g.score = g.cfg.WinPoints
		} else {
			g.tally.O++
		}
		return nil
	}
	if g.board.Full() {
		g.over = true
		g.tally.Draws++
		return nil
	}

	g.turn = g.turn.Other()
	g.seat(g.turn).begin(g.board, g.turn)
	return nil
}

// Board returns a copy of the board.
func (g *Game) Board() Board { return g.board }

// Turn returns the mark to move.
func (g *Game) Turn() Mark { return g.turn }

// Winner returns the winning mark, Empty for none or a draw.
func (g *Game) Winner() Mark { return g.winner }

// Tally returns the session results.
func (g *Game) Tally() Tally { return g.tally }

// Connected reports whether the opponent is present.
func (g *Game) Connected() bool { return g.connected }

// RoomCode returns the simulated room code, empty outside online mode.
func (g *Game) RoomCode() string { return g.match.RoomCode }

// State returns the current game state. Only a win for X scores.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.over,
	}
}

// Render draws the board, the mode line and the session score.
func (g *Game) Render(dst *core.Screen) {
	dst.DrawText(0, 0, " "+g.Title()+" | "+g.modeLine())

	const cellW, cellH = 7, 3
	bw, bh := cellW*3+2, cellH*3+2
	ox := (dst.Width() - bw) / 2
	oy := (dst.Height()-bh)/2 - 1

	// Grid lines.
	for i := 1; i < 3; i++ {
		for y := range bh {
			dst.Set(ox+i*(cellW+1)-1, oy+y, '│')
		}
		for x := range bw {
			dst.Set(ox+x, oy+i*(cellH+1)-1, '─')
		}
		for j := 1; j < 3; j++ {
			dst.Set(ox+i*(cellW+1)-1, oy+j*(cellH+1)-1, '┼')
		}
	}

	win := map[int]bool{}
	if g.winner != Empty {
		for _, c := range g.winLine {
			win[c] = true
		}
	}
	for i, m := range g.board {
		cx := ox + (i%3)*(cellW+1) + cellW/2
		cy := oy + (i/3)*(cellH+1) + cellH/2
		color := core.ColorCyan
		if m == O {
			color = core.ColorMagenta
		}
		if win[i] {
			color = core.ColorBrightGreen
		}
		if m != Empty {
			dst.SetColor(cx, cy, []rune(m.String())[0], color)
		}
		if i == g.cursor && !g.over {
			dst.SetColor(cx-2, cy, '[', core.ColorBrightYellow)
			dst.SetColor(cx+2, cy, ']', core.ColorBrightYellow)
		}
	}

	status := g.statusLine()
	dst.DrawTextCentered(oy+bh+1, status)
	if g.notice != "" {
		dst.DrawTextCentered(oy+bh+2, g.notice)
	}
	dst.DrawTextCentered(oy+bh+4, fmt.Sprintf("X: %d   O: %d   Draws: %d", g.tally.X, g.tally.O, g.tally.Draws))
	dst.DrawTextCentered(dst.Height()-1, "Arrows/1-3: move  Enter: place  R: new round")
}

func (g *Game) modeLine() string {
	switch g.mode {
	case multiplayer.MatchModeSimulatedOnline:
		if !g.connected {
			return fmt.Sprintf("Room %s  Connecting... waiting for opponent", g.match.RoomCode)
		}
		return fmt.Sprintf("Room %s  Online - Host vs Player2", g.match.RoomCode)
	case multiplayer.MatchModeLocal:
		return "Local Multiplayer"
	default:
		return "Single Player vs CPU"
	}
}

func (g *Game) statusLine() string {
	switch {
	case g.over && g.winner != Empty:
		return fmt.Sprintf("Player %s wins!  Enter: play again", g.winner)
	case g.over:
		return "It's a draw!  Enter: play again"
	case !g.connected:
		return "Share the room code with a friend"
	default:
		return fmt.Sprintf("Player %s's turn", g.turn)
	}
}
