// Package rps implements rock-paper-scissors against the computer.
// Every revealed round is reported as a finished game so the platform can
// count it and track the win streak.
package rps

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/playzone/internal/config"
	"github.com/vovakirdan/playzone/internal/core"
	"github.com/vovakirdan/playzone/internal/registry"
)

// ID is the registry id of the game. Its best streak lives under
// "rpsBestStreak".
const ID = "rps"

// Phase is where the current round stands.
type Phase int

const (
	PhaseChoosing  Phase = iota
	PhaseRevealing       // computer is "thinking"
	PhaseRevealed
)

// Tally counts the session's round results.
type Tally struct {
	Player   int
	Computer int
	Draws    int
}

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

// Game is rock-paper-scissors.
type Game struct {
	cfg     config.RPSConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand

	phase    Phase
	cursor   int
	player   Choice
	computer Choice
	outcome  Outcome
	waitMs   int

	tally      Tally
	streak     int
	bestStreak int
	roundScore int
	points     int // session total
}

// New creates a new rock-paper-scissors game.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Rock Paper Scissors" }

// Description returns the menu blurb.
func (g *Game) Description() string {
	return "Classic game of chance against the computer."
}

// Reset loads the config and starts a fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	cfg, err := config.LoadRPS(configPath)
	if err != nil {
		cfg = config.DefaultRPSConfig()
	}
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.bestStreak = runtime.BestScore
	g.resetSession()
}

func (g *Game) resetSession() {
	g.phase = PhaseChoosing
	g.cursor = 0
	g.tally = Tally{}
	g.streak = 0
	g.roundScore = 0
	g.points = 0
	g.waitMs = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.resetSession()
		return core.StepResult{State: g.State()}
	}

	if g.phase == PhaseRevealing {
		g.waitMs -= g.runtime.TickMillis()
		if g.waitMs <= 0 {
			g.reveal(Choices[g.rng.Intn(len(Choices))])
		}
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionLeft):
		g.cursor = (g.cursor + len(Choices) - 1) % len(Choices)
	case in.Has(core.ActionRight):
		g.cursor = (g.cursor + 1) % len(Choices)
	}

	switch {
	case in.Has(core.ActionChoice1):
		g.play(Rock)
	case in.Has(core.ActionChoice2):
		g.play(Paper)
	case in.Has(core.ActionChoice3):
		g.play(Scissors)
	case in.Has(core.ActionConfirm):
		g.play(Choices[g.cursor])
	}

	return core.StepResult{State: g.State()}
}

// play locks in the player's hand and starts the reveal countdown.
func (g *Game) play(c Choice) {
	g.player = c
	g.cursor = int(c)
	g.phase = PhaseRevealing
	g.roundScore = 0
	g.waitMs = max(g.cfg.RevealDelayMs, 1)
}

func (g *Game) reveal(computer Choice) {
	g.computer = computer
	g.outcome = Decide(g.player, computer)
	g.phase = PhaseRevealed

	switch g.outcome {
	case Win:
		g.tally.Player++
		g.streak++
		g.roundScore = g.cfg.WinPoints
		g.points += g.cfg.WinPoints
		g.bestStreak = max(g.bestStreak, g.streak)
	case Lose:
		g.tally.Computer++
		g.streak = 0
	default:
		g.tally.Draws++
		g.streak = 0
	}
}

// Tally returns the session's round counts.
func (g *Game) Tally() Tally { return g.tally }

// Phase returns the round phase.
func (g *Game) Phase() Phase { return g.phase }

// Outcome returns the last revealed result.
func (g *Game) Outcome() Outcome { return g.outcome }

// State reports a revealed round as a finished game scored for that round.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.roundScore,
		GameOver: g.phase == PhaseRevealed,
		Streak:   g.streak,
	}
}

// Render draws the hands, the result and the session tallies.
func (g *Game) Render(dst *core.Screen) {
	dst.DrawText(0, 0, fmt.Sprintf(" Rock Paper Scissors | Points: %d  Streak: %d  Best streak: %d",
		g.points, g.streak, g.bestStreak))

	cy := dst.Height()/2 - 4
	switch g.phase {
	case PhaseChoosing:
		dst.DrawTextCentered(cy, "Choose your weapon")
	case PhaseRevealing:
		dst.DrawTextCentered(cy, fmt.Sprintf("You: %s %s   Computer: ...", g.player.Emoji(), g.player))
	case PhaseRevealed:
		dst.DrawTextCentered(cy, fmt.Sprintf("You: %s %s   Computer: %s %s",
			g.player.Emoji(), g.player, g.computer.Emoji(), g.computer))
		color := core.ColorYellow
		switch g.outcome {
		case Win:
			color = core.ColorGreen
		case Lose:
			color = core.ColorRed
		}
		msg := g.outcome.String()
		dst.DrawTextColor((dst.Width()-core.TextWidth(msg))/2, cy+1, msg, color)
	}

	// Hand picker.
	const slot = 16
	x0 := (dst.Width() - slot*len(Choices)) / 2
	for i, c := range Choices {
		label := fmt.Sprintf("%d %s %s", i+1, c.Emoji(), c)
		x := x0 + i*slot
		if i == g.cursor && g.phase != PhaseRevealing {
			dst.DrawTextColor(x, cy+3, "["+label+"]", core.ColorBrightYellow)
		} else {
			dst.DrawText(x+1, cy+3, label)
		}
	}

	dst.DrawTextCentered(cy+6, fmt.Sprintf("You %d   Computer %d   Draws %d",
		g.tally.Player, g.tally.Computer, g.tally.Draws))
	dst.DrawTextCentered(cy+8, "←/→ + Enter or 1/2/3: play   R: reset scores")
}
