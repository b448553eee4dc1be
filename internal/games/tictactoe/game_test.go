package tictactoe

import (
	"strings"
	"testing"

	"github.com/vovakirdan/playzone/internal/core"
	"github.com/vovakirdan/playzone/internal/multiplayer"
	"github.com/vovakirdan/playzone/internal/registry"
)

func newGame(mode multiplayer.MatchMode) *Game {
	g := New(mode)
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24, TickRate: 60})
	return g
}

func idle(g *Game, steps int) {
	for range steps {
		g.Step(core.NewInputFrame())
	}
}

func play(t *testing.T, g *Game, cells ...int) {
	t.Helper()
	for _, c := range cells {
		if err := g.Move(c); err != nil {
			t.Fatalf("move %d: %v", c, err)
		}
	}
}

func TestRegisteredModes(t *testing.T) {
	for _, id := range []string{IDCPU, IDLocal, IDOnline} {
		if !registry.Exists(id) {
			t.Errorf("%s is not registered", id)
		}
	}
	info, _ := registry.Lookup(IDCPU)
	if info.Title != "Tic Tac Toe" {
		t.Errorf("unexpected title %q", info.Title)
	}
}

func TestXWinsScores(t *testing.T) {
	g := newGame(multiplayer.MatchModeLocal)
	play(t, g, 0, 3, 1, 4, 2)

	st := g.State()
	if !st.GameOver || st.Score != 10 {
		t.Errorf("X win should end the round with 10 points, got %+v", st)
	}
	if g.Winner() != X || g.Tally() != (Tally{X: 1}) {
		t.Errorf("unexpected winner %v / tally %+v", g.Winner(), g.Tally())
	}
}

func TestOWinsScoresNothing(t *testing.T) {
	g := newGame(multiplayer.MatchModeLocal)
	play(t, g, 0, 3, 1, 4, 8, 5)

	if g.Winner() != O || g.State().Score != 0 {
		t.Errorf("O win should score 0, got winner %v score %d", g.Winner(), g.State().Score)
	}
	if g.Tally().O != 1 {
		t.Errorf("expected O tally 1, got %+v", g.Tally())
	}
}

func TestDraw(t *testing.T) {
	g := newGame(multiplayer.MatchModeLocal)
	play(t, g, 0, 1, 2, 4, 3, 5, 7, 6, 8)

	st := g.State()
	if !st.GameOver || g.Winner() != Empty || st.Score != 0 {
		t.Errorf("expected draw, got winner %v state %+v", g.Winner(), st)
	}
	if g.Tally().Draws != 1 {
		t.Errorf("expected one draw, got %+v", g.Tally())
	}
}

func TestMoveErrors(t *testing.T) {
	g := newGame(multiplayer.MatchModeLocal)
	play(t, g, 4)
	if err := g.Move(4); err != ErrOccupied {
		t.Errorf("expected ErrOccupied, got %v", err)
	}
	if err := g.Move(9); err != ErrOutOfRange {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
	play(t, g, 0, 5, 1, 3)
	// X completes the middle row.
	if err := g.Move(8); err != ErrGameOver {
		t.Errorf("expected ErrGameOver, got %v", err)
	}
}

func TestHumanMoveThroughCursor(t *testing.T) {
	g := newGame(multiplayer.MatchModeLocal)
	g.Step(core.InputOf(core.ActionUp))
	g.Step(core.InputOf(core.ActionLeft))
	g.Step(core.InputOf(core.ActionConfirm))

	if g.Board()[0] != X {
		t.Fatalf("expected X at 0, got board %v", g.Board())
	}
	if g.Turn() != O {
		t.Error("turn should pass to O")
	}

	g.Step(core.InputOf(core.ActionChoice3)) // top row, right column
	g.Step(core.InputOf(core.ActionConfirm))
	if g.Board()[2] != O {
		t.Errorf("expected O at 2, got board %v", g.Board())
	}
}

func TestCPURepliesAfterDelay(t *testing.T) {
	g := newGame(multiplayer.MatchModeVsCPU)
	g.Step(core.InputOf(core.ActionConfirm)) // X takes the centre

	idle(g, 17) // 272ms of 300ms
	g.Step(core.InputOf(core.ActionConfirm))
	if g.Turn() != O {
		t.Fatal("CPU moved too early")
	}
	if g.notice != "Not your turn" {
		t.Errorf("expected a not-your-turn notice, got %q", g.notice)
	}

	idle(g, 1)

	if g.Turn() != X {
		t.Fatal("CPU should have moved after 300ms")
	}
	if len(g.Board().Free()) != 7 {
		t.Errorf("expected two marks, got board %v", g.Board())
	}
}

func TestOnlineJoinAndOpponentMove(t *testing.T) {
	g := newGame(multiplayer.MatchModeSimulatedOnline)
	if len(g.RoomCode()) != multiplayer.RoomCodeLength {
		t.Errorf("bad room code %q", g.RoomCode())
	}
	if g.Connected() {
		t.Fatal("opponent should not be connected yet")
	}
	if err := g.Move(0); err != ErrNotConnected {
		t.Errorf("expected ErrNotConnected, got %v", err)
	}

	idle(g, 180) // under 3s
	if g.Connected() {
		t.Fatal("opponent joined before 3s")
	}
	idle(g, 321) // past 8s
	if !g.Connected() {
		t.Fatal("opponent should have joined within 8s")
	}

	g.Step(core.InputOf(core.ActionConfirm))
	if g.Turn() != O {
		t.Fatal("expected O to move next")
	}
	idle(g, 62) // under 1s
	if g.Turn() != O {
		t.Fatal("opponent moved before 1s")
	}
	idle(g, 130) // past 3s
	if g.Turn() != X {
		t.Error("opponent should have moved within 3s")
	}
}

func TestNewRoundAfterGameOver(t *testing.T) {
	g := newGame(multiplayer.MatchModeLocal)
	play(t, g, 0, 3, 1, 4, 2)

	g.Step(core.InputOf(core.ActionConfirm))
	st := g.State()
	if st.GameOver || st.Score != 0 || len(g.Board().Free()) != 9 {
		t.Errorf("confirm after game over should start a new round, got %+v", st)
	}
	if g.Tally().X != 1 {
		t.Error("tally should survive a new round")
	}
	if g.Turn() != X {
		t.Error("X moves first")
	}
}

func TestRender(t *testing.T) {
	g := newGame(multiplayer.MatchModeSimulatedOnline)
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Tic Tac Toe (Online)", "Room " + g.RoomCode(), "waiting for opponent", "X: 0   O: 0   Draws: 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
}
