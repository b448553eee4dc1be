package memory

import (
	"strings"
	"testing"

	"github.com/vovakirdan/playzone/internal/core"
)

func newGame(seed int64) *Game {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24, TickRate: 60})
	return g
}

// flipAt moves the cursor onto card i and confirms.
func flipAt(g *Game, i int) {
	g.cursor = core.Point{X: i % g.cfg.Columns, Y: i / g.cfg.Columns}
	g.Step(core.InputOf(core.ActionConfirm))
}

func idle(g *Game, steps int) {
	for range steps {
		g.Step(core.NewInputFrame())
	}
}

func TestDefaults(t *testing.T) {
	g := newGame(1)
	if g.deck.Len() != 16 {
		t.Fatalf("expected 16 cards, got %d", g.deck.Len())
	}
	if g.rows() != 4 {
		t.Errorf("expected 4 rows, got %d", g.rows())
	}
}

func TestCursorClamped(t *testing.T) {
	g := newGame(1)
	g.Step(core.InputOf(core.ActionLeft))
	g.Step(core.InputOf(core.ActionUp))
	if g.cursor != (core.Point{}) {
		t.Errorf("cursor left the grid: %v", g.cursor)
	}
	for range 10 {
		g.Step(core.InputOf(core.ActionRight))
		g.Step(core.InputOf(core.ActionDown))
	}
	if g.cursor != (core.Point{X: 3, Y: 3}) {
		t.Errorf("cursor should stop at the corner, got %v", g.cursor)
	}
}

func TestTimerStartsOnFirstFlip(t *testing.T) {
	g := newGame(2)
	idle(g, 120)
	if g.Seconds() != 0 {
		t.Fatalf("timer should not run before the first flip, got %d", g.Seconds())
	}

	flipAt(g, 0)
	idle(g, 70) // 71 * 16ms
	if g.Seconds() != 1 {
		t.Errorf("expected 1 second, got %d", g.Seconds())
	}
}

func TestMatchResolvesAfterDelay(t *testing.T) {
	g := newGame(3)
	j := pairOf(g.deck, 0)

	flipAt(g, 0)
	flipAt(g, j)
	if g.deck.Pending() != 2 {
		t.Fatal("expected two pending cards")
	}

	idle(g, 20) // 336ms of 500ms
	if g.deck.Card(0).Matched {
		t.Fatal("match resolved too early")
	}
	idle(g, 20)
	if !g.deck.Card(0).Matched || !g.deck.Card(j).Matched {
		t.Error("pair should be matched after 500ms")
	}
}

func TestMismatchFlipsBackAfterDelay(t *testing.T) {
	g := newGame(4)
	j := mismatchOf(g.deck, 0)

	flipAt(g, 0)
	flipAt(g, j)

	idle(g, 40) // 672ms of 1000ms
	if !g.deck.Card(0).Flipped {
		t.Fatal("mismatch flipped back too early")
	}

	// A third card cannot be turned while the pair is pending.
	k := pairOf(g.deck, 0)
	flipAt(g, k)
	if g.deck.Card(k).Flipped {
		t.Error("flip should be ignored while two cards are pending")
	}

	idle(g, 30)
	if g.deck.Card(0).Flipped || g.deck.Card(j).Flipped {
		t.Error("mismatched cards should be face down after 1000ms")
	}
}

func TestCompletionScore(t *testing.T) {
	g := newGame(5)
	for i := range g.deck.Len() {
		if g.deck.Card(i).Matched {
			continue
		}
		flipAt(g, i)
		flipAt(g, pairOf(g.deck, i))
		idle(g, 40)
	}

	st := g.State()
	if !st.GameOver {
		t.Fatal("game should be complete")
	}
	if st.Score != 92 {
		t.Errorf("expected score 100-8=92, got %d", st.Score)
	}

	bests := g.Bests()
	if bests[BestMovesKey] != 8 {
		t.Errorf("expected 8 best moves, got %d", bests[BestMovesKey])
	}
	if bests[BestTimeKey] != g.Seconds() {
		t.Errorf("best time %d does not match clock %d", bests[BestTimeKey], g.Seconds())
	}

	moves, seconds, ok := g.RunDetail()
	if !ok || moves != 8 || seconds != g.Seconds() {
		t.Errorf("run detail = (%d, %d, %v), want (8, %d, true)", moves, seconds, ok, g.Seconds())
	}
}

func TestScoreFloor(t *testing.T) {
	g := newGame(6)
	g.deck.moves = 150
	g.complete()
	if g.score != 10 {
		t.Errorf("score should not drop below 10, got %d", g.score)
	}
}

func TestBestsEmptyUntilComplete(t *testing.T) {
	g := newGame(7)
	if g.Bests() != nil {
		t.Error("expected no records before completion")
	}
	if _, _, ok := g.RunDetail(); ok {
		t.Error("expected no run detail before completion")
	}
}

func TestRestartDealsNewGame(t *testing.T) {
	g := newGame(8)
	flipAt(g, 0)
	g.Step(core.InputOf(core.ActionRestart))

	if g.started || g.deck.Pending() != 0 || g.deck.Moves() != 0 {
		t.Error("restart should deal a fresh deck")
	}
}

func TestRender(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{
		Seed: 9, ScreenW: 80, ScreenH: 24, TickRate: 60,
		Records: map[string]int{BestTimeKey: 75, BestMovesKey: 12},
	})

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Picture Matching", "Moves: 0", "Best time: 1:15", "Best moves: 12"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
}
