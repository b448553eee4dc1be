package tui

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/playzone/internal/core"
	"github.com/vovakirdan/playzone/internal/registry"
	"github.com/vovakirdan/playzone/internal/stats"
	"github.com/vovakirdan/playzone/internal/storage"
)

// scriptedGame replays a fixed sequence of states, one per step.
type scriptedGame struct {
	states  []core.GameState
	step    int
	runtime core.RuntimeConfig
	bests   map[string]int
}

func (g *scriptedGame) ID() string { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }
func (g *scriptedGame) Reset(cfg core.RuntimeConfig) { g.runtime = cfg; g.step = 0 }
func (g *scriptedGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "scripted") }
func (g *scriptedGame) RecordKeys() []string { return []string{"scriptedBestTime"} }
func (g *scriptedGame) Bests() map[string]int { return g.bests }
func (g *scriptedGame) State() core.GameState {
	if g.step == 0 {
		return core.GameState{}
	}
	return g.states[min(g.step, len(g.states))-1]
}

func (g *scriptedGame) Step(core.InputFrame) core.StepResult {
	g.step++
	return core.StepResult{State: g.State()}
}

var (
	_ registry.BestReporter = (*scriptedGame)(nil)
	_ registry.RecordKeyer  = (*scriptedGame)(nil)
	_ registry.RunReporter  = (*detailGame)(nil)
)

func testServices() Services {
	logger := log.New(io.Discard)
	return Services{
		Stats:  stats.New(storage.NewMemoryKV(), nil, logger),
		Logger: logger,
	}
}

// tick steps m n times and runs the commands each step returns.
func tick(t *testing.T, m GameModel, n int) GameModel {
	t.Helper()
	for range n {
		next, cmd := m.Update(TickMsg{})
		m = next.(GameModel)
		drain(cmd)
	}
	return m
}

func drain(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	if batch, ok := cmd().(tea.BatchMsg); ok {
		for _, c := range batch {
			drain(c)
		}
	}
}

func TestGameOverRecordedOnce(t *testing.T) {
	svc := testServices()
	over := core.GameState{Score: 40, GameOver: true, Streak: 2}
	game := &scriptedGame{
		states: []core.GameState{{Score: 10}, over, over, over},
		bests:  map[string]int{"scriptedBestTime": 33},
	}
	m := NewGameModel(game, svc, core.DefaultConfig())
	m.Init()

	m = tick(t, m, 6)

	ctx := context.Background()
	totals := svc.Stats.Stats(ctx)
	assert.Equal(t, 1, totals.GamesPlayed)
	assert.Equal(t, 40, totals.TotalScore)
	assert.Equal(t, 2, totals.BestStreak)
	assert.Equal(t, 40, svc.Stats.HighScore(ctx, "scripted"))
	best, ok := svc.Stats.Best(ctx, "scriptedBestTime")
	require.True(t, ok)
	assert.Equal(t, 33, best)
	assert.True(t, m.State().GameOver)
}

func TestGameOverWrittenByCommand(t *testing.T) {
	svc := testServices()
	var pending sync.WaitGroup
	svc.Pending = &pending
	game := &scriptedGame{states: []core.GameState{{GameOver: true, Score: 12}}}
	m := NewGameModel(game, svc, core.DefaultConfig())
	m.Init()

	_, cmd := m.Update(TickMsg{})
	require.NotNil(t, cmd)
	assert.Zero(t, svc.Stats.Stats(context.Background()).GamesPlayed, "update must not write")

	drain(cmd)
	pending.Wait()
	assert.Equal(t, 1, svc.Stats.Stats(context.Background()).GamesPlayed)
	assert.Equal(t, 12, svc.Stats.HighScore(context.Background(), "scripted"))
}

func TestRunDetailReachesHistory(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "playzone.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	logger := log.New(io.Discard)
	svc := Services{Store: store, Stats: stats.New(store, store, logger), Logger: logger}
	game := &detailGame{scriptedGame: scriptedGame{states: []core.GameState{{GameOver: true, Score: 92}}}}
	m := NewGameModel(game, svc, core.DefaultConfig())
	m.Init()
	tick(t, m, 1)

	scores, err := store.TopScores("scripted", 10)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, &storage.ScoreDetail{Moves: 8, Seconds: 41}, scores[0].Detail)
}

// detailGame reports a fixed run detail once over.
type detailGame struct {
	scriptedGame
}

func (g *detailGame) RunDetail() (int, int, bool) { return 8, 41, g.State().GameOver }

func TestEachRoundRecorded(t *testing.T) {
	svc := testServices()
	game := &scriptedGame{states: []core.GameState{
		{GameOver: true, Score: 5, Streak: 1},
		{},
		{GameOver: true, Score: 5, Streak: 2},
		{GameOver: true, Score: 5, Streak: 2},
	}}
	m := NewGameModel(game, svc, core.DefaultConfig())
	m.Init()

	tick(t, m, 4)

	totals := svc.Stats.Stats(context.Background())
	assert.Equal(t, 2, totals.GamesPlayed)
	assert.Equal(t, 10, totals.TotalScore)
	assert.Equal(t, 2, totals.BestStreak)
}

func TestRuntimeCarriesRecords(t *testing.T) {
	svc := testServices()
	ctx := context.Background()
	svc.Stats.RecordGameResult(ctx, stats.Result{GameID: "scripted", Score: 70})
	svc.Stats.RecordBest(ctx, "scriptedBestTime", 41)

	game := &scriptedGame{states: []core.GameState{{}}}
	m := NewGameModel(game, svc, core.DefaultConfig())
	m.Init()

	assert.Equal(t, 70, game.runtime.BestScore)
	v, ok := game.runtime.Record("scriptedBestTime")
	assert.True(t, ok)
	assert.Equal(t, 41, v)
	assert.NotZero(t, game.runtime.Seed)
}

func TestBackLeavesGame(t *testing.T) {
	game := &scriptedGame{states: []core.GameState{{}}}
	m := NewGameModel(game, Services{}, core.DefaultConfig())

	next, _ := m.Update(runeKey("b"))
	assert.True(t, next.(GameModel).BackToMenu())

	next, cmd := m.Update(runeKey("q"))
	assert.True(t, next.(GameModel).IsQuitting())
	assert.NotNil(t, cmd)
}

func TestViewRendersGame(t *testing.T) {
	game := &scriptedGame{states: []core.GameState{{}}}
	m := NewGameModel(game, Services{}, core.RuntimeConfig{ScreenW: 20, ScreenH: 2, TickRate: 60})
	m.Init()
	assert.True(t, strings.Contains(m.View(), "scripted"))
}

func TestRenderScreenSkipsContinuationCells(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.DrawText(0, 0, "🎮ab")
	out := RenderScreen(s)
	assert.Equal(t, 1, strings.Count(out, "🎮"))
	assert.Contains(t, out, "ab")
	assert.NotContains(t, out, "\x00")
}

func TestMenuOrder(t *testing.T) {
	items := menuItems([]registry.GameInfo{
		{ID: "zzz", Title: "Custom"},
		{ID: "tetris", Title: "Tetris"},
		{ID: "tictactoe", Title: "Tic Tac Toe"},
	})
	require.Len(t, items, 3)
	assert.Equal(t, []string{"tictactoe", "tetris", "zzz"},
		[]string{items[0].GameID, items[1].GameID, items[2].GameID})
}
