package tui

import (
	"context"
	"maps"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/playzone/internal/core"
	"github.com/vovakirdan/playzone/internal/leaderboard"
	"github.com/vovakirdan/playzone/internal/profile"
	"github.com/vovakirdan/playzone/internal/registry"
	"github.com/vovakirdan/playzone/internal/stats"
	"github.com/vovakirdan/playzone/internal/storage"
)

// Services are the collaborators shared by every screen. Any of them may be
// nil; the screens degrade to showing less.
type Services struct {
	Store       *storage.Store
	Stats       *stats.Service
	Profiles    *profile.Store
	Leaderboard *leaderboard.Syncer
	Logger      *log.Logger

	// Pending, when set, counts game-over writes still in flight so the
	// caller can wait for them before closing the store.
	Pending *sync.WaitGroup
}

func (s Services) logger() *log.Logger {
	if s.Logger == nil {
		return log.Default()
	}
	return s.Logger
}

// runtimeFor fills the persisted records game displays.
func (s Services) runtimeFor(game registry.Game, cfg core.RuntimeConfig) core.RuntimeConfig {
	if s.Stats == nil {
		return cfg
	}
	ctx := context.Background()
	cfg.BestScore = s.Stats.HighScore(ctx, game.ID())
	if rk, ok := game.(registry.RecordKeyer); ok {
		cfg.Records = s.Stats.Bests(ctx, rk.RecordKeys())
	}
	return cfg
}

// gameOverCmd snapshots the finished game and stores it off the update
// loop. The game is only read here, never from the returned command.
func (s Services) gameOverCmd(game registry.Game, st core.GameState) tea.Cmd {
	if s.Stats == nil {
		return nil
	}
	result := stats.Result{
		GameID: game.ID(),
		Score:  st.Score,
		Streak: st.Streak,
	}
	if rr, ok := game.(registry.RunReporter); ok {
		if moves, seconds, ok := rr.RunDetail(); ok {
			result.Detail = &storage.ScoreDetail{Moves: moves, Seconds: seconds}
		}
	}
	var bests map[string]int
	if br, ok := game.(registry.BestReporter); ok {
		bests = maps.Clone(br.Bests())
	}

	return func() tea.Msg {
		if s.Pending != nil {
			s.Pending.Add(1)
			defer s.Pending.Done()
		}
		s.recordGameOver(result, bests)
		return nil
	}
}

// recordGameOver stores one finished game.
func (s Services) recordGameOver(result stats.Result, bests map[string]int) {
	ctx := context.Background()
	for key, v := range bests {
		s.Stats.RecordBest(ctx, key, v)
	}
	totals := s.Stats.RecordGameResult(ctx, result)
	s.logger().Info("game over",
		"game", result.GameID,
		"score", result.Score,
		"gamesPlayed", totals.GamesPlayed,
		"totalScore", totals.TotalScore,
	)
}
