package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/playzone/internal/config"
	"github.com/vovakirdan/playzone/internal/core"
	"github.com/vovakirdan/playzone/internal/games/memory"
	"github.com/vovakirdan/playzone/internal/games/rps"
	"github.com/vovakirdan/playzone/internal/games/snake"
	"github.com/vovakirdan/playzone/internal/games/tetris"
	"github.com/vovakirdan/playzone/internal/games/tictactoe"
	"github.com/vovakirdan/playzone/internal/games/wordsearch"
	"github.com/vovakirdan/playzone/internal/leaderboard"
	"github.com/vovakirdan/playzone/internal/platform/tui"
	"github.com/vovakirdan/playzone/internal/profile"
	"github.com/vovakirdan/playzone/internal/stats"
	"github.com/vovakirdan/playzone/internal/storage"
	"github.com/vovakirdan/playzone/internal/telemetry"
)

const serviceName = "playzone"

// app holds the services every command works with.
type app struct {
	store    *storage.Store // nil when the database could not be opened
	stats    *stats.Service
	profiles *profile.Store
	syncer   *leaderboard.Syncer
	logger   *log.Logger
	logFile  io.Closer
	shutdown telemetry.Shutdown
	pending  sync.WaitGroup // game-over writes started by the TUI
}

// openApp wires storage, stats, profile, leaderboard sync and tracing.
// Interactive commands log to ~/.playzone/playzone.log since the alternate
// screen owns the terminal.
func openApp(ctx context.Context, interactive bool) *app {
	a := &app{}
	a.logger, a.logFile = newLogger(interactive)

	var kv storage.KV = storage.NewMemoryKV()
	var scores stats.ScoreSaver
	var mirror leaderboard.Mirror
	store, err := storage.Open(flagDBPath)
	if err != nil {
		a.logger.Warn("could not open database, progress will not be saved", "path", flagDBPath, "err", err)
	} else {
		a.store = store
		kv, scores, mirror = store, store, store
	}

	a.stats = stats.New(kv, scores, a.logger)
	a.profiles = profile.NewStore(kv)

	telCfg, err := config.LoadTelemetryConfig()
	if err != nil {
		a.logger.Warn("invalid telemetry settings", "err", err)
	}
	a.shutdown, err = telemetry.Setup(ctx, serviceName, telCfg)
	if err != nil {
		a.logger.Warn("tracing disabled", "err", err)
	}

	var remote leaderboard.Remote
	syncCfg, err := config.LoadSyncConfig()
	switch {
	case err != nil:
		a.logger.Warn("invalid leaderboard sync settings", "err", err)
	case syncCfg.Enabled():
		remote = leaderboard.NewHTTPClient(syncCfg, nil)
	}
	a.syncer = leaderboard.NewSyncer(a.profiles, a.stats, mirror, remote, a.logger)
	a.stats.OnRecord(a.syncer.SyncAsync)

	return a
}

func newLogger(toFile bool) (*log.Logger, io.Closer) {
	var w io.Writer = os.Stderr
	var closer io.Closer
	if toFile {
		w, closer = openLogFile()
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          serviceName,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer
}

func openLogFile() (io.Writer, io.Closer) {
	home, err := os.UserHomeDir()
	if err != nil {
		return io.Discard, nil
	}
	dir := filepath.Join(home, ".playzone")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return io.Discard, nil
	}
	f, err := os.OpenFile(filepath.Join(dir, "playzone.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return io.Discard, nil
	}
	return f, f
}

func (a *app) services() tui.Services {
	return tui.Services{
		Store:       a.store,
		Stats:       a.stats,
		Profiles:    a.profiles,
		Leaderboard: a.syncer,
		Logger:      a.logger,
		Pending:     &a.pending,
	}
}

// Close flushes pending syncs and spans and closes the database.
func (a *app) Close() {
	a.pending.Wait()
	a.syncer.Wait()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if a.shutdown != nil {
		if err := a.shutdown(ctx); err != nil {
			a.logger.Warn("tracer shutdown", "err", err)
		}
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Warn("closing database", "err", err)
		}
	}
	if a.logFile != nil {
		_ = a.logFile.Close()
	}
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// applyGameFlags passes --config and --difficulty to the game about to start.
func applyGameFlags(gameID string) {
	switch gameID {
	case tetris.ID:
		tetris.SetConfigPath(flagConfig)
	case snake.ID:
		snake.SetConfigPath(flagConfig)
		snake.SetDifficultyPreset(flagDifficulty)
	case memory.ID:
		memory.SetConfigPath(flagConfig)
	case wordsearch.ID:
		wordsearch.SetConfigPath(flagConfig)
	case rps.ID:
		rps.SetConfigPath(flagConfig)
	case tictactoe.IDCPU, tictactoe.IDLocal, tictactoe.IDOnline:
		tictactoe.SetConfigPath(flagConfig)
		tictactoe.SetDifficultyPreset(flagDifficulty)
	}
}
