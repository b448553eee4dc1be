package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/playzone/internal/profile"
	"github.com/vovakirdan/playzone/internal/stats"
	"github.com/vovakirdan/playzone/internal/storage"
)

// ErrNoProfile is returned by Sync when the player has not saved a username.
var ErrNoProfile = errors.New("leaderboard: no username set")

// asyncTimeout bounds one background sync.
const asyncTimeout = 15 * time.Second

// Source tells where a ranking came from.
type Source string

const (
	SourceRemote Source = "remote"
	SourceLocal  Source = "local"
)

// StatsSource provides the aggregate totals.
type StatsSource interface {
	Stats(ctx context.Context) stats.Totals
}

// Mirror is the local copy of the leaderboard.
type Mirror interface {
	UpsertLeaderboard(e storage.LeaderboardEntry) error
	Leaderboard(sortBy string, limit int) ([]storage.LeaderboardEntry, error)
}

// Syncer publishes the player's record. mirror and remote are optional.
type Syncer struct {
	profiles *profile.Store
	stats    StatsSource
	mirror   Mirror
	remote   Remote
	logger   *log.Logger

	mu sync.Mutex // orders concurrent syncs
	wg sync.WaitGroup
}

// NewSyncer creates a Syncer. Pass a nil remote when sync is not configured.
func NewSyncer(profiles *profile.Store, st StatsSource, mirror Mirror, remote Remote, logger *log.Logger) *Syncer {
	if logger == nil {
		logger = log.Default()
	}
	return &Syncer{
		profiles: profiles,
		stats:    st,
		mirror:   mirror,
		remote:   remote,
		logger:   logger,
	}
}

// RemoteEnabled reports whether a hosted table is configured.
func (s *Syncer) RemoteEnabled() bool { return s.remote != nil }

// Record builds the player's current record from the saved profile and the
// totals. It fails with ErrNoProfile when no username was saved.
func (s *Syncer) Record(ctx context.Context) (Record, error) {
	p, ok, err := s.profiles.Stored()
	if err != nil {
		return Record{}, err
	}
	if !ok || p.Username == "" {
		return Record{}, ErrNoProfile
	}
	id, err := s.profiles.EnsureUserID()
	if err != nil {
		return Record{}, fmt.Errorf("leaderboard: user id: %w", err)
	}

	fav := p.FavoriteGame
	if fav == "" {
		fav = DefaultFavoriteGame
	}
	t := s.stats.Stats(ctx)
	return Record{
		ID:           id,
		Username:     p.Username,
		Avatar:       p.Avatar,
		FavoriteGame: fav,
		TotalScore:   t.TotalScore,
		GamesPlayed:  t.GamesPlayed,
		BestStreak:   t.BestStreak,
	}, nil
}

// Sync writes the record to the mirror and, when configured, the remote
// table. Both are attempted; their errors are joined.
func (s *Syncer) Sync(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.Record(ctx)
	if err != nil {
		return err
	}

	var errs []error
	if s.mirror != nil {
		if err := s.mirror.UpsertLeaderboard(r.Entry()); err != nil {
			errs = append(errs, err)
		}
	}
	if s.remote != nil {
		if err := s.remote.Upsert(ctx, r); err != nil {
			errs = append(errs, err)
		} else {
			s.logger.Debug("leaderboard synced", "id", r.ID, "totalScore", r.TotalScore)
		}
	}
	return errors.Join(errs...)
}

// SyncAsync runs Sync in the background, detached from ctx cancellation
// but bounded by its own timeout. Failures are logged.
func (s *Syncer) SyncAsync(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), asyncTimeout)
		defer cancel()

		switch err := s.Sync(ctx); {
		case errors.Is(err, ErrNoProfile):
			s.logger.Debug("leaderboard sync skipped", "reason", err)
		case err != nil:
			s.logger.Warn("leaderboard sync failed", "err", err)
		}
	}()
}

// Wait blocks until background syncs finish.
func (s *Syncer) Wait() { s.wg.Wait() }

// Top returns the ranking from the remote table, falling back to the local
// mirror when the remote is missing or fails.
func (s *Syncer) Top(ctx context.Context, sortBy string, limit int) ([]Record, Source, error) {
	if !storage.ValidSortKey(sortBy) {
		return nil, "", fmt.Errorf("leaderboard: invalid sort %q", sortBy)
	}
	if s.remote != nil {
		recs, err := s.remote.Top(ctx, sortBy, limit)
		if err == nil {
			return recs, SourceRemote, nil
		}
		s.logger.Warn("remote leaderboard unavailable, using local mirror", "err", err)
	}
	if s.mirror == nil {
		return nil, SourceLocal, errors.New("leaderboard: no leaderboard available")
	}
	entries, err := s.mirror.Leaderboard(sortBy, limit)
	if err != nil {
		return nil, SourceLocal, err
	}
	recs := make([]Record, len(entries))
	for i, e := range entries {
		recs[i] = FromEntry(e)
	}
	return recs, SourceLocal, nil
}
