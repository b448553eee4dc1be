package leaderboard

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/playzone/internal/profile"
	"github.com/vovakirdan/playzone/internal/stats"
	"github.com/vovakirdan/playzone/internal/storage"
)

type fakeRemote struct {
	mu      sync.Mutex
	upserts []Record
	top     []Record
	err     error
}

func (f *fakeRemote) Upsert(_ context.Context, r Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.upserts = append(f.upserts, r)
	return nil
}

func (f *fakeRemote) Top(context.Context, string, int) ([]Record, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.top, nil
}

type fixedStats stats.Totals

func (f fixedStats) Stats(context.Context) stats.Totals { return stats.Totals(f) }

func openMirror(t *testing.T) *storage.Store {
	t.Helper()
	st, err := storage.Open(filepath.Join(t.TempDir(), "playzone.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func savedProfiles(t *testing.T, p profile.Profile) *profile.Store {
	t.Helper()
	ps := profile.NewStore(storage.NewMemoryKV())
	require.NoError(t, ps.Save(p))
	return ps
}

func quietLogger() *log.Logger { return log.New(io.Discard) }

var ada = profile.Profile{Username: "Ada", Avatar: "🚀", FavoriteGame: "Snake"}

func TestRecordNeedsUsername(t *testing.T) {
	s := NewSyncer(profile.NewStore(storage.NewMemoryKV()), fixedStats{}, nil, &fakeRemote{}, quietLogger())
	_, err := s.Record(context.Background())
	assert.ErrorIs(t, err, ErrNoProfile)
	assert.ErrorIs(t, s.Sync(context.Background()), ErrNoProfile)
}

func TestSyncMirrorsAndUpserts(t *testing.T) {
	remote := &fakeRemote{}
	mirror := openMirror(t)
	ps := savedProfiles(t, ada)
	s := NewSyncer(ps, fixedStats{GamesPlayed: 4, TotalScore: 130, BestStreak: 2}, mirror, remote, quietLogger())

	require.NoError(t, s.Sync(context.Background()))

	id, err := ps.EnsureUserID()
	require.NoError(t, err)
	want := Record{ID: id, Username: "Ada", Avatar: "🚀", FavoriteGame: "Snake", TotalScore: 130, GamesPlayed: 4, BestStreak: 2}
	assert.Equal(t, []Record{want}, remote.upserts)

	rows, err := mirror.Leaderboard(storage.SortTotalScore, 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, want, FromEntry(rows[0]))
}

func TestSyncDefaultsFavoriteGame(t *testing.T) {
	kv := storage.NewMemoryKV()
	require.NoError(t, kv.Set(profile.Key, `{"username":"Bo","avatar":"🎮"}`))
	remote := &fakeRemote{}
	s := NewSyncer(profile.NewStore(kv), fixedStats{}, nil, remote, quietLogger())

	require.NoError(t, s.Sync(context.Background()))
	require.Len(t, remote.upserts, 1)
	assert.Equal(t, DefaultFavoriteGame, remote.upserts[0].FavoriteGame)
}

func TestSyncKeepsMirrorWhenRemoteFails(t *testing.T) {
	mirror := openMirror(t)
	remote := &fakeRemote{err: errors.New("offline")}
	s := NewSyncer(savedProfiles(t, ada), fixedStats{TotalScore: 10}, mirror, remote, quietLogger())

	err := s.Sync(context.Background())
	assert.ErrorContains(t, err, "offline")

	rows, err := mirror.Leaderboard(storage.SortTotalScore, 10)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestSyncAsyncAfterStatsRecord(t *testing.T) {
	kv := storage.NewMemoryKV()
	ps := profile.NewStore(kv)
	require.NoError(t, ps.Save(ada))
	svc := stats.New(kv, nil, quietLogger())
	remote := &fakeRemote{}
	s := NewSyncer(ps, svc, nil, remote, quietLogger())
	svc.OnRecord(s.SyncAsync)

	svc.RecordGameResult(context.Background(), stats.Result{GameID: "snake", Score: 50})
	svc.RecordGameResult(context.Background(), stats.Result{GameID: "rps", Score: 5, Streak: 1})
	s.Wait()

	require.Len(t, remote.upserts, 2)
	last := remote.upserts[1]
	assert.Equal(t, 55, last.TotalScore)
	assert.Equal(t, 2, last.GamesPlayed)
}

func TestTopPrefersRemote(t *testing.T) {
	remote := &fakeRemote{top: []Record{{ID: "x", Username: "GameMaster", TotalScore: 15420}}}
	s := NewSyncer(savedProfiles(t, ada), fixedStats{}, openMirror(t), remote, quietLogger())

	recs, src, err := s.Top(context.Background(), storage.SortTotalScore, 10)
	require.NoError(t, err)
	assert.Equal(t, SourceRemote, src)
	assert.Equal(t, "GameMaster", recs[0].Username)
}

func TestTopFallsBackToMirror(t *testing.T) {
	mirror := openMirror(t)
	require.NoError(t, mirror.UpsertLeaderboard(storage.LeaderboardEntry{ID: "a", Username: "Low", BestStreak: 1}))
	require.NoError(t, mirror.UpsertLeaderboard(storage.LeaderboardEntry{ID: "b", Username: "High", BestStreak: 9}))

	for name, remote := range map[string]Remote{
		"unconfigured": nil,
		"failing":      &fakeRemote{err: errors.New("503")},
	} {
		t.Run(name, func(t *testing.T) {
			s := NewSyncer(savedProfiles(t, ada), fixedStats{}, mirror, remote, quietLogger())
			recs, src, err := s.Top(context.Background(), storage.SortBestStreak, 10)
			require.NoError(t, err)
			assert.Equal(t, SourceLocal, src)
			require.Len(t, recs, 2)
			assert.Equal(t, "High", recs[0].Username)
		})
	}
}

func TestTopValidatesSort(t *testing.T) {
	s := NewSyncer(savedProfiles(t, ada), fixedStats{}, nil, nil, quietLogger())
	_, _, err := s.Top(context.Background(), "username", 10)
	assert.Error(t, err)

	_, _, err = s.Top(context.Background(), storage.SortTotalScore, 10)
	assert.Error(t, err, "no remote and no mirror")
}
