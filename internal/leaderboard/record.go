// Package leaderboard publishes the player's aggregate record to a hosted
// REST table and reads the ranking back, keeping a local mirror for offline
// use.
package leaderboard

import (
	"context"

	"github.com/vovakirdan/playzone/internal/storage"
)

// DefaultFavoriteGame is published when the profile names none.
const DefaultFavoriteGame = "Picture Matching"

// Record is one player's row, encoded the way the hosted table stores it.
type Record struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Avatar       string `json:"avatar"`
	FavoriteGame string `json:"favoriteGame"`
	TotalScore   int    `json:"totalScore"`
	GamesPlayed  int    `json:"gamesPlayed"`
	BestStreak   int    `json:"bestStreak"`
}

// Remote is the hosted leaderboard table.
type Remote interface {
	Upsert(ctx context.Context, r Record) error
	Top(ctx context.Context, sortBy string, limit int) ([]Record, error)
}

// Entry converts r to a local mirror row.
func (r Record) Entry() storage.LeaderboardEntry {
	return storage.LeaderboardEntry{
		ID:           r.ID,
		Username:     r.Username,
		Avatar:       r.Avatar,
		FavoriteGame: r.FavoriteGame,
		TotalScore:   r.TotalScore,
		GamesPlayed:  r.GamesPlayed,
		BestStreak:   r.BestStreak,
	}
}

// FromEntry converts a local mirror row to a Record.
func FromEntry(e storage.LeaderboardEntry) Record {
	return Record{
		ID:           e.ID,
		Username:     e.Username,
		Avatar:       e.Avatar,
		FavoriteGame: e.FavoriteGame,
		TotalScore:   e.TotalScore,
		GamesPlayed:  e.GamesPlayed,
		BestStreak:   e.BestStreak,
	}
}
