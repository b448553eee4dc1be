package storage

import (
	"fmt"
	"time"
)

// LeaderboardEntry is one player's aggregate row in the local leaderboard mirror.
type LeaderboardEntry struct {
	ID           string
	Username     string
	Avatar       string
	FavoriteGame string
	TotalScore   int
	GamesPlayed  int
	BestStreak   int
	UpdatedAt    time.Time
}

// Sort keys accepted by Leaderboard.
const (
	SortTotalScore  = "totalScore"
	SortGamesPlayed = "gamesPlayed"
	SortBestStreak  = "bestStreak"
)

var sortColumns = map[string]string{
	SortTotalScore:  "total_score",
	SortGamesPlayed: "games_played",
	SortBestStreak:  "best_streak",
}

// ValidSortKey reports whether key can be passed to Leaderboard.
func ValidSortKey(key string) bool {
	_, ok := sortColumns[key]
	return ok
}

// UpsertLeaderboard inserts or replaces the row identified by e.ID.
func (s *Store) UpsertLeaderboard(e LeaderboardEntry) error {
	if e.ID == "" {
		return fmt.Errorf("storage: leaderboard entry has no id")
	}
	_, err := s.db.Exec(
		`INSERT INTO leaderboard (id, username, avatar, favorite_game, total_score, games_played, best_streak, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(id) DO UPDATE SET
		   username = excluded.username,
		   avatar = excluded.avatar,
		   favorite_game = excluded.favorite_game,
		   total_score = excluded.total_score,
		   games_played = excluded.games_played,
		   best_streak = excluded.best_streak,
		   updated_at = excluded.updated_at`,
		e.ID, e.Username, e.Avatar, e.FavoriteGame, e.TotalScore, e.GamesPlayed, e.BestStreak,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot upsert leaderboard entry: %w", err)
	}
	return nil
}

// Leaderboard returns up to limit rows ordered by sortBy descending.
// sortBy must be one of the Sort* constants.
func (s *Store) Leaderboard(sortBy string, limit int) ([]LeaderboardEntry, error) {
	col, ok := sortColumns[sortBy]
	if !ok {
		return nil, fmt.Errorf("storage: invalid leaderboard sort %q", sortBy)
	}
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, username, avatar, favorite_game, total_score, games_played, best_streak, updated_at
		 FROM leaderboard
		 ORDER BY `+col+` DESC, username ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []LeaderboardEntry
	for rows.Next() {
		var e LeaderboardEntry
		var updated any
		if err := rows.Scan(&e.ID, &e.Username, &e.Avatar, &e.FavoriteGame,
			&e.TotalScore, &e.GamesPlayed, &e.BestStreak, &updated); err != nil {
			return nil, fmt.Errorf("storage: cannot scan leaderboard row: %w", err)
		}
		e.UpdatedAt = parseTime(updated)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}
