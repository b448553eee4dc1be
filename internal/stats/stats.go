// Package stats keeps the aggregate player statistics and the per-game
// records. It is the single writer of the "gameStats" key: every finished
// game goes through RecordGameResult, which serialises the read-modify-write
// and fans the result out to the score history and the leaderboard sync.
package stats

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/playzone/internal/storage"
)

// Key under which the aggregate Totals are stored.
const Key = "gameStats"

// Result is one finished game. Detail is kept with the score history when
// the game reports moves and time.
type Result struct {
	GameID string
	Score  int
	Streak int
	Detail *storage.ScoreDetail
}

// Totals are the aggregate statistics across all games.
type Totals struct {
	GamesPlayed int `json:"gamesPlayed"`
	TotalScore  int `json:"totalScore"`
	BestStreak  int `json:"bestStreak"`
}

// ScoreSaver appends a row to the score history. detail may be nil.
type ScoreSaver interface {
	SaveScoreDetail(gameID string, score int, detail *storage.ScoreDetail) (int64, error)
}

// highScoreKeys maps game ids to the historic key names.
var highScoreKeys = map[string]string{
	"tetris":     "tetrisHighScore",
	"snake":      "snakeHighScore",
	"wordsearch": "wordPuzzleHighScore",
	"rps":        "rpsBestStreak",
}

// streakRecords lists games whose high score record is the best streak.
var streakRecords = map[string]bool{
	"rps": true,
}

// HighScoreKey returns the storage key of a game's high score.
func HighScoreKey(gameID string) string {
	if k, ok := highScoreKeys[gameID]; ok {
		return k
	}
	return gameID + "HighScore"
}

// Service records game results. Storage failures are logged and never
// returned: a lost stat must not interrupt play.
type Service struct {
	mu       sync.Mutex
	kv       storage.KV
	scores   ScoreSaver
	logger   *log.Logger
	onRecord func(context.Context)
}

// New creates a Service over kv. scores may be nil when no history is kept.
func New(kv storage.KV, scores ScoreSaver, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{kv: kv, scores: scores, logger: logger}
}

// OnRecord registers fn to run after every recorded result, typically the
// leaderboard sync. fn must not block.
func (s *Service) OnRecord(fn func(context.Context)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onRecord = fn
}

// RecordGameResult folds r into the totals, raises the game's high score
// when beaten, appends positive scores to the history and triggers the
// record hook. It returns the updated totals. A record that cannot be read
// is left as it is.
func (s *Service) RecordGameResult(ctx context.Context, r Result) Totals {
	s.mu.Lock()
	t, err := s.loadTotals()
	t.GamesPlayed++
	t.TotalScore += max(r.Score, 0)
	t.BestStreak = max(t.BestStreak, r.Streak)
	if err == nil {
		s.saveTotals(t)
	} else {
		s.logger.Warn("stored stats kept, result not added", "game", r.GameID)
	}

	value := r.Score
	if streakRecords[r.GameID] {
		value = r.Streak
	}
	key := HighScoreKey(r.GameID)
	if cur, _, err := s.getInt(key); err == nil && value > cur {
		s.setInt(key, value)
	}

	if r.Score > 0 && s.scores != nil {
		if _, err := s.scores.SaveScoreDetail(r.GameID, r.Score, r.Detail); err != nil {
			s.logger.Warn("could not save score", "game", r.GameID, "error", err)
		}
	}
	hook := s.onRecord
	s.mu.Unlock()

	s.logger.Debug("game recorded", "game", r.GameID, "score", r.Score, "streak", r.Streak,
		"played", t.GamesPlayed)
	if hook != nil {
		hook(ctx)
	}
	return t
}

// Stats returns the aggregate totals.
func (s *Service) Stats(_ context.Context) Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, _ := s.loadTotals()
	return t
}

// HighScore returns the stored high score (best streak for rps) of a game.
func (s *Service) HighScore(_ context.Context, gameID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, _, _ := s.getInt(HighScoreKey(gameID))
	return v
}

// Best returns a lower-is-better record.
func (s *Service) Best(_ context.Context, key string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok, _ := s.getInt(key)
	return v, ok
}

// Bests returns the stored records among keys.
func (s *Service) Bests(ctx context.Context, keys []string) map[string]int {
	out := make(map[string]int, len(keys))
	for _, k := range keys {
		if v, ok := s.Best(ctx, k); ok {
			out[k] = v
		}
	}
	return out
}

// RecordBest stores value under key when there is no record yet or value is
// lower. It reports whether the record changed.
func (s *Service) RecordBest(_ context.Context, key string, value int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok, err := s.getInt(key)
	if err != nil || (ok && cur <= value) {
		return false
	}
	s.setInt(key, value)
	return true
}

// loadTotals returns zero totals for a missing key. A read error is
// returned so callers do not overwrite what they could not read.
func (s *Service) loadTotals() (Totals, error) {
	var t Totals
	raw, ok, err := s.kv.Get(Key)
	if err != nil {
		s.logger.Warn("could not load stats", "error", err)
		return t, err
	}
	if !ok {
		return t, nil
	}
	if err := json.Unmarshal([]byte(raw), &t); err != nil {
		s.logger.Warn("discarding malformed stats", "error", err)
		return Totals{}, nil
	}
	return t, nil
}

func (s *Service) saveTotals(t Totals) {
	raw, err := json.Marshal(t)
	if err != nil {
		s.logger.Warn("could not encode stats", "error", err)
		return
	}
	if err := s.kv.Set(Key, string(raw)); err != nil {
		s.logger.Warn("could not save stats", "error", err)
	}
}

// getInt reports ok=false for a missing or malformed record and returns
// read errors separately.
func (s *Service) getInt(key string) (int, bool, error) {
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		s.logger.Warn("could not read record", "key", key, "error", err)
		return 0, false, err
	}
	if !ok {
		return 0, false, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		s.logger.Warn("discarding malformed record", "key", key, "value", raw)
		return 0, false, nil
	}
	return v, true, nil
}

func (s *Service) setInt(key string, v int) {
	if err := s.kv.Set(key, strconv.Itoa(v)); err != nil {
		s.logger.Warn("could not save record", "key", key, "error", err)
	}
}
