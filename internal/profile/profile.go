// Package profile stores the local player's profile and anonymous user id.
package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/vovakirdan/playzone/internal/storage"
)

// Storage keys.
const (
	Key       = "userProfile"
	UserIDKey = "userId"
)

// MaxUsernameLen bounds the username in runes.
const MaxUsernameLen = 24

// Avatars are the selectable avatar symbols.
var Avatars = []string{"🎮", "🎯", "🎲", "🎪", "🎨", "🎭", "🎸", "🎺", "🚀", "⭐", "🔥", "💎"}

// Games are the selectable favourite games, by display title.
var Games = []string{
	"Tic Tac Toe",
	"Rock Paper Scissors",
	"Picture Matching",
	"Snake",
	"Tetris",
	"Word Puzzle",
}

// Validation errors.
var (
	ErrEmptyUsername   = errors.New("profile: username is required")
	ErrLongUsername    = fmt.Errorf("profile: username is longer than %d characters", MaxUsernameLen)
	ErrBadEmail        = errors.New("profile: email must contain @")
	ErrUnknownAvatar   = errors.New("profile: unknown avatar")
	ErrUnknownFavorite = errors.New("profile: unknown favourite game")
)

// Profile is the player's public identity.
type Profile struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	FavoriteGame string `json:"favoriteGame"`
	JoinDate     string `json:"joinDate"`
	Avatar       string `json:"avatar"`
}

// Default returns the profile shown before the player edits anything.
func Default(now time.Time) Profile {
	return Profile{
		Username:     "GamePlayer",
		Email:        "player@playzone.com",
		FavoriteGame: "Tic Tac Toe",
		JoinDate:     now.Format(time.DateOnly),
		Avatar:       "🎮",
	}
}

// Validate checks the editable fields.
func (p Profile) Validate() error {
	name := strings.TrimSpace(p.Username)
	switch {
	case name == "":
		return ErrEmptyUsername
	case utf8.RuneCountInString(name) > MaxUsernameLen:
		return ErrLongUsername
	case p.Email != "" && !strings.Contains(p.Email, "@"):
		return ErrBadEmail
	case !slices.Contains(Avatars, p.Avatar):
		return ErrUnknownAvatar
	case !slices.Contains(Games, p.FavoriteGame):
		return ErrUnknownFavorite
	}
	return nil
}

// Store persists the profile in a key-value store.
type Store struct {
	kv  storage.KV
	now func() time.Time
}

// NewStore creates a profile store over kv.
func NewStore(kv storage.KV) *Store {
	return &Store{kv: kv, now: time.Now}
}

// Stored returns the saved profile, ok=false when none was ever saved.
func (s *Store) Stored() (Profile, bool, error) {
	raw, ok, err := s.kv.Get(Key)
	if err != nil || !ok {
		return Profile{}, false, err
	}
	var p Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return Profile{}, false, fmt.Errorf("profile: cannot decode: %w", err)
	}
	return p, true, nil
}

// Load returns the saved profile or the default one. A malformed saved
// profile yields the default together with the decode error.
func (s *Store) Load() (Profile, error) {
	p, ok, err := s.Stored()
	if err != nil || !ok {
		return Default(s.now()), err
	}
	return p, nil
}

// Save validates and stores p. The username is trimmed and an empty join
// date is set to today.
func (s *Store) Save(p Profile) error {
	p.Username = strings.TrimSpace(p.Username)
	if err := p.Validate(); err != nil {
		return err
	}
	if p.JoinDate == "" {
		p.JoinDate = s.now().Format(time.DateOnly)
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("profile: cannot encode: %w", err)
	}
	return s.kv.Set(Key, string(raw))
}

// EnsureUserID returns the anonymous user id, generating a random UUID the
// first time.
func (s *Store) EnsureUserID() (string, error) {
	id, ok, err := s.kv.Get(UserIDKey)
	if err != nil {
		return "", err
	}
	if ok && id != "" {
		return id, nil
	}
	id = uuid.NewString()
	if err := s.kv.Set(UserIDKey, id); err != nil {
		return "", err
	}
	return id, nil
}
