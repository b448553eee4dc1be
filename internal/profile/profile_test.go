package profile

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/playzone/internal/storage"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func newTestStore() (*Store, *storage.MemoryKV) {
	kv := storage.NewMemoryKV()
	s := NewStore(kv)
	s.now = func() time.Time { return fixedNow }
	return s, kv
}

func TestDefault(t *testing.T) {
	p := Default(fixedNow)
	assert.Equal(t, Profile{
		Username:     "GamePlayer",
		Email:        "player@playzone.com",
		FavoriteGame: "Tic Tac Toe",
		JoinDate:     "2026-03-14",
		Avatar:       "🎮",
	}, p)
	assert.NoError(t, p.Validate())
}

func TestValidate(t *testing.T) {
	base := Default(fixedNow)
	tests := []struct {
		name   string
		modify func(*Profile)
		want   error
	}{
		{"ok", func(*Profile) {}, nil},
		{"blank username", func(p *Profile) { p.Username = "   " }, ErrEmptyUsername},
		{"long username", func(p *Profile) { p.Username = strings.Repeat("é", MaxUsernameLen+1) }, ErrLongUsername},
		{"bad email", func(p *Profile) { p.Email = "nobody" }, ErrBadEmail},
		{"empty email", func(p *Profile) { p.Email = "" }, nil},
		{"unknown avatar", func(p *Profile) { p.Avatar = "🐍" }, ErrUnknownAvatar},
		{"unknown game", func(p *Profile) { p.FavoriteGame = "Chess" }, ErrUnknownFavorite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base
			tt.modify(&p)
			assert.ErrorIs(t, p.Validate(), tt.want)
		})
	}
}

func TestLoadDefaultsWhenMissing(t *testing.T) {
	s, _ := newTestStore()
	p, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, Default(fixedNow), p)

	_, ok, err := s.Stored()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSaveAndLoad(t *testing.T) {
	s, kv := newTestStore()
	p := Profile{Username: "  Ada  ", Email: "ada@example.com", FavoriteGame: "Tetris", Avatar: "🚀"}
	require.NoError(t, s.Save(p))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.Username)
	assert.Equal(t, "2026-03-14", got.JoinDate)

	raw, _, _ := kv.Get(Key)
	assert.Contains(t, raw, `"favoriteGame":"Tetris"`)
}

func TestSaveRejectsInvalid(t *testing.T) {
	s, kv := newTestStore()
	p := Default(fixedNow)
	p.Avatar = "nope"
	assert.ErrorIs(t, s.Save(p), ErrUnknownAvatar)

	_, ok, _ := kv.Get(Key)
	assert.False(t, ok)
}

func TestLoadMalformed(t *testing.T) {
	s, kv := newTestStore()
	require.NoError(t, kv.Set(Key, "{"))

	p, err := s.Load()
	assert.Error(t, err)
	assert.Equal(t, Default(fixedNow), p)
}

func TestEnsureUserID(t *testing.T) {
	s, kv := newTestStore()

	id, err := s.EnsureUserID()
	require.NoError(t, err)
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())

	again, err := s.EnsureUserID()
	require.NoError(t, err)
	assert.Equal(t, id, again)

	stored, _, _ := kv.Get(UserIDKey)
	assert.Equal(t, id, stored)
}
