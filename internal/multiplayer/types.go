// Package multiplayer describes who is playing a match: the match mode, the
// player slots and the identifiers used to label sessions and rooms.
// There is no network transport; the "online" mode is simulated in-process.
package multiplayer

import (
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"github.com/vovakirdan/playzone/internal/core"
)

// PlayerID is an alias to core.PlayerID for convenience.
type PlayerID = core.PlayerID

// Re-export player constants for convenience.
const (
	Player1 = core.Player1
	Player2 = core.Player2
)

// SessionID uniquely identifies a player's session (e.g., SSH connection).
type SessionID string

// MatchID uniquely identifies a game match.
type MatchID string

// MatchMode defines who controls the second player slot.
type MatchMode int

const (
	// MatchModeSolo is a single-player game with no opponent.
	MatchModeSolo MatchMode = iota

	// MatchModeVsCPU pits the local player against a computer strategy.
	MatchModeVsCPU

	// MatchModeLocal is hot-seat play: both slots take turns on one keyboard.
	MatchModeLocal

	// MatchModeSimulatedOnline mimics a remote opponent: a room code, a delayed
	// join and delayed moves, all produced locally.
	MatchModeSimulatedOnline
)

// String returns a human-readable name for the match mode.
func (m MatchMode) String() string {
	switch m {
	case MatchModeSolo:
		return "Solo"
	case MatchModeVsCPU:
		return "vs CPU"
	case MatchModeLocal:
		return "Local 2P"
	case MatchModeSimulatedOnline:
		return "Online"
	default:
		return "Unknown"
	}
}

// HasOpponent reports whether the second slot is played by anyone.
func (m MatchMode) HasOpponent() bool {
	return m != MatchModeSolo
}

// Match is the metadata of one match.
type Match struct {
	ID       MatchID
	Mode     MatchMode
	RoomCode string // set for simulated online matches
	Sessions []SessionID
}

// NewMatch creates a new match with a random ID.
func NewMatch(mode MatchMode, sessions ...SessionID) *Match {
	return &Match{
		ID:       MatchID(uuid.NewString()),
		Mode:     mode,
		Sessions: sessions,
	}
}

const roomAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// RoomCodeLength is the number of characters in a room code.
const RoomCodeLength = 6

// NewRoomCode draws a six character upper-case room code from rng.
func NewRoomCode(rng *rand.Rand) string {
	var sb strings.Builder
	sb.Grow(RoomCodeLength)
	for i := 0; i < RoomCodeLength; i++ {
		sb.WriteByte(roomAlphabet[rng.Intn(len(roomAlphabet))])
	}
	return sb.String()
}
