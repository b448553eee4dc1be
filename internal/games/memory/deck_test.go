package memory

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSymbols = []string{"A", "B", "C", "D"}

// pairOf returns the index of the other card with the same symbol as i.
func pairOf(d *Deck, i int) int {
	for j := range d.Len() {
		if j != i && d.Card(j).Symbol == d.Card(i).Symbol {
			return j
		}
	}
	return -1
}

// mismatchOf returns a card index whose symbol differs from card i.
func mismatchOf(d *Deck, i int) int {
	for j := range d.Len() {
		if d.Card(j).Symbol != d.Card(i).Symbol {
			return j
		}
	}
	return -1
}

func TestNewDeckHasTwoOfEach(t *testing.T) {
	d := NewDeck(testSymbols, rand.New(rand.NewSource(1)))
	require.Equal(t, 8, d.Len())

	counts := map[string]int{}
	for i := range d.Len() {
		c := d.Card(i)
		counts[c.Symbol]++
		assert.False(t, c.Flipped)
		assert.False(t, c.Matched)
	}
	for _, s := range testSymbols {
		assert.Equal(t, 2, counts[s], "symbol %s", s)
	}
	assert.Equal(t, 4, d.TotalPairs())
}

func TestShuffleIsSeeded(t *testing.T) {
	a := NewDeck(testSymbols, rand.New(rand.NewSource(7)))
	b := NewDeck(testSymbols, rand.New(rand.NewSource(7)))
	for i := range a.Len() {
		assert.Equal(t, a.Card(i), b.Card(i))
	}
}

func TestMatchResolves(t *testing.T) {
	d := NewDeck(testSymbols, rand.New(rand.NewSource(2)))
	j := pairOf(d, 0)

	require.True(t, d.Flip(0))
	assert.Equal(t, 0, d.Moves(), "one card is not a move")
	require.True(t, d.Flip(j))
	assert.Equal(t, 1, d.Moves())

	match, ok := d.PendingMatch()
	require.True(t, ok)
	assert.True(t, match)

	d.Resolve()
	assert.True(t, d.Card(0).Matched)
	assert.True(t, d.Card(j).Matched)
	assert.Equal(t, 1, d.Pairs())
	assert.Equal(t, 0, d.Pending())
}

func TestMismatchFlipsBack(t *testing.T) {
	d := NewDeck(testSymbols, rand.New(rand.NewSource(3)))
	j := mismatchOf(d, 0)

	d.Flip(0)
	d.Flip(j)
	match, ok := d.PendingMatch()
	require.True(t, ok)
	assert.False(t, match)

	d.Resolve()
	assert.False(t, d.Card(0).Flipped)
	assert.False(t, d.Card(j).Flipped)
	assert.Equal(t, 0, d.Pairs())
	assert.Equal(t, 1, d.Moves())
}

func TestFlipIgnored(t *testing.T) {
	d := NewDeck(testSymbols, rand.New(rand.NewSource(4)))

	require.True(t, d.Flip(0))
	assert.False(t, d.Flip(0), "already flipped")
	assert.False(t, d.Flip(-1))
	assert.False(t, d.Flip(d.Len()))

	j := mismatchOf(d, 0)
	require.True(t, d.Flip(j))
	k := pairOf(d, 0)
	assert.False(t, d.Flip(k), "two cards already pending")

	d.Resolve()
	// Matched cards cannot be flipped again.
	d.Flip(0)
	d.Flip(k)
	d.Resolve()
	assert.False(t, d.Flip(0))
}

func TestComplete(t *testing.T) {
	d := NewDeck(testSymbols, rand.New(rand.NewSource(5)))
	for i := range d.Len() {
		if d.Card(i).Matched {
			continue
		}
		d.Flip(i)
		d.Flip(pairOf(d, i))
		d.Resolve()
	}
	assert.True(t, d.Complete())
	assert.Equal(t, 4, d.Moves())
}
