package tictactoe

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWinnerEveryLine(t *testing.T) {
	for _, l := range Lines {
		var b Board
		for _, c := range l {
			b[c] = O
		}
		w, line, ok := b.Winner()
		require.True(t, ok, "line %v", l)
		assert.Equal(t, O, w)
		assert.Equal(t, l, line)
	}
}

func TestNoWinner(t *testing.T) {
	b := Board{X, O, X, X, O, O, O, X, X}
	_, _, ok := b.Winner()
	assert.False(t, ok)
	assert.True(t, b.Full())
	assert.Empty(t, b.Free())
}

func TestFree(t *testing.T) {
	b := Board{X, Empty, O, Empty}
	assert.Equal(t, []int{1, 3, 4, 5, 6, 7, 8}, b.Free())
	assert.False(t, b.Full())
}

func TestMarkOther(t *testing.T) {
	assert.Equal(t, O, X.Other())
	assert.Equal(t, X, O.Other())
	assert.Equal(t, "X", X.String())
}

func TestRandomOpponentPicksFreeCell(t *testing.T) {
	opp := NewRandomOpponent(rand.New(rand.NewSource(1)))
	b := Board{X, O, X, O, Empty, X, O, X, Empty}
	for range 50 {
		cell := opp.ChooseMove(b, O)
		assert.Contains(t, []int{4, 8}, cell)
	}

	full := Board{X, O, X, X, O, O, O, X, X}
	assert.Equal(t, -1, opp.ChooseMove(full, O))
}

func TestHeuristicOpponent(t *testing.T) {
	opp := HeuristicOpponent{Fallback: NewRandomOpponent(rand.New(rand.NewSource(2)))}

	tests := []struct {
		name  string
		board Board
		want  int
	}{
		{"takes the win", Board{O, O, Empty, X, X, Empty, Empty, Empty, Empty}, 2},
		{"blocks", Board{X, X, Empty, Empty, O, Empty, Empty, Empty, Empty}, 2},
		{"prefers win over block", Board{X, X, Empty, O, O, Empty, X, Empty, Empty}, 5},
		{"centre", Board{X, Empty, Empty, Empty, Empty, Empty, Empty, Empty, Empty}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, opp.ChooseMove(tt.board, O))
		})
	}
}
