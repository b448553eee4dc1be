package tictactoe

import "math/rand"

// Opponent picks moves for a non-human seat. ChooseMove returns the cell to
// play for symbol, or -1 when the board has no free cell.
type Opponent interface {
	ChooseMove(b Board, symbol Mark) int
}

// RandomOpponent plays a uniformly random free cell.
type RandomOpponent struct {
	rng *rand.Rand
}

// NewRandomOpponent creates a RandomOpponent drawing from rng.
func NewRandomOpponent(rng *rand.Rand) *RandomOpponent {
	return &RandomOpponent{rng: rng}
}

// ChooseMove implements Opponent.
func (o *RandomOpponent) ChooseMove(b Board, _ Mark) int {
	free := b.Free()
	if len(free) == 0 {
		return -1
	}
	return free[o.rng.Intn(len(free))]
}

// HeuristicOpponent completes its own line when it can, blocks the other
// side's line next, takes the centre, and otherwise defers to Fallback.
type HeuristicOpponent struct {
	Fallback Opponent
}

// ChooseMove implements Opponent.
func (o HeuristicOpponent) ChooseMove(b Board, symbol Mark) int {
	for _, m := range [2]Mark{symbol, symbol.Other()} {
		if cell := winningCell(b, m); cell >= 0 {
			return cell
		}
	}
	if b[4] == Empty {
		return 4
	}
	return o.Fallback.ChooseMove(b, symbol)
}

// winningCell returns a free cell that completes a line for m, or -1.
func winningCell(b Board, m Mark) int {
	for _, cell := range b.Free() {
		b[cell] = m
		w, _, ok := b.Winner()
		b[cell] = Empty
		if ok && w == m {
			return cell
		}
	}
	return -1
}
