package tictactoe

import (
	"math/rand"

	"github.com/vovakirdan/playzone/internal/config"
	"github.com/vovakirdan/playzone/internal/core"
)

// seat supplies the moves of one mark.
type seat interface {
	// begin is called when the seat's turn starts.
	begin(b Board, m Mark)
	// next returns the cell to play this tick, or -1 when undecided.
	next(in core.InputFrame, dtMs int) int
}

// humanSeat plays the cursor cell when the player confirms.
type humanSeat struct {
	cursor *int
}

func (h *humanSeat) begin(Board, Mark) {}

func (h *humanSeat) next(in core.InputFrame, _ int) int {
	if in.Has(core.ActionConfirm) {
		return *h.cursor
	}
	return -1
}

// scriptedSeat asks an Opponent for a move after a random delay.
type scriptedSeat struct {
	opp   Opponent
	delay config.DelayRange
	rng   *rand.Rand

	board  Board
	mark   Mark
	waitMs int
}

func (s *scriptedSeat) begin(b Board, m Mark) {
	s.board = b
	s.mark = m
	s.waitMs = drawDelay(s.rng, s.delay)
}

func (s *scriptedSeat) next(_ core.InputFrame, dtMs int) int {
	s.waitMs -= dtMs
	if s.waitMs > 0 {
		return -1
	}
	return s.opp.ChooseMove(s.board, s.mark)
}

// drawDelay picks a delay uniformly from the inclusive range.
func drawDelay(rng *rand.Rand, r config.DelayRange) int {
	if r.MaxMs <= r.MinMs {
		return r.MinMs
	}
	return r.MinMs + rng.Intn(r.MaxMs-r.MinMs+1)
}
