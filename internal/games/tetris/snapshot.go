package tetris

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick           uint64
	Status         Status
	Score          int
	Level          int
	Lines          int
	DropIntervalMs int
	Active         Piece
	HasActive      bool
	Next           Kind
	Filled         int // number of locked cells
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	e := g.engine
	active, ok := e.Active()
	next, _ := e.Next()
	return Snapshot{
		Tick:           g.tick,
		Status:         e.Status(),
		Score:          e.Score(),
		Level:          e.Level(),
		Lines:          e.Lines(),
		DropIntervalMs: e.DropIntervalMs(),
		Active:         active,
		HasActive:      ok,
		Next:           next,
		Filled:         e.Board().FilledCount(),
	}
}
