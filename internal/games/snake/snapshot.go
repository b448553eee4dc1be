package snake

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Status     Status
	Score      int
	SnakeLen   int
	HeadX      int
	HeadY      int
	Dir        Direction
	FoodX      int
	FoodY      int
	IntervalMs int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	head := g.snake[0]
	return Snapshot{
		Tick:       g.tick,
		Status:     g.status,
		Score:      g.score,
		SnakeLen:   len(g.snake),
		HeadX:      head.X,
		HeadY:      head.Y,
		Dir:        g.direction,
		FoodX:      g.food.X,
		FoodY:      g.food.Y,
		IntervalMs: g.intervalMs,
	}
}
