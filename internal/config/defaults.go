package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/memory.yaml
var defaultMemoryYAML []byte

//go:embed defaults/wordsearch.yaml
var defaultWordSearchYAML []byte

//go:embed defaults/rps.yaml
var defaultRPSYAML []byte

//go:embed defaults/tictactoe.yaml
var defaultTicTacToeYAML []byte

// DefaultTetrisConfig returns the default Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: TetrisBoard{Width: 10, Height: 20},
		Scoring: TetrisScoring{
			LinePoints:    100,
			LockPoints:    10,
			LinesPerLevel: 10,
		},
		Gravity: TetrisGravity{
			BaseIntervalMs: 1000,
			StepMs:         50,
			MinIntervalMs:  100,
		},
	}
}

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: SnakeGrid{
			Width: 20, Height: 20,
			StartX: 10, StartY: 10,
			FoodX: 15, FoodY: 15,
		},
		Speed: SnakeSpeed{
			StartMs: 150,
			StepMs:  2,
			MinMs:   80,
		},
		FoodPoints: 10,
	}
}

// DefaultMemoryConfig returns the default picture matching configuration.
func DefaultMemoryConfig() MemoryConfig {
	return MemoryConfig{
		Symbols:         []string{"🎮", "🎯", "🎲", "🎪", "🎨", "🎭", "🎸", "🎺"},
		Columns:         4,
		MatchDelayMs:    500,
		MismatchDelayMs: 1000,
		BaseScore:       100,
		MinScore:        10,
	}
}

// DefaultWordSearchConfig returns the default word puzzle configuration.
func DefaultWordSearchConfig() WordSearchConfig {
	return WordSearchConfig{
		GridSize:      15,
		WordCount:     8,
		MaxAttempts:   100,
		PointsPerWord: 100,
		Words: []string{
			"REACT", "JAVASCRIPT", "CODING", "PUZZLE",
			"GAME", "WORD", "SEARCH", "FIND",
			"LETTERS", "GRID", "CHALLENGE", "BRAIN",
			"LOGIC", "PATTERN", "SOLVE", "THINK",
		},
	}
}

// DefaultRPSConfig returns the default rock-paper-scissors configuration.
func DefaultRPSConfig() RPSConfig {
	return RPSConfig{
		RevealDelayMs: 1000,
		WinPoints:     5,
	}
}

// DefaultTicTacToeConfig returns the default tic-tac-toe configuration.
func DefaultTicTacToeConfig() TicTacToeConfig {
	return TicTacToeConfig{
		WinPoints: 10,
		CPUDelay:  DelayRange{MinMs: 300, MaxMs: 300},
		JoinDelay: DelayRange{MinMs: 3000, MaxMs: 8000},
		MoveDelay: DelayRange{MinMs: 1000, MaxMs: 3000},
	}
}
