// Package config provides YAML-based game configuration loading, difficulty
// presets and environment-driven service settings for PlayZone.
package config

// TetrisConfig contains the tunables for the Tetris engine.
type TetrisConfig struct {
	Board   TetrisBoard   `yaml:"board"`
	Scoring TetrisScoring `yaml:"scoring"`
	Gravity TetrisGravity `yaml:"gravity"`
}

// TetrisBoard defines the playfield size in cells.
type TetrisBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TetrisScoring defines points and level progression.
type TetrisScoring struct {
	LinePoints    int `yaml:"line_points"`     // per cleared line, multiplied by level
	LockPoints    int `yaml:"lock_points"`     // flat bonus per locked piece
	LinesPerLevel int `yaml:"lines_per_level"` // lines needed to advance one level
}

// TetrisGravity defines the automatic drop interval.
type TetrisGravity struct {
	BaseIntervalMs int `yaml:"base_interval_ms"`
	StepMs         int `yaml:"step_ms"` // reduction per level
	MinIntervalMs  int `yaml:"min_interval_ms"`
}

// SnakeConfig contains all configuration for Snake.
type SnakeConfig struct {
	Grid       SnakeGrid  `yaml:"grid"`
	Speed      SnakeSpeed `yaml:"speed"`
	FoodPoints int        `yaml:"food_points"`
}

// SnakeGrid defines the board and the starting layout.
type SnakeGrid struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	StartX int `yaml:"start_x"`
	StartY int `yaml:"start_y"`
	FoodX  int `yaml:"food_x"`
	FoodY  int `yaml:"food_y"`
}

// SnakeSpeed defines the movement interval and how it shrinks per food.
type SnakeSpeed struct {
	StartMs int `yaml:"start_ms"`
	StepMs  int `yaml:"step_ms"`
	MinMs   int `yaml:"min_ms"`
}

// MemoryConfig contains all configuration for the picture matching game.
type MemoryConfig struct {
	Symbols         []string `yaml:"symbols"`
	Columns         int      `yaml:"columns"`
	MatchDelayMs    int      `yaml:"match_delay_ms"`
	MismatchDelayMs int      `yaml:"mismatch_delay_ms"`
	BaseScore       int      `yaml:"base_score"`
	MinScore        int      `yaml:"min_score"`
}

// WordSearchConfig contains all configuration for the word puzzle.
type WordSearchConfig struct {
	GridSize      int      `yaml:"grid_size"`
	WordCount     int      `yaml:"word_count"`
	MaxAttempts   int      `yaml:"max_attempts"`
	PointsPerWord int      `yaml:"points_per_word"`
	Words         []string `yaml:"words"`
}

// RPSConfig contains all configuration for rock-paper-scissors.
type RPSConfig struct {
	RevealDelayMs int `yaml:"reveal_delay_ms"`
	WinPoints     int `yaml:"win_points"`
}

// TicTacToeConfig contains all configuration for tic-tac-toe.
type TicTacToeConfig struct {
	WinPoints int        `yaml:"win_points"`
	CPUDelay  DelayRange `yaml:"cpu_delay"`
	JoinDelay DelayRange `yaml:"join_delay"` // simulated online: opponent joins
	MoveDelay DelayRange `yaml:"move_delay"` // simulated online: opponent thinks
}

// DelayRange is an inclusive range of milliseconds.
type DelayRange struct {
	MinMs int `yaml:"min_ms"`
	MaxMs int `yaml:"max_ms"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)
