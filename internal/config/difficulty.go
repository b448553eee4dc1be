package config

import "fmt"

// ParsePreset converts a CLI value into a preset. An empty string means
// "use the config file as is" and returns "".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// ApplySnakePreset modifies the snake speed curve for a difficulty preset.
// Fixed keeps the starting interval for the whole game.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.StartMs = 200
		cfg.Speed.MinMs = 120
	case DifficultyNormal:
		cfg.Speed.StartMs = 150
		cfg.Speed.MinMs = 80
	case DifficultyHard:
		cfg.Speed.StartMs = 100
		cfg.Speed.MinMs = 50
	case DifficultyFixed:
		cfg.Speed.StepMs = 0
	}
}

// ApplyTicTacToePreset tunes how long the CPU opponent "thinks".
func ApplyTicTacToePreset(cfg *TicTacToeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.CPUDelay = DelayRange{MinMs: 600, MaxMs: 900}
	case DifficultyHard:
		cfg.CPUDelay = DelayRange{MinMs: 100, MaxMs: 100}
	}
}
