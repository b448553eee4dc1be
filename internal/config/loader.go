package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// userConfigDir is where per-user overrides live, relative to $HOME.
const userConfigDir = ".playzone/configs"

// load resolves a game config.
// Search order: customPath -> ~/.playzone/configs/<file> -> ./configs/<file> -> embedded default.
// Files are decoded over the hard-coded defaults so partial overrides keep
// the remaining values. Only an unreadable or malformed customPath is an error.
func load[T any](file, customPath string, embedded []byte, defaults func() T) (T, error) {
	cfg := defaults()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return defaults(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{filepath.Join("configs", file)}
	if userPath := userConfigPath(file); userPath != "" {
		candidates = append([]string{userPath}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := defaults()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, userConfigDir, filename)
}

// LoadTetris loads the Tetris engine configuration.
func LoadTetris(customPath string) (TetrisConfig, error) {
	return load("tetris.yaml", customPath, defaultTetrisYAML, DefaultTetrisConfig)
}

// LoadSnake loads Snake configuration.
func LoadSnake(customPath string) (SnakeConfig, error) {
	return load("snake.yaml", customPath, defaultSnakeYAML, DefaultSnakeConfig)
}

// LoadMemory loads picture matching configuration.
func LoadMemory(customPath string) (MemoryConfig, error) {
	return load("memory.yaml", customPath, defaultMemoryYAML, DefaultMemoryConfig)
}

// LoadWordSearch loads word puzzle configuration.
func LoadWordSearch(customPath string) (WordSearchConfig, error) {
	return load("wordsearch.yaml", customPath, defaultWordSearchYAML, DefaultWordSearchConfig)
}

// LoadRPS loads rock-paper-scissors configuration.
func LoadRPS(customPath string) (RPSConfig, error) {
	return load("rps.yaml", customPath, defaultRPSYAML, DefaultRPSConfig)
}

// LoadTicTacToe loads tic-tac-toe configuration.
func LoadTicTacToe(customPath string) (TicTacToeConfig, error) {
	return load("tictactoe.yaml", customPath, defaultTicTacToeYAML, DefaultTicTacToeConfig)
}
