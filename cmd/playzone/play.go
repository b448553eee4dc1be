package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/playzone/internal/platform/tui"
	"github.com/vovakirdan/playzone/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD  - Move (j/k/l also work)
  Space/Up     - Rotate (Tetris)
  Enter        - Select, flip, place
  G            - Start
  P            - Pause
  R            - Restart / new round
  H            - Toggle hints (Word Puzzle)
  1/2/3        - Rock/Paper/Scissors, Tic Tac Toe column
  B/Esc        - Leave the game
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulty options (Snake speed, Tic Tac Toe opponent delay):
  easy, normal, hard, fixed

Examples:
  playzone play tetris
  playzone play snake --difficulty hard
  playzone play tictactoe_online
  playzone play memory --config ./my-memory.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'playzone list' to see available games)", gameID)
	}

	applyGameFlags(gameID)
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	a := openApp(context.Background(), true)
	defer a.Close()

	if err := tui.Run(game, a.services(), runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
