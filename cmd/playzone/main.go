// playzone is a terminal game suite: Tetris, Snake, Picture Matching, Word
// Puzzle, Rock Paper Scissors and Tic Tac Toe, with local stats, a player
// profile and an optional online leaderboard.
//
// Usage:
//
//	playzone list                 - List available games
//	playzone play <game>          - Play a game
//	playzone menu                 - Pick games interactively
//	playzone scores <game>        - Show high scores for a game
//	playzone stats                - Show aggregate statistics
//	playzone profile [set]        - Show or edit the player profile
//	playzone leaderboard          - Show the leaderboard
//	playzone sync                 - Push the player record to the leaderboard
//	playzone serve                - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.playzone/playzone.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/playzone/internal/games/memory"
	_ "github.com/vovakirdan/playzone/internal/games/rps"
	_ "github.com/vovakirdan/playzone/internal/games/snake"
	_ "github.com/vovakirdan/playzone/internal/games/tetris"
	_ "github.com/vovakirdan/playzone/internal/games/tictactoe"
	_ "github.com/vovakirdan/playzone/internal/games/wordsearch"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "playzone",
	Short: "PlayZone - classic games in your terminal",
	Long: `PlayZone is a collection of classic games for the terminal.

Available commands:
  list         - Show all available games
  play         - Play a specific game directly
  menu         - Interactive game picker menu
  scores       - View high scores
  stats        - View aggregate statistics
  profile      - Show or edit your player profile
  leaderboard  - View the leaderboard
  sync         - Publish your record to the online leaderboard
  serve        - Start SSH server for remote play

Examples:
  playzone list
  playzone play tetris
  playzone menu
  playzone profile set --username Ada --avatar 🚀
  playzone serve --ssh :2222`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.playzone/playzone.db", "Path to the PlayZone database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(serveCmd)
}
