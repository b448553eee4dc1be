package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/playzone/internal/core"
	"github.com/vovakirdan/playzone/internal/games/memory"
	"github.com/vovakirdan/playzone/internal/registry"
	"github.com/vovakirdan/playzone/internal/stats"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top 10 scores for the specified game.

Examples:
  playzone scores tetris
  playzone scores memory`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	info, ok := registry.Lookup(gameID)
	if !ok {
		return fmt.Errorf("unknown game %q (run 'playzone list' to see available games)", gameID)
	}

	a := openApp(context.Background(), false)
	defer a.Close()
	if a.store == nil {
		return errors.New("scores database is not available")
	}

	scores, err := a.store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "High Scores - %s\n\n", info.Title)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'playzone play %s' to set the first high score!\n", gameID)
	} else {
		fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			line := fmt.Sprintf("  %-4d  %-10d  %s", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
			if d := entry.Detail; d != nil {
				line += fmt.Sprintf("  %d moves, %s", d.Moves, core.FormatClock(d.Seconds))
			}
			fmt.Fprintln(out, line)
		}
		fmt.Fprintln(out)
	}

	ctx := context.Background()
	label := "Best"
	if gameID == "rps" {
		label = "Best streak"
	}
	fmt.Fprintf(out, "%s: %d  (%s)\n", label, a.stats.HighScore(ctx, gameID), stats.HighScoreKey(gameID))

	if gameID == memory.ID {
		if t, ok := a.stats.Best(ctx, memory.BestTimeKey); ok {
			fmt.Fprintf(out, "Best time: %s\n", core.FormatClock(t))
		}
		if m, ok := a.stats.Best(ctx, memory.BestMovesKey); ok {
			fmt.Fprintf(out, "Best moves: %d\n", m)
		}
	}
	return nil
}
