package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/playzone/internal/registry"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate statistics",
	Long: `Display games played, total score and best streak across all games,
followed by a per-game summary of the score history.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, _ []string) error {
	a := openApp(context.Background(), false)
	defer a.Close()

	out := cmd.OutOrStdout()
	t := a.stats.Stats(context.Background())
	fmt.Fprintln(out, "Game Statistics")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Games played  %d\n", t.GamesPlayed)
	fmt.Fprintf(out, "  Total score   %d\n", t.TotalScore)
	fmt.Fprintf(out, "  Best streak   %d\n", t.BestStreak)

	if a.store == nil {
		return nil
	}
	perGame, err := a.store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(perGame) == 0 {
		return nil
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-26s  %6s  %6s  %8s  %s\n", "Game", "Scores", "Best", "Average", "Last played")
	for _, g := range registry.List() {
		s, ok := perGame[g.ID]
		if !ok {
			continue
		}
		fmt.Fprintf(out, "  %-26s  %6d  %6d  %8.1f  %s\n",
			g.Title, s.GamesCount, s.HighScore, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
