package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/playzone/internal/leaderboard"
	"github.com/vovakirdan/playzone/internal/storage"
)

var (
	flagSort  string
	flagLimit int
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the leaderboard",
	Long: `Show the top players. The online leaderboard is used when
PLAYZONE_SYNC_URL and PLAYZONE_SYNC_KEY are set; otherwise, or when it
cannot be reached, the local copy is shown.

Examples:
  playzone leaderboard
  playzone leaderboard --sort bestStreak --limit 5`,
	Args: cobra.NoArgs,
	RunE: runLeaderboard,
}

func init() {
	leaderboardCmd.Flags().StringVar(&flagSort, "sort", storage.SortTotalScore,
		"Sort by totalScore, gamesPlayed or bestStreak")
	leaderboardCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of players to show")
}

func runLeaderboard(cmd *cobra.Command, _ []string) error {
	if !storage.ValidSortKey(flagSort) {
		return fmt.Errorf("invalid --sort %q: use totalScore, gamesPlayed or bestStreak", flagSort)
	}

	ctx := context.Background()
	a := openApp(ctx, false)
	defer a.Close()

	records, source, err := a.syncer.Top(ctx, flagSort, flagLimit)
	if err != nil {
		return err
	}
	userID, _ := a.profiles.EnsureUserID()

	out := cmd.OutOrStdout()
	where := "local"
	if source == leaderboard.SourceRemote {
		where = "online"
	}
	fmt.Fprintf(out, "Leaderboard (%s, by %s)\n\n", where, flagSort)

	if len(records) == 0 {
		fmt.Fprintln(out, "Nobody is on the leaderboard yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-24s  %8s  %6s  %6s  %s\n", "Rank", "Player", "Total", "Games", "Streak", "Favourite")
	for i, r := range records {
		name := r.Avatar + " " + r.Username
		if r.ID == userID {
			name += " *"
		}
		fmt.Fprintf(out, "  %-4d  %-24s  %8d  %6d  %6d  %s\n",
			i+1, name, r.TotalScore, r.GamesPlayed, r.BestStreak, r.FavoriteGame)
	}
	return nil
}
