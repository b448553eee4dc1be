package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/playzone/internal/leaderboard"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Publish your record to the leaderboard",
	Long: `Push your username, avatar and totals to the leaderboard now.
The record is always written to the local copy; it is sent online when
PLAYZONE_SYNC_URL and PLAYZONE_SYNC_KEY are set.`,
	Args: cobra.NoArgs,
	RunE: runSync,
}

func runSync(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	a := openApp(ctx, false)
	defer a.Close()

	err := a.syncer.Sync(ctx)
	if errors.Is(err, leaderboard.ErrNoProfile) {
		return errors.New("set a username first: playzone profile set --username NAME")
	}
	if err != nil {
		return err
	}

	r, err := a.syncer.Record(ctx)
	if err != nil {
		return err
	}
	where := "local leaderboard"
	if a.syncer.RemoteEnabled() {
		where = "online leaderboard"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Synced %s %s to the %s: %d points over %d games, best streak %d.\n",
		r.Avatar, r.Username, where, r.TotalScore, r.GamesPlayed, r.BestStreak)
	return nil
}
