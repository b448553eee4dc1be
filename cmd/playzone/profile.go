package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/playzone/internal/profile"
)

var (
	flagUsername string
	flagEmail    string
	flagAvatar   string
	flagFavorite string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your player profile",
	Long: `Show the player profile used on the leaderboard.

Use 'playzone profile set' to change it.`,
	Args: cobra.NoArgs,
	RunE: runProfile,
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Edit your player profile",
	Long: `Change the username, email, avatar or favourite game.
Only the flags given are changed. Saving a profile with a username
publishes your record to the leaderboard.

Avatars:  ` + strings.Join(profile.Avatars, " ") + `
Games:    ` + strings.Join(profile.Games, ", ") + `

Examples:
  playzone profile set --username Ada --avatar 🚀
  playzone profile set --favorite "Word Puzzle"`,
	Args: cobra.NoArgs,
	RunE: runProfileSet,
}

func init() {
	profileSetCmd.Flags().StringVar(&flagUsername, "username", "", "Display name")
	profileSetCmd.Flags().StringVar(&flagEmail, "email", "", "Contact email")
	profileSetCmd.Flags().StringVar(&flagAvatar, "avatar", "", "Avatar symbol")
	profileSetCmd.Flags().StringVar(&flagFavorite, "favorite", "", "Favourite game")
	profileCmd.AddCommand(profileSetCmd)
}

func runProfile(cmd *cobra.Command, _ []string) error {
	a := openApp(context.Background(), false)
	defer a.Close()

	p, err := a.profiles.Load()
	if err != nil {
		a.logger.Warn("stored profile is unreadable, showing defaults", "err", err)
	}
	_, saved, _ := a.profiles.Stored()
	t := a.stats.Stats(context.Background())

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s  %s\n", p.Avatar, p.Username)
	fmt.Fprintf(out, "  Email          %s\n", p.Email)
	fmt.Fprintf(out, "  Favourite      %s\n", p.FavoriteGame)
	fmt.Fprintf(out, "  Member since   %s\n", p.JoinDate)
	fmt.Fprintf(out, "  Games played   %d\n", t.GamesPlayed)
	fmt.Fprintf(out, "  Total score    %d\n", t.TotalScore)
	fmt.Fprintf(out, "  Best streak    %d\n", t.BestStreak)
	if !saved {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "This is the default profile. Run 'playzone profile set --username NAME' to join the leaderboard.")
	}
	return nil
}

func runProfileSet(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	a := openApp(ctx, false)
	defer a.Close()

	p, err := a.profiles.Load()
	if err != nil {
		a.logger.Warn("replacing unreadable profile", "err", err)
	}

	flags := cmd.Flags()
	if flags.Changed("username") {
		p.Username = flagUsername
	}
	if flags.Changed("email") {
		p.Email = flagEmail
	}
	if flags.Changed("avatar") {
		p.Avatar = flagAvatar
	}
	if flags.Changed("favorite") {
		p.FavoriteGame = flagFavorite
	}

	if err := a.profiles.Save(p); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Profile saved.")

	a.syncer.SyncAsync(ctx)
	return nil
}
