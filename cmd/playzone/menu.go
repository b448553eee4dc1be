package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/playzone/internal/platform/tui"
	"github.com/vovakirdan/playzone/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start PlayZone with a game picker menu",
	Long: `Start PlayZone in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Leave a game with B or Esc to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Scores and leaderboard
  Q            - Quit

Examples:
  playzone menu
  playzone menu --fps 30
  playzone menu --db ./playzone.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	a := openApp(context.Background(), true)
	defer a.Close()

	svc := a.services()
	cfg := runtimeConfig()

	for {
		res, err := tui.RunMenu(svc, cfg)
		if err != nil {
			return err
		}
		cfg = res.Config

		switch {
		case res.Quit:
			return nil

		case res.WantsScoreboard:
			goBack, err := tui.RunScoreboard(svc, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		applyGameFlags(res.GameID)
		game, err := registry.Create(res.GameID)
		if err != nil {
			a.logger.Error("cannot create game", "game", res.GameID, "err", err)
			continue
		}

		run := cfg
		if run.Seed == 0 {
			run.Seed = time.Now().UnixNano()
		}
		if err := tui.Run(game, svc, run); err != nil {
			a.logger.Error("game ended with error", "game", res.GameID, "err", err)
		}
	}
}
