package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-shooters/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game, Tab for the
scoreboard. Press B while paused or after a game ends to return here.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Scoreboard
  Q            - Quit

Examples:
  shooters menu
  shooters menu --fps 30
  shooters menu --db ./scores.db --log-file shooters.log`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	applyGameFlags()

	logger, closeLog, err := newLogger()
	if err != nil {
		exitf("%v", err)
	}
	defer closeLog()

	store := openStore()
	runErr := tui.RunSession(runtimeConfig(), tui.Options{
		Store:     store,
		Logger:    logger,
		HoldTicks: flagHold,
		AllowBack: true,
	})

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		closeLog()
		exitf("%v", runErr)
	}
}
