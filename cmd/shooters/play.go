package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arcade-shooters/internal/config"
	"github.com/vovakirdan/arcade-shooters/internal/core"
	"github.com/vovakirdan/arcade-shooters/internal/games/shooter"
	"github.com/vovakirdan/arcade-shooters/internal/platform/tui"
	"github.com/vovakirdan/arcade-shooters/internal/registry"
	"github.com/vovakirdan/arcade-shooters/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD  - Move
  Space        - Fire
  Enter        - Start (intro screen)
  P/Esc        - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower spawns, slower hostiles, two extra lives
  normal - Config values as written
  hard   - Faster spawns, faster hostiles, one life less
  fixed  - Spawn rate and speed never scale (levels and waves still advance)

Examples:
  shooters play fighter
  shooters play targets --difficulty easy
  shooters play space --difficulty hard
  shooters play space --config ./my-space.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// applyGameFlags hands --config and --difficulty to the games.
func applyGameFlags() {
	if flagDifficulty != "" {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			exitf("%v", err)
		}
	}
	shooter.SetConfigPath(flagConfig)
	shooter.SetDifficultyPreset(flagDifficulty)
}

// runtimeConfig sizes the screen from the terminal, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the score database, or returns nil with a warning.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'shooters list' to see available games.")
		os.Exit(1)
	}
	applyGameFlags()

	logger, closeLog, err := newLogger()
	if err != nil {
		exitf("%v", err)
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		exitf("creating game: %v", err)
	}

	store := openStore()
	runErr := tui.Run(game, runtimeConfig(), tui.Options{
		Store:     store,
		Logger:    logger,
		HoldTicks: flagHold,
	})

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		closeLog()
		exitf("running game: %v", runErr)
	}
}
