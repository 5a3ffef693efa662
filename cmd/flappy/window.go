package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/gui"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a native window",
	Long: `Open a 500x800 window and play one round with the full-resolution art.

Controls:
  Space/Up/W  - Flap
  Q/Esc       - Quit

Examples:
  flappy window
  flappy window --assets ./imgs --fps 60`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr, "flappy")
	tuning, preset := loadTuning()
	assets := loadAssets(tuning)

	store := openStore(logger)
	state, runErr := gui.Run(flappy.NewGame(tuning, assets), gui.Options{
		Store:     store,
		Logger:    logger,
		Mode:      preset.Mode(),
		Player:    playerName(),
		ExitDelay: time.Duration(tuning.Game.ExitDelayMS) * time.Millisecond,
		Seed:      flagSeed,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fatal("running window: %v", runErr)
	}
	printResult(state)
}
