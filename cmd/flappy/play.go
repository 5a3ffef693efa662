package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a round in the terminal. Each terminal cell shows two world pixels.

Controls:
  Space/Up/W  - Flap
  Ctrl+S      - Save a PNG screenshot to ~/.flappy/screenshots
  Q/Esc       - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, the config's speed and gap throughout

Examples:
  flappy play
  flappy play --difficulty hard
  flappy play --config ./my-flappy.yaml --seed 7`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	logFile, err := openLogFile()
	if err != nil {
		fatal("%v", err)
	}
	defer logFile.Close()
	logger := newLogger(logFile, "flappy")

	tuning, preset := loadTuning()
	assets := loadAssets(tuning)

	// Get terminal size; the first WindowSizeMsg corrects it anyway
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tuning.Game.FPS,
		Seed:     flagSeed,
	}

	store := openStore(logger)
	state, runErr := tui.Run(flappy.NewGame(tuning, assets), cfg, tui.Options{
		Store:     store,
		Logger:    logger,
		Mode:      preset.Mode(),
		Player:    playerName(),
		ExitDelay: time.Duration(tuning.Game.ExitDelayMS) * time.Millisecond,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fatal("running game: %v", runErr)
	}
	printResult(state)
}

// printResult reports how the round ended.
func printResult(state core.GameState) {
	fmt.Println(flappy.ScoreText(state.Score))
	if state.Reason != "" && state.Reason != flappy.ReasonQuit {
		fmt.Printf("Hit the %s after %d frames.\n", state.Reason, state.Ticks)
	}
}
