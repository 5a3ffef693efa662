package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

var (
	flagFrames     int
	flagJumpEvery  int
	flagScreenshot string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless round",
	Long: `Run the simulation without any display, flapping on a fixed cadence.
The score is logged every frame and the round's outcome is printed at the end.
With the same --seed and cadence the run is identical every time.

Examples:
  flappy sim --seed 1 --frames 600 --jump-every 18
  flappy sim --jump-every 0                # never flap: falls to the ground
  flappy sim --screenshot last.png         # save the final frame`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 1000, "Maximum number of frames to simulate")
	simCmd.Flags().IntVar(&flagJumpEvery, "jump-every", 18, "Flap every N frames (0 = never)")
	simCmd.Flags().StringVar(&flagScreenshot, "screenshot", "", "Write the final frame to this PNG file")
}

func runSim(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr, "sim")
	tuning, _ := loadTuning()
	assets := loadAssets(tuning)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game := flappy.NewGame(tuning, assets)
	game.Reset(core.RuntimeConfig{TickRate: tuning.Game.FPS, Seed: seed})
	logger.Info("simulation started", "seed", seed, "frames", flagFrames, "jump_every", flagJumpEvery)

	state := simulate(game, flagFrames, flagJumpEvery, func(s core.GameState) {
		logger.Info("frame", "tick", s.Ticks, "score", s.Score)
	})

	if flagScreenshot != "" {
		if err := game.SaveScreenshot(flagScreenshot); err != nil {
			fatal("%v", err)
		}
		logger.Info("screenshot saved", "path", flagScreenshot)
	}

	reason := state.Reason
	if !state.GameOver {
		reason = "still flying"
	}
	fmt.Printf("%s after %d frames (%s)\n", flappy.ScoreText(state.Score), state.Ticks, reason)
}

// simulate steps game up to frames times, flapping on the first frame and
// every jumpEvery frames after it. onFrame sees the state after each step.
func simulate(game *flappy.Game, frames, jumpEvery int, onFrame func(core.GameState)) core.GameState {
	state := game.State()
	for i := 0; i < frames && !state.GameOver; i++ {
		in := core.NewInputFrame()
		if jumpEvery > 0 && i%jumpEvery == 0 {
			in.Set(core.ActionJump)
		}
		state = game.Step(in).State
		if onFrame != nil {
			onFrame(state)
		}
	}
	return state
}
