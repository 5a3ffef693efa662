// flappy is a Flappy Bird clone for the terminal, a desktop window and SSH.
//
// Usage:
//
//	flappy                     - Play in the terminal (same as "flappy play")
//	flappy play                - Play in the terminal
//	flappy window              - Play in a native window
//	flappy sim                 - Run a headless round and log the score per frame
//	flappy scores              - Show high scores
//	flappy serve               - Start SSH server for remote play
//	flappy api                 - Serve scores as JSON over HTTP
//	flappy assets export <dir> - Write the built-in art as PNG files
//
// Global flags:
//
//	--fps <rate>          - Override the tick rate from the config
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.flappy/scores.db)
//	--config <path>       - Use a custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--assets <dir>        - Load art from a directory of PNG files
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Where terminal play writes its log
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagAssets     string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `flappy is a Flappy Bird clone. Flap through the gaps between the pipes;
touching a pipe, the ground or leaving the top of the screen ends the round.

Available commands:
  play     - Play in the terminal (default)
  window   - Play in a native window
  sim      - Headless round with a scripted jump cadence
  scores   - View high scores
  serve    - Start SSH server for remote play
  api      - Serve scores over HTTP
  assets   - Export the built-in art

Examples:
  flappy
  flappy --difficulty hard
  flappy window --seed 42
  flappy sim --frames 300 --jump-every 18
  flappy serve --ssh :2222
  flappy scores --limit 20`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = game.fps from the config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Directory with bird1-3.png, pipe.png, base.png, bg.png")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.flappy/flappy.log", "Log file for terminal play")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(apiCmd)
	rootCmd.AddCommand(assetsCmd)
}
