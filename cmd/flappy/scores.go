package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresMode  string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the high scores. On a terminal this opens an interactive table
with one tab per difficulty mode; when piped it prints plain text.

Examples:
  flappy scores
  flappy scores --mode hard
  flappy scores --limit 5 | cat`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to print (plain output)")
	scoresCmd.Flags().StringVar(&flagScoresMode, "mode", config.ModeClassic, "Mode to show (classic, easy, normal, hard, fixed)")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening database: %v", err)
	}
	defer store.Close()

	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height, flagScoresMode); err != nil {
			fatal("%v", err)
		}
		return
	}

	if err := printScores(store, flagScoresMode, flagScoresLimit); err != nil {
		fatal("%v", err)
	}
}

// printScores writes a plain-text table of the top scores.
func printScores(store *storage.Store, mode string, limit int) error {
	scores, err := store.TopScores(mode, limit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", mode)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet. Play a round to set a high score!")
		return nil
	}

	for _, row := range tui.ScoreRows(scores) {
		fmt.Printf("  %-5s %6s  %-12s %s\n", row[0], row[1], row[2], row[3])
	}
	return nil
}
