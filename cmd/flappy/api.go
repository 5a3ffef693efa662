package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/api"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var flagAPIAddr string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Serve scores as JSON over HTTP",
	Long: `Start a read-only HTTP API over the score database.

Endpoints:
  GET /healthz
  GET /scores?mode=&limit=   - top scores, best first (all modes when mode is empty)
  GET /scores/best?mode=     - the best score
  GET /stats?mode=           - games played, best, average and total

Examples:
  flappy api
  flappy api --addr 127.0.0.1:9000`,
	Args: cobra.NoArgs,
	Run:  runAPI,
}

func init() {
	apiCmd.Flags().StringVar(&flagAPIAddr, "addr", ":8080", "HTTP listen address (host:port)")
}

func runAPI(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr, "flappy-api")
	if flagLogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening database: %v", err)
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := api.NewServer(store, logger).ListenAndServe(ctx, flagAPIAddr); err != nil {
		store.Close()
		fatal("server: %v", err)
	}
}
