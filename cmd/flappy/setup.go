package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/sprite"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// fatal prints the error the way every command reports failure and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// newLogger builds a charm logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fatal("invalid --log-level %q", flagLogLevel)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}

// openLogFile opens --log-file for appending. Terminal play logs there so the
// alternate screen stays clean.
func openLogFile() (*os.File, error) {
	path := expandHome(flagLogFile)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// loadTuning loads the config and applies --difficulty and --fps.
func loadTuning() (config.FlappyConfig, config.DifficultyPreset) {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		fatal("unknown difficulty %q (use easy, normal, hard or fixed)", flagDifficulty)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fatal("%v", err)
	}
	config.ApplyPreset(&cfg, preset)
	if flagFPS > 0 {
		cfg.Game.FPS = flagFPS
	}
	return cfg, preset
}

// loadAssets reads the art from --assets, then game.assets_dir, falling back
// to the built-in set.
func loadAssets(cfg config.FlappyConfig) *sprite.Assets {
	dir := flagAssets
	if dir == "" {
		dir = cfg.Game.AssetsDir
	}
	assets, err := sprite.Load(expandHome(dir))
	if err != nil {
		fatal("%v", err)
	}
	return assets
}

// openStore opens the score database. Failure only disables score saving.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "error", err)
		return nil
	}
	return store
}

// playerName is the local user name stored with scores.
func playerName() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return os.Getenv("USER")
}
