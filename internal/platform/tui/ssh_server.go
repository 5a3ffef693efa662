package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/sprite"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.flappy/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// ConfigPath is watched for edits; new sessions use the latest valid
	// version. Empty means the tuning never changes.
	ConfigPath string

	// Preset is applied on top of the tuning for every session.
	Preset config.DifficultyPreset
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer wraps a Wish SSH server that gives every connection its own round.
type SSHServer struct {
	config  SSHServerConfig
	server  *ssh.Server
	store   *storage.Store
	assets  *sprite.Assets
	tuning  config.FlappyConfig
	watcher *config.Watcher
	logger  *log.Logger
}

// NewSSHServer creates a new SSH server. The store may be nil, in which case
// scores are not saved. The caller owns the store.
func NewSSHServer(cfg SSHServerConfig, tuning config.FlappyConfig, assets *sprite.Assets, store *storage.Store, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "flappy-ssh",
		})
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		assets: assets,
		tuning: tuning,
		logger: logger,
	}

	if cfg.ConfigPath != "" {
		w, err := config.NewWatcher(cfg.ConfigPath, tuning, logger)
		if err != nil {
			// Sessions still work with the tuning loaded at startup.
			logger.Warn("config hot reload disabled", "error", err)
		} else {
			srv.watcher = w
		}
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".flappy", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", err)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		if srv.watcher != nil {
			srv.watcher.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// sessionTuning returns the tuning a new session starts with.
func (s *SSHServer) sessionTuning() config.FlappyConfig {
	cfg := s.tuning
	if s.watcher != nil {
		cfg = s.watcher.Current()
	}
	config.ApplyPreset(&cfg, s.config.Preset)
	return cfg
}

// watchReloads logs the tuning new sessions get after each config reload.
// Running sessions keep the tuning they started with.
func (s *SSHServer) watchReloads(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case cfg := <-s.watcher.Changes():
			config.ApplyPreset(&cfg, s.config.Preset)
			s.logger.Info("tuning reloaded",
				"gap", cfg.Pipes.Gap,
				"velocity", cfg.Pipes.Velocity,
				"fps", cfg.Game.FPS,
				"difficulty", cfg.Difficulty.Enabled,
			)
		}
	}
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sess.User())
		wish.Fatalln(sess, "flappy needs an interactive terminal: ssh -t")
		return nil, nil
	}

	tuning := s.sessionTuning()
	rc := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: tuning.Game.FPS,
		Seed:     time.Now().UnixNano(),
	}

	model := NewModel(flappy.NewGame(tuning, s.assets), rc, Options{
		Store:     s.store,
		Logger:    s.logger.With("user", sess.User()),
		Mode:      s.config.Preset.Mode(),
		Player:    sess.User(),
		ExitDelay: time.Duration(tuning.Game.ExitDelayMS) * time.Millisecond,
		Renderer:  bubbletea.MakeRenderer(sess),
	})

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		s.logger.Info("session started",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
		next(sess)
		s.logger.Info("session ended",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until SIGINT or SIGTERM.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if s.watcher != nil {
		go s.watcher.Run(ctx)
		go s.watchReloads(ctx)
	}

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errs := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errs <- err
		}
	}()

	select {
	case <-done:
		s.logger.Info("shutting down...")
	case err := <-errs:
		s.logger.Error("server error", "error", err)
		s.Shutdown()
		return err
	}
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.watcher != nil {
		s.watcher.Close()
	}
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
