package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Game is what the frontend drives. Game logic stays free of Bubble Tea.
type Game interface {
	// ID names the game in screenshot file names.
	ID() string

	// Reset starts a fresh round from the seed in cfg.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState

	// SaveScreenshot writes the current frame as a PNG.
	SaveScreenshot(path string) error
}

// Options carries the session-level collaborators of a Model.
type Options struct {
	Store         *storage.Store     // nil disables score saving
	Logger        *log.Logger        // nil discards logs
	Mode          string             // scoreboard mode the round is saved under
	Player        string             // name stored with the score
	ExitDelay     time.Duration      // final frame stays up this long
	ScreenshotDir string             // empty = ~/.flappy/screenshots
	Renderer      *lipgloss.Renderer // nil = local terminal
}

// Model is the Bubble Tea model for one round of the game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	log        *log.Logger
	keys       *KeyMapper
	renderer   *ScreenRenderer
	inputFrame *core.InputFrame
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	frame := core.NewInputFrame()

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		opts:       opts,
		log:        logger,
		keys:       NewKeyMapper(),
		renderer:   NewScreenRenderer(opts.Renderer),
		inputFrame: &frame,
	}
}

// Init starts the round and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.log.Info("round started", "mode", m.opts.Mode, "player", m.opts.Player, "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()

	case exitMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey processes keyboard input. Jumps are buffered until the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsScreenshot(msg) {
		m.saveScreenshot()
		return m, nil
	}
	if m.keys.MapKeyToFrame(msg, m.inputFrame) {
		m.log.Info("quit", "score", m.gameState.Score)
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick runs one simulation step. After game over the tick loop stops
// and the exit timer takes over.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.gameState.GameOver {
		return m, nil
	}

	result := m.game.Step(*m.inputFrame)
	m.inputFrame.Clear()
	m.gameState = result.State
	m.log.Debug("frame", "tick", m.gameState.Ticks, "score", m.gameState.Score)

	if !m.gameState.GameOver {
		return m, tickCmd(m.config.TickRate)
	}

	m.log.Info("game over", "score", m.gameState.Score, "reason", m.gameState.Reason, "ticks", m.gameState.Ticks)
	m.saveScore()
	return m, exitCmd(m.opts.ExitDelay)
}

// saveScore stores the finished round once.
func (m *Model) saveScore() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	if m.opts.Store == nil || m.gameState.Score <= 0 {
		return
	}
	if _, err := m.opts.Store.SaveScore(m.opts.Mode, m.opts.Player, m.gameState.Score); err != nil {
		m.log.Warn("could not save score", "error", err)
	}
}

// saveScreenshot writes the current frame to the screenshot directory.
func (m *Model) saveScreenshot() {
	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.log.Warn("no home directory for screenshots", "error", err)
			return
		}
		dir = filepath.Join(home, ".flappy", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", m.game.ID(), timestamp))
	if err := m.game.SaveScreenshot(path); err != nil {
		m.log.Warn("could not save screenshot", "error", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.renderer.Render(m.screen)
}

// State returns the last state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program and blocks until the round ends.
func Run(game Game, cfg core.RuntimeConfig, opts Options) (core.GameState, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return core.GameState{}, err
	}
	if fm, ok := final.(Model); ok {
		return fm.State(), nil
	}
	return game.State(), nil
}
