package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/sprite"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// fakeGame ends after endAt steps with the given score.
type fakeGame struct {
	steps  int
	jumps  []bool
	endAt  int
	score  int
	resets int
	state  core.GameState
}

func (g *fakeGame) ID() string                  { return "fake" }
func (g *fakeGame) Reset(core.RuntimeConfig)    { g.resets++ }
func (g *fakeGame) Render(dst *core.Screen)     { dst.DrawText(0, 0, "fake", core.ColorWhite) }
func (g *fakeGame) State() core.GameState       { return g.state }
func (g *fakeGame) SaveScreenshot(string) error { return nil }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.jumps = append(g.jumps, in.Has(core.ActionJump))
	if g.steps >= g.endAt {
		g.state = core.GameState{Score: g.score, GameOver: true, Reason: "pipe", Ticks: g.steps}
	}
	return core.StepResult{State: g.state}
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 30, Seed: 1}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelBuffersJumpUntilTick(t *testing.T) {
	g := &fakeGame{endAt: 100}
	m := NewModel(g, testRuntime(), Options{})
	m.Init()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}})
	m, _ = update(t, m, TickMsg(time.Now()))
	m, _ = update(t, m, TickMsg(time.Now()))

	if g.resets != 1 {
		t.Errorf("Reset called %d times, expected 1", g.resets)
	}
	if len(g.jumps) != 2 || !g.jumps[0] || g.jumps[1] {
		t.Errorf("jumps per tick = %v, expected [true false]", g.jumps)
	}
}

func TestModelGameOverSavesOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	g := &fakeGame{endAt: 2, score: 3}
	m := NewModel(g, testRuntime(), Options{Store: store, Mode: "classic", Player: "tester"})

	m, _ = update(t, m, TickMsg(time.Now()))
	m, cmd := update(t, m, TickMsg(time.Now()))
	if !m.State().GameOver {
		t.Fatal("expected game over after two ticks")
	}
	if cmd == nil {
		t.Fatal("game over should schedule the exit")
	}

	// Further ticks must neither step the game nor save again.
	m, _ = update(t, m, TickMsg(time.Now()))
	if g.steps != 2 {
		t.Errorf("game stepped %d times, expected 2", g.steps)
	}

	scores, err := store.TopScores("classic", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 || scores[0].Score != 3 || scores[0].Player != "tester" {
		t.Errorf("saved scores = %+v, expected one score of 3 by tester", scores)
	}

	m, cmd = update(t, m, exitMsg{})
	if cmd == nil {
		t.Fatal("exit should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("exit command should be tea.Quit")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelQuitKey(t *testing.T) {
	m := NewModel(&fakeGame{endAt: 100}, testRuntime(), Options{})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelResize(t *testing.T) {
	m := NewModel(&fakeGame{endAt: 100}, testRuntime(), Options{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 30})

	if m.screen.Width() != 60 || m.screen.Height() != 30 {
		t.Errorf("screen is %dx%d after resize", m.screen.Width(), m.screen.Height())
	}
	if !strings.Contains(m.View(), "fake") {
		t.Error("View should contain the rendered game")
	}
}

func TestModelPlaysRealGame(t *testing.T) {
	game := flappy.NewGame(config.DefaultFlappyConfig(), sprite.Default())
	m := NewModel(game, testRuntime(), Options{Mode: "classic"})
	m.Init()

	for i := 0; i < 100 && !m.State().GameOver; i++ {
		m, _ = update(t, m, TickMsg(time.Now()))
	}

	s := m.State()
	if !s.GameOver || s.Reason != flappy.ReasonGround {
		t.Fatalf("expected the bird to hit the ground, got %+v", s)
	}
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("final frame should show the game over banner")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.SetCell(0, 0, core.Cell{Rune: core.HalfBlock, FG: core.ColorRed, BG: core.ColorBlack})
	s.DrawText(0, 1, "plain", core.ColorDefault)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], string(core.HalfBlock)) {
		t.Errorf("first line %q should contain the half block", lines[0])
	}
	if lines[1] != "plain " {
		t.Errorf("uncolored row = %q, expected it unstyled", lines[1])
	}
}
