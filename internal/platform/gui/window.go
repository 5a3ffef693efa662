// Package gui runs the game in a native window with Ebitengine.
// The window shows the world at its own resolution; the simulation is the
// same one the terminal frontend drives.
package gui

import (
	"image/color"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	jumpKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}
	quitKeys = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}
)

// Options carries the collaborators of a window session.
type Options struct {
	Store     *storage.Store // nil disables score saving
	Logger    *log.Logger    // nil discards logs
	Mode      string
	Player    string
	ExitDelay time.Duration
	Seed      int64
}

// images holds the GPU copies of the sprite assets.
type images struct {
	bird       [3]*ebiten.Image
	pipeTop    *ebiten.Image
	pipeBottom *ebiten.Image
	base       *ebiten.Image
	background *ebiten.Image
}

// Window implements ebiten.Game for one round.
type Window struct {
	game  *flappy.Game
	opts  Options
	log   *log.Logger
	img   *images
	state core.GameState

	overAt     time.Time
	scoreSaved bool
}

// NewWindow wraps game for display. Reset is called with opts.Seed.
func NewWindow(game *flappy.Game, opts Options) *Window {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	game.Reset(core.RuntimeConfig{Seed: opts.Seed})
	return &Window{
		game:  game,
		opts:  opts,
		log:   logger,
		state: game.State(),
	}
}

// Update polls the keyboard and advances the game by one tick.
func (w *Window) Update() error {
	in := core.NewInputFrame()
	for _, k := range quitKeys {
		if inpututil.IsKeyJustPressed(k) {
			in.Set(core.ActionQuit)
		}
	}
	for _, k := range jumpKeys {
		if inpututil.IsKeyJustPressed(k) {
			in.Set(core.ActionJump)
		}
	}
	if in.Has(core.ActionQuit) {
		w.log.Info("quit", "score", w.state.Score)
		return ebiten.Termination
	}
	return w.advance(in, time.Now())
}

// advance steps the game, then keeps the final frame up for the exit delay.
func (w *Window) advance(in core.InputFrame, now time.Time) error {
	if w.state.GameOver {
		if now.Sub(w.overAt) >= w.opts.ExitDelay {
			return ebiten.Termination
		}
		return nil
	}

	w.state = w.game.Step(in).State
	w.log.Debug("frame", "tick", w.state.Ticks, "score", w.state.Score)
	if w.state.GameOver {
		w.overAt = now
		w.log.Info("game over", "score", w.state.Score, "reason", w.state.Reason, "ticks", w.state.Ticks)
		w.saveScore()
	}
	return nil
}

func (w *Window) saveScore() {
	if w.scoreSaved {
		return
	}
	w.scoreSaved = true
	if w.opts.Store == nil || w.state.Score <= 0 {
		return
	}
	if _, err := w.opts.Store.SaveScore(w.opts.Mode, w.opts.Player, w.state.Score); err != nil {
		w.log.Warn("could not save score", "error", err)
	}
}

// Draw paints the world: background, pipes, score, ground and tilted bird.
// The score goes under the ground and bird, as in the terminal renderer.
func (w *Window) Draw(screen *ebiten.Image) {
	if w.img == nil {
		w.img = uploadImages(w.game)
	}
	g := w.game

	screen.DrawImage(w.img.background, nil)

	for _, p := range g.Pipes() {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(p.X), float64(p.Top))
		screen.DrawImage(w.img.pipeTop, op)

		op = &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(p.X), float64(p.Bottom))
		screen.DrawImage(w.img.pipeBottom, op)
	}

	width := g.Config().Window.Width
	text := flappy.ScoreText(w.state.Score)
	ebitenutil.DebugPrintAt(screen, text, width-10-len(text)*6, 10)

	base := g.Base()
	for _, x := range []int{base.X1, base.X2} {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(x), float64(base.Y))
		screen.DrawImage(w.img.base, op)
	}

	bird := g.Bird()
	img := w.img.bird[bird.Frame]
	bw, bh := img.Bounds().Dx(), img.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(bw)/2, -float64(bh)/2)
	op.GeoM.Rotate(-bird.Tilt * math.Pi / 180)
	op.GeoM.Translate(float64(bird.X)+float64(bw)/2, bird.Y+float64(bh)/2)
	screen.DrawImage(img, op)

	if w.state.GameOver {
		drawGameOver(screen, width, g.Config().Window.Height, w.state.Score)
	}
}

func drawGameOver(screen *ebiten.Image, width, height, score int) {
	const boxW, boxH = 160, 48
	x, y := (width-boxW)/2, (height-boxH)/2
	vector.FillRect(screen, float32(x), float32(y), boxW, boxH, color.RGBA{0, 0, 0, 0xc0}, false)
	vector.StrokeRect(screen, float32(x), float32(y), boxW, boxH, 1, color.White, false)

	ebitenutil.DebugPrintAt(screen, "GAME OVER", x+(boxW-9*6)/2, y+10)
	text := flappy.ScoreText(score)
	ebitenutil.DebugPrintAt(screen, text, x+(boxW-len(text)*6)/2, y+26)
}

// Layout keeps the world resolution; Ebitengine scales it to the window.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := w.game.Config().Window
	return cfg.Width, cfg.Height
}

// State returns the last state seen by the window.
func (w *Window) State() core.GameState {
	return w.state
}

func uploadImages(g *flappy.Game) *images {
	a := g.Assets()
	img := &images{
		pipeTop:    ebiten.NewImageFromImage(a.PipeTop),
		pipeBottom: ebiten.NewImageFromImage(a.PipeBottom),
		base:       ebiten.NewImageFromImage(a.Base),
		background: ebiten.NewImageFromImage(a.Background),
	}
	for i, f := range a.Bird {
		img.bird[i] = ebiten.NewImageFromImage(f)
	}
	return img
}

// Run opens the window and blocks until the round ends or it is closed.
func Run(game *flappy.Game, opts Options) (core.GameState, error) {
	cfg := game.Config()
	w := NewWindow(game, opts)

	ebiten.SetTPS(cfg.Game.FPS)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	w.log.Info("round started", "mode", opts.Mode, "player", opts.Player, "seed", w.opts.Seed)
	if err := ebiten.RunGame(w); err != nil {
		return w.State(), err
	}
	return w.State(), nil
}
