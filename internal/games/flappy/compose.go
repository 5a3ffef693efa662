package flappy

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// scoreScale enlarges the built-in 7x13 font to read at world size.
const scoreScale = 3

var letterbox = color.Black

// ScoreText is the HUD label for a score.
func ScoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// Draw paints the world in world coordinates: background, pipes, ground and
// the tilted bird. With hud set the score is drawn in the top-right corner.
func (g *Game) Draw(dc *gg.Context, hud bool) {
	a := g.assets
	w := float64(g.cfg.Window.Width)

	dc.DrawImage(a.Background, 0, 0)

	for _, p := range g.pipes.Pipes() {
		dc.DrawImage(a.PipeTop, p.X, p.Top)
		dc.DrawImage(a.PipeBottom, p.X, p.Bottom)
	}

	if hud {
		text := ScoreText(g.score)
		dc.Push()
		dc.Translate(w-10, 10)
		dc.Scale(scoreScale, scoreScale)
		dc.SetColor(color.Black)
		dc.DrawStringAnchored(text, 0.5, 0.5, 1, 1)
		dc.SetColor(color.White)
		dc.DrawStringAnchored(text, 0, 0, 1, 1)
		dc.Pop()
	}

	dc.DrawImage(a.Base, g.base.X1, g.base.Y)
	dc.DrawImage(a.Base, g.base.X2, g.base.Y)

	img := g.bird.Image(a)
	b := img.Bounds()
	cx := float64(g.bird.X) + float64(b.Dx())/2
	cy := g.bird.Y + float64(b.Dy())/2
	dc.Push()
	dc.RotateAbout(gg.Radians(-g.bird.Tilt), cx, cy)
	dc.DrawImageAnchored(img, int(math.Round(cx)), int(math.Round(cy)), 0.5, 0.5)
	dc.Pop()
}

// viewport fits the world into a w x h output, keeping its aspect ratio.
func (g *Game) viewport(w, h int) (scale, ox, oy float64) {
	ww, wh := float64(g.cfg.Window.Width), float64(g.cfg.Window.Height)
	scale = math.Min(float64(w)/ww, float64(h)/wh)
	ox = (float64(w) - ww*scale) / 2
	oy = (float64(h) - wh*scale) / 2
	return scale, ox, oy
}

// Frame renders the world scaled into a w x h image, centred, with black bars
// where the aspect ratios differ.
func (g *Game) Frame(w, h int, hud bool) image.Image {
	dc := gg.NewContext(w, h)
	dc.SetColor(letterbox)
	dc.Clear()

	scale, ox, oy := g.viewport(w, h)
	dc.Push()
	dc.Translate(ox, oy)
	dc.Scale(scale, scale)
	g.Draw(dc, hud)
	dc.Pop()

	// Sprites wider than the world spill past it; cover that with the bars.
	fw, fh := float64(w), float64(h)
	right := ox + float64(g.cfg.Window.Width)*scale
	bottom := oy + float64(g.cfg.Window.Height)*scale
	dc.SetColor(letterbox)
	dc.DrawRectangle(0, 0, ox, fh)
	dc.DrawRectangle(right, 0, fw-right, fh)
	dc.DrawRectangle(0, 0, fw, oy)
	dc.DrawRectangle(0, bottom, fw, fh-bottom)
	dc.Fill()

	return dc.Image()
}

// Render draws the game into a terminal screen using half-block pixels, with
// the score and the game-over banner as text on top.
func (g *Game) Render(dst *core.Screen) {
	pw, ph := dst.PixelSize()
	if pw == 0 || ph == 0 {
		return
	}
	dst.DrawImage(g.Frame(pw, ph, false))

	scale, ox, oy := g.viewport(pw, ph)
	right := int(ox + float64(g.cfg.Window.Width)*scale)
	top := int(oy) / 2

	text := ScoreText(g.score)
	dst.DrawText(core.Max(right-len(text)-1, 0), top, text, core.ColorWhite)

	if g.gameOver {
		g.drawGameOver(dst)
	}
}

// drawGameOver centres a boxed banner on the screen.
func (g *Game) drawGameOver(dst *core.Screen) {
	title := "GAME OVER"
	detail := ScoreText(g.score)
	w := core.Max(len(title), len(detail)) + 4
	h := 4
	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2

	dst.DrawRect(core.NewRect(x, y, w, h), core.Cell{Rune: ' ', BG: core.ColorBlack})
	dst.DrawBox(core.NewRect(x, y, w, h), core.ColorYellow, core.ColorBlack)
	dst.DrawText(x+(w-len(title))/2, y+1, title, core.ColorRed)
	dst.DrawText(x+(w-len(detail))/2, y+2, detail, core.ColorWhite)
}

// SaveScreenshot writes the current frame, HUD included, as a PNG.
func (g *Game) SaveScreenshot(path string) error {
	return gg.SavePNG(path, g.Frame(g.cfg.Window.Width, g.cfg.Window.Height, true))
}
