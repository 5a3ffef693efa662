package sprite

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// Source image sizes, before Scale.
const (
	BirdW, BirdH = 34, 24
	PipeW, PipeH = 52, 320
	BaseW, BaseH = 336, 112
	BGW, BGH     = 288, 512
)

// Generate draws the built-in art.
func Generate() Sources {
	var s Sources
	for i := range s.Bird {
		s.Bird[i] = drawBird(i)
	}
	s.Pipe = drawPipe()
	s.Base = drawBase()
	s.Background = drawBackground()
	return s
}

// wingLift is the wing's vertical offset per frame: up, level, down.
var wingLift = [BirdFrames]float64{-3, 0, 3}

func drawBird(frame int) image.Image {
	dc := gg.NewContext(BirdW, BirdH)

	// body
	dc.DrawEllipse(15, 12, 12, 9.5)
	dc.SetHexColor("#f8c830")
	dc.FillPreserve()
	dc.SetHexColor("#543847")
	dc.SetLineWidth(1.5)
	dc.Stroke()

	// belly
	dc.DrawEllipse(16, 16, 7, 4)
	dc.SetHexColor("#fae08a")
	dc.Fill()

	// wing
	dc.DrawEllipse(8, 12+wingLift[frame], 6, 3.5)
	dc.SetHexColor("#fcf4e0")
	dc.FillPreserve()
	dc.SetHexColor("#543847")
	dc.SetLineWidth(1)
	dc.Stroke()

	// eye
	dc.DrawCircle(22, 8, 4.5)
	dc.SetHexColor("#ffffff")
	dc.FillPreserve()
	dc.SetHexColor("#543847")
	dc.Stroke()
	dc.DrawCircle(23.5, 8, 1.6)
	dc.SetHexColor("#000000")
	dc.Fill()

	// beak
	dc.DrawEllipse(28, 15, 5.5, 2.5)
	dc.SetHexColor("#f0602a")
	dc.FillPreserve()
	dc.SetHexColor("#543847")
	dc.Stroke()

	return dc.Image()
}

func drawPipe() image.Image {
	const capH = 24
	outline := "#3a6a1c"
	dc := gg.NewContext(PipeW, PipeH)

	// body is narrower than the cap, leaving transparent columns either side
	dc.DrawRectangle(2, capH, PipeW-4, PipeH-capH)
	dc.SetHexColor(outline)
	dc.Fill()
	dc.DrawRectangle(4, capH, PipeW-8, PipeH-capH)
	dc.SetHexColor("#74bf2e")
	dc.Fill()
	dc.DrawRectangle(8, capH, 6, PipeH-capH)
	dc.SetHexColor("#9ee25c")
	dc.Fill()
	dc.DrawRectangle(PipeW-14, capH, 6, PipeH-capH)
	dc.SetHexColor("#558c22")
	dc.Fill()

	// cap
	dc.DrawRectangle(0, 0, PipeW, capH)
	dc.SetHexColor(outline)
	dc.Fill()
	dc.DrawRectangle(2, 2, PipeW-4, capH-4)
	dc.SetHexColor("#80cc38")
	dc.Fill()
	dc.DrawRectangle(6, 2, 6, capH-4)
	dc.SetHexColor("#b0f070")
	dc.Fill()

	return dc.Image()
}

func drawBase() image.Image {
	const grassH = 12
	dc := gg.NewContext(BaseW, BaseH)

	dc.SetHexColor("#ded895")
	dc.Clear()

	dc.DrawRectangle(0, 0, BaseW, grassH)
	dc.SetHexColor("#73bf2e")
	dc.Fill()

	// Stripes repeat every 12px; 336 is a multiple, so tiles join seamlessly.
	dc.SetHexColor("#9ce659")
	for x := -grassH; x < BaseW; x += 12 {
		dc.MoveTo(float64(x), grassH)
		dc.LineTo(float64(x+6), grassH)
		dc.LineTo(float64(x+12), 0)
		dc.LineTo(float64(x+6), 0)
		dc.ClosePath()
		dc.Fill()
	}

	dc.DrawRectangle(0, grassH, BaseW, 3)
	dc.SetHexColor("#548a26")
	dc.Fill()
	dc.DrawRectangle(0, grassH+3, BaseW, 4)
	dc.SetHexColor("#d2b86a")
	dc.Fill()

	return dc.Image()
}

func drawBackground() image.Image {
	dc := gg.NewContext(BGW, BGH)

	sky := gg.NewLinearGradient(0, 0, 0, BGH)
	sky.AddColorStop(0, color.RGBA{78, 192, 202, 255})
	sky.AddColorStop(1, color.RGBA{150, 222, 228, 255})
	dc.SetFillStyle(sky)
	dc.DrawRectangle(0, 0, BGW, BGH)
	dc.Fill()

	// clouds
	dc.SetHexColor("#eaf8f0")
	for x := 0.0; x <= BGW; x += 36 {
		dc.DrawCircle(x, 400, 26)
		dc.DrawCircle(x+18, 392, 20)
	}
	dc.Fill()
	dc.DrawRectangle(0, 400, BGW, 40)
	dc.Fill()

	// skyline
	dc.SetHexColor("#a8dcb4")
	towers := []struct{ x, w, h float64 }{
		{0, 22, 50}, {24, 16, 70}, {42, 26, 40}, {70, 18, 62}, {90, 30, 48},
		{122, 14, 74}, {138, 24, 56}, {164, 20, 44}, {186, 28, 66}, {216, 16, 52},
		{234, 24, 72}, {260, 28, 46},
	}
	for _, tw := range towers {
		dc.DrawRectangle(tw.x, 470-tw.h, tw.w, tw.h)
	}
	dc.Fill()

	// bushes
	dc.SetHexColor("#5ec456")
	for x := 0.0; x <= BGW; x += 30 {
		dc.DrawCircle(x, 478, 18)
	}
	dc.Fill()
	dc.DrawRectangle(0, 478, BGW, BGH-478)
	dc.Fill()

	return dc.Image()
}
