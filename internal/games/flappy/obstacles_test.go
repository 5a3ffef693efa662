package flappy

import (
	"image"
	"image/color"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/sprite"
)

func testManager(t *testing.T, count int) (*PipeManager, *Bird, *sprite.Assets) {
	t.Helper()
	cfg := config.DefaultFlappyConfig()
	cfg.Pipes.Count = count
	a := sprite.Default()
	pm := NewPipeManager(7, cfg.Pipes, a, config.NewDifficultyManager(cfg.Difficulty))
	return pm, NewBird(cfg.Bird), a
}

// openPipe returns a pipe at x whose gap surrounds the bird's start position.
func openPipe(x int) Pipe {
	return Pipe{X: x, Height: 300, Top: 300 - 640, Bottom: 500}
}

func TestPipeSpawnGap(t *testing.T) {
	pm, _, _ := testManager(t, 1)

	for i := 0; i < 500; i++ {
		var p Pipe
		pm.spawn(&p, 600, 200)
		if p.Gap() != 200 {
			t.Fatalf("spawn %d: gap = %d, expected 200", i, p.Gap())
		}
		if p.Height < 50 || p.Height >= 450 {
			t.Fatalf("spawn %d: height %d outside [50, 450)", i, p.Height)
		}
		if p.Top != p.Height-640 {
			t.Fatalf("spawn %d: top = %d, expected %d", i, p.Top, p.Height-640)
		}
	}
}

func TestPipeInitialLayout(t *testing.T) {
	tests := []struct {
		count int
		want  []int
	}{
		{1, []int{600}},
		{2, []int{600, 952}}, // spacing (600+104)/2
	}
	for _, tc := range tests {
		pm, _, _ := testManager(t, tc.count)
		pipes := pm.Pipes()
		if len(pipes) != len(tc.want) {
			t.Fatalf("count %d: %d pipes", tc.count, len(pipes))
		}
		for i, x := range tc.want {
			if pipes[i].X != x {
				t.Errorf("count %d: pipe %d at x=%d, expected %d", tc.count, i, pipes[i].X, x)
			}
		}
	}
}

func TestPipeScoresOnce(t *testing.T) {
	pm, bird, a := testManager(t, 1)
	pm.pipes[0] = openPipe(bird.X + 2)

	var total int
	for i := 0; i < 10; i++ {
		passed, hit := pm.Update(bird, a, total, i)
		if hit {
			t.Fatalf("tick %d: unexpected collision", i)
		}
		if i == 0 && passed != 0 {
			t.Errorf("scored before the pipe passed the bird")
		}
		total += passed
	}
	if total != 1 {
		t.Errorf("score = %d, expected exactly 1", total)
	}
	if !pm.pipes[0].Passed {
		t.Error("pipe should be marked passed")
	}
}

func TestPipeRecycleSameFrame(t *testing.T) {
	pm, bird, a := testManager(t, 3)
	pm.pipes[1] = openPipe(-105) // right edge at -1
	pm.pipes[1].Passed = true

	passed, _ := pm.Update(bird, a, 0, 1)
	if passed != 0 {
		t.Errorf("recycled pipe scored %d", passed)
	}
	if len(pm.Pipes()) != 3 {
		t.Fatalf("pipe count changed to %d", len(pm.Pipes()))
	}

	p := pm.Pipes()[1]
	if p.X != 600-5 {
		t.Errorf("respawned pipe at x=%d, expected %d", p.X, 600-5)
	}
	if p.Passed {
		t.Error("respawned pipe should not be passed")
	}
	if p.Gap() != 200 {
		t.Errorf("respawned gap = %d", p.Gap())
	}
}

func TestPipeCountInvariant(t *testing.T) {
	pm, bird, a := testManager(t, 2)
	bird.X = -1000 // out of the way

	for i := 0; i < 1000; i++ {
		pm.Update(bird, a, 0, i)
		if len(pm.Pipes()) != 2 {
			t.Fatalf("tick %d: %d pipes", i, len(pm.Pipes()))
		}
		for _, p := range pm.Pipes() {
			if p.X+pm.Width() < -5 {
				t.Fatalf("tick %d: pipe at x=%d was not recycled", i, p.X)
			}
		}
	}
}

func TestPipeCollide(t *testing.T) {
	_, bird, a := testManager(t, 1)

	tests := []struct {
		name string
		pipe Pipe
		want bool
	}{
		{"in the gap", openPipe(bird.X), false},
		{"far away", Pipe{X: 600, Height: 100, Top: 100 - 640, Bottom: 300}, false},
		{"bottom cap through body", Pipe{X: bird.X, Height: 160, Top: 160 - 640, Bottom: 360}, true},
		{"top segment through body", Pipe{X: bird.X - 20, Height: 380, Top: 380 - 640, Bottom: 580}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.pipe.Collide(bird, a); got != tc.want {
				t.Errorf("Collide() = %v, expected %v", got, tc.want)
			}
		})
	}
}

// cornerAssets builds art where the bird is solid only in its top-left
// quarter and the pipe is solid everywhere.
func cornerAssets() *sprite.Assets {
	solid := color.NRGBA{R: 255, A: 255}

	bird := image.NewNRGBA(image.Rect(0, 0, sprite.BirdW, sprite.BirdH))
	for y := 0; y < sprite.BirdH/2; y++ {
		for x := 0; x < sprite.BirdW/2; x++ {
			bird.Set(x, y, solid)
		}
	}
	fill := func(w, h int) *image.NRGBA {
		img := image.NewNRGBA(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				img.Set(x, y, solid)
			}
		}
		return img
	}

	var src sprite.Sources
	for i := range src.Bird {
		src.Bird[i] = bird
	}
	src.Pipe = fill(sprite.PipeW, sprite.PipeH)
	src.Base = fill(sprite.BaseW, sprite.BaseH)
	src.Background = fill(sprite.BGW, sprite.BGH)
	return src.Build()
}

func TestPipeNearMiss(t *testing.T) {
	a := cornerAssets()
	bird := NewBird(config.DefaultFlappyConfig().Bird)
	bird.Y = 350

	// Bird is 68x48 and solid in [0,34)x[0,24). A bottom segment starting
	// at (bird.X+40, 380) overlaps the box but only its empty quarter.
	p := Pipe{X: bird.X + 40, Height: 180, Top: 180 - 640, Bottom: 380}
	if !bird.Rect(a).Intersects(rectOf(p.X, p.Bottom, a.BottomMask)) {
		t.Fatal("setup: bounding boxes should overlap")
	}
	if p.Collide(bird, a) {
		t.Error("near miss reported as collision")
	}

	// Shift it into the solid quarter.
	p.X = bird.X + 30
	p.Bottom = 370
	if !p.Collide(bird, a) {
		t.Error("overlapping pixels not reported as collision")
	}
}

func rectOf(x, y int, m *sprite.Mask) core.Rect {
	return core.NewRect(x, y, m.Width(), m.Height())
}
