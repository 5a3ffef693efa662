package flappy

import (
	"image"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/sprite"
)

// Pipe is a pair of segments with a gap between them.
type Pipe struct {
	X      int  // left edge
	Height int  // top of the gap
	Top    int  // y where the top segment is drawn
	Bottom int  // y where the bottom segment is drawn, also the bottom of the gap
	Passed bool // scored already
}

// Gap returns the vertical opening between the segments.
func (p Pipe) Gap() int {
	return p.Bottom - p.Height
}

// Collide reports whether the bird's opaque pixels touch either segment.
func (p Pipe) Collide(b *Bird, a *sprite.Assets) bool {
	bm := b.Mask(a)
	box := b.Rect(a)
	w := a.TopMask.Width()

	segments := []struct {
		y    int
		mask *sprite.Mask
	}{
		{p.Top, a.TopMask},
		{p.Bottom, a.BottomMask},
	}
	for _, s := range segments {
		if !box.Intersects(core.NewRect(p.X, s.y, w, s.mask.Height())) {
			continue
		}
		offset := image.Pt(p.X-b.X, s.y-b.top())
		if _, hit := bm.Overlap(s.mask, offset); hit {
			return true
		}
	}
	return false
}

// PipeManager owns a fixed set of pipe slots. A pipe that scrolls off the
// left edge is respawned in its own slot, so the count never changes.
type PipeManager struct {
	pipes      []Pipe
	rng        *rand.Rand
	cfg        config.PipesConfig
	width      int // segment image width
	topH       int // top segment image height
	difficulty *config.DifficultyManager
	recycle    []int
}

// NewPipeManager creates the pipe slots. Segment sizes come from the assets.
func NewPipeManager(seed int64, cfg config.PipesConfig, a *sprite.Assets, diff *config.DifficultyManager) *PipeManager {
	pm := &PipeManager{
		rng:        rand.New(rand.NewSource(seed)),
		cfg:        cfg,
		width:      a.TopMask.Width(),
		topH:       a.TopMask.Height(),
		difficulty: diff,
	}
	pm.Reset(seed)
	return pm
}

// Reset reseeds the generator and lays the slots out from the spawn point.
// Slots are spaced so that one respawns every spacing/velocity ticks.
func (pm *PipeManager) Reset(seed int64) {
	pm.rng = rand.New(rand.NewSource(seed))

	count := max(pm.cfg.Count, 1)
	spacing := (pm.cfg.SpawnX + pm.width) / count
	pm.pipes = make([]Pipe, count)
	for i := range pm.pipes {
		pm.spawn(&pm.pipes[i], pm.cfg.SpawnX+i*spacing, pm.cfg.Gap)
	}
	pm.recycle = make([]int, 0, count)
}

// spawn reinitializes a slot at x with a random gap height.
func (pm *PipeManager) spawn(p *Pipe, x, gap int) {
	h := pm.cfg.MinHeight
	if span := pm.cfg.MaxHeight - pm.cfg.MinHeight; span > 0 {
		h += pm.rng.Intn(span)
	}
	*p = Pipe{
		X:      x,
		Height: h,
		Top:    h - pm.topH,
		Bottom: h + gap,
	}
}

// Update runs one tick for every pipe: collision, scoring and respawn first,
// then movement. It returns the points scored and whether the bird was hit.
// A hit stops the tick: nothing after the colliding pipe scores or moves.
func (pm *PipeManager) Update(b *Bird, a *sprite.Assets, score, ticks int) (passed int, hit bool) {
	pm.recycle = pm.recycle[:0]
	for i := range pm.pipes {
		p := &pm.pipes[i]
		if p.Collide(b, a) {
			return passed, true
		}
		if p.X+pm.width < 0 {
			pm.recycle = append(pm.recycle, i)
		}
		if p.X < b.X && !p.Passed {
			p.Passed = true
			passed++
		}
	}

	if len(pm.recycle) > 0 {
		gap := pm.difficulty.GapSize(pm.cfg.Gap, score+passed, ticks)
		for _, i := range pm.recycle {
			pm.spawn(&pm.pipes[i], pm.cfg.SpawnX, gap)
		}
	}

	speed := pm.difficulty.Speed(pm.cfg.Velocity, score+passed, ticks)
	for i := range pm.pipes {
		pm.pipes[i].X -= speed
	}
	return passed, false
}

// Pipes returns the pipe slots. The slice is owned by the manager.
func (pm *PipeManager) Pipes() []Pipe {
	return pm.pipes
}

// Width returns the segment width.
func (pm *PipeManager) Width() int {
	return pm.width
}
