package flappy

import "github.com/vovakirdan/tui-flappy/internal/config"

// Base is the ground strip: two copies of one image scrolling left and
// leapfrogging each other.
type Base struct {
	Y      int
	X1, X2 int
	W      int
	vel    int
}

// NewBase creates the strip with the segments side by side from x=0.
func NewBase(cfg config.BaseConfig, width int) *Base {
	return &Base{Y: cfg.Y, X1: 0, X2: width, W: width, vel: cfg.Velocity}
}

// Velocity returns the configured scroll speed.
func (b *Base) Velocity() int {
	return b.vel
}

// MoveBy scrolls both segments by dx pixels.
func (b *Base) MoveBy(dx int) {
	b.X1 -= dx
	b.X2 -= dx

	if b.X1+b.W < 0 {
		b.X1 = b.X2 + b.W
	}
	if b.X2+b.W < 0 {
		b.X2 = b.X1 + b.W
	}
}
