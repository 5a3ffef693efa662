package flappy

import (
	"image"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/sprite"
)

// Bird is the player sprite. X never changes; Y grows downward.
type Bird struct {
	X      int
	Y      float64
	Vel    float64 // velocity set by the last jump
	Ticks  int     // ticks since the last jump
	Height float64 // Y at the last jump
	Tilt   float64 // degrees, positive = nose up
	Frame  int     // wing animation frame

	frameTicks int
	cfg        config.BirdConfig
}

// NewBird places a bird at the configured start point, at rest.
func NewBird(cfg config.BirdConfig) *Bird {
	return &Bird{
		X:      cfg.X,
		Y:      cfg.Y,
		Height: cfg.Y,
		cfg:    cfg,
	}
}

// Jump gives the bird an upward impulse.
func (b *Bird) Jump() {
	b.Vel = b.cfg.JumpVelocity
	b.Ticks = 0
	b.Height = b.Y
}

// Move advances the bird one tick and returns the displacement applied.
func (b *Bird) Move() float64 {
	b.Ticks++
	t := float64(b.Ticks)

	d := b.Vel*t + b.cfg.Acceleration*t*t
	if d >= b.cfg.MaxDrop {
		d = b.cfg.MaxDrop
	} else if d < 0 {
		d -= b.cfg.RiseBoost
	}
	b.Y += d

	if d < 0 || b.Y < b.Height+b.cfg.TiltMargin {
		b.Tilt = max(b.Tilt, b.cfg.MaxRotation)
	} else if b.Tilt > b.cfg.MinRotation {
		b.Tilt -= b.cfg.RotationVelocity
	}
	return d
}

// Animate steps the wing cycle: up, level, down, level, up.
// A diving bird holds its wings level.
func (b *Bird) Animate() {
	n := b.cfg.AnimationTicks
	b.frameTicks++

	switch {
	case b.frameTicks < n:
		b.Frame = 0
	case b.frameTicks < n*2:
		b.Frame = 1
	case b.frameTicks < n*3:
		b.Frame = 2
	case b.frameTicks < n*4:
		b.Frame = 1
	default:
		b.Frame = 0
		b.frameTicks = 0
	}

	if b.Tilt <= b.cfg.FallingTilt {
		b.Frame = 1
		b.frameTicks = n * 2
	}
}

// Image returns the picture for the current frame.
func (b *Bird) Image(a *sprite.Assets) image.Image {
	return a.Bird[b.Frame]
}

// Mask returns the collision mask for the current frame.
func (b *Bird) Mask(a *sprite.Assets) *sprite.Mask {
	return a.BirdMasks[b.Frame]
}

// Rect returns the bird's bounding box at its rounded position.
func (b *Bird) Rect(a *sprite.Assets) core.Rect {
	m := b.Mask(a)
	return core.NewRect(b.X, b.top(), m.Width(), m.Height())
}

func (b *Bird) top() int {
	return core.Round(b.Y)
}
