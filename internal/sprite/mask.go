// Package sprite holds the game's images and the per-pixel opacity masks used
// for exact collision tests. Everything here is built once at startup and
// shared read-only afterwards.
package sprite

import (
	"image"
)

// AlphaThreshold is the alpha (0-255) a pixel must exceed to count as solid.
const AlphaThreshold = 127

// Mask is a per-pixel opacity bitmap.
type Mask struct {
	w, h int
	bits []bool
}

// NewMask creates an empty (fully transparent) mask.
func NewMask(w, h int) *Mask {
	return &Mask{w: w, h: h, bits: make([]bool, w*h)}
}

// MaskFromImage marks every pixel whose alpha exceeds AlphaThreshold.
func MaskFromImage(img image.Image) *Mask {
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			m.bits[y*m.w+x] = a>>8 > AlphaThreshold
		}
	}
	return m
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.w }

// Height returns the mask height.
func (m *Mask) Height() int { return m.h }

// Get reports whether (x, y) is solid. Outside the mask is never solid.
func (m *Mask) Get(x, y int) bool {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return false
	}
	return m.bits[y*m.w+x]
}

// Set marks or clears a single pixel.
func (m *Mask) Set(x, y int, solid bool) {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return
	}
	m.bits[y*m.w+x] = solid
}

// Count returns the number of solid pixels.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// Overlap tests m against other placed with its top-left corner at offset
// (in m's coordinates). It returns the first shared solid pixel in m's
// coordinates. Overlapping bounds with no shared solid pixel is not a hit.
func (m *Mask) Overlap(other *Mask, offset image.Point) (image.Point, bool) {
	x0 := max(0, offset.X)
	y0 := max(0, offset.Y)
	x1 := min(m.w, offset.X+other.w)
	y1 := min(m.h, offset.Y+other.h)

	for y := y0; y < y1; y++ {
		row := m.bits[y*m.w : (y+1)*m.w]
		orow := other.bits[(y-offset.Y)*other.w : (y-offset.Y+1)*other.w]
		for x := x0; x < x1; x++ {
			if row[x] && orow[x-offset.X] {
				return image.Pt(x, y), true
			}
		}
	}
	return image.Point{}, false
}
