package core

import (
	"fmt"
	"image/color"
)

// Color is a 24-bit terminal color for a screen cell.
// The zero value means "use the terminal default".
type Color struct {
	R, G, B uint8
	Set     bool
}

// RGB builds an explicit color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, Set: true}
}

// FromColor converts any image color to a cell color, dropping alpha.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// Hex returns the color as "#rrggbb", or "" for the default color.
func (c Color) Hex() string {
	if !c.Set {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Predefined colors for HUD elements.
var (
	ColorDefault = Color{}
	ColorWhite   = RGB(255, 255, 255)
	ColorBlack   = RGB(0, 0, 0)
	ColorYellow  = RGB(250, 220, 60)
	ColorRed     = RGB(220, 60, 50)
	ColorGray    = RGB(128, 128, 128)
)
