package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// colorPair is the style key: a cell's foreground and background.
type colorPair struct {
	fg, bg core.Color
}

// ScreenRenderer converts Screen buffers to styled strings. Styles are built
// once per color pair; a half-block picture reuses a small palette heavily.
type ScreenRenderer struct {
	r      *lipgloss.Renderer
	styles map[colorPair]lipgloss.Style
}

// NewScreenRenderer creates a renderer for the given lipgloss renderer.
// SSH sessions pass their own so colors match the remote terminal; nil means
// the local terminal.
func NewScreenRenderer(r *lipgloss.Renderer) *ScreenRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &ScreenRenderer{r: r, styles: make(map[colorPair]lipgloss.Style)}
}

func (sr *ScreenRenderer) style(p colorPair) lipgloss.Style {
	if st, ok := sr.styles[p]; ok {
		return st
	}
	st := sr.r.NewStyle()
	if hex := p.fg.Hex(); hex != "" {
		st = st.Foreground(lipgloss.Color(hex))
	}
	if hex := p.bg.Hex(); hex != "" {
		st = st.Background(lipgloss.Color(hex))
	}
	sr.styles[p] = st
	return st
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (sr *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*8 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)
			key := colorPair{start.FG, start.BG}

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.FG != key.fg || cell.BG != key.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if key == (colorPair{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(sr.style(key).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderScreen renders with the local terminal's color profile.
func RenderScreen(s *core.Screen) string {
	return NewScreenRenderer(nil).Render(s)
}
