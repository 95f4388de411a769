package renderer

import (
	"github.com/dshills/calcstorm/internal/renderer/backend"
	"github.com/dshills/calcstorm/internal/theme"
)

// Border runes.
const (
	borderHorizontal  = '─'
	borderVertical    = '│'
	borderTopLeft     = '┌'
	borderTopRight    = '┐'
	borderBottomLeft  = '└'
	borderBottomRight = '┘'
)

// colorOf converts a theme color to a backend color.
func colorOf(c theme.Color) backend.Color {
	return backend.RGB(c.R, c.G, c.B)
}

// styled builds a style from theme foreground and background colors.
func styled(fg, bg theme.Color) backend.Style {
	return backend.Style{FG: colorOf(fg), BG: colorOf(bg)}
}

// span is a run of text in a single style.
type span struct {
	text  string
	style backend.Style
}

// drawText writes text at (x, y), stopping at maxX. It returns the
// column after the last cell written.
func (r *Renderer) drawText(x, y, maxX int, text string, style backend.Style) int {
	for _, ch := range text {
		if x >= maxX {
			break
		}
		r.backend.SetCell(x, y, ch, style)
		x++
	}
	return x
}

// drawSpans writes consecutive styled runs on one row.
func (r *Renderer) drawSpans(x, y, maxX int, spans []span) {
	for _, s := range spans {
		x = r.drawText(x, y, maxX, s.text, s.style)
		if x >= maxX {
			break
		}
	}
}

// drawBox draws a border around area with a title embedded in the top
// edge and returns the interior. Areas too small for a border are
// skipped.
func (r *Renderer) drawBox(area Rect, title string, border, titleStyle backend.Style) Rect {
	if area.Width() < 2 || area.Height() < 2 {
		return Rect{}
	}

	right := area.Right - 1
	bottom := area.Bottom - 1

	for x := area.Left + 1; x < right; x++ {
		r.backend.SetCell(x, area.Top, borderHorizontal, border)
		r.backend.SetCell(x, bottom, borderHorizontal, border)
	}
	for y := area.Top + 1; y < bottom; y++ {
		r.backend.SetCell(area.Left, y, borderVertical, border)
		r.backend.SetCell(right, y, borderVertical, border)
	}
	r.backend.SetCell(area.Left, area.Top, borderTopLeft, border)
	r.backend.SetCell(right, area.Top, borderTopRight, border)
	r.backend.SetCell(area.Left, bottom, borderBottomLeft, border)
	r.backend.SetCell(right, bottom, borderBottomRight, border)

	if title != "" {
		r.drawText(area.Left+1, area.Top, right, title, titleStyle)
	}

	return area.Inner()
}
