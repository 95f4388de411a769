package renderer

import (
	"fmt"

	"github.com/dshills/calcstorm/internal/theme"
)

// drawHelp renders the modal help overlay, centered over the normal
// layout. Contents come from the keymap so the overlay always matches
// the live bindings.
func (r *Renderer) drawHelp(screen Rect, th *theme.Theme) {
	area := screen.Centered(80, 60)
	if area.Width() < 4 || area.Height() < 4 {
		return
	}

	r.backend.Fill(area.Left, area.Top, area.Width(), area.Height(), ' ',
		styled(th.Foreground, th.Background))

	border := styled(th.Title, th.Background)
	inner := r.drawBox(area, "", border, border)

	title := " Help "
	titleStyle := border
	titleStyle.Bold = true
	tx := area.Left + (area.Width()-len(title))/2
	if tx < area.Left+1 {
		tx = area.Left + 1
	}
	r.drawText(tx, area.Top, area.Right-1, title, titleStyle)

	header := styled(th.HelpKey, th.Background)
	header.Bold = true
	key := styled(th.HelpKey, th.Background)
	text := styled(th.HelpText, th.Background)

	// The last interior row is reserved for the close hint.
	contentBottom := inner.Bottom - 1
	y := inner.Top
	for _, cat := range r.keymap.Categories() {
		if y >= contentBottom {
			break
		}
		r.drawText(inner.Left+1, y, inner.Right, cat.Name+":", header)
		y++
		for _, b := range cat.Bindings {
			if y >= contentBottom {
				break
			}
			x := r.drawText(inner.Left+1, y, inner.Right, fmt.Sprintf("  %-12s", b.Label), key)
			r.drawText(x, y, inner.Right, b.Description, text)
			y++
		}
		y++
	}

	if contentBottom >= inner.Top {
		hint := "Press 'h' or Esc to close this dialog"
		r.drawText(inner.Left+1, contentBottom, inner.Right, hint, styled(th.StackIndex, th.Background))
	}
}
