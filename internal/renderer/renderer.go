package renderer

import (
	"fmt"

	"github.com/dshills/calcstorm/internal/engine"
	"github.com/dshills/calcstorm/internal/input"
	"github.com/dshills/calcstorm/internal/renderer/backend"
	"github.com/dshills/calcstorm/internal/theme"
)

// State is the engine surface the renderer reads every frame.
// *engine.Engine satisfies it.
type State interface {
	// Input returns the live input buffer.
	Input() string

	// ErrorMessage returns the pending error text, if any.
	ErrorMessage() (string, bool)

	// CurrentValue returns the input buffer or, when it is empty,
	// the formatted top of the stack.
	CurrentValue() (string, bool)

	// StackSnapshot returns the stack formatted for display,
	// oldest entry first.
	StackSnapshot() []engine.StackLine

	// StackPosition returns the browse cursor as a level from the
	// top entry.
	StackPosition() int

	// HistoryPosition and HistoryLen locate the history browse
	// cursor. Position == Len means nothing is recalled.
	HistoryPosition() int
	HistoryLen() int

	// ModeSummary describes the four active modes.
	ModeSummary() string

	// ShowHelp reports whether the help overlay is open.
	ShowHelp() bool
}

// Renderer draws calculator state onto a backend.
type Renderer struct {
	backend backend.Backend
	themes  *theme.Registry
	keymap  *input.Keymap
}

// New creates a renderer. The keymap supplies the help overlay
// contents.
func New(b backend.Backend, themes *theme.Registry, keymap *input.Keymap) *Renderer {
	return &Renderer{
		backend: b,
		themes:  themes,
		keymap:  keymap,
	}
}

// Draw renders a full frame of the given state.
func (r *Renderer) Draw(st State) {
	th := r.themes.Current()
	width, height := r.backend.Size()
	screen := RectFromSize(0, 0, height, width)

	r.backend.Fill(screen.Left, screen.Top, screen.Width(), screen.Height(), ' ',
		styled(th.Foreground, th.Background))

	regions := screen.SplitV(
		Fixed(3), // title with modes
		Flex(5),  // stack display
		Fixed(3), // input
		Fixed(3), // status
		Fixed(6), // quick help
	)

	r.drawTitle(regions[0], th, st)
	r.drawStack(regions[1], th, st)
	r.drawInput(regions[2], th, st)
	r.drawStatus(regions[3], th, st)
	r.drawQuickHelp(regions[4], th)

	if st.ShowHelp() {
		r.backend.HideCursor()
		r.drawHelp(screen, th)
	}

	r.backend.Show()
}

// Refresh forces a full repaint on the next frame.
func (r *Renderer) Refresh() {
	r.backend.Sync()
}

// drawTitle renders the top bar with the mode summary.
func (r *Renderer) drawTitle(area Rect, th *theme.Theme, st State) {
	inner := r.drawBox(area, "Calculator", styled(th.Border, th.Background), styled(th.Title, th.Background))
	if inner.IsEmpty() {
		return
	}

	modes := styled(th.Title, th.Background)
	modes.Bold = true
	r.drawText(inner.Left, inner.Top, inner.Right, "Calculator Modes: "+st.ModeSummary(), modes)
}

// drawStack renders the stack newest entry first, one numbered level
// per row, with the browse cursor row highlighted.
func (r *Renderer) drawStack(area Rect, th *theme.Theme, st State) {
	lines := st.StackSnapshot()
	title := fmt.Sprintf("Stack (%d items)", len(lines))
	inner := r.drawBox(area, title, styled(th.Border, th.Background), styled(th.Title, th.Background))
	if inner.IsEmpty() {
		return
	}

	cursor := st.StackPosition()
	y := inner.Top
	for i := len(lines) - 1; i >= 0 && y < inner.Bottom; i-- {
		level := len(lines) - 1 - i
		text := lines[i].Result
		if level == 0 {
			text += " ←"
		}

		indexStyle := styled(th.StackIndex, th.Background)
		valueStyle := styled(th.StackValue, th.Background)
		if level == cursor {
			highlight := styled(theme.ContrastText(th.Selection), th.Selection)
			r.backend.Fill(inner.Left, y, inner.Width(), 1, ' ', highlight)
			indexStyle = highlight
			valueStyle = highlight
		}

		x := r.drawText(inner.Left, y, inner.Right, fmt.Sprintf("%d:  ", level+1), indexStyle)
		r.drawText(x, y, inner.Right, text, valueStyle)
		y++
	}
}

// drawInput renders the input box with a prompt, the buffer or a
// placeholder, and the text cursor. Recalled history entries render
// in the history color until edited.
func (r *Renderer) drawInput(area Rect, th *theme.Theme, st State) {
	inner := r.drawBox(area, "Input", styled(th.Border, th.Background), styled(th.Title, th.Background))
	if inner.IsEmpty() {
		r.backend.HideCursor()
		return
	}

	x := r.drawText(inner.Left, inner.Top, inner.Right, "> ", styled(th.Prompt, th.Background))

	text := st.Input()
	if text == "" {
		r.drawText(x, inner.Top, inner.Right, "Enter expression...", styled(th.StackIndex, th.Background))
	} else {
		style := styled(th.InputText, th.Background)
		if st.HistoryPosition() < st.HistoryLen() {
			style = styled(th.HistoryText, th.Background)
		}
		x = r.drawText(x, inner.Top, inner.Right, text, style)
	}

	if x >= inner.Right {
		x = inner.Right - 1
	}
	r.backend.ShowCursor(x, inner.Top)
}

// drawStatus renders the error, the current value, or the ready hint.
func (r *Renderer) drawStatus(area Rect, th *theme.Theme, st State) {
	inner := r.drawBox(area, "Status", styled(th.Border, th.Background), styled(th.Title, th.Background))
	if inner.IsEmpty() {
		return
	}

	var text string
	var style backend.Style
	if msg, ok := st.ErrorMessage(); ok {
		text = "Error: " + msg
		style = styled(th.ErrorText, th.Background)
	} else if current, ok := st.CurrentValue(); ok {
		text = "Current: " + current
		style = styled(th.HistoryResult, th.Background)
	} else {
		text = "Ready - Enter numbers to start"
		style = styled(th.Prompt, th.Background)
	}
	r.drawText(inner.Left, inner.Top, inner.Right, text, style)
}

// drawQuickHelp renders the three-line key reference footer.
func (r *Renderer) drawQuickHelp(area Rect, th *theme.Theme) {
	inner := r.drawBox(area, "Quick Help (Press 'h' for more)", styled(th.Border, th.Background), styled(th.Title, th.Background))
	if inner.IsEmpty() {
		return
	}

	key := styled(th.HelpKey, th.Background)
	text := styled(th.HelpText, th.Background)
	op := styled(th.ModeValue, th.Background)

	rows := [][]span{
		{
			{"Enter", key}, {": Calculate | ", text},
			{"C", key}, {": Clear | ", text},
			{"h", key}, {": Help Dialog", text},
		},
		{
			{"Backspace", key}, {": Delete | ", text},
			{"q/Esc", key}, {": Quit | ", text},
			{"Ctrl+C", key}, {": Clear All", text},
		},
		{
			{"Operators: ", text}, {"+, -, *, /, ^", op},
			{" | Parentheses: ", text}, {"( )", op},
		},
	}

	for i, spans := range rows {
		y := inner.Top + i
		if y >= inner.Bottom {
			break
		}
		r.drawSpans(inner.Left, y, inner.Right, spans)
	}
}
