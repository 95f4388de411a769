// Package backend provides terminal backend abstraction for the renderer.
package backend

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields
	Key  Key
	Rune rune
	Mod  ModMask

	// Resize event fields
	Width, Height int
}

// KeyEvent builds a key event for the given special key.
func KeyEvent(key Key) Event {
	return Event{Type: EventKey, Key: key}
}

// RuneEvent builds a key event for a printable character.
func RuneEvent(ch rune) Event {
	return Event{Type: EventKey, Key: KeyRune, Rune: ch}
}

// Key represents a keyboard key.
type Key int

// Key constants for special keys.
const (
	KeyNone Key = iota
	KeyRune     // Regular character (use Rune field)
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyCtrlC
	KeyCtrlL
)

// ModMask represents modifier key state.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has returns true if the mask contains the given modifier.
func (m ModMask) Has(mod ModMask) bool {
	return m&mod != 0
}

// Color is a 24-bit terminal color. The zero value keeps the
// terminal's default color.
type Color struct {
	R, G, B uint8
	Valid   bool
}

// RGB returns a concrete color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, Valid: true}
}

// Style describes how a cell is drawn.
type Style struct {
	FG      Color
	BG      Color
	Bold    bool
	Reverse bool
}

// Backend abstracts terminal operations for the renderer.
type Backend interface {
	// Lifecycle
	Init() error
	Shutdown()

	// Screen information
	Size() (width, height int)

	// Drawing
	SetCell(x, y int, ch rune, style Style)
	Fill(x, y, width, height int, ch rune, style Style)
	Clear()
	Show()
	Sync()

	// Cursor
	ShowCursor(x, y int)
	HideCursor()

	// Events
	PollEvent() Event
	PostEvent(event Event)
}

// NullBackend is a no-op backend that draws to an in-memory grid.
// It is used for testing and headless operation.
type NullBackend struct {
	width, height int
	runes         [][]rune
	styles        [][]Style
	cursorX       int
	cursorY       int
	cursorShown   bool
	events        chan Event
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	n := &NullBackend{
		width:  width,
		height: height,
		events: make(chan Event, 100),
	}
	n.allocate()
	return n
}

func (n *NullBackend) allocate() {
	n.runes = make([][]rune, n.height)
	n.styles = make([][]Style, n.height)
	for y := 0; y < n.height; y++ {
		n.runes[y] = make([]rune, n.width)
		n.styles[y] = make([]Style, n.width)
		for x := 0; x < n.width; x++ {
			n.runes[y][x] = ' '
		}
	}
}

func (n *NullBackend) Init() error { return nil }

func (n *NullBackend) Shutdown() {}

func (n *NullBackend) Size() (int, int) {
	return n.width, n.height
}

func (n *NullBackend) SetCell(x, y int, ch rune, style Style) {
	if x < 0 || x >= n.width || y < 0 || y >= n.height {
		return
	}
	n.runes[y][x] = ch
	n.styles[y][x] = style
}

func (n *NullBackend) Fill(x, y, width, height int, ch rune, style Style) {
	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			n.SetCell(col, row, ch, style)
		}
	}
}

func (n *NullBackend) Clear() {
	n.Fill(0, 0, n.width, n.height, ' ', Style{})
}

func (n *NullBackend) Show() {}

func (n *NullBackend) Sync() {}

func (n *NullBackend) ShowCursor(x, y int) {
	n.cursorX = x
	n.cursorY = y
	n.cursorShown = true
}

func (n *NullBackend) HideCursor() {
	n.cursorShown = false
}

func (n *NullBackend) PollEvent() Event {
	return <-n.events
}

func (n *NullBackend) PostEvent(event Event) {
	select {
	case n.events <- event:
	default:
		// Queue full, drop the event
	}
}

// Resize changes the grid dimensions and posts a resize event.
func (n *NullBackend) Resize(width, height int) {
	n.width = width
	n.height = height
	n.allocate()
	n.PostEvent(Event{Type: EventResize, Width: width, Height: height})
}

// Row returns the text of a row with trailing spaces removed.
// It is a test helper and returns "" for out-of-range rows.
func (n *NullBackend) Row(y int) string {
	if y < 0 || y >= n.height {
		return ""
	}
	end := n.width
	for end > 0 && n.runes[y][end-1] == ' ' {
		end--
	}
	return string(n.runes[y][:end])
}

// Rows returns the text of every row, trimmed like Row.
func (n *NullBackend) Rows() []string {
	rows := make([]string, n.height)
	for y := 0; y < n.height; y++ {
		rows[y] = n.Row(y)
	}
	return rows
}

// StyleAt returns the style of the cell at the given position.
func (n *NullBackend) StyleAt(x, y int) Style {
	if x < 0 || x >= n.width || y < 0 || y >= n.height {
		return Style{}
	}
	return n.styles[y][x]
}

// CursorPosition returns the cursor location and visibility.
func (n *NullBackend) CursorPosition() (x, y int, shown bool) {
	return n.cursorX, n.cursorY, n.cursorShown
}
