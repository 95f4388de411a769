// Package theme defines color palettes for the calculator UI and a
// registry for switching between them at runtime. Palettes can be
// built in or loaded from JSON theme files.
package theme

import "slices"

// Theme defines the colors for every region of the calculator UI.
type Theme struct {
	// Name is the display name of the theme.
	Name string

	// Background is the screen background color.
	Background Color

	// Foreground is the default text color.
	Foreground Color

	// Border is the pane border color.
	Border Color

	// Title is the pane title color.
	Title Color

	// StackValue is the color of values on the stack.
	StackValue Color

	// StackIndex is the color of stack position labels.
	StackIndex Color

	// Selection is the highlight color for the browsed stack entry.
	Selection Color

	// Prompt is the input prompt color.
	Prompt Color

	// InputText is the color of text being typed.
	InputText Color

	// HistoryText is the color of history expressions.
	HistoryText Color

	// HistoryResult is the color of computed results in history.
	HistoryResult Color

	// ModeLabel is the color of status line labels.
	ModeLabel Color

	// ModeValue is the color of status line values.
	ModeValue Color

	// ErrorText is the color of error messages.
	ErrorText Color

	// HelpKey is the color of key names in the help overlay.
	HelpKey Color

	// HelpText is the color of descriptions in the help overlay.
	HelpText Color
}

// DarkTheme returns the default dark palette.
func DarkTheme() *Theme {
	return &Theme{
		Name:          "Dark",
		Background:    RGB(30, 30, 30),
		Foreground:    RGB(212, 212, 212),
		Border:        RGB(96, 96, 96),
		Title:         RGB(86, 156, 214),
		StackValue:    RGB(181, 206, 168),
		StackIndex:    RGB(128, 128, 128),
		Selection:     RGB(64, 64, 128),
		Prompt:        RGB(220, 220, 170),
		InputText:     RGB(212, 212, 212),
		HistoryText:   RGB(156, 220, 254),
		HistoryResult: RGB(181, 206, 168),
		ModeLabel:     RGB(128, 128, 128),
		ModeValue:     RGB(78, 201, 176),
		ErrorText:     RGB(244, 71, 71),
		HelpKey:       RGB(220, 220, 170),
		HelpText:      RGB(212, 212, 212),
	}
}

// LightTheme returns a light palette.
func LightTheme() *Theme {
	return &Theme{
		Name:          "Light",
		Background:    RGB(255, 255, 255),
		Foreground:    RGB(0, 0, 0),
		Border:        RGB(160, 160, 160),
		Title:         RGB(0, 0, 255),
		StackValue:    RGB(9, 134, 88),
		StackIndex:    RGB(128, 128, 128),
		Selection:     RGB(173, 214, 255),
		Prompt:        RGB(121, 94, 38),
		InputText:     RGB(0, 0, 0),
		HistoryText:   RGB(0, 16, 128),
		HistoryResult: RGB(9, 134, 88),
		ModeLabel:     RGB(128, 128, 128),
		ModeValue:     RGB(38, 127, 153),
		ErrorText:     RGB(205, 49, 49),
		HelpKey:       RGB(121, 94, 38),
		HelpText:      RGB(0, 0, 0),
	}
}

// SolarizedTheme returns a Solarized Dark palette.
func SolarizedTheme() *Theme {
	return &Theme{
		Name:          "Solarized Dark",
		Background:    RGB(0, 43, 54),
		Foreground:    RGB(131, 148, 150),
		Border:        RGB(88, 110, 117),
		Title:         RGB(38, 139, 210),
		StackValue:    RGB(133, 153, 0),
		StackIndex:    RGB(88, 110, 117),
		Selection:     RGB(7, 54, 66),
		Prompt:        RGB(181, 137, 0),
		InputText:     RGB(131, 148, 150),
		HistoryText:   RGB(38, 139, 210),
		HistoryResult: RGB(133, 153, 0),
		ModeLabel:     RGB(88, 110, 117),
		ModeValue:     RGB(42, 161, 152),
		ErrorText:     RGB(220, 50, 47),
		HelpKey:       RGB(181, 137, 0),
		HelpText:      RGB(131, 148, 150),
	}
}

// Registry holds available themes.
type Registry struct {
	themes  map[string]*Theme
	current *Theme
}

// NewRegistry creates a registry with the built-in themes registered
// and the dark theme current.
func NewRegistry() *Registry {
	r := &Registry{
		themes: make(map[string]*Theme),
	}

	r.Register(DarkTheme())
	r.Register(LightTheme())
	r.Register(SolarizedTheme())

	r.current = r.themes["Dark"]

	return r
}

// Register adds a theme to the registry. A theme with the same name
// replaces the earlier one.
func (r *Registry) Register(theme *Theme) {
	r.themes[theme.Name] = theme
	if r.current != nil && r.current.Name == theme.Name {
		r.current = theme
	}
}

// Get returns a theme by name.
func (r *Registry) Get(name string) (*Theme, bool) {
	t, ok := r.themes[name]
	return t, ok
}

// Current returns the current theme.
func (r *Registry) Current() *Theme {
	return r.current
}

// SetCurrent sets the current theme by name.
func (r *Registry) SetCurrent(name string) bool {
	if t, ok := r.themes[name]; ok {
		r.current = t
		return true
	}
	return false
}

// Names returns all registered theme names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.themes))
	for name := range r.themes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Cycle advances to the next theme in name order and returns it.
func (r *Registry) Cycle() *Theme {
	names := r.Names()
	if len(names) == 0 {
		return r.current
	}

	next := names[0]
	for i, name := range names {
		if name == r.current.Name {
			next = names[(i+1)%len(names)]
			break
		}
	}
	r.current = r.themes[next]
	return r.current
}
