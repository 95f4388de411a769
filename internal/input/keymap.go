package input

import (
	"github.com/dshills/calcstorm/internal/renderer/backend"
)

// Binding represents a single key-to-action mapping.
type Binding struct {
	// Key is the special key, or backend.KeyRune for character
	// bindings.
	Key backend.Key

	// Rune is the character for KeyRune bindings.
	Rune rune

	// Action is the command to execute.
	Action Action

	// Label names the key in the help overlay, e.g. "F1" or "q".
	Label string

	// Description documents the binding. Bindings without a
	// description are aliases and are hidden from help.
	Description string

	// Category groups bindings for display.
	Category string
}

// Keymap resolves key events to calculator actions.
type Keymap struct {
	keys    map[backend.Key]Binding
	runes   map[rune]Binding
	ordered []Binding
}

// New creates an empty keymap.
func New() *Keymap {
	return &Keymap{
		keys:  make(map[backend.Key]Binding),
		runes: make(map[rune]Binding),
	}
}

// Bind adds a binding. Described bindings appear in help output in
// registration order; bindings without a description resolve but stay
// hidden.
func (k *Keymap) Bind(b Binding) {
	if b.Key == backend.KeyRune {
		k.runes[b.Rune] = b
	} else {
		k.keys[b.Key] = b
	}
	if b.Description != "" {
		k.ordered = append(k.ordered, b)
	}
}

// Resolve looks up the binding for a key event.
func (k *Keymap) Resolve(ev backend.Event) (Binding, bool) {
	if ev.Type != backend.EventKey {
		return Binding{}, false
	}
	if ev.Key == backend.KeyRune {
		b, ok := k.runes[ev.Rune]
		return b, ok
	}
	b, ok := k.keys[ev.Key]
	return b, ok
}

// Bindings returns the described bindings in registration order.
func (k *Keymap) Bindings() []Binding {
	out := make([]Binding, len(k.ordered))
	copy(out, k.ordered)
	return out
}

// Category is a group of bindings for display.
type Category struct {
	Name     string
	Bindings []Binding
}

// Categories groups the described bindings by category, preserving
// first-seen order.
func (k *Keymap) Categories() []Category {
	byName := make(map[string][]Binding)
	order := make([]string, 0)

	for _, b := range k.ordered {
		name := b.Category
		if name == "" {
			name = "Other"
		}
		if _, seen := byName[name]; !seen {
			order = append(order, name)
		}
		byName[name] = append(byName[name], b)
	}

	result := make([]Category, 0, len(order))
	for _, name := range order {
		result = append(result, Category{Name: name, Bindings: byName[name]})
	}
	return result
}

// Default returns the standard calculator keymap.
func Default() *Keymap {
	k := New()

	// General
	k.Bind(Binding{Key: backend.KeyRune, Rune: 'q', Action: ActionQuit,
		Label: "q, Esc", Description: "quit", Category: "General"})
	k.Bind(Binding{Key: backend.KeyEscape, Action: ActionQuit})
	k.Bind(Binding{Key: backend.KeyRune, Rune: 'h', Action: ActionToggleHelp,
		Label: "h", Description: "toggle this help", Category: "General"})
	k.Bind(Binding{Key: backend.KeyRune, Rune: 'H', Action: ActionToggleHelp})
	k.Bind(Binding{Key: backend.KeyRune, Rune: 't', Action: ActionCycleTheme,
		Label: "t", Description: "cycle color theme", Category: "General"})
	k.Bind(Binding{Key: backend.KeyCtrlL, Action: ActionRedraw,
		Label: "Ctrl+L", Description: "redraw screen", Category: "General"})

	// Input
	k.Bind(Binding{Key: backend.KeyEnter, Action: ActionEnter,
		Label: "Enter", Description: "submit input", Category: "Input"})
	k.Bind(Binding{Key: backend.KeyBackspace, Action: ActionBackspace,
		Label: "Backspace", Description: "delete last character", Category: "Input"})
	k.Bind(Binding{Key: backend.KeyRune, Rune: 'c', Action: ActionClearInput,
		Label: "c", Description: "clear input", Category: "Input"})
	k.Bind(Binding{Key: backend.KeyRune, Rune: 'C', Action: ActionClearInput})
	k.Bind(Binding{Key: backend.KeyCtrlC, Action: ActionClearAll,
		Label: "Ctrl+C", Description: "clear stack, history, and input", Category: "Input"})

	// Stack
	k.Bind(Binding{Key: backend.KeyDelete, Action: ActionDrop,
		Label: "Delete", Description: "drop top of stack", Category: "Stack"})
	k.Bind(Binding{Key: backend.KeyInsert, Action: ActionSwap,
		Label: "Insert", Description: "swap top two entries", Category: "Stack"})
	k.Bind(Binding{Key: backend.KeyRune, Rune: 'n', Action: ActionNegate,
		Label: "n", Description: "negate top of stack", Category: "Stack"})
	k.Bind(Binding{Key: backend.KeyRune, Rune: 'N', Action: ActionNegate})
	k.Bind(Binding{Key: backend.KeyUp, Action: ActionStackUp,
		Label: "Up", Description: "browse stack up", Category: "Stack"})
	k.Bind(Binding{Key: backend.KeyDown, Action: ActionStackDown,
		Label: "Down", Description: "browse stack down", Category: "Stack"})

	// History
	k.Bind(Binding{Key: backend.KeyPageUp, Action: ActionHistoryUp,
		Label: "PgUp", Description: "browse history up", Category: "History"})
	k.Bind(Binding{Key: backend.KeyPageDown, Action: ActionHistoryDown,
		Label: "PgDn", Description: "browse history down", Category: "History"})

	// Modes
	k.Bind(Binding{Key: backend.KeyF1, Action: ActionToggleAngle,
		Label: "F1", Description: "toggle radians/degrees", Category: "Modes"})
	k.Bind(Binding{Key: backend.KeyF2, Action: ActionCycleBase,
		Label: "F2", Description: "cycle decimal/hex/binary", Category: "Modes"})
	k.Bind(Binding{Key: backend.KeyF3, Action: ActionToggleComplex,
		Label: "F3", Description: "toggle complex display", Category: "Modes"})
	k.Bind(Binding{Key: backend.KeyF4, Action: ActionToggleInput,
		Label: "F4", Description: "toggle RPN/infix input", Category: "Modes"})
	k.Bind(Binding{Key: backend.KeyRune, Rune: ' ', Action: ActionToggleAbbrev,
		Label: "Space", Description: "toggle number abbreviation", Category: "Modes"})

	return k
}

// EntryRune reports whether ch is a character the calculator accepts
// as input text. Digits, hex digits, base prefixes, the decimal
// point, parentheses, and operators qualify. Final validation against
// the current base mode happens in the engine.
func EntryRune(ch rune) bool {
	if ch >= '0' && ch <= '9' {
		return true
	}
	switch ch {
	case '.', 'x', 'X', '(', ')', '+', '-', '*', '/', '^':
		return true
	}
	return (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
