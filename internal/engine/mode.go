package engine

import (
	"fmt"
	"strings"

	"github.com/dshills/calcstorm/internal/value"
)

// InputMode selects how typed input is interpreted.
type InputMode uint8

const (
	// RPN commits one number at a time; operators apply immediately to
	// the top two stack entries.
	RPN InputMode = iota

	// Infix buffers a whole expression and evaluates it on Enter.
	Infix
)

// String returns the short name shown in the mode bar.
func (m InputMode) String() string {
	switch m {
	case Infix:
		return "INF"
	default:
		return "RPN"
	}
}

// Toggle returns the other input mode.
func (m InputMode) Toggle() InputMode {
	if m == RPN {
		return Infix
	}
	return RPN
}

// ParseInputMode converts a configuration name to an input mode.
func ParseInputMode(s string) (InputMode, error) {
	switch strings.ToLower(s) {
	case "rpn":
		return RPN, nil
	case "infix", "inf":
		return Infix, nil
	}
	return RPN, fmt.Errorf("unknown input mode %q", s)
}

// Mode changes affect validation and formatting only; stored values
// are never converted.

// ToggleAngleMode switches between radians and degrees.
func (e *Engine) ToggleAngleMode() { e.angle = e.angle.Toggle() }

// CycleBaseMode advances decimal to hexadecimal to binary and back.
func (e *Engine) CycleBaseMode() { e.base = e.base.Cycle() }

// ToggleComplexMode switches between rectangular and polar display.
func (e *Engine) ToggleComplexMode() { e.layout = e.layout.Toggle() }

// ToggleInputMode switches between RPN and infix entry.
func (e *Engine) ToggleInputMode() { e.inputMode = e.inputMode.Toggle() }

// ToggleAbbreviation switches large-number abbreviation on or off.
func (e *Engine) ToggleAbbreviation() { e.abbreviate = !e.abbreviate }

// ToggleHelp shows or hides the help overlay.
func (e *Engine) ToggleHelp() { e.showHelp = !e.showHelp }

// Mode returns the current input mode.
func (e *Engine) Mode() InputMode { return e.inputMode }

// Angle returns the current angle unit.
func (e *Engine) Angle() value.Angle { return e.angle }

// Base returns the current numeric base.
func (e *Engine) Base() value.Base { return e.base }

// Layout returns the current complex display layout.
func (e *Engine) Layout() value.Layout { return e.layout }

// Abbreviating reports whether large-number abbreviation is on.
func (e *Engine) Abbreviating() bool { return e.abbreviate }
