package input

// Action identifies a calculator command that can be bound to a key.
type Action int

const (
	// ActionNone means no action.
	ActionNone Action = iota
	// ActionQuit exits the application.
	ActionQuit
	// ActionToggleHelp shows or hides the help overlay.
	ActionToggleHelp
	// ActionEnter submits the input line.
	ActionEnter
	// ActionBackspace deletes the last input character.
	ActionBackspace
	// ActionClearInput clears the input line.
	ActionClearInput
	// ActionClearAll clears the stack, history, and input.
	ActionClearAll
	// ActionDrop removes the top stack entry.
	ActionDrop
	// ActionSwap exchanges the top two stack entries.
	ActionSwap
	// ActionNegate negates the top stack entry or the input.
	ActionNegate
	// ActionToggleAngle switches between radians and degrees.
	ActionToggleAngle
	// ActionCycleBase cycles decimal, hexadecimal, and binary display.
	ActionCycleBase
	// ActionToggleComplex switches complex display between
	// rectangular and polar.
	ActionToggleComplex
	// ActionToggleInput switches between RPN and infix entry.
	ActionToggleInput
	// ActionToggleAbbrev toggles large-number abbreviation.
	ActionToggleAbbrev
	// ActionStackUp moves the stack cursor toward the top entry.
	ActionStackUp
	// ActionStackDown moves the stack cursor toward older entries.
	ActionStackDown
	// ActionHistoryUp recalls older history lines into the input.
	ActionHistoryUp
	// ActionHistoryDown recalls newer history lines into the input.
	ActionHistoryDown
	// ActionCycleTheme switches to the next color theme.
	ActionCycleTheme
	// ActionRedraw repaints the whole screen.
	ActionRedraw
)

// String returns the action name used in logs.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionQuit:
		return "quit"
	case ActionToggleHelp:
		return "toggle-help"
	case ActionEnter:
		return "enter"
	case ActionBackspace:
		return "backspace"
	case ActionClearInput:
		return "clear-input"
	case ActionClearAll:
		return "clear-all"
	case ActionDrop:
		return "drop"
	case ActionSwap:
		return "swap"
	case ActionNegate:
		return "negate"
	case ActionToggleAngle:
		return "toggle-angle"
	case ActionCycleBase:
		return "cycle-base"
	case ActionToggleComplex:
		return "toggle-complex"
	case ActionToggleInput:
		return "toggle-input"
	case ActionToggleAbbrev:
		return "toggle-abbreviation"
	case ActionStackUp:
		return "stack-up"
	case ActionStackDown:
		return "stack-down"
	case ActionHistoryUp:
		return "history-up"
	case ActionHistoryDown:
		return "history-down"
	case ActionCycleTheme:
		return "cycle-theme"
	case ActionRedraw:
		return "redraw"
	default:
		return "unknown"
	}
}
