package app

import (
	"github.com/dshills/calcstorm/internal/input"
	"github.com/dshills/calcstorm/internal/renderer/backend"
	"github.com/dshills/calcstorm/internal/value"
)

// handleEvent routes one backend event.
func (app *Application) handleEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventResize:
		app.renderer.Refresh()
	case backend.EventKey:
		return app.handleKey(ev)
	}
	return nil
}

// handleKey dispatches a key event. While the help overlay is open
// only help and quit keys are honored. In hexadecimal base the digit
// letters win over character bindings, so "c" extends the input
// instead of clearing it.
func (app *Application) handleKey(ev backend.Event) error {
	if app.engine.ShowHelp() {
		return app.handleHelpKey(ev)
	}

	if ev.Key == backend.KeyRune && isHexLetter(ev.Rune) && app.engine.Base() == value.Hexadecimal {
		app.engine.PushChar(ev.Rune)
		return nil
	}

	if b, ok := app.keymap.Resolve(ev); ok {
		return app.apply(b.Action)
	}

	if ev.Key == backend.KeyRune && input.EntryRune(ev.Rune) {
		app.engine.PushChar(ev.Rune)
	}
	return nil
}

// handleHelpKey handles keys while the help overlay is open. Escape
// closes the overlay instead of quitting.
func (app *Application) handleHelpKey(ev backend.Event) error {
	if ev.Key == backend.KeyEscape {
		app.engine.ToggleHelp()
		return nil
	}

	b, ok := app.keymap.Resolve(ev)
	if !ok {
		return nil
	}
	switch b.Action {
	case input.ActionQuit:
		return ErrQuit
	case input.ActionToggleHelp:
		app.engine.ToggleHelp()
	}
	return nil
}

// apply executes a resolved action against the engine.
func (app *Application) apply(action input.Action) error {
	app.logger.Debug("action %s", action)

	switch action {
	case input.ActionQuit:
		return ErrQuit
	case input.ActionToggleHelp:
		app.engine.ToggleHelp()
	case input.ActionEnter:
		app.engine.Enter()
	case input.ActionBackspace:
		app.engine.Backspace()
	case input.ActionClearInput:
		app.engine.ClearInput()
	case input.ActionClearAll:
		app.engine.ClearAll()
	case input.ActionDrop:
		app.engine.Drop()
	case input.ActionSwap:
		app.engine.Swap()
	case input.ActionNegate:
		app.engine.Negate()
	case input.ActionToggleAngle:
		app.engine.ToggleAngleMode()
	case input.ActionCycleBase:
		app.engine.CycleBaseMode()
	case input.ActionToggleComplex:
		app.engine.ToggleComplexMode()
	case input.ActionToggleInput:
		app.engine.ToggleInputMode()
	case input.ActionToggleAbbrev:
		app.engine.ToggleAbbreviation()
	case input.ActionStackUp:
		app.engine.BrowseStackUp()
	case input.ActionStackDown:
		app.engine.BrowseStackDown()
	case input.ActionHistoryUp:
		app.engine.BrowseHistoryUp()
	case input.ActionHistoryDown:
		app.engine.BrowseHistoryDown()
	case input.ActionCycleTheme:
		app.cycleTheme()
	case input.ActionRedraw:
		app.renderer.Refresh()
	}
	return nil
}

// cycleTheme advances the active theme and persists the choice.
func (app *Application) cycleTheme() {
	t := app.themes.Cycle()
	if err := app.prefs.SaveThemeName(t.Name); err != nil {
		app.logger.WithComponent("theme").Warn("saving preference: %v", err)
	}
	app.logger.WithField("theme", t.Name).Debug("theme changed")
}

// isHexLetter reports whether ch is a hexadecimal digit letter.
func isHexLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
