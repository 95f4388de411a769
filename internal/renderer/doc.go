// Package renderer provides the display layer for the calculator.
//
// The renderer is responsible for:
//   - Drawing engine state into the five fixed screen regions
//   - Bordered boxes with titles, styled from the active theme
//   - The stack browse highlight and input cursor
//   - The modal help overlay generated from the live keymap
//   - Backend abstraction for terminal output and tests
//
// Screen layout:
//
//	┌ Calculator ─────────────────┐  3 rows, mode summary
//	├ Stack (n items) ────────────┤  flexible, newest entry first
//	├ Input ──────────────────────┤  3 rows, live input buffer
//	├ Status ─────────────────────┤  3 rows, error or current value
//	└ Quick Help ─────────────────┘  6 rows, key reference
//
// Usage:
//
//	b, _ := backend.NewTerminal()
//	r := renderer.New(b, themes, keymap)
//	r.Draw(engine)
package renderer
