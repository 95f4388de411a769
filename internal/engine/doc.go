// Package engine implements the calculator's state machine: the value
// stack, the history log, the input buffer, the display modes, and the
// single error slot they share.
//
// # State
//
// An Engine owns five pieces of state:
//   - the input buffer being typed
//   - the value stack of Entry pairs (expression text + value)
//   - the history log of committed lines
//   - browse cursors into the stack and history
//   - one error slot holding the most recent failure
//
// The stack and history are both bounded; pushing past the bound
// evicts the oldest entry first. The error slot is overwritten by
// failures and cleared by any successful mutation or input edit.
// Failed operations roll back: they leave the stack, history, and
// buffer exactly as they were, except that a failed infix evaluation
// keeps the buffer for editing.
//
// # Input modes
//
// In RPN mode Enter commits the buffer as one number in the active
// base, and typing an operator first commits any pending buffer and
// then applies the operator to the top two stack entries. In infix
// mode operators buffer like digits and Enter evaluates the whole
// expression through the expr package.
//
//	e := engine.New()
//	e.PushChar('5')
//	e.Enter()
//	e.PushChar('3')
//	e.PushChar('+') // commits 3, then adds
//
// An Engine is not safe for concurrent use. It is owned by the event
// loop that feeds it; renderers read it between events.
package engine
