package engine

import (
	"fmt"
	"slices"

	"github.com/dshills/calcstorm/internal/value"
)

// DefaultLimit bounds both the value stack and the history log.
const DefaultLimit = 1000

// Entry is one value on the calculator stack, pairing the text that
// produced the value with the value itself.
type Entry struct {
	Expr   string
	Result value.Value
}

// Engine is the calculator state machine. It is not safe for
// concurrent use; a single event loop owns it.
type Engine struct {
	input      string
	stack      []Entry
	history    []string
	stackPos   int
	historyPos int
	err        error
	showHelp   bool

	inputMode  InputMode
	angle      value.Angle
	base       value.Base
	layout     value.Layout
	abbreviate bool

	maxStack   int
	maxHistory int
}

// Option configures an Engine.
type Option func(*Engine)

// WithStackLimit caps the value stack depth.
// Non-positive values keep the default.
func WithStackLimit(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxStack = n
		}
	}
}

// WithHistoryLimit caps the history length.
// Non-positive values keep the default.
func WithHistoryLimit(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxHistory = n
		}
	}
}

// WithInputMode sets the starting input mode.
func WithInputMode(m InputMode) Option {
	return func(e *Engine) { e.inputMode = m }
}

// WithAngle sets the starting angle unit.
func WithAngle(a value.Angle) Option {
	return func(e *Engine) { e.angle = a }
}

// WithBase sets the starting numeric base.
func WithBase(b value.Base) Option {
	return func(e *Engine) { e.base = b }
}

// WithLayout sets the starting complex display layout.
func WithLayout(l value.Layout) Option {
	return func(e *Engine) { e.layout = l }
}

// WithAbbreviation sets the starting abbreviation flag.
func WithAbbreviation(on bool) Option {
	return func(e *Engine) { e.abbreviate = on }
}

// New returns an empty engine. The defaults are RPN input, radians,
// decimal, rectangular complex display, and abbreviation off.
func New(opts ...Option) *Engine {
	e := &Engine{
		maxStack:   DefaultLimit,
		maxHistory: DefaultLimit,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Enter commits the input buffer. An empty buffer duplicates the top
// stack entry. In RPN mode the buffer is parsed as one number in the
// active base, with a recall shortcut against the history; in infix
// mode the buffer is evaluated as a whole expression.
func (e *Engine) Enter() {
	if e.input == "" {
		e.Duplicate()
		return
	}
	if e.inputMode == RPN {
		e.commitNumber()
		return
	}
	e.commitExpression()
}

// PushValue pushes a computed value with the expression that produced
// it, recording "<expr> = <result>" in the history.
func (e *Engine) PushValue(expression string, v value.Value) {
	e.pushEntry(Entry{Expr: expression, Result: v})
	e.logHistory(expression + " = " + e.formatValue(v))
	e.err = nil
}

// pushNumber pushes a raw numeric entry, recording the bare text.
func (e *Engine) pushNumber(text string, v value.Value) {
	e.pushEntry(Entry{Expr: text, Result: v})
	e.logHistory(text)
	e.err = nil
}

// formatValue renders v per the current display modes.
func (e *Engine) formatValue(v value.Value) string {
	return value.Format(v, e.formatOptions())
}

func (e *Engine) formatOptions() value.Options {
	return value.Options{
		Angle:      e.angle,
		Base:       e.base,
		Layout:     e.layout,
		Abbreviate: e.abbreviate,
	}
}

// Input returns the current input buffer.
func (e *Engine) Input() string { return e.input }

// Err returns the error slot contents, nil when clear.
func (e *Engine) Err() error { return e.err }

// ErrorMessage returns the display text of the current error.
func (e *Engine) ErrorMessage() (string, bool) {
	if e.err == nil {
		return "", false
	}
	return e.err.Error(), true
}

// Top returns the newest stack entry.
func (e *Engine) Top() (Entry, bool) {
	if len(e.stack) == 0 {
		return Entry{}, false
	}
	return e.stack[len(e.stack)-1], true
}

// StackLen returns the stack depth.
func (e *Engine) StackLen() int { return len(e.stack) }

// HistoryLen returns the number of history lines.
func (e *Engine) HistoryLen() int { return len(e.history) }

// StackPosition returns the stack browse cursor as a level from the
// top entry, where 0 is the top.
func (e *Engine) StackPosition() int { return e.stackPos }

// HistoryPosition returns the history browse cursor. A value equal to
// HistoryLen means no line is selected.
func (e *Engine) HistoryPosition() int { return e.historyPos }

// ShowHelp reports whether the help overlay is open.
func (e *Engine) ShowHelp() bool { return e.showHelp }

// StackLine is one stack row prepared for display.
type StackLine struct {
	Expr   string
	Result string
}

// StackSnapshot returns the stack oldest-first, with results formatted
// per the current display modes.
func (e *Engine) StackSnapshot() []StackLine {
	opts := e.formatOptions()
	lines := make([]StackLine, len(e.stack))
	for i, entry := range e.stack {
		lines[i] = StackLine{Expr: entry.Expr, Result: value.Format(entry.Result, opts)}
	}
	return lines
}

// HistorySnapshot returns a copy of the history, oldest first.
func (e *Engine) HistorySnapshot() []string {
	return slices.Clone(e.history)
}

// CurrentValue returns the status row text: the input buffer when one
// is being typed, otherwise the formatted top of stack.
func (e *Engine) CurrentValue() (string, bool) {
	if e.input != "" {
		return e.input, true
	}
	if top, ok := e.Top(); ok {
		return e.formatValue(top.Result), true
	}
	return "", false
}

// ModeSummary renders the mode bar text.
func (e *Engine) ModeSummary() string {
	return fmt.Sprintf("input: %s angle: %s base: %s complex: %s",
		e.inputMode, e.angle, e.base, e.layout)
}
