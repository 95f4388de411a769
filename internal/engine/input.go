package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dshills/calcstorm/internal/expr"
	"github.com/dshills/calcstorm/internal/value"
)

// PushChar routes one typed character. In RPN mode operators dispatch
// immediately; all other characters append to the input buffer after
// validation against the active base.
func (e *Engine) PushChar(ch rune) {
	if e.inputMode == RPN && strings.ContainsRune("+-*/^", ch) {
		e.submitOperator(byte(ch))
		return
	}
	if !e.validForEntry(ch) {
		e.err = fmt.Errorf("invalid character %q for current base mode", ch)
		return
	}
	e.input += string(ch)
	e.err = nil
}

// validForEntry reports whether ch may join the input buffer. Infix
// mode accepts operators and parentheses anywhere; digits follow the
// active base, with the 0x/0b prefix letters allowed in their bases.
func (e *Engine) validForEntry(ch rune) bool {
	if e.inputMode == Infix && strings.ContainsRune("+-*/^()", ch) {
		return true
	}
	switch e.base {
	case value.Hexadecimal:
		return isHexDigit(ch) || ch == '.' || ch == 'x' || ch == 'X'
	case value.Binary:
		return ch == '0' || ch == '1' || ch == 'b' || ch == 'B'
	default:
		return ch >= '0' && ch <= '9' || ch == '.'
	}
}

func isHexDigit(ch rune) bool {
	switch {
	case ch >= '0' && ch <= '9':
		return true
	case ch >= 'a' && ch <= 'f':
		return true
	case ch >= 'A' && ch <= 'F':
		return true
	}
	return false
}

// submitOperator commits any pending numeric buffer, then applies the
// operator to the top two stack entries. A failed commit leaves the
// error set and skips the operator.
func (e *Engine) submitOperator(op byte) {
	if e.input != "" && !e.commitNumber() {
		return
	}
	switch op {
	case '+':
		e.Add()
	case '-':
		e.Subtract()
	case '*':
		e.Multiply()
	case '/':
		e.Divide()
	case '^':
		e.Power()
	}
}

// commitNumber parses the input buffer as one number in the active
// base and pushes it, honoring the history recall shortcut. It
// reports whether the commit succeeded.
func (e *Engine) commitNumber() bool {
	text := strings.TrimSpace(e.input)

	if recorded, ok := e.recallResult(text); ok {
		if v, err := e.parseNumber(recorded); err == nil {
			e.pushNumber(text, v)
			e.input = ""
			return true
		}
		// The recorded result no longer parses in this base; fall
		// through to parsing the typed text.
	}

	v, err := e.parseNumber(text)
	if err != nil {
		e.err = err
		return false
	}
	e.pushNumber(text, v)
	e.input = ""
	return true
}

// commitExpression evaluates the buffered infix expression. On failure
// the buffer is kept for editing.
func (e *Engine) commitExpression() {
	result, err := expr.Eval(e.input)
	if err != nil {
		e.err = err
		return
	}
	v := value.Real(result)
	e.pushEntry(Entry{Expr: e.input, Result: v})
	e.logHistory(e.input + " = " + e.formatValue(v))
	e.input = ""
	e.err = nil
}

// parseNumber parses text as a single number in the active base.
// Hexadecimal and binary accept an optional 0x/0b prefix in either
// case.
func (e *Engine) parseNumber(text string) (value.Value, error) {
	text = strings.TrimSpace(text)
	switch e.base {
	case value.Hexadecimal:
		return parseIntBase(text, "0x", 16)
	case value.Binary:
		return parseIntBase(text, "0b", 2)
	default:
		num, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return value.Value{}, expr.ErrInvalidExpression
		}
		return value.Real(num), nil
	}
}

func parseIntBase(text, prefix string, base int) (value.Value, error) {
	if len(text) >= 2 && strings.EqualFold(text[:2], prefix) {
		text = text[2:]
	}
	n, err := strconv.ParseInt(text, base, 64)
	if err != nil {
		return value.Value{}, ErrInvalidBase
	}
	return value.Real(float64(n)), nil
}

// Backspace deletes the final character of the input buffer and
// clears the error slot.
func (e *Engine) Backspace() {
	if e.input != "" {
		_, size := utf8.DecodeLastRuneInString(e.input)
		e.input = e.input[:len(e.input)-size]
	}
	e.err = nil
}

// ClearInput empties the input buffer and the error slot.
func (e *Engine) ClearInput() {
	e.input = ""
	e.err = nil
}

// ClearAll resets the stack, history, input, cursors, and error in one
// step. Display modes are preserved.
func (e *Engine) ClearAll() {
	e.input = ""
	e.stack = nil
	e.history = nil
	e.err = nil
	e.stackPos = 0
	e.historyPos = 0
}
