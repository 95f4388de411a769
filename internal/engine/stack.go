package engine

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dshills/calcstorm/internal/expr"
	"github.com/dshills/calcstorm/internal/value"
)

// pushEntry appends a stack entry, evicting the oldest when at
// capacity.
func (e *Engine) pushEntry(entry Entry) {
	if len(e.stack) >= e.maxStack {
		excess := len(e.stack) - e.maxStack + 1
		e.stack = e.stack[excess:]
	}
	e.stack = append(e.stack, entry)
}

// Drop removes the top stack entry and clamps the browse cursor.
func (e *Engine) Drop() {
	if len(e.stack) == 0 {
		return
	}
	e.stack = e.stack[:len(e.stack)-1]
	limit := len(e.stack) - 1
	if limit < 0 {
		limit = 0
	}
	if e.stackPos > limit {
		e.stackPos = limit
	}
}

// Swap exchanges the top two stack entries.
func (e *Engine) Swap() {
	if len(e.stack) < 2 {
		return
	}
	last := len(e.stack) - 1
	e.stack[last], e.stack[last-1] = e.stack[last-1], e.stack[last]
}

// Duplicate pushes a copy of the top stack entry.
func (e *Engine) Duplicate() {
	if len(e.stack) == 0 {
		return
	}
	e.pushEntry(e.stack[len(e.stack)-1])
}

// Negate flips the sign of the top stack entry, or of the number in
// the input buffer when the stack is empty. A buffer that does not
// parse as a plain decimal number is left alone.
func (e *Engine) Negate() {
	if n := len(e.stack); n > 0 {
		e.stack[n-1].Result = e.stack[n-1].Result.Negate()
		return
	}
	if e.input == "" {
		return
	}
	if num, err := strconv.ParseFloat(e.input, 64); err == nil {
		e.input = strconv.FormatFloat(-num, 'f', -1, 64)
	}
}

// BrowseStackUp moves the stack cursor one level toward the top
// entry.
func (e *Engine) BrowseStackUp() {
	if e.stackPos > 0 {
		e.stackPos--
	}
}

// BrowseStackDown moves the stack cursor one level away from the top,
// toward older entries.
func (e *Engine) BrowseStackDown() {
	if e.stackPos < len(e.stack)-1 {
		e.stackPos++
	}
}

// Add applies + to the top two stack entries.
func (e *Engine) Add() {
	e.binaryOp('+', func(a, b float64) float64 { return a + b })
}

// Subtract applies - to the top two stack entries.
func (e *Engine) Subtract() {
	e.binaryOp('-', func(a, b float64) float64 { return a - b })
}

// Multiply applies * to the top two stack entries.
func (e *Engine) Multiply() {
	e.binaryOp('*', func(a, b float64) float64 { return a * b })
}

// Power raises the second entry to the top entry.
func (e *Engine) Power() {
	e.binaryOp('^', math.Pow)
}

// Divide divides the second entry by the top entry. A zero divisor
// fails with the operands left in place.
func (e *Engine) Divide() {
	a, b, ok := e.top2()
	if !ok {
		e.err = ErrStackUnderflow
		return
	}
	if a.Result.IsComplex() || b.Result.IsComplex() {
		e.err = ErrComplexDivision
		return
	}
	x, _ := a.Result.AsReal()
	y, _ := b.Result.AsReal()
	if y == 0 {
		e.err = expr.ErrDivisionByZero
		return
	}
	e.replaceTop2('/', a, b, x/y)
}

// binaryOp combines the top two stack entries with a real operator,
// synthesizing the entry expression "(a op b)". Complex operands fail
// with everything left in place.
func (e *Engine) binaryOp(op byte, fn func(a, b float64) float64) {
	a, b, ok := e.top2()
	if !ok {
		e.err = ErrStackUnderflow
		return
	}
	if a.Result.IsComplex() || b.Result.IsComplex() {
		e.err = ErrComplexArithmetic
		return
	}
	x, _ := a.Result.AsReal()
	y, _ := b.Result.AsReal()
	e.replaceTop2(op, a, b, fn(x, y))
}

// top2 returns the second-from-top and top entries without popping.
func (e *Engine) top2() (a, b Entry, ok bool) {
	if len(e.stack) < 2 {
		return Entry{}, Entry{}, false
	}
	return e.stack[len(e.stack)-2], e.stack[len(e.stack)-1], true
}

// replaceTop2 pops the two operands and pushes the combined result,
// recording the new expression in the history.
func (e *Engine) replaceTop2(op byte, a, b Entry, result float64) {
	e.stack = e.stack[:len(e.stack)-2]
	v := value.Real(result)
	expression := fmt.Sprintf("(%s %c %s)", a.Expr, op, b.Expr)
	e.pushEntry(Entry{Expr: expression, Result: v})
	e.logHistory(expression + " = " + e.formatValue(v))
	e.err = nil
}
