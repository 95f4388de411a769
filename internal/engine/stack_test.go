package engine

import (
	"errors"
	"testing"

	"github.com/dshills/calcstorm/internal/expr"
	"github.com/dshills/calcstorm/internal/value"
)

func TestStackEviction(t *testing.T) {
	e := New(WithStackLimit(3))
	for _, s := range []string{"1", "2", "3", "4"} {
		enterNumber(t, e, s)
	}

	if e.StackLen() != 3 {
		t.Fatalf("StackLen() = %d, want 3", e.StackLen())
	}
	lines := e.StackSnapshot()
	if lines[0].Expr != "2" || lines[2].Expr != "4" {
		t.Errorf("stack = %v, want oldest entry 1 evicted", lines)
	}
}

func TestDrop(t *testing.T) {
	e := New()
	e.Drop() // no-op on empty stack
	if e.StackLen() != 0 || e.Err() != nil {
		t.Error("drop on empty stack should do nothing")
	}

	enterNumber(t, e, "1")
	enterNumber(t, e, "2")
	e.Drop()

	if e.StackLen() != 1 {
		t.Fatalf("StackLen() = %d, want 1", e.StackLen())
	}
	if top, _ := e.Top(); top.Expr != "1" {
		t.Errorf("top = %q, want 1", top.Expr)
	}
}

func TestDropClampsCursor(t *testing.T) {
	e := New()
	for _, s := range []string{"1", "2", "3"} {
		enterNumber(t, e, s)
	}
	e.BrowseStackDown()
	e.BrowseStackDown()
	if e.StackPosition() != 2 {
		t.Fatalf("StackPosition() = %d, want 2", e.StackPosition())
	}

	e.Drop()
	if e.StackPosition() != 1 {
		t.Errorf("StackPosition() = %d, want clamped to 1", e.StackPosition())
	}

	e.Drop()
	e.Drop()
	if e.StackPosition() != 0 {
		t.Errorf("StackPosition() = %d, want 0 on empty stack", e.StackPosition())
	}
}

func TestSwap(t *testing.T) {
	e := New()
	enterNumber(t, e, "1")
	e.Swap() // no-op with one entry
	if top, _ := e.Top(); top.Expr != "1" {
		t.Error("swap with one entry should do nothing")
	}

	enterNumber(t, e, "2")
	e.Swap()
	lines := e.StackSnapshot()
	if lines[0].Expr != "2" || lines[1].Expr != "1" {
		t.Errorf("stack = %v, want swapped order", lines)
	}
}

func TestDuplicate(t *testing.T) {
	e := New()
	e.Duplicate() // no-op on empty stack
	if e.StackLen() != 0 {
		t.Error("duplicate on empty stack should do nothing")
	}

	enterNumber(t, e, "7")
	e.Duplicate()
	if e.StackLen() != 2 {
		t.Fatalf("StackLen() = %d, want 2", e.StackLen())
	}
	lines := e.StackSnapshot()
	if lines[0].Expr != "7" || lines[1].Expr != "7" {
		t.Errorf("stack = %v, want two copies", lines)
	}
}

func TestNegateTop(t *testing.T) {
	e := New()
	enterNumber(t, e, "5")
	e.Negate()
	if lines := e.StackSnapshot(); lines[0].Result != "-5" {
		t.Errorf("negated top = %q, want -5", lines[0].Result)
	}

	e.Negate()
	if lines := e.StackSnapshot(); lines[0].Result != "5" {
		t.Errorf("double negation = %q, want 5", lines[0].Result)
	}
}

func TestNegateComplexTop(t *testing.T) {
	e := New()
	e.PushValue("c", value.Complex(3, -4))
	e.Negate()

	top, _ := e.Top()
	re, im := top.Result.Rect()
	if re != -3 || im != 4 {
		t.Errorf("negated complex = %v, %v, want -3, 4", re, im)
	}
	if !top.Result.IsComplex() {
		t.Error("negation should preserve the complex tag")
	}
}

func TestNegateInputBuffer(t *testing.T) {
	e := New()
	typeString(e, "3.5")
	e.Negate()
	if e.Input() != "-3.5" {
		t.Errorf("input = %q, want -3.5", e.Input())
	}

	e.Negate()
	if e.Input() != "3.5" {
		t.Errorf("input = %q, want 3.5", e.Input())
	}
}

func TestNegateUnparseableBufferUnchanged(t *testing.T) {
	e := New(WithBase(value.Hexadecimal))
	typeString(e, "FF")
	e.Negate()
	if e.Input() != "FF" {
		t.Errorf("input = %q, want unchanged FF", e.Input())
	}
}

func TestBinaryOps(t *testing.T) {
	tests := []struct {
		name string
		op   rune
		a, b string
		want string
	}{
		{"add", '+', "5", "3", "8"},
		{"subtract", '-', "5", "3", "2"},
		{"multiply", '*', "5", "3", "15"},
		{"divide", '/', "6", "3", "2"},
		{"power", '^', "2", "10", "1024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New()
			enterNumber(t, e, tt.a)
			enterNumber(t, e, tt.b)
			e.PushChar(tt.op)

			if err := e.Err(); err != nil {
				t.Fatalf("Err() = %v", err)
			}
			if e.StackLen() != 1 {
				t.Fatalf("StackLen() = %d, want 1", e.StackLen())
			}
			lines := e.StackSnapshot()
			if lines[0].Result != tt.want {
				t.Errorf("result = %q, want %q", lines[0].Result, tt.want)
			}
			wantExpr := "(" + tt.a + " " + string(tt.op) + " " + tt.b + ")"
			if lines[0].Expr != wantExpr {
				t.Errorf("expression = %q, want %q", lines[0].Expr, wantExpr)
			}
		})
	}
}

func TestBinaryOpLogsHistory(t *testing.T) {
	e := New()
	enterNumber(t, e, "5")
	enterNumber(t, e, "3")
	e.PushChar('+')

	h := e.HistorySnapshot()
	if len(h) != 3 || h[2] != "(5 + 3) = 8" {
		t.Errorf("history = %v, want final line (5 + 3) = 8", h)
	}
}

func TestDivideByZeroRestoresOperands(t *testing.T) {
	e := New()
	enterNumber(t, e, "5")
	enterNumber(t, e, "0")
	e.PushChar('/')

	if !errors.Is(e.Err(), expr.ErrDivisionByZero) {
		t.Errorf("Err() = %v, want ErrDivisionByZero", e.Err())
	}
	lines := e.StackSnapshot()
	if len(lines) != 2 || lines[0].Expr != "5" || lines[1].Expr != "0" {
		t.Errorf("stack = %v, want both operands in place", lines)
	}
	if e.HistoryLen() != 2 {
		t.Error("failed division should not log history")
	}
}

func TestBinaryOpUnderflow(t *testing.T) {
	e := New()
	e.PushChar('+')
	if !errors.Is(e.Err(), ErrStackUnderflow) {
		t.Errorf("Err() = %v, want ErrStackUnderflow", e.Err())
	}

	enterNumber(t, e, "5")
	e.PushChar('+')
	if !errors.Is(e.Err(), ErrStackUnderflow) {
		t.Errorf("Err() = %v, want ErrStackUnderflow", e.Err())
	}
	if e.StackLen() != 1 {
		t.Errorf("StackLen() = %d, want the lone operand kept", e.StackLen())
	}
}

func TestBinaryOpRejectsComplex(t *testing.T) {
	e := New()
	e.PushValue("c", value.Complex(1, 2))
	e.PushValue("r", value.Real(3))

	e.PushChar('+')
	if !errors.Is(e.Err(), ErrComplexArithmetic) {
		t.Errorf("Err() = %v, want ErrComplexArithmetic", e.Err())
	}
	if e.StackLen() != 2 {
		t.Errorf("StackLen() = %d, want operands restored", e.StackLen())
	}

	e.PushChar('/')
	if !errors.Is(e.Err(), ErrComplexDivision) {
		t.Errorf("Err() = %v, want ErrComplexDivision", e.Err())
	}
	lines := e.StackSnapshot()
	if len(lines) != 2 || lines[0].Expr != "c" || lines[1].Expr != "r" {
		t.Errorf("stack = %v, want operand order preserved", lines)
	}
}

func TestBrowseStackClamps(t *testing.T) {
	e := New()
	e.BrowseStackUp()
	e.BrowseStackDown()
	if e.StackPosition() != 0 {
		t.Error("browsing an empty stack should stay at 0")
	}

	for _, s := range []string{"1", "2", "3"} {
		enterNumber(t, e, s)
	}
	for i := 0; i < 5; i++ {
		e.BrowseStackDown()
	}
	if e.StackPosition() != 2 {
		t.Errorf("StackPosition() = %d, want clamped to 2", e.StackPosition())
	}
	for i := 0; i < 5; i++ {
		e.BrowseStackUp()
	}
	if e.StackPosition() != 0 {
		t.Errorf("StackPosition() = %d, want clamped to 0", e.StackPosition())
	}
}
