package engine

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dshills/calcstorm/internal/expr"
	"github.com/dshills/calcstorm/internal/value"
)

// typeString feeds each character to the engine.
func typeString(e *Engine, s string) {
	for _, ch := range s {
		e.PushChar(ch)
	}
}

// enterNumber types a number and commits it.
func enterNumber(t *testing.T, e *Engine, s string) {
	t.Helper()
	typeString(e, s)
	e.Enter()
	if err := e.Err(); err != nil {
		t.Fatalf("committing %q: %v", s, err)
	}
}

func TestNewDefaults(t *testing.T) {
	e := New()
	if e.Mode() != RPN {
		t.Errorf("Mode() = %v, want RPN", e.Mode())
	}
	if e.Angle() != value.Radians || e.Base() != value.Decimal || e.Layout() != value.Rectangular {
		t.Error("display modes should default to radians, decimal, rectangular")
	}
	if e.Abbreviating() {
		t.Error("abbreviation should default off")
	}
	if e.StackLen() != 0 || e.HistoryLen() != 0 || e.Input() != "" || e.Err() != nil {
		t.Error("new engine should be empty")
	}
}

func TestOptions(t *testing.T) {
	e := New(
		WithInputMode(Infix),
		WithAngle(value.Degrees),
		WithBase(value.Hexadecimal),
		WithLayout(value.Polar),
		WithAbbreviation(true),
	)
	if e.Mode() != Infix || e.Angle() != value.Degrees || e.Base() != value.Hexadecimal ||
		e.Layout() != value.Polar || !e.Abbreviating() {
		t.Error("options should set the starting modes")
	}
}

func TestRPNEnterPushesNumber(t *testing.T) {
	e := New()
	enterNumber(t, e, "42")

	if e.StackLen() != 1 {
		t.Fatalf("StackLen() = %d, want 1", e.StackLen())
	}
	top, _ := e.Top()
	if top.Expr != "42" {
		t.Errorf("top expression = %q, want %q", top.Expr, "42")
	}
	if got, _ := top.Result.AsReal(); got != 42 {
		t.Errorf("top value = %v, want 42", got)
	}
	if e.Input() != "" {
		t.Errorf("input should clear after enter, got %q", e.Input())
	}
	if h := e.HistorySnapshot(); len(h) != 1 || h[0] != "42" {
		t.Errorf("history = %v, want [42]", h)
	}
	if e.HistoryPosition() != 1 {
		t.Errorf("HistoryPosition() = %d, want 1", e.HistoryPosition())
	}
}

func TestRPNEnterEmptyDuplicatesTop(t *testing.T) {
	e := New()
	enterNumber(t, e, "5")
	e.Enter()

	if e.StackLen() != 2 {
		t.Fatalf("StackLen() = %d, want 2", e.StackLen())
	}
	lines := e.StackSnapshot()
	if lines[0].Result != "5" || lines[1].Result != "5" {
		t.Errorf("stack = %v, want two fives", lines)
	}
	if e.HistoryLen() != 1 {
		t.Errorf("duplicate should not log history, got %d lines", e.HistoryLen())
	}
}

func TestRPNEnterHexadecimal(t *testing.T) {
	e := New(WithBase(value.Hexadecimal))

	enterNumber(t, e, "FF")
	enterNumber(t, e, "0xFF")

	lines := e.StackSnapshot()
	if len(lines) != 2 || lines[0].Result != "0xFF" || lines[1].Result != "0xFF" {
		t.Errorf("stack = %v, want two 0xFF entries", lines)
	}
	if h := e.HistorySnapshot(); h[0] != "FF" || h[1] != "0xFF" {
		t.Errorf("history = %v, want bare typed text", h)
	}
}

func TestRPNEnterBinary(t *testing.T) {
	e := New(WithBase(value.Binary))
	enterNumber(t, e, "0b101")

	top, _ := e.Top()
	if got, _ := top.Result.AsReal(); got != 5 {
		t.Errorf("top value = %v, want 5", got)
	}
}

func TestRPNEnterInvalidBase(t *testing.T) {
	e := New(WithBase(value.Binary))
	typeString(e, "b")
	e.Enter()

	if !errors.Is(e.Err(), ErrInvalidBase) {
		t.Errorf("Err() = %v, want ErrInvalidBase", e.Err())
	}
	if e.StackLen() != 0 {
		t.Error("failed commit should not push")
	}
	if e.Input() != "b" {
		t.Errorf("failed commit should keep input, got %q", e.Input())
	}
}

func TestInfixEnterEvaluates(t *testing.T) {
	e := New(WithInputMode(Infix))
	typeString(e, "2+3*4")
	e.Enter()

	if err := e.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
	top, _ := e.Top()
	if top.Expr != "2+3*4" {
		t.Errorf("top expression = %q, want %q", top.Expr, "2+3*4")
	}
	if got, _ := top.Result.AsReal(); got != 14 {
		t.Errorf("top value = %v, want 14", got)
	}
	if h := e.HistorySnapshot(); len(h) != 1 || h[0] != "2+3*4 = 14" {
		t.Errorf("history = %v, want [2+3*4 = 14]", h)
	}
	if e.Input() != "" {
		t.Errorf("input should clear after evaluation, got %q", e.Input())
	}
}

func TestInfixEnterKeepsInputOnError(t *testing.T) {
	e := New(WithInputMode(Infix))
	typeString(e, "2+")
	e.Enter()

	if !errors.Is(e.Err(), expr.ErrInvalidExpression) {
		t.Errorf("Err() = %v, want ErrInvalidExpression", e.Err())
	}
	if e.Input() != "2+" {
		t.Errorf("input = %q, want kept for editing", e.Input())
	}
	if e.StackLen() != 0 || e.HistoryLen() != 0 {
		t.Error("failed evaluation should not touch stack or history")
	}
}

func TestInfixMismatchedParens(t *testing.T) {
	e := New(WithInputMode(Infix))

	typeString(e, "(2+3")
	e.Enter()
	if !errors.Is(e.Err(), expr.ErrMismatchedParens) {
		t.Errorf("Err() = %v, want ErrMismatchedParens", e.Err())
	}

	e.ClearInput()
	typeString(e, "2+3)")
	e.Enter()
	if !errors.Is(e.Err(), expr.ErrMismatchedParens) {
		t.Errorf("Err() = %v, want ErrMismatchedParens", e.Err())
	}
}

func TestRPNRecallShortcut(t *testing.T) {
	e := New()
	// Seed a history line whose recorded result differs from its
	// expression text.
	e.PushValue("99", value.Real(123))
	e.Drop()

	typeString(e, "99")
	e.Enter()

	top, _ := e.Top()
	if got, _ := top.Result.AsReal(); got != 123 {
		t.Errorf("recall pushed %v, want the recorded result 123", got)
	}
}

func TestRPNRecallPrefersNewest(t *testing.T) {
	e := New()
	e.PushValue("7", value.Real(111))
	e.PushValue("7", value.Real(222))

	typeString(e, "7")
	e.Enter()

	top, _ := e.Top()
	if got, _ := top.Result.AsReal(); got != 222 {
		t.Errorf("recall pushed %v, want the newest recorded result 222", got)
	}
}

func TestRPNRecallFallsThroughOnBadResult(t *testing.T) {
	e := New()
	e.PushValue("77", value.Complex(1, 2))
	e.Drop()

	typeString(e, "77")
	e.Enter()

	if err := e.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
	top, _ := e.Top()
	if got, _ := top.Result.AsReal(); got != 77 {
		t.Errorf("fallthrough pushed %v, want the typed number 77", got)
	}
}

func TestPushValueRecordsHistory(t *testing.T) {
	e := New()
	e.PushValue("sum", value.Real(8))

	if h := e.HistorySnapshot(); len(h) != 1 || h[0] != "sum = 8" {
		t.Errorf("history = %v, want [sum = 8]", h)
	}
	if e.StackLen() != 1 {
		t.Errorf("StackLen() = %d, want 1", e.StackLen())
	}
}

func TestCurrentValue(t *testing.T) {
	e := New()
	if _, ok := e.CurrentValue(); ok {
		t.Error("empty engine should report no current value")
	}

	typeString(e, "12")
	if got, ok := e.CurrentValue(); !ok || got != "12" {
		t.Errorf("CurrentValue() = %q, %v, want input text", got, ok)
	}

	e.Enter()
	if got, ok := e.CurrentValue(); !ok || got != "12" {
		t.Errorf("CurrentValue() = %q, %v, want formatted top", got, ok)
	}
}

func TestModeSummary(t *testing.T) {
	e := New()
	if got, want := e.ModeSummary(), "input: RPN angle: RAD base: DEC complex: REC"; got != want {
		t.Errorf("ModeSummary() = %q, want %q", got, want)
	}

	e.ToggleInputMode()
	e.ToggleAngleMode()
	e.CycleBaseMode()
	e.ToggleComplexMode()
	if got, want := e.ModeSummary(), "input: INF angle: DEG base: HEX complex: POL"; got != want {
		t.Errorf("ModeSummary() = %q, want %q", got, want)
	}
}

func TestStackSnapshotFollowsBaseMode(t *testing.T) {
	e := New()
	enterNumber(t, e, "255")

	if lines := e.StackSnapshot(); lines[0].Result != "255" {
		t.Errorf("decimal rendering = %q, want 255", lines[0].Result)
	}

	e.CycleBaseMode()
	lines := e.StackSnapshot()
	if lines[0].Result != "0xFF" {
		t.Errorf("hex rendering = %q, want 0xFF", lines[0].Result)
	}
	if lines[0].Expr != "255" {
		t.Errorf("expression = %q, should not change with modes", lines[0].Expr)
	}

	e.CycleBaseMode()
	if lines := e.StackSnapshot(); lines[0].Result != "0b11111111" {
		t.Errorf("binary rendering = %q, want 0b11111111", lines[0].Result)
	}
}

func TestToggleHelp(t *testing.T) {
	e := New()
	if e.ShowHelp() {
		t.Error("help should start hidden")
	}
	e.ToggleHelp()
	if !e.ShowHelp() {
		t.Error("help should show after toggle")
	}
}

func TestDefaultLimits(t *testing.T) {
	e := New()
	for i := 0; i < DefaultLimit+1; i++ {
		enterNumber(t, e, fmt.Sprintf("%d", i))
	}

	if e.StackLen() != DefaultLimit {
		t.Errorf("StackLen() = %d, want %d", e.StackLen(), DefaultLimit)
	}
	if e.HistoryLen() != DefaultLimit {
		t.Errorf("HistoryLen() = %d, want %d", e.HistoryLen(), DefaultLimit)
	}
	// The oldest entry is evicted first.
	if lines := e.StackSnapshot(); lines[0].Expr != "1" {
		t.Errorf("oldest entry = %q, want 1", lines[0].Expr)
	}
	if h := e.HistorySnapshot(); h[0] != "1" {
		t.Errorf("oldest history line = %q, want 1", h[0])
	}
}
