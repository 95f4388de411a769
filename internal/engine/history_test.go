package engine

import (
	"testing"

	"github.com/dshills/calcstorm/internal/value"
)

func TestHistoryEviction(t *testing.T) {
	e := New(WithHistoryLimit(2))
	for _, s := range []string{"1", "2", "3"} {
		enterNumber(t, e, s)
	}

	h := e.HistorySnapshot()
	if len(h) != 2 || h[0] != "2" || h[1] != "3" {
		t.Errorf("history = %v, want oldest line evicted", h)
	}
	if e.HistoryPosition() != 2 {
		t.Errorf("HistoryPosition() = %d, want parked at the end", e.HistoryPosition())
	}
}

func TestBrowseHistoryUp(t *testing.T) {
	e := New()
	enterNumber(t, e, "5")
	enterNumber(t, e, "3")

	e.BrowseHistoryUp()
	if e.HistoryPosition() != 1 || e.Input() != "3" {
		t.Errorf("position %d input %q, want 1 and 3", e.HistoryPosition(), e.Input())
	}

	e.BrowseHistoryUp()
	if e.HistoryPosition() != 0 || e.Input() != "5" {
		t.Errorf("position %d input %q, want 0 and 5", e.HistoryPosition(), e.Input())
	}

	// At the oldest line the cursor stays put.
	e.BrowseHistoryUp()
	if e.HistoryPosition() != 0 || e.Input() != "5" {
		t.Errorf("position %d input %q, want unchanged", e.HistoryPosition(), e.Input())
	}
}

func TestBrowseHistoryLoadsExpressionPart(t *testing.T) {
	e := New(WithInputMode(Infix))
	typeString(e, "2+3")
	e.Enter()

	e.BrowseHistoryUp()
	if e.Input() != "2+3" {
		t.Errorf("input = %q, want the expression part only", e.Input())
	}
}

func TestBrowseHistoryDown(t *testing.T) {
	e := New()
	enterNumber(t, e, "5")
	enterNumber(t, e, "3")
	e.BrowseHistoryUp()
	e.BrowseHistoryUp()

	e.BrowseHistoryDown()
	if e.HistoryPosition() != 1 || e.Input() != "3" {
		t.Errorf("position %d input %q, want 1 and 3", e.HistoryPosition(), e.Input())
	}

	// Moving past the newest line deselects and clears the input.
	e.BrowseHistoryDown()
	if e.HistoryPosition() != 2 || e.Input() != "" {
		t.Errorf("position %d input %q, want 2 and empty", e.HistoryPosition(), e.Input())
	}

	e.BrowseHistoryDown()
	if e.HistoryPosition() != 2 || e.Input() != "" {
		t.Errorf("position %d input %q, want unchanged", e.HistoryPosition(), e.Input())
	}
}

func TestBrowseEmptyHistory(t *testing.T) {
	e := New()
	e.BrowseHistoryUp()
	e.BrowseHistoryDown()
	if e.HistoryPosition() != 0 || e.Input() != "" {
		t.Error("browsing empty history should do nothing")
	}
}

func TestBrowseHistoryClearsError(t *testing.T) {
	e := New()
	enterNumber(t, e, "5")
	e.PushChar('a') // sets an invalid character error
	if e.Err() == nil {
		t.Fatal("expected an error to clear")
	}

	e.BrowseHistoryUp()
	if e.Err() != nil {
		t.Errorf("Err() = %v, want cleared by browsing", e.Err())
	}
}

func TestRecallScansNewestFirst(t *testing.T) {
	e := New()
	e.PushValue("x", value.Real(1))
	e.PushValue("x", value.Real(2))

	recorded, ok := e.recallResult("x")
	if !ok || recorded != "2" {
		t.Errorf("recallResult() = %q, %v, want 2 from the newest line", recorded, ok)
	}

	if _, ok := e.recallResult("y"); ok {
		t.Error("recallResult should miss unknown expressions")
	}
}

func TestRecallIgnoresBareLines(t *testing.T) {
	e := New()
	enterNumber(t, e, "42") // logs the bare line "42"

	if _, ok := e.recallResult("42"); ok {
		t.Error("bare number lines have no recorded result to recall")
	}
}
