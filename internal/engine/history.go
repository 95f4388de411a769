package engine

import "strings"

// logHistory appends a history line, evicting the oldest at capacity,
// and parks the browse cursor past the newest line.
func (e *Engine) logHistory(line string) {
	if len(e.history) >= e.maxHistory {
		excess := len(e.history) - e.maxHistory + 1
		e.history = e.history[excess:]
	}
	e.history = append(e.history, line)
	e.historyPos = len(e.history)
}

// BrowseHistoryUp selects an older history line and loads its
// expression into the input buffer.
func (e *Engine) BrowseHistoryUp() {
	if len(e.history) == 0 {
		return
	}
	if e.historyPos > 0 {
		e.historyPos--
	}
	e.input = historyExpr(e.history[e.historyPos])
	e.err = nil
}

// BrowseHistoryDown selects a newer history line. Moving past the
// newest line deselects and clears the input buffer.
func (e *Engine) BrowseHistoryDown() {
	if len(e.history) == 0 {
		return
	}
	if e.historyPos < len(e.history)-1 {
		e.historyPos++
	} else {
		e.historyPos = len(e.history)
	}
	if e.historyPos < len(e.history) {
		e.input = historyExpr(e.history[e.historyPos])
	} else {
		e.input = ""
	}
	e.err = nil
}

// recallResult scans the history newest-first for a line whose
// expression part equals text, returning the recorded result text.
func (e *Engine) recallResult(text string) (string, bool) {
	for i := len(e.history) - 1; i >= 0; i-- {
		before, after, found := strings.Cut(e.history[i], " = ")
		if found && before == text {
			return after, true
		}
	}
	return "", false
}

// historyExpr returns the expression part of a history line.
func historyExpr(line string) string {
	before, _, _ := strings.Cut(line, " = ")
	return before
}
