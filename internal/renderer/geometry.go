package renderer

// Rect is a rectangular screen region.
type Rect struct {
	Top    int // First row (inclusive)
	Left   int // First column (inclusive)
	Bottom int // Last row (exclusive)
	Right  int // Last column (exclusive)
}

// RectFromSize creates a rectangle from position and size.
func RectFromSize(top, left, height, width int) Rect {
	return Rect{Top: top, Left: left, Bottom: top + height, Right: left + width}
}

// Width returns the width of the rectangle.
func (r Rect) Width() int {
	if r.Right <= r.Left {
		return 0
	}
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() int {
	if r.Bottom <= r.Top {
		return 0
	}
	return r.Bottom - r.Top
}

// IsEmpty returns true if the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Inset returns a rectangle inset by the given amounts.
func (r Rect) Inset(top, right, bottom, left int) Rect {
	return Rect{
		Top:    r.Top + top,
		Left:   r.Left + left,
		Bottom: r.Bottom - bottom,
		Right:  r.Right - right,
	}
}

// Inner returns the rectangle inside a one-cell border.
func (r Rect) Inner() Rect {
	return r.Inset(1, 1, 1, 1)
}

// Centered returns a rectangle covering the given percentages of r,
// centered within it.
func (r Rect) Centered(percentWidth, percentHeight int) Rect {
	width := r.Width() * percentWidth / 100
	height := r.Height() * percentHeight / 100
	top := r.Top + (r.Height()-height)/2
	left := r.Left + (r.Width()-width)/2
	return RectFromSize(top, left, height, width)
}

// Constraint sizes one band of a vertical split.
type Constraint struct {
	rows int
	flex bool
}

// Fixed returns a constraint taking an exact number of rows.
func Fixed(rows int) Constraint {
	return Constraint{rows: rows}
}

// Flex returns a constraint that absorbs leftover space, taking at
// least min rows.
func Flex(min int) Constraint {
	return Constraint{rows: min, flex: true}
}

// SplitV divides the rectangle into horizontal bands, top to bottom,
// one per constraint. Fixed constraints take their exact height and
// flex constraints share the remainder. Bands are clipped when the
// rectangle runs out of rows, so callers must tolerate empty bands on
// small screens.
func (r Rect) SplitV(constraints ...Constraint) []Rect {
	claimed := 0
	flexes := 0
	for _, c := range constraints {
		claimed += c.rows
		if c.flex {
			flexes++
		}
	}

	spare := r.Height() - claimed
	if spare < 0 {
		spare = 0
	}
	share, extra := 0, 0
	if flexes > 0 {
		share = spare / flexes
		extra = spare % flexes
	}

	bands := make([]Rect, 0, len(constraints))
	top := r.Top
	for _, c := range constraints {
		height := c.rows
		if c.flex {
			height += share
			if extra > 0 {
				height++
				extra--
			}
		}
		bottom := top + height
		if bottom > r.Bottom {
			bottom = r.Bottom
		}
		bands = append(bands, Rect{Top: top, Left: r.Left, Bottom: bottom, Right: r.Right})
		top = bottom
	}
	return bands
}
