package value

import (
	"fmt"
	"strings"
)

// Angle selects the unit used to display phase angles.
type Angle uint8

const (
	// Radians displays phase angles in radians.
	Radians Angle = iota

	// Degrees displays phase angles in degrees.
	Degrees
)

// String returns the short name shown in the mode bar.
func (a Angle) String() string {
	switch a {
	case Degrees:
		return "DEG"
	default:
		return "RAD"
	}
}

// Toggle returns the other angle unit.
func (a Angle) Toggle() Angle {
	if a == Radians {
		return Degrees
	}
	return Radians
}

// Base selects the numeric base used for input validation and display.
type Base uint8

const (
	// Decimal is base 10, the default.
	Decimal Base = iota

	// Hexadecimal is base 16 with an 0x display prefix.
	Hexadecimal

	// Binary is base 2 with an 0b display prefix.
	Binary
)

// String returns the short name shown in the mode bar.
func (b Base) String() string {
	switch b {
	case Hexadecimal:
		return "HEX"
	case Binary:
		return "BIN"
	default:
		return "DEC"
	}
}

// Cycle returns the next base in decimal, hexadecimal, binary order.
func (b Base) Cycle() Base {
	switch b {
	case Decimal:
		return Hexadecimal
	case Hexadecimal:
		return Binary
	default:
		return Decimal
	}
}

// Layout selects how complex values are displayed.
type Layout uint8

const (
	// Rectangular displays complex values as "a + bi".
	Rectangular Layout = iota

	// Polar displays complex values as "magnitude ∠ phase".
	Polar
)

// String returns the short name shown in the mode bar.
func (l Layout) String() string {
	switch l {
	case Polar:
		return "POL"
	default:
		return "REC"
	}
}

// Toggle returns the other complex layout.
func (l Layout) Toggle() Layout {
	if l == Rectangular {
		return Polar
	}
	return Rectangular
}

// ParseAngle converts a configuration name to an angle unit. Long and
// short forms are accepted, e.g. "degrees" or "deg".
func ParseAngle(s string) (Angle, error) {
	switch strings.ToLower(s) {
	case "radians", "rad":
		return Radians, nil
	case "degrees", "deg":
		return Degrees, nil
	}
	return Radians, fmt.Errorf("unknown angle mode %q", s)
}

// ParseBase converts a configuration name to a numeric base.
func ParseBase(s string) (Base, error) {
	switch strings.ToLower(s) {
	case "decimal", "dec":
		return Decimal, nil
	case "hexadecimal", "hex":
		return Hexadecimal, nil
	case "binary", "bin":
		return Binary, nil
	}
	return Decimal, fmt.Errorf("unknown base mode %q", s)
}

// ParseLayout converts a configuration name to a complex layout.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(s) {
	case "rectangular", "rect", "rec":
		return Rectangular, nil
	case "polar", "pol":
		return Polar, nil
	}
	return Rectangular, fmt.Errorf("unknown complex mode %q", s)
}

// Options captures the display modes that influence formatting.
type Options struct {
	Angle      Angle
	Base       Base
	Layout     Layout
	Abbreviate bool
}
