package value

import "math/cmplx"

// Value is a calculator number: either a real or a complex quantity.
// The zero Value is the real number 0.
type Value struct {
	c         complex128
	isComplex bool
}

// Real returns a real Value.
func Real(v float64) Value {
	return Value{c: complex(v, 0)}
}

// Complex returns a complex Value with the given rectangular components.
func Complex(re, im float64) Value {
	return Value{c: complex(re, im), isComplex: true}
}

// FromPolar returns a complex Value built from a magnitude and a phase
// angle in radians.
func FromPolar(magnitude, phase float64) Value {
	return Value{c: cmplx.Rect(magnitude, phase), isComplex: true}
}

// IsComplex reports whether v carries the complex variant tag.
// A Complex value keeps its tag even when the imaginary part is zero.
func (v Value) IsComplex() bool {
	return v.isComplex
}

// AsReal returns the real number v represents. It succeeds for Real
// values and for Complex values whose imaginary part is exactly zero.
func (v Value) AsReal() (float64, bool) {
	if v.isComplex && imag(v.c) != 0 {
		return 0, false
	}
	return real(v.c), true
}

// Rect returns the rectangular components of v.
// Real values report a zero imaginary component.
func (v Value) Rect() (re, im float64) {
	return real(v.c), imag(v.c)
}

// Magnitude returns the distance of v from the origin.
func (v Value) Magnitude() float64 {
	return cmplx.Abs(v.c)
}

// Phase returns the phase angle of v in radians, in (-π, π].
func (v Value) Phase() float64 {
	return cmplx.Phase(v.c)
}

// Negate returns v with its sign flipped. Real values flip the real
// component; complex values flip both. The variant tag is preserved.
func (v Value) Negate() Value {
	return Value{c: -v.c, isComplex: v.isComplex}
}
