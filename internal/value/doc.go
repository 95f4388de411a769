// Package value defines the calculator's numeric model and its
// mode-dependent text rendering.
//
// # Values
//
// A Value is a tagged union of two variants:
//   - Real: a 64-bit floating point number
//   - Complex: a number with real and imaginary components
//
// Arithmetic in the calculator operates on real values; the complex
// variant exists so complex results can be stored, negated, and
// displayed. A Complex value with a zero imaginary part still reports
// a usable real component through AsReal.
//
// # Display modes
//
// Formatting is a pure function of a Value and an Options struct:
//
//	text := value.Format(v, value.Options{
//		Base:   value.Hexadecimal,
//		Layout: value.Rectangular,
//	})
//
// Options carries the angle unit (radians/degrees), the numeric base
// (decimal/hexadecimal/binary), the complex layout (rectangular/polar),
// and the large-number abbreviation flag. Mode changes never alter the
// stored values, only how they are rendered.
package value
