package engine

import "errors"

// Stack operation errors surfaced through the error slot.
var (
	// ErrStackUnderflow is returned when a binary operation finds fewer
	// than two stack entries.
	ErrStackUnderflow = errors.New("stack underflow")

	// ErrInvalidBase is returned when the input buffer does not parse
	// as a number in the active base.
	ErrInvalidBase = errors.New("invalid number for current base")

	// ErrInvalidComplex is reserved for complex number entry.
	ErrInvalidComplex = errors.New("invalid complex number")

	// ErrComplexArithmetic marks binary operations on complex operands,
	// which are not implemented.
	ErrComplexArithmetic = errors.New("complex arithmetic not yet implemented")

	// ErrComplexDivision marks division on complex operands.
	ErrComplexDivision = errors.New("complex division not yet implemented")
)
