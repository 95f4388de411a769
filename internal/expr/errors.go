package expr

import "errors"

// Evaluation errors surfaced to the user.
var (
	// ErrInvalidExpression covers malformed token streams, unparseable
	// numerals, and operand imbalance during evaluation.
	ErrInvalidExpression = errors.New("invalid expression")

	// ErrDivisionByZero is returned when a division's right operand is zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrUnknownOperator is returned for an operator outside + - * / ^.
	ErrUnknownOperator = errors.New("unknown operator")

	// ErrMismatchedParens is returned for unbalanced parentheses.
	ErrMismatchedParens = errors.New("mismatched parentheses")
)
