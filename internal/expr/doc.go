// Package expr evaluates infix arithmetic expressions.
//
// Evaluation is a three-stage pipeline:
//
//	tokens, err := expr.Tokenize("2 + 3 * 4")
//	postfix, err := expr.ToPostfix(tokens)
//	result, err := expr.EvalPostfix(postfix)
//
// or, equivalently, expr.Eval("2 + 3 * 4").
//
// # Tokens
//
// The tokenizer recognizes decimal numerals (digit runs with an
// optional '.'), the operators + - * / ^, and parentheses. Spaces are
// skipped; anything else is rejected. There is no unary minus: a
// leading '-' lexes as an operator and the expression fails to
// evaluate. Negation is an engine operation, not expression syntax.
//
// # Conversion
//
// ToPostfix applies the shunting-yard algorithm. Precedence is
// + - below * / below ^, and ^ is the only right-associative
// operator, so "2 ^ 3 ^ 2" computes 2^(3^2). Unbalanced parentheses
// in either direction fail with ErrMismatchedParens.
//
// # Evaluation
//
// EvalPostfix reduces the postfix sequence over a value stack. Every
// operator consumes exactly two operands, division by zero is
// rejected, and exactly one value must remain at the end.
package expr
