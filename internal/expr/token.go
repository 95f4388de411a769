package expr

import "strconv"

// Kind discriminates token variants.
type Kind uint8

const (
	// KindNumber is a numeric literal.
	KindNumber Kind = iota

	// KindOperator is a single-character arithmetic operator.
	KindOperator

	// KindLeftParen is an opening parenthesis.
	KindLeftParen

	// KindRightParen is a closing parenthesis.
	KindRightParen

	// KindFunction is a named function, reserved for a future operator
	// set. The tokenizer never produces it.
	KindFunction
)

// Token is one lexical element of an infix expression.
type Token struct {
	Kind  Kind
	Value float64 // KindNumber
	Op    byte    // KindOperator
	Name  string  // KindFunction
}

// String renders the token roughly as it appeared in the input.
func (t Token) String() string {
	switch t.Kind {
	case KindNumber:
		return strconv.FormatFloat(t.Value, 'f', -1, 64)
	case KindOperator:
		return string(t.Op)
	case KindLeftParen:
		return "("
	case KindRightParen:
		return ")"
	case KindFunction:
		return t.Name
	default:
		return "?"
	}
}

func numTok(v float64) Token { return Token{Kind: KindNumber, Value: v} }
func opTok(op byte) Token    { return Token{Kind: KindOperator, Op: op} }
func lparenTok() Token       { return Token{Kind: KindLeftParen} }
func rparenTok() Token       { return Token{Kind: KindRightParen} }
