package expr

import "strconv"

// Tokenize splits an infix expression into tokens. Numerals are ASCII
// digit runs with optional '.' characters, operators are + - * / ^,
// and parentheses group. Spaces are skipped. Anything else fails with
// ErrInvalidExpression.
func Tokenize(input string) ([]Token, error) {
	var tokens []Token

	for i := 0; i < len(input); {
		ch := input[i]
		switch {
		case ch == ' ':
			i++

		case isDigit(ch) || ch == '.':
			start := i
			for i < len(input) && (isDigit(input[i]) || input[i] == '.') {
				i++
			}
			num, err := strconv.ParseFloat(input[start:i], 64)
			if err != nil {
				return nil, ErrInvalidExpression
			}
			tokens = append(tokens, numTok(num))

		case isOperator(ch):
			tokens = append(tokens, opTok(ch))
			i++

		case ch == '(':
			tokens = append(tokens, lparenTok())
			i++

		case ch == ')':
			tokens = append(tokens, rparenTok())
			i++

		default:
			return nil, ErrInvalidExpression
		}
	}

	return tokens, nil
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isOperator(ch byte) bool {
	switch ch {
	case '+', '-', '*', '/', '^':
		return true
	}
	return false
}
