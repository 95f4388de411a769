package expr

import "math"

// EvalPostfix computes the value of a postfix token sequence. Every
// operator consumes two operands, and exactly one value must remain
// when the sequence ends.
func EvalPostfix(tokens []Token) (float64, error) {
	var stack []float64

	for _, tok := range tokens {
		switch tok.Kind {
		case KindNumber:
			stack = append(stack, tok.Value)

		case KindOperator:
			if len(stack) < 2 {
				return 0, ErrInvalidExpression
			}
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			stack = stack[:len(stack)-2]

			var result float64
			switch tok.Op {
			case '+':
				result = a + b
			case '-':
				result = a - b
			case '*':
				result = a * b
			case '/':
				if b == 0 {
					return 0, ErrDivisionByZero
				}
				result = a / b
			case '^':
				result = math.Pow(a, b)
			default:
				return 0, ErrUnknownOperator
			}
			stack = append(stack, result)

		default:
			return 0, ErrInvalidExpression
		}
	}

	if len(stack) != 1 {
		return 0, ErrInvalidExpression
	}
	return stack[0], nil
}

// Eval tokenizes, converts, and evaluates an infix expression.
func Eval(input string) (float64, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return 0, err
	}
	postfix, err := ToPostfix(tokens)
	if err != nil {
		return 0, err
	}
	return EvalPostfix(postfix)
}
