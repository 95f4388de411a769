package expr

// precedence returns the binding strength of an operator.
func precedence(op byte) int {
	switch op {
	case '+', '-':
		return 1
	case '*', '/':
		return 2
	case '^':
		return 3
	default:
		return 0
	}
}

// rightAssociative reports whether op groups right to left.
func rightAssociative(op byte) bool {
	return op == '^'
}

// ToPostfix reorders infix tokens into postfix order with the
// shunting-yard algorithm. Parentheses unbalanced in either direction
// fail with ErrMismatchedParens.
func ToPostfix(tokens []Token) ([]Token, error) {
	output := make([]Token, 0, len(tokens))
	var operators []Token

	for _, tok := range tokens {
		switch tok.Kind {
		case KindNumber, KindFunction:
			output = append(output, tok)

		case KindOperator:
			for len(operators) > 0 {
				top := operators[len(operators)-1]
				if top.Kind != KindOperator {
					break
				}
				if precedence(top.Op) > precedence(tok.Op) ||
					(precedence(top.Op) == precedence(tok.Op) && !rightAssociative(tok.Op)) {
					output = append(output, top)
					operators = operators[:len(operators)-1]
					continue
				}
				break
			}
			operators = append(operators, tok)

		case KindLeftParen:
			operators = append(operators, tok)

		case KindRightParen:
			matched := false
			for len(operators) > 0 {
				top := operators[len(operators)-1]
				operators = operators[:len(operators)-1]
				if top.Kind == KindLeftParen {
					matched = true
					break
				}
				output = append(output, top)
			}
			if !matched {
				return nil, ErrMismatchedParens
			}
		}
	}

	for len(operators) > 0 {
		top := operators[len(operators)-1]
		operators = operators[:len(operators)-1]
		if top.Kind == KindLeftParen || top.Kind == KindRightParen {
			return nil, ErrMismatchedParens
		}
		output = append(output, top)
	}

	return output, nil
}
