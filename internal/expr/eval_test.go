package expr

import (
	"errors"
	"testing"
)

func TestEval(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"precedence", "2 + 3 * 4", 14},
		{"parens override", "(2 + 3) * 4", 20},
		{"power right associative", "2 ^ 3 ^ 2", 512},
		{"division", "10 / 4", 2.5},
		{"subtraction chain", "7 - 2 - 1", 4},
		{"decimals", ".5 * 4", 2},
		{"single number", "42", 42},
		{"nested", "((1 + 2) * (3 + 4))", 21},
		{"power of fraction", "4 ^ 0.5", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Eval(tt.input)
			if err != nil {
				t.Fatalf("Eval(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Eval(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"division by zero", "5 / 0", ErrDivisionByZero},
		{"nested division by zero", "1 + 6 / (3 - 3)", ErrDivisionByZero},
		{"unclosed paren", "(2 + 3", ErrMismatchedParens},
		{"unopened paren", "2 + 3)", ErrMismatchedParens},
		{"unknown symbol", "2 $ 3", ErrInvalidExpression},
		{"empty", "", ErrInvalidExpression},
		{"trailing operator", "3 +", ErrInvalidExpression},
		{"leading minus", "-5 + 3", ErrInvalidExpression},
		{"adjacent numbers", "2 3", ErrInvalidExpression},
		{"operator only", "*", ErrInvalidExpression},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Eval(tt.input); !errors.Is(err, tt.want) {
				t.Errorf("Eval(%q) error = %v, want %v", tt.input, err, tt.want)
			}
		})
	}
}

func TestEvalPostfixRejectsStrayTokens(t *testing.T) {
	if _, err := EvalPostfix([]Token{lparenTok()}); !errors.Is(err, ErrInvalidExpression) {
		t.Errorf("paren token error = %v, want ErrInvalidExpression", err)
	}

	fn := Token{Kind: KindFunction, Name: "sin"}
	if _, err := EvalPostfix([]Token{numTok(1), fn}); !errors.Is(err, ErrInvalidExpression) {
		t.Errorf("function token error = %v, want ErrInvalidExpression", err)
	}
}

func TestEvalPostfixUnknownOperator(t *testing.T) {
	tokens := []Token{numTok(1), numTok(2), opTok('%')}
	if _, err := EvalPostfix(tokens); !errors.Is(err, ErrUnknownOperator) {
		t.Errorf("unknown operator error = %v, want ErrUnknownOperator", err)
	}
}
