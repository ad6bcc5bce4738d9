package calculator

import "errors"

var (
	// ErrUnderflow is the error when an operator has fewer than two
	// operands, e.g. in "3 + * 4".
	ErrUnderflow = errors.New("not enough operands")
	// ErrDivideByZero is the error when the divisor of / is zero.
	ErrDivideByZero = errors.New("divide by zero")
	// ErrUnknownOperator is the error for a token in operator position that
	// is not in the operator table, including an unclosed parenthesis.
	ErrUnknownOperator = errors.New("unknown operator")
	// ErrLeftover is the error when more than one value remains after all
	// operators are applied, e.g. in "1 2".
	ErrLeftover = errors.New("missing operator")
	// ErrEmpty is the error for an expression with no tokens.
	ErrEmpty = errors.New("no expression")
)

// Evaluate computes the value of a postfix token sequence. Numbers are pushed
// to an operand stack; each operator pops its right operand, then its left
// operand, and pushes the result. Exactly one value must remain at the end.
// Errors are of type *EvalError.
func Evaluate(postfix []Token) (float64, error) {
	if len(postfix) == 0 {
		return 0, &EvalError{Err: ErrEmpty}
	}
	stack := make([]float64, 0, len(postfix)/2+1)
	for _, tok := range postfix {
		switch tok.Kind {
		case TokenNumber:
			stack = append(stack, tok.Value)
			continue
		case TokenOperator:
			// handled below
		default:
			return 0, &EvalError{Col: tok.Pos, Op: tok.Text, Err: ErrUnknownOperator}
		}
		if len(stack) < 2 {
			return 0, &EvalError{Col: tok.Pos, Op: tok.Text, Err: ErrUnderflow}
		}
		b := stack[len(stack)-1]
		a := stack[len(stack)-2]
		stack = stack[:len(stack)-2]
		r, err := tok.Op.apply(a, b)
		if err != nil {
			return 0, &EvalError{Col: tok.Pos, Op: tok.Text, Err: err}
		}
		stack = append(stack, r)
	}
	if len(stack) != 1 {
		return 0, &EvalError{Col: postfix[len(postfix)-1].Pos, Err: ErrLeftover}
	}
	return stack[0], nil
}
