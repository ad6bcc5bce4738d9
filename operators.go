package calculator

import "math"

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/^"

// Operator is a binary operator with its precedence and associativity.
type Operator struct {
	// Symbol is the rune that spells the operator.
	Symbol rune
	// Prec is the precedence value. Higher is more binding.
	Prec int
	// Right indicates right-associativity. The converter only honors it
	// with RightAssociativePow.
	Right bool
}

// operators is the operator table, ordered by Operators.
var operators = [...]Operator{
	{'+', 1, false},
	{'-', 1, false},
	{'*', 2, false},
	{'/', 2, false},
	{'^', 3, true},
}

// LookupOperator gets the operator spelled by r.
func LookupOperator(r rune) (Operator, bool) {
	for _, op := range operators {
		if op.Symbol == r {
			return op, true
		}
	}
	return Operator{}, false
}

func (o Operator) String() string {
	if o.Symbol == 0 {
		return ""
	}
	return string(o.Symbol)
}

// yields reports whether top, the operator at the top of the converter's
// stack, goes to the output before o is pushed. Without assoc, every operator
// is treated as left-associative.
func (o Operator) yields(top Operator, assoc bool) bool {
	if assoc && o.Right {
		return top.Prec > o.Prec
	}
	return top.Prec >= o.Prec
}

// apply computes a o b.
func (o Operator) apply(a, b float64) (float64, error) {
	switch o.Symbol {
	case '+':
		return a + b, nil
	case '-':
		return a - b, nil
	case '*':
		return a * b, nil
	case '/':
		if b == 0 {
			return 0, ErrDivideByZero
		}
		return a / b, nil
	case '^':
		return math.Pow(a, b), nil
	default:
		return 0, ErrUnknownOperator
	}
}
