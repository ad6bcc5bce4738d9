package calculator

// ref: https://en.wikipedia.org/wiki/Shunting-yard_algorithm

// ToPostfix reorders an infix token sequence into postfix order using the
// shunting-yard algorithm. An operator pops every operator of greater or
// equal precedence off the stack before it is pushed, so all operators,
// including ^, are left-associative unless RightAssociativePow is given.
//
// There are no parentheses in the result unless the Tolerant option allows
// an unclosed one through. Without Tolerant, unbalanced parentheses are a
// *BracketError. Other malformed input, such as two operators in a row, is
// not detected here; it shows up as an error from Evaluate.
func ToPostfix(tokens []Token, opts ...Option) ([]Token, error) {
	var s settings
	for _, opt := range opts {
		s = opt.option(s)
	}
	return s.postfix(tokens)
}

func (s *settings) postfix(tokens []Token) ([]Token, error) {
	out := make([]Token, 0, len(tokens))
	ops := make([]Token, 0, len(tokens)/2)
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenLeftParen:
			ops = append(ops, tok)
		case TokenRightParen:
			var open bool
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.Kind == TokenLeftParen {
					open = true
					break
				}
				out = append(out, top)
			}
			if !open && !s.tolerant {
				return nil, &BracketError{Col: tok.Pos, Right: tok.Text}
			}
		case TokenOperator:
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.Kind != TokenOperator || !tok.Op.yields(top.Op, s.rightpow) {
					break
				}
				out = append(out, top)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, tok)
		default:
			// Numbers, and anything else for Evaluate to reject.
			out = append(out, tok)
		}
	}
	for i := len(ops) - 1; i >= 0; i-- {
		if ops[i].Kind == TokenLeftParen && !s.tolerant {
			return nil, &BracketError{Col: ops[i].Pos, Left: ops[i].Text}
		}
		out = append(out, ops[i])
	}
	return out, nil
}
