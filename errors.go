package calculator

import "strconv"

// BracketError is an error indicating unbalanced parentheses in the input.
// It implements InputError.
type BracketError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Left is the unclosed open parenthesis, if any.
	Left string
	// Right is the close parenthesis with no match, if any.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// EvalError is an error from evaluating a postfix sequence. It implements
// InputError and unwraps to one of ErrUnderflow, ErrDivideByZero,
// ErrUnknownOperator, ErrLeftover, or ErrEmpty.
type EvalError struct {
	// Col is the position of the token that caused the error, or 0 if there
	// is none.
	Col int
	// Op is the text of the operator being applied, if any.
	Op string
	// Err is the cause.
	Err error
}

func (err *EvalError) Error() string {
	msg := err.Err.Error()
	if err.Op != "" {
		msg += " for " + strconv.Quote(err.Op)
	}
	return errpos(err.Col, msg)
}

func (err *EvalError) Unwrap() error {
	return err.Err
}

func (err *EvalError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	if pos <= 0 {
		return msg
	}
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based rune column of the token that caused the
	// error, counted in the expression after constant substitution.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*EvalError)(nil)
)
