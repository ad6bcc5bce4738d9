package calculator

import "github.com/rs/zerolog"

// Option is an option for an Engine. Options that concern the shunting-yard
// conversion also apply to ToPostfix.
type Option interface {
	option(settings) settings
}

type (
	constsopt   []Constant
	legacyopt   struct{}
	tolerantopt struct{}
	powopt      struct{}
	logopt      struct{ log zerolog.Logger }
)

// settings holds the configuration of an Engine or of a single ToPostfix
// call.
type settings struct {
	// consts is the constant table, in substitution order.
	consts []Constant
	// legacy selects substitution of constant names anywhere in the text.
	legacy bool
	// tolerant disables errors for unbalanced parentheses.
	tolerant bool
	// rightpow makes ^ right-associative.
	rightpow bool
	// log receives traces of each computation.
	log zerolog.Logger
}

// WithConstants sets the constant table. Names are substituted in the order
// given, so a name that contains another should come first. Panics if a
// constant is invalid; see Constant.Validate.
func WithConstants(consts ...Constant) Option {
	for _, c := range consts {
		if err := c.Validate(); err != nil {
			panic("calculator: " + err.Error())
		}
	}
	return constsopt(append([]Constant(nil), consts...))
}

func (o constsopt) option(s settings) settings {
	s.consts = []Constant(o)
	return s
}

// LegacySubstitution replaces every occurrence of a constant name in the
// input, even inside other words, with its value printed to six decimal
// places. It reproduces the behavior of older calculators that work on raw
// text, so "pi" evaluates to exactly 3.141593.
func LegacySubstitution() Option {
	return legacyopt{}
}

func (legacyopt) option(s settings) settings {
	s.legacy = true
	return s
}

// Tolerant disables errors for unbalanced parentheses. A close parenthesis
// with no open parenthesis is dropped. An open parenthesis that is never
// closed goes to the postfix output, where evaluation rejects it.
func Tolerant() Option {
	return tolerantopt{}
}

func (tolerantopt) option(s settings) settings {
	s.tolerant = true
	return s
}

// RightAssociativePow makes exponentiation group to the right, so that
// "2^3^2" is 2^(3^2).
func RightAssociativePow() Option {
	return powopt{}
}

func (powopt) option(s settings) settings {
	s.rightpow = true
	return s
}

// WithLogger sets a logger which receives a debug event for each
// computation.
func WithLogger(log zerolog.Logger) Option {
	return logopt{log}
}

func (o logopt) option(s settings) settings {
	s.log = o.log
	return s
}
