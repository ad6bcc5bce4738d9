package calculator

import "github.com/rs/zerolog"

// Engine evaluates expressions with a fixed configuration. An Engine is
// immutable once created and is safe for concurrent use.
type Engine struct {
	s settings
}

// New creates an engine. The given options are applied in order. With no
// options, the engine substitutes pi and e at word boundaries, rejects
// unbalanced parentheses, and treats ^ as left-associative.
func New(opts ...Option) *Engine {
	s := settings{
		consts: defaultConstants,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		s = opt.option(s)
	}
	return &Engine{s: s}
}

// Constants returns a copy of the engine's constant table.
func (e *Engine) Constants() []Constant {
	return append([]Constant(nil), e.s.consts...)
}

// Postfix substitutes constants into an expression, tokenizes it, and
// converts it to postfix order.
func (e *Engine) Postfix(text string) ([]Token, error) {
	src := e.s.substitute(text)
	toks, err := Tokenize(src)
	if err != nil {
		e.s.log.Debug().Str("expr", src).Err(err).Msg("tokenize failed")
		return nil, err
	}
	post, err := e.s.postfix(toks)
	if err != nil {
		e.s.log.Debug().Str("expr", src).Str("tokens", FormatTokens(toks)).Err(err).Msg("conversion failed")
		return nil, err
	}
	e.s.log.Debug().Str("expr", src).Str("tokens", FormatTokens(toks)).Str("postfix", FormatTokens(post)).Msg("converted")
	return post, nil
}

// Compute evaluates an expression. The error, if any, is a *LexError,
// *BracketError, or *EvalError.
func (e *Engine) Compute(text string) (float64, error) {
	post, err := e.Postfix(text)
	if err != nil {
		return 0, err
	}
	r, err := Evaluate(post)
	if err != nil {
		e.s.log.Debug().Str("postfix", FormatTokens(post)).Err(err).Msg("evaluation failed")
		return 0, err
	}
	e.s.log.Debug().Str("postfix", FormatTokens(post)).Float64("result", r).Msg("evaluated")
	return r, nil
}

// std is the engine used by Compute.
var std = New()

// Compute is a shortcut to evaluate an expression with the default engine.
func Compute(text string) (float64, error) {
	return std.Compute(text)
}
