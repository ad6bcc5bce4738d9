package calculator

import (
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/zephyrtronium/bigfloat"
)

// Constant is a named value that is substituted into expressions before they
// are tokenized.
type Constant struct {
	Name  string
	Value float64
}

// constprec is the precision in bits to which the default constants are
// computed before rounding to float64.
const constprec = 256

// defaultConstants is the table of pi and e. It is never modified.
var defaultConstants = func() []Constant {
	pi := bigfloat.Pi(new(big.Float).SetPrec(constprec))
	one := new(big.Float).SetPrec(constprec).SetInt64(1)
	e := bigfloat.Exp(new(big.Float).SetPrec(constprec), one)
	p, _ := pi.Float64()
	x, _ := e.Float64()
	// pi before e, in case a longer name ever contains e.
	return []Constant{
		{Name: "pi", Value: p},
		{Name: "e", Value: x},
	}
}()

// DefaultConstants returns a copy of the default constant table: pi, then e.
func DefaultConstants() []Constant {
	return append([]Constant(nil), defaultConstants...)
}

// Validate checks that the constant has an identifier for a name and a
// finite value.
func (c Constant) Validate() error {
	if !isIdent(c.Name) {
		return errors.New("invalid constant name " + strconv.Quote(c.Name))
	}
	if math.IsInf(c.Value, 0) || math.IsNaN(c.Value) {
		return errors.New("constant " + c.Name + " is not finite")
	}
	return nil
}

// isIdent checks whether s is a letter or underscore followed by any number
// of letters, digits, and underscores.
func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}

// isWordRune reports whether r can be part of a name or a number, i.e. whether
// a constant name next to r is part of a longer word.
func isWordRune(r rune) bool {
	return r == '_' || r == '.' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// substitute rewrites the constant names in text to their values.
func (s *settings) substitute(text string) string {
	for _, c := range s.consts {
		if s.legacy {
			text = strings.ReplaceAll(text, c.Name, strconv.FormatFloat(c.Value, 'f', 6, 64))
			continue
		}
		text = replaceName(text, c.Name, literal(c.Value))
	}
	return text
}

// literal formats v as text that tokenizes to a single number, or to a
// parenthesized number if v is negative.
func literal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if math.Signbit(v) {
		return "(" + s + ")"
	}
	return s
}

// replaceName replaces each occurrence of name in text that is not part of a
// longer word with val.
func replaceName(text, name, val string) string {
	var b strings.Builder
	last := 0
	for i := 0; i < len(text); {
		k := strings.Index(text[i:], name)
		if k < 0 {
			break
		}
		k += i
		end := k + len(name)
		before, _ := utf8.DecodeLastRuneInString(text[:k])
		after, _ := utf8.DecodeRuneInString(text[end:])
		if isWordRune(before) || isWordRune(after) {
			i = k + 1
			continue
		}
		b.WriteString(text[last:k])
		b.WriteString(val)
		last = end
		i = end
	}
	if last == 0 {
		return text
	}
	b.WriteString(text[last:])
	return b.String()
}
