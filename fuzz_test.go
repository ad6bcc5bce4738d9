package calculator_test

import (
	"math"
	"testing"

	"github.com/zephyrtronium/calculator"
)

func FuzzCompute(f *testing.F) {
	f.Add("3 + 4 * 2")
	f.Add("(3 + 4) * 2")
	f.Add("3..4 + 1")
	f.Add("3 + * 4")
	f.Add("-pi^e")
	f.Fuzz(func(t *testing.T, s string) {
		r0, err0 := calculator.Compute(s)
		r1, err1 := calculator.Compute(s)
		same := r0 == r1 || math.IsNaN(r0) && math.IsNaN(r1)
		if (err0 == nil) != (err1 == nil) || !same {
			t.Errorf("computing %q twice: %g, %v then %g, %v", s, r0, err0, r1, err1)
		}
	})
}

func FuzzTokenize(f *testing.F) {
	f.Add("1+2")
	f.Add("-.5*(2--3)")
	f.Fuzz(func(t *testing.T, s string) {
		toks, err := calculator.Tokenize(s)
		if err != nil {
			return
		}
		again, err := calculator.Tokenize(calculator.FormatTokens(toks))
		if err != nil {
			t.Fatalf("retokenizing %q: %v", s, err)
		}
		if len(again) != len(toks) {
			t.Fatalf("retokenizing %q: %d tokens became %d", s, len(toks), len(again))
		}
		for i := range toks {
			if toks[i].Kind != again[i].Kind || toks[i].Text != again[i].Text {
				t.Errorf("retokenizing %q: token %d %v became %v", s, i, toks[i], again[i])
			}
		}
	})
}
