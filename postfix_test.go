package calculator

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestToPostfix(t *testing.T) {
	cases := []struct {
		name string
		src  string
		opts []Option
		want string
	}{
		{"num", "1", nil, "1"},
		{"add", "1+2", nil, "1 2 +"},
		{"prec", "3 + 4 * 2", nil, "3 4 2 * +"},
		{"prec-rev", "3 * 4 + 2", nil, "3 4 * 2 +"},
		{"left-sub", "8-4-2", nil, "8 4 - 2 -"},
		{"left-div", "8/4/2", nil, "8 4 / 2 /"},
		{"same-prec", "1*2/3", nil, "1 2 * 3 /"},
		{"parens", "(3 + 4) * 2", nil, "3 4 + 2 *"},
		{"nested", "((1+2)*(3-4))^5", nil, "1 2 + 3 4 - * 5 ^"},
		{"pow-left", "2 ^ 3 ^ 2", nil, "2 3 ^ 2 ^"},
		{"pow-right", "2 ^ 3 ^ 2", []Option{RightAssociativePow()}, "2 3 2 ^ ^"},
		{"pow-right-mixed", "2*3^2^2-1", []Option{RightAssociativePow()}, "2 3 2 2 ^ ^ * 1 -"},
		{"pow-prec", "2*3^2", nil, "2 3 2 ^ *"},
		{"neg", "-5 + 3", nil, "-5 3 +"},
		{"bad-ops", "3 + * 4", nil, "3 4 * +"},
		{"empty-parens", "()", nil, ""},
		{"tolerant-close", "1+2)*3", []Option{Tolerant()}, "1 2 + 3 *"},
		{"tolerant-open", "(1+2", []Option{Tolerant()}, "1 2 + ("},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := Tokenize(c.src)
			if err != nil {
				t.Fatalf("tokenizing %q: %v", c.src, err)
			}
			post, err := ToPostfix(toks, c.opts...)
			if err != nil {
				t.Fatalf("converting %q: %v", c.src, err)
			}
			if got := FormatTokens(post); got != c.want {
				t.Errorf("converting %q: want %q, got %q", c.src, c.want, got)
			}
		})
	}
}

func TestToPostfixKeepsTokens(t *testing.T) {
	toks := []Token{lparen(1), num("1", 1, 2), op('+', 3), num("2", 2, 4), rparen(5), op('*', 6), num("3", 3, 7)}
	want := []Token{num("1", 1, 2), num("2", 2, 4), op('+', 3), num("3", 3, 7), op('*', 6)}
	got, err := ToPostfix(toks)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestToPostfixBrackets(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		col   int
		left  string
		right string
	}{
		{"unclosed", "(1+2", 1, "(", ""},
		{"unclosed-inner", "(1+(2*3)", 1, "(", ""},
		{"unclosed-last", "1*(2", 3, "(", ""},
		{"unopened", "1+2)", 4, "", ")"},
		{"unopened-first", ")1", 1, "", ")"},
		{"unopened-after", "(1)+2)", 6, "", ")"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := Tokenize(c.src)
			if err != nil {
				t.Fatalf("tokenizing %q: %v", c.src, err)
			}
			post, err := ToPostfix(toks)
			if err == nil {
				t.Fatalf("converting %q: expected error, got %v", c.src, post)
			}
			var be *BracketError
			if !errors.As(err, &be) {
				t.Fatalf("converting %q: wrong error type %T: %v", c.src, err, err)
			}
			want := BracketError{Col: c.col, Left: c.left, Right: c.right}
			if *be != want {
				t.Errorf("converting %q: want %+v, got %+v", c.src, want, *be)
			}
		})
	}
}
