package calculator

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Token is a single lexical element of an expression.
type Token struct {
	// Kind is the type of the token.
	Kind TokenKind
	// Text is the source text of the token. For numbers, this includes a
	// leading unary minus.
	Text string
	// Value is the value of a number token.
	Value float64
	// Op is the operator of an operator token.
	Op Operator
	// Pos is the 1-based rune column at which the token starts.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// TokenKind identifies the type of a token.
type TokenKind int

const (
	TokenNone TokenKind = iota
	// TokenNumber is a numeric literal, possibly negative.
	TokenNumber
	// TokenOperator is a binary operator.
	TokenOperator
	// TokenLeftParen is an open parenthesis.
	TokenLeftParen
	// TokenRightParen is a close parenthesis.
	TokenRightParen
)

func (k TokenKind) String() string {
	switch k {
	case TokenNone:
		return "None"
	case TokenNumber:
		return "Number"
	case TokenOperator:
		return "Operator"
	case TokenLeftParen:
		return "LeftParen"
	case TokenRightParen:
		return "RightParen"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	// prev is the kind of the last token scanned. It decides whether a minus
	// sign starts a number or is a subtraction.
	prev TokenKind
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{
		src:  src,
		rune: 1,
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// unary reports whether a minus sign at the current position is a sign
// rather than a subtraction.
func (l *lexer) unary() bool {
	switch l.prev {
	case TokenNone, TokenOperator, TokenLeftParen:
		return true
	default:
		return false
	}
}

// next scans the next token from the input. At the end of the input, the
// error is io.EOF.
func (l *lexer) next() (Token, error) {
	defer l.buf.Reset()
	tok := Token{Pos: l.rune}
	for {
		r, err := l.readRune()
		if err != nil {
			return tok, err
		}
		switch {
		case unicode.IsSpace(r):
			tok.Pos++
			continue
		case '0' <= r && r <= '9', r == '.', r == '-' && l.unary():
			l.unreadRune()
			if err := l.scanNum(); err != nil {
				return tok, err
			}
			tok.Kind = TokenNumber
			tok.Text = l.buf.String()
			v, err := strconv.ParseFloat(tok.Text, 64)
			if err != nil && !errors.Is(err, strconv.ErrRange) {
				return tok, l.error("number")
			}
			// Out of range literals become ±Inf or 0.
			tok.Value = v
		case r == '(':
			tok.Kind = TokenLeftParen
			tok.Text = "("
		case r == ')':
			tok.Kind = TokenRightParen
			tok.Text = ")"
		default:
			op, ok := LookupOperator(r)
			if !ok {
				// Write the rune so that it shows up in the error message.
				l.buf.WriteRune(r)
				return tok, l.error("")
			}
			tok.Kind = TokenOperator
			tok.Text = op.String()
			tok.Op = op
		}
		l.prev = tok.Kind
		return tok, nil
	}
}

// scanNum scans a numeric literal into the buffer: an optional minus sign,
// then digits with at most one decimal point. Whitespace between the sign
// and the digits is dropped.
func (l *lexer) scanNum() error {
	var sign, dig, dot bool
scan:
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		switch {
		case r == '-' && l.buf.Len() == 0:
			sign = true
		case unicode.IsSpace(r) && sign && !dig && !dot:
			continue
		case '0' <= r && r <= '9':
			dig = true
		case r == '.':
			if dot {
				l.buf.WriteRune(r)
				return l.error("number")
			}
			dot = true
		default:
			l.unreadRune()
			break scan
		}
		l.buf.WriteRune(r)
	}
	if !dig {
		// "-", "." and "-." are not numbers.
		return l.error("number")
	}
	return nil
}

func (l *lexer) error(kind string) error {
	return &LexError{
		Text: l.buf.String(),
		Kind: kind,
		Col:  l.rune - 1,
	}
}

// Tokenize splits an expression into tokens. Whitespace separates tokens and
// is otherwise ignored. A minus sign at the start of the expression or after
// an operator or open parenthesis begins a number; anywhere else it is the
// subtraction operator. The result is a *LexError if the text contains a
// malformed number or a character that belongs to no token.
func Tokenize(text string) ([]Token, error) {
	scan := lex(strings.NewReader(text))
	var toks []Token
	for {
		tok, err := scan.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return toks, nil
			}
			return nil, err
		}
		toks = append(toks, tok)
	}
}

// FormatTokens joins the text of a token sequence with single spaces.
// Tokenizing the result gives back the same tokens, apart from positions.
func FormatTokens(toks []Token) string {
	var b strings.Builder
	for i, tok := range toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Text)
	}
	return b.String()
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the token the lexer was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Kind is the type of token the lexer was scanning. This is "number" for
	// a malformed number or the empty string for an unexpected character.
	Kind string
	// Col is the column of the rune that made the token invalid.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "unexpected character at " + pos + ": " + strconv.Quote(err.Text)
	}
	return "malformed " + err.Kind + " at " + pos + ": " + strconv.Quote(err.Text)
}

func (err *LexError) Pos() int {
	return err.Col
}
