// Package lexer splits source text into spanned tokens.
package lexer

import (
	"strings"

	"github.com/95th/arith/diag"
)

const lambdaRune = "λ"

type Lexer struct {
	src      string
	start    int
	pos      int
	line     int
	keywords map[string]Kind
}

func New(src string) *Lexer {
	return &Lexer{
		src:  src,
		line: 1,
		keywords: map[string]Kind{
			"true":   True,
			"false":  False,
			"if":     If,
			"else":   Else,
			"succ":   Succ,
			"pred":   Pred,
			"iszero": IsZero,
			"lambda": Lambda,
		},
	}
}

// Scan returns every token of src, ending with an EOF token.
func Scan(src string) ([]Token, error) {
	l := New(src)
	var toks []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks, nil
		}
	}
}

// Next returns the next token. Past the end of input it keeps returning EOF.
func (l *Lexer) Next() (Token, error) {
	for !l.eof() {
		l.start = l.pos
		if strings.HasPrefix(l.src[l.pos:], lambdaRune) {
			l.pos += len(lambdaRune)
			return l.token(Lambda), nil
		}
		var kind Kind
		switch c := l.nextChar(); {
		case c == '(':
			kind = LParen
		case c == ')':
			kind = RParen
		case c == '{':
			kind = LBrace
		case c == '}':
			kind = RBrace
		case c == ':':
			kind = Colon
		case c == '.':
			kind = Dot
		case c == ';':
			kind = Semi
		case c == '-' && l.peekChar() == '>':
			l.advance()
			kind = Arrow
		case c == '\n':
			l.line++
			continue
		case c == '#':
			l.eatWhile(func(c byte) bool { return c != '\n' })
			continue
		case c == ' ' || c == '\t' || c == '\r':
			continue
		case isDigit(c):
			l.eatWhile(isDigit)
			kind = Number
			if c == '0' {
				if l.pos-l.start > 1 {
					return Token{}, diag.Errorf(l.span(), "number with leading zero")
				}
				kind = Zero
			}
		case isLetter(c):
			kind = l.ident()
		default:
			return Token{}, diag.Errorf(l.span(), "unknown character")
		}
		return l.token(kind), nil
	}
	l.start = l.pos
	return l.token(EOF), nil
}

func (l *Lexer) ident() Kind {
	l.eatWhile(func(c byte) bool { return isLetter(c) || isDigit(c) || c == '_' || c == '\'' })
	if kind, ok := l.keywords[l.text()]; ok {
		return kind
	}
	return Ident
}

func (l *Lexer) token(kind Kind) Token {
	return Token{Kind: kind, Span: l.span(), Text: l.text()}
}

func (l *Lexer) text() string {
	return l.src[l.start:l.pos]
}

func (l *Lexer) span() diag.Span {
	return diag.Span{Lo: l.start, Hi: l.pos, Line: l.line}
}

func (l *Lexer) eatWhile(f func(byte) bool) {
	for !l.eof() && f(l.peekChar()) {
		l.advance()
	}
}

func (l *Lexer) peekChar() byte {
	if l.eof() {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) nextChar() byte {
	c := l.peekChar()
	l.advance()
	return c
}

func (l *Lexer) advance() {
	if !l.eof() {
		l.pos++
	}
}

func (l *Lexer) eof() bool {
	return l.pos >= len(l.src)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
