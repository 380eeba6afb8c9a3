// Package parser builds nameless terms from source text. Identifiers are
// resolved to de Bruijn indices while parsing, and type annotations to
// stlc types.
package parser

import (
	"strconv"

	"github.com/95th/arith/diag"
	"github.com/95th/arith/lexer"
	"golang.org/x/exp/slices"
)

type parser struct {
	lex *lexer.Lexer
	tok lexer.Token
	// first lexical error; once set, the lookahead stays at EOF
	err  error
	done bool
	// names in scope, innermost first
	names []string
}

func newParser(src string) *parser {
	p := &parser{lex: lexer.New(src)}
	p.advance()
	return p
}

func (p *parser) advance() {
	if p.err != nil {
		return
	}
	tok, err := p.lex.Next()
	if err != nil {
		p.err = err
		tok = lexer.Token{Kind: lexer.EOF}
	}
	p.tok = tok
}

func (p *parser) peek() lexer.Token {
	return p.tok
}

func (p *parser) next() lexer.Token {
	tok := p.tok
	if tok.Kind != lexer.EOF {
		p.advance()
	}
	return tok
}

func (p *parser) eat(kind lexer.Kind) bool {
	if p.peek().Kind == kind {
		p.next()
		return true
	}
	return false
}

func (p *parser) expect(kind lexer.Kind) (lexer.Token, error) {
	tok := p.next()
	if tok.Kind != kind {
		return tok, diag.Errorf(tok.Span, "expected token %q, got %q", kind.String(), tok.String())
	}
	return tok, nil
}

func unexpected(tok lexer.Token) error {
	return diag.Errorf(tok.Span, "unexpected token %q", tok.String())
}

// nextExpr parses the expression at the head of the remaining input along
// with its separator. It reports false once the input is exhausted. After an
// error it reports nothing more.
func nextExpr[T any](p *parser, expr func() (T, error)) (T, bool, error) {
	var zero T
	if p.done {
		return zero, false, nil
	}
	if p.peek().Kind == lexer.EOF {
		p.done = true
		return zero, false, p.err
	}
	t, err := expr()
	if p.err != nil {
		err = p.err
	}
	if err != nil {
		p.done = true
		return zero, false, err
	}
	if p.eat(lexer.Semi) {
		return t, true, nil
	}
	if tok := p.next(); tok.Kind != lexer.EOF {
		p.done = true
		return zero, false, diag.Errorf(tok.Span, "expected token %q, got %q", lexer.Semi.String(), tok.String())
	}
	if p.err != nil {
		p.done = true
		return zero, false, p.err
	}
	return t, true, nil
}

// program collects every expression of the input.
func program[T any](p *parser, expr func() (T, error)) ([]T, error) {
	var terms []T
	for {
		t, ok, err := nextExpr(p, expr)
		if err != nil {
			return nil, err
		}
		if !ok {
			return terms, nil
		}
		terms = append(terms, t)
	}
}

// bind runs f with name bound as the innermost variable.
func bind[T any](p *parser, name string, f func() (T, error)) (T, error) {
	saved := p.names
	p.names = append([]string{name}, saved...)
	defer func() { p.names = saved }()
	return f()
}

// lookup resolves an identifier to its de Bruijn index and the number of
// binders in scope.
func (p *parser) lookup(tok lexer.Token) (idx, n int, err error) {
	idx = slices.Index(p.names, tok.Text)
	if idx < 0 {
		return 0, 0, diag.Errorf(tok.Span, "undefined variable %q", tok.Text)
	}
	return idx, len(p.names), nil
}

// maxNumeral bounds decimal literals, which expand to succ chains.
const maxNumeral = 1 << 16

func number(tok lexer.Token) (int, error) {
	n, err := strconv.Atoi(tok.Text)
	if err != nil || n > maxNumeral {
		return 0, diag.Errorf(tok.Span, "number %s out of range", tok.Text)
	}
	return n, nil
}
