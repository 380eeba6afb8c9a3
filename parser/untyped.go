package parser

import (
	"github.com/95th/arith/lexer"
	"github.com/95th/arith/untyped"
)

// ParseUntyped parses a program of the untyped language:
//
//	expr = atom { atom }
//	atom = IDENT | "lambda" IDENT "{" expr "}" | "(" expr ")"
func ParseUntyped(src string) ([]untyped.Term, error) {
	p := newParser(src)
	return program(p, p.untypedExpr)
}

// Untyped reads the expressions of an untyped program one at a time.
type Untyped struct {
	p *parser
}

func NewUntyped(src string) *Untyped {
	return &Untyped{newParser(src)}
}

func (r *Untyped) Next() (untyped.Term, bool, error) {
	return nextExpr(r.p, r.p.untypedExpr)
}

func (p *parser) untypedExpr() (untyped.Term, error) {
	t, err := p.untypedAtom()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().Kind {
		case lexer.Ident, lexer.Lambda, lexer.LParen:
		default:
			return t, nil
		}
		val, err := p.untypedAtom()
		if err != nil {
			return nil, err
		}
		t = untyped.App{Info: untyped.Info{Loc: t.Span().To(val.Span())}, Target: t, Val: val}
	}
}

func (p *parser) untypedAtom() (untyped.Term, error) {
	tok := p.next()
	switch tok.Kind {
	case lexer.Ident:
		idx, n, err := p.lookup(tok)
		if err != nil {
			return nil, err
		}
		return untyped.Var{Info: untyped.Info{Loc: tok.Span}, Index: idx, Len: n}, nil
	case lexer.Lambda:
		name, err := p.expect(lexer.Ident)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.LBrace); err != nil {
			return nil, err
		}
		body, err := bind(p, name.Text, p.untypedExpr)
		if err != nil {
			return nil, err
		}
		end, err := p.expect(lexer.RBrace)
		if err != nil {
			return nil, err
		}
		return untyped.Abs{Info: untyped.Info{Loc: tok.Span.To(end.Span)}, Name: name.Text, Body: body}, nil
	case lexer.LParen:
		t, err := p.untypedExpr()
		if err != nil {
			return nil, err
		}
		end, err := p.expect(lexer.RParen)
		if err != nil {
			return nil, err
		}
		info := untyped.Info{Loc: tok.Span.To(end.Span)}
		switch t := t.(type) {
		case untyped.Var:
			t.Info = info
			return t, nil
		case untyped.Abs:
			t.Info = info
			return t, nil
		case untyped.App:
			t.Info = info
			return t, nil
		}
		return t, nil
	}
	return nil, unexpected(tok)
}
