package parser

import (
	"github.com/95th/arith/diag"
	"github.com/95th/arith/lexer"
	"github.com/95th/arith/stlc"
)

// ParseTyped parses a program of the typed language:
//
//	program = expr { ";" expr } [ ";" ]
//	expr    = atom { atom }
//	atom    = "true" | "false" | "0" | NUMBER | IDENT
//	        | ("succ" | "pred" | "iszero") atom
//	        | "if" expr "{" expr "}" "else" "{" expr "}"
//	        | "lambda" IDENT ":" type "{" expr "}"
//	        | "(" expr ")"
//	type    = tyatom [ "->" type ]
//	tyatom  = "bool" | "nat" | "(" type ")"
func ParseTyped(src string) ([]stlc.Term, error) {
	p := newParser(src)
	return program(p, p.typedExpr)
}

// Typed reads the expressions of a typed program one at a time, so that a
// syntax error only surfaces once the expressions before it were handled.
type Typed struct {
	p *parser
}

func NewTyped(src string) *Typed {
	return &Typed{newParser(src)}
}

// Next returns the next expression, or false at the end of the input.
func (r *Typed) Next() (stlc.Term, bool, error) {
	return nextExpr(r.p, r.p.typedExpr)
}

func startsTypedAtom(kind lexer.Kind) bool {
	switch kind {
	case lexer.True, lexer.False, lexer.Zero, lexer.Number, lexer.Ident,
		lexer.Succ, lexer.Pred, lexer.IsZero, lexer.If, lexer.Lambda, lexer.LParen:
		return true
	}
	return false
}

func (p *parser) typedExpr() (stlc.Term, error) {
	t, err := p.typedAtom()
	if err != nil {
		return nil, err
	}
	for startsTypedAtom(p.peek().Kind) {
		arg, err := p.typedAtom()
		if err != nil {
			return nil, err
		}
		t = stlc.Call{Info: stlc.Info{Loc: t.Span().To(arg.Span())}, Callee: t, Arg: arg}
	}
	return t, nil
}

func (p *parser) typedAtom() (stlc.Term, error) {
	tok := p.next()
	info := stlc.Info{Loc: tok.Span}
	switch tok.Kind {
	case lexer.True:
		return stlc.True{Info: info}, nil
	case lexer.False:
		return stlc.False{Info: info}, nil
	case lexer.Zero:
		return stlc.Zero{Info: info}, nil
	case lexer.Number:
		n, err := number(tok)
		if err != nil {
			return nil, err
		}
		return stlc.Numeral(n, info), nil
	case lexer.Ident:
		idx, n, err := p.lookup(tok)
		if err != nil {
			return nil, err
		}
		return stlc.Var{Info: info, Index: idx, Len: n}, nil
	case lexer.Succ, lexer.Pred, lexer.IsZero:
		t, err := p.typedAtom()
		if err != nil {
			return nil, err
		}
		info.Loc = tok.Span.To(t.Span())
		switch tok.Kind {
		case lexer.Succ:
			return stlc.Succ{Info: info, T: t}, nil
		case lexer.Pred:
			return stlc.Pred{Info: info, T: t}, nil
		default:
			return stlc.IsZero{Info: info, T: t}, nil
		}
	case lexer.If:
		return p.typedIf(tok)
	case lexer.Lambda:
		return p.typedLambda(tok)
	case lexer.LParen:
		t, err := p.typedExpr()
		if err != nil {
			return nil, err
		}
		end, err := p.expect(lexer.RParen)
		if err != nil {
			return nil, err
		}
		return withTypedSpan(t, tok.Span.To(end.Span)), nil
	}
	return nil, unexpected(tok)
}

// withTypedSpan moves t's location to span, which covers its parentheses.
func withTypedSpan(t stlc.Term, span diag.Span) stlc.Term {
	info := stlc.Info{Loc: span}
	switch t := t.(type) {
	case stlc.True:
		t.Info = info
		return t
	case stlc.False:
		t.Info = info
		return t
	case stlc.Zero:
		t.Info = info
		return t
	case stlc.Succ:
		t.Info = info
		return t
	case stlc.Pred:
		t.Info = info
		return t
	case stlc.IsZero:
		t.Info = info
		return t
	case stlc.If:
		t.Info = info
		return t
	case stlc.Var:
		t.Info = info
		return t
	case stlc.Fun:
		t.Info = info
		return t
	case stlc.Call:
		t.Info = info
		return t
	}
	return t
}

// block parses "{" expr "}" and returns the closing brace as well.
func (p *parser) typedBlock() (stlc.Term, lexer.Token, error) {
	if _, err := p.expect(lexer.LBrace); err != nil {
		return nil, lexer.Token{}, err
	}
	t, err := p.typedExpr()
	if err != nil {
		return nil, lexer.Token{}, err
	}
	end, err := p.expect(lexer.RBrace)
	return t, end, err
}

func (p *parser) typedIf(tok lexer.Token) (stlc.Term, error) {
	cond, err := p.typedExpr()
	if err != nil {
		return nil, err
	}
	then, _, err := p.typedBlock()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.Else); err != nil {
		return nil, err
	}
	els, end, err := p.typedBlock()
	if err != nil {
		return nil, err
	}
	return stlc.If{Info: stlc.Info{Loc: tok.Span.To(end.Span)}, Cond: cond, Then: then, Else: els}, nil
}

func (p *parser) typedLambda(tok lexer.Token) (stlc.Term, error) {
	name, err := p.expect(lexer.Ident)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.Colon); err != nil {
		return nil, err
	}
	ty, err := p.typ()
	if err != nil {
		return nil, err
	}
	var end lexer.Token
	body, err := bind(p, name.Text, func() (stlc.Term, error) {
		t, e, err := p.typedBlock()
		end = e
		return t, err
	})
	if err != nil {
		return nil, err
	}
	return stlc.Fun{Info: stlc.Info{Loc: tok.Span.To(end.Span)}, Name: name.Text, Param: ty, Body: body}, nil
}

func (p *parser) typ() (stlc.Type, error) {
	from, err := p.tyAtom()
	if err != nil {
		return nil, err
	}
	if !p.eat(lexer.Arrow) {
		return from, nil
	}
	to, err := p.typ()
	if err != nil {
		return nil, err
	}
	return stlc.TyArr{From: from, To: to}, nil
}

func (p *parser) tyAtom() (stlc.Type, error) {
	tok := p.next()
	switch tok.Kind {
	case lexer.Ident:
		switch tok.Text {
		case "bool", "Bool":
			return stlc.TyBool{}, nil
		case "nat", "Nat":
			return stlc.TyNat{}, nil
		}
		return nil, stlc.UnknownType(tok.Span, tok.Text)
	case lexer.LParen:
		ty, err := p.typ()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RParen); err != nil {
			return nil, err
		}
		return ty, nil
	}
	return nil, unexpected(tok)
}
