package lexer

import (
	"errors"
	"testing"

	"github.com/95th/arith/diag"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

func kinds(toks []Token) []Kind {
	return lo.Map(toks, func(t Token, _ int) Kind { return t.Kind })
}

func TestScan(t *testing.T) {
	tests := []struct {
		src  string
		want []Kind
	}{
		{"", []Kind{EOF}},
		{"true false 0", []Kind{True, False, Zero, EOF}},
		{"if iszero 0 { succ 0 } else { pred 0 }", []Kind{If, IsZero, Zero, LBrace, Succ, Zero, RBrace, Else, LBrace, Pred, Zero, RBrace, EOF}},
		{"lambda x: bool -> nat { x }", []Kind{Lambda, Ident, Colon, Ident, Arrow, Ident, LBrace, Ident, RBrace, EOF}},
		{"λx:Bool{x}", []Kind{Lambda, Ident, Colon, Ident, LBrace, Ident, RBrace, EOF}},
		{"(f 12); # trailing\nx'", []Kind{LParen, Ident, Number, RParen, Semi, Ident, EOF}},
		{"a.b", []Kind{Ident, Dot, Ident, EOF}},
		{"0 10 0;100", []Kind{Zero, Number, Zero, Semi, Number, EOF}},
	}
	for _, tt := range tests {
		toks, err := Scan(tt.src)
		if err != nil {
			t.Errorf("Scan(%q): %v", tt.src, err)
			continue
		}
		if got := kinds(toks); !slices.Equal(got, tt.want) {
			t.Errorf("Scan(%q) = %v, want %v", tt.src, got, tt.want)
		}
	}
}

func TestSpans(t *testing.T) {
	toks, err := Scan("succ\n  iszero 42")
	if err != nil {
		t.Fatal(err)
	}
	want := []Token{
		{Kind: Succ, Span: diag.Span{Lo: 0, Hi: 4, Line: 1}, Text: "succ"},
		{Kind: IsZero, Span: diag.Span{Lo: 7, Hi: 13, Line: 2}, Text: "iszero"},
		{Kind: Number, Span: diag.Span{Lo: 14, Hi: 16, Line: 2}, Text: "42"},
		{Kind: EOF, Span: diag.Span{Lo: 16, Hi: 16, Line: 2}, Text: ""},
	}
	if !slices.Equal(toks, want) {
		t.Errorf("got %+v, want %+v", toks, want)
	}
}

func TestKeywordsArePerLexer(t *testing.T) {
	a, b := New("if"), New("if")
	a.keywords["if"] = Ident
	tok, _ := b.Next()
	if tok.Kind != If {
		t.Errorf("keyword table shared between lexers: got %v", tok.Kind)
	}
}

func TestUnknownCharacter(t *testing.T) {
	_, err := Scan("succ $")
	var derr *diag.Error
	if !errors.As(err, &derr) {
		t.Fatalf("expected *diag.Error, got %v", err)
	}
	if derr.Loc.Lo != 5 || derr.Loc.Hi != 6 || derr.Msg != "unknown character" {
		t.Errorf("unexpected error %+v", derr)
	}
}

func TestLeadingZero(t *testing.T) {
	_, err := Scan("succ 007")
	var derr *diag.Error
	if !errors.As(err, &derr) {
		t.Fatalf("expected *diag.Error, got %v", err)
	}
	if derr.Loc.Lo != 5 || derr.Loc.Hi != 8 || derr.Msg != "number with leading zero" {
		t.Errorf("unexpected error %+v", derr)
	}
}

func TestNextAfterEOF(t *testing.T) {
	l := New(" ")
	for i := 0; i < 3; i++ {
		tok, err := l.Next()
		if err != nil || tok.Kind != EOF {
			t.Fatalf("call %d: got %v, %v", i, tok, err)
		}
	}
}
