package lexer

import "github.com/95th/arith/diag"

type Kind uint8

const (
	EOF Kind = iota
	Ident
	Zero
	Number
	True
	False
	If
	Else
	Succ
	Pred
	IsZero
	Lambda
	LParen
	RParen
	LBrace
	RBrace
	Colon
	Dot
	Semi
	Arrow
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case Ident:
		return "identifier"
	case Zero:
		return "0"
	case Number:
		return "number"
	case True:
		return "true"
	case False:
		return "false"
	case If:
		return "if"
	case Else:
		return "else"
	case Succ:
		return "succ"
	case Pred:
		return "pred"
	case IsZero:
		return "iszero"
	case Lambda:
		return "lambda"
	case LParen:
		return "("
	case RParen:
		return ")"
	case LBrace:
		return "{"
	case RBrace:
		return "}"
	case Colon:
		return ":"
	case Dot:
		return "."
	case Semi:
		return ";"
	case Arrow:
		return "->"
	}
	panic("unreachable")
}

type Token struct {
	Kind Kind
	Span diag.Span
	Text string
}

func (t Token) String() string {
	switch t.Kind {
	case EOF:
		return "EOF"
	case Ident, Number:
		return t.Text
	}
	return t.Kind.String()
}
