// Package stlc implements the simply-typed lambda calculus with booleans and
// natural numbers over a nameless (de Bruijn) term representation.
package stlc

import "github.com/95th/arith/diag"

// Term is an immutable node of the term tree. Subtrees may be shared between
// terms; nothing mutates a Term after construction.
type Term interface {
	isTerm()
	Span() diag.Span
}

// Info carries a term's source location. It has no semantic role.
type Info struct {
	Loc diag.Span
}

func (i Info) Span() diag.Span { return i.Loc }

type True struct{ Info }

func (True) isTerm() {}

type False struct{ Info }

func (False) isTerm() {}

type Zero struct{ Info }

func (Zero) isTerm() {}

type Succ struct {
	Info
	T Term
}

func (Succ) isTerm() {}

type Pred struct {
	Info
	T Term
}

func (Pred) isTerm() {}

type IsZero struct {
	Info
	T Term
}

func (IsZero) isTerm() {}

type If struct {
	Info
	Cond Term
	Then Term
	Else Term
}

func (If) isTerm() {}

// Var refers to the binder Index levels out from its use site. Len is the
// number of binders in scope where the Var was built, and is only used to
// detect inconsistent terms when printing.
type Var struct {
	Info
	Index int
	Len   int
}

func (Var) isTerm() {}

// Fun is a one-argument abstraction. Name is only used for display.
type Fun struct {
	Info
	Name  string
	Param Type
	Body  Term
}

func (Fun) isTerm() {}

type Call struct {
	Info
	Callee Term
	Arg    Term
}

func (Call) isTerm() {}

func isNumericVal(t Term) bool {
	switch t := t.(type) {
	case Zero:
		return true
	case Succ:
		return isNumericVal(t.T)
	default:
		return false
	}
}

// IsVal reports whether t is in normal form: a boolean, a numeral, or an
// abstraction.
func IsVal(t Term) bool {
	switch t.(type) {
	case True, False, Fun:
		return true
	default:
		return isNumericVal(t)
	}
}

// Equal reports whether a and b have the same shape, ignoring source
// locations and binder names.
func Equal(a, b Term) bool {
	switch a := a.(type) {
	case True:
		_, ok := b.(True)
		return ok
	case False:
		_, ok := b.(False)
		return ok
	case Zero:
		_, ok := b.(Zero)
		return ok
	case Succ:
		b, ok := b.(Succ)
		return ok && Equal(a.T, b.T)
	case Pred:
		b, ok := b.(Pred)
		return ok && Equal(a.T, b.T)
	case IsZero:
		b, ok := b.(IsZero)
		return ok && Equal(a.T, b.T)
	case If:
		b, ok := b.(If)
		return ok && Equal(a.Cond, b.Cond) && Equal(a.Then, b.Then) && Equal(a.Else, b.Else)
	case Var:
		b, ok := b.(Var)
		return ok && a.Index == b.Index && a.Len == b.Len
	case Fun:
		b, ok := b.(Fun)
		return ok && TypeEquals(a.Param, b.Param) && Equal(a.Body, b.Body)
	case Call:
		b, ok := b.(Call)
		return ok && Equal(a.Callee, b.Callee) && Equal(a.Arg, b.Arg)
	}
	return false
}

// Numeral returns succ^n 0.
func Numeral(n int, info Info) Term {
	var t Term = Zero{info}
	for i := 0; i < n; i++ {
		t = Succ{info, t}
	}
	return t
}
