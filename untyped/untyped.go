// Package untyped implements the pure untyped lambda calculus over de Bruijn
// indices.
package untyped

import (
	"errors"
	"strconv"
	"strings"

	"github.com/95th/arith/diag"
	"golang.org/x/exp/slices"
)

type Term interface {
	isTerm()
	Span() diag.Span
}

type Info struct {
	Loc diag.Span
}

func (i Info) Span() diag.Span { return i.Loc }

// Var refers to the binder Index levels out. Len is the number of binders in
// scope where it was built.
type Var struct {
	Info
	Index int
	Len   int
}

func (Var) isTerm() {}

type Abs struct {
	Info
	Name string
	Body Term
}

func (Abs) isTerm() {}

type App struct {
	Info
	Target Term
	Val    Term
}

func (App) isTerm() {}

func IsVal(t Term) (isAbs bool) {
	_, isAbs = t.(Abs)
	return
}

// Equal compares a and b structurally, ignoring names and locations.
func Equal(a, b Term) bool {
	switch a := a.(type) {
	case Var:
		b, ok := b.(Var)
		return ok && a.Index == b.Index && a.Len == b.Len
	case Abs:
		b, ok := b.(Abs)
		return ok && Equal(a.Body, b.Body)
	case App:
		b, ok := b.(App)
		return ok && Equal(a.Target, b.Target) && Equal(a.Val, b.Val)
	}
	return false
}

// Context holds binder names, innermost first.
type Context []string

func (ctx Context) PickFreshName(s string) (Context, string) {
	if slices.Contains(ctx, s) {
		return ctx.PickFreshName(s + "'")
	}
	return prepend(s, ctx), s
}

func prepend(v string, from []string) []string {
	return append([]string{v}, from...)
}

func tmMap(t Term, c int, onVar func(v Var, c int) Term) Term {
	switch t := t.(type) {
	case Var:
		return onVar(t, c)
	case Abs:
		return Abs{t.Info, t.Name, tmMap(t.Body, c+1, onVar)}
	case App:
		return App{t.Info, tmMap(t.Target, c, onVar), tmMap(t.Val, c, onVar)}
	}
	panic("unreachable")
}

func ShiftAbove(t Term, c, d int) Term {
	return tmMap(t, c, func(v Var, c int) Term {
		idx := v.Index
		if idx >= c {
			idx += d
		}
		return Var{v.Info, idx, v.Len + d}
	})
}

func Shift(t Term, d int) Term {
	return ShiftAbove(t, 0, d)
}

func Subst(t Term, j int, s Term) Term {
	return tmMap(t, 0, func(v Var, c int) Term {
		if v.Index == j+c {
			return Shift(s, c)
		}
		return v
	})
}

func SubstTop(body, s Term) Term {
	return Shift(Subst(body, 0, Shift(s, 1)), -1)
}

var ErrNoRuleApplies = errors.New("no rule applies")

func Eval1(t Term) (Term, error) {
	switch t := t.(type) {
	case App:
		if abs, ok := t.Target.(Abs); ok {
			if IsVal(t.Val) {
				return SubstTop(abs.Body, t.Val), nil
			}
			val, err := Eval1(t.Val)
			if err != nil {
				return nil, err
			}
			return App{t.Info, abs, val}, nil
		}
		target, err := Eval1(t.Target)
		if err != nil {
			return nil, err
		}
		return App{t.Info, target, t.Val}, nil
	default:
		return nil, ErrNoRuleApplies
	}
}

func Eval(t Term) Term {
	for {
		t1, err := Eval1(t)
		if err != nil {
			return t
		}
		t = t1
	}
}

func Trace(t Term) []Term {
	steps := []Term{t}
	for {
		t1, err := Eval1(t)
		if err != nil {
			return steps
		}
		steps = append(steps, t1)
		t = t1
	}
}

func EvalBigStep(t Term) Term {
	app, ok := t.(App)
	if !ok {
		return t
	}
	abs, ok := EvalBigStep(app.Target).(Abs)
	if !ok {
		return t
	}
	v2 := EvalBigStep(app.Val)
	if !IsVal(v2) {
		return t
	}
	return EvalBigStep(SubstTop(abs.Body, v2))
}

func Print(buf *strings.Builder, ctx Context, t Term) {
	switch t := t.(type) {
	case Abs:
		ctx1, name := ctx.PickFreshName(t.Name)
		buf.WriteString("(lambda " + name + ". ")
		Print(buf, ctx1, t.Body)
		buf.WriteString(")")
	case App:
		buf.WriteString("(")
		Print(buf, ctx, t.Target)
		buf.WriteString(" ")
		Print(buf, ctx, t.Val)
		buf.WriteString(")")
	case Var:
		if t.Index < 0 || t.Index >= len(ctx) || len(ctx) != t.Len {
			buf.WriteString("[bad index]")
			return
		}
		buf.WriteString(ctx[t.Index])
	}
}

func String(ctx Context, t Term) string {
	var buf strings.Builder
	Print(&buf, ctx, t)
	return buf.String()
}

func DeBruijnString(t Term) string {
	switch t := t.(type) {
	case Var:
		return strconv.Itoa(t.Index)
	case Abs:
		return "(λ. " + DeBruijnString(t.Body) + ")"
	case App:
		return "(" + DeBruijnString(t.Target) + " " + DeBruijnString(t.Val) + ")"
	}
	panic("unreachable")
}
