package stlc

import (
	"strconv"
	"strings"
)

// Print writes t in surface syntax, recovering binder names through ctx.
// A Var whose recorded context length disagrees with ctx prints as
// "[bad index]".
func Print(buf *strings.Builder, ctx Context, t Term) {
	switch t := t.(type) {
	case True:
		buf.WriteString("true")
	case False:
		buf.WriteString("false")
	case Zero:
		buf.WriteString("0")
	case Succ:
		buf.WriteString("succ ")
		Print(buf, ctx, t.T)
	case Pred:
		buf.WriteString("pred ")
		Print(buf, ctx, t.T)
	case IsZero:
		buf.WriteString("iszero ")
		Print(buf, ctx, t.T)
	case If:
		buf.WriteString("if ")
		Print(buf, ctx, t.Cond)
		buf.WriteString(" { ")
		Print(buf, ctx, t.Then)
		buf.WriteString(" } else { ")
		Print(buf, ctx, t.Else)
		buf.WriteString(" }")
	case Fun:
		ctx1, name := ctx.PickFreshName(t.Name)
		buf.WriteString("(lambda " + name + ". ")
		Print(buf, ctx1, t.Body)
		buf.WriteString(")")
	case Call:
		buf.WriteString("(")
		Print(buf, ctx, t.Callee)
		buf.WriteString(" ")
		Print(buf, ctx, t.Arg)
		buf.WriteString(")")
	case Var:
		name, ok := ctx.IndexToName(t.Index)
		if !ok || len(ctx) != t.Len {
			buf.WriteString("[bad index]")
			return
		}
		buf.WriteString(name)
	}
}

func String(ctx Context, t Term) string {
	var buf strings.Builder
	Print(&buf, ctx, t)
	return buf.String()
}

// DeBruijnString prints t without names: variables as indices, abstractions
// with their parameter type only.
func DeBruijnString(t Term) string {
	switch t := t.(type) {
	case True:
		return "true"
	case False:
		return "false"
	case Zero:
		return "0"
	case Succ:
		return "succ " + DeBruijnString(t.T)
	case Pred:
		return "pred " + DeBruijnString(t.T)
	case IsZero:
		return "iszero " + DeBruijnString(t.T)
	case If:
		return "if " + DeBruijnString(t.Cond) + " { " + DeBruijnString(t.Then) + " } else { " + DeBruijnString(t.Else) + " }"
	case Var:
		return strconv.Itoa(t.Index)
	case Fun:
		return "(λ:" + t.Param.String() + ". " + DeBruijnString(t.Body) + ")"
	case Call:
		return "(" + DeBruijnString(t.Callee) + " " + DeBruijnString(t.Arg) + ")"
	}
	panic("unreachable")
}
