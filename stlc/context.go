package stlc

import "github.com/samber/lo"

type Binding interface {
	isBinding()
}

// NameBind records only a name, as introduced while printing.
type NameBind struct{}

func (NameBind) isBinding() {}

// VarBind records the type of a lambda-bound variable.
type VarBind struct{ Type Type }

func (VarBind) isBinding() {}

type Entry struct {
	Name    string
	Binding Binding
}

// Context maps de Bruijn indices to binders: index 0 is the innermost one.
// A Context is never modified in place; AddBinding returns a new one, so
// sibling subtrees never see each other's binders.
type Context []Entry

func (ctx Context) AddBinding(name string, bind Binding) Context {
	return prepend(Entry{name, bind}, ctx)
}

func (ctx Context) IsNameBound(name string) bool {
	return lo.ContainsBy(ctx, func(e Entry) bool { return e.Name == name })
}

// PickFreshName primes name until it is unused in ctx, then binds it.
func (ctx Context) PickFreshName(name string) (Context, string) {
	for ctx.IsNameBound(name) {
		name += "'"
	}
	return ctx.AddBinding(name, NameBind{}), name
}

func (ctx Context) IndexToName(i int) (string, bool) {
	if i < 0 || i >= len(ctx) {
		return "", false
	}
	return ctx[i].Name, true
}

// TypeOfIndex returns the type of the variable bound at index i, or false if
// i is out of range or not bound to a typed variable.
func (ctx Context) TypeOfIndex(i int) (Type, bool) {
	if i < 0 || i >= len(ctx) {
		return nil, false
	}
	if bind, ok := ctx[i].Binding.(VarBind); ok {
		return bind.Type, true
	}
	return nil, false
}

func prepend[T any](v T, from []T) []T {
	return append([]T{v}, from...)
}
