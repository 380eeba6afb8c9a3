package stlc

import (
	"fmt"

	"github.com/95th/arith/diag"
)

type ErrorKind uint8

const (
	GuardNotBool ErrorKind = iota + 1
	BranchMismatch
	ExpectedNat
	NotAFunction
	ArgTypeMismatch
	UnboundOrWrongBinding
	UnknownTypeName
)

func (k ErrorKind) String() string {
	switch k {
	case GuardNotBool:
		return "GuardNotBool"
	case BranchMismatch:
		return "BranchMismatch"
	case ExpectedNat:
		return "ExpectedNat"
	case NotAFunction:
		return "NotAFunction"
	case ArgTypeMismatch:
		return "ArgTypeMismatch"
	case UnboundOrWrongBinding:
		return "UnboundOrWrongBinding"
	case UnknownTypeName:
		return "UnknownTypeName"
	}
	return fmt.Sprintf("ErrorKind(%d)", k)
}

type TypeError struct {
	Kind ErrorKind
	Loc  diag.Span
	Msg  string
}

func typeErrorf(kind ErrorKind, span diag.Span, format string, args ...any) *TypeError {
	return &TypeError{Kind: kind, Loc: span, Msg: fmt.Sprintf(format, args...)}
}

func (e *TypeError) Error() string   { return e.Msg }
func (e *TypeError) Span() diag.Span { return e.Loc }

// UnknownType reports a type annotation naming no known type.
func UnknownType(span diag.Span, name string) *TypeError {
	return typeErrorf(UnknownTypeName, span, "unknown type %q", name)
}

// TypeOf computes the type of t under ctx. It never modifies t.
func TypeOf(ctx Context, t Term) (Type, error) {
	switch t := t.(type) {
	case True, False:
		return TyBool{}, nil
	case Zero:
		return TyNat{}, nil
	case Succ:
		if err := expectNat(ctx, t.T); err != nil {
			return nil, err
		}
		return TyNat{}, nil
	case Pred:
		if err := expectNat(ctx, t.T); err != nil {
			return nil, err
		}
		return TyNat{}, nil
	case IsZero:
		if err := expectNat(ctx, t.T); err != nil {
			return nil, err
		}
		return TyBool{}, nil
	case If:
		condType, err := TypeOf(ctx, t.Cond)
		if err != nil {
			return nil, err
		}
		if !TypeEquals(condType, TyBool{}) {
			return nil, typeErrorf(GuardNotBool, t.Cond.Span(), "guard of conditional must be a boolean, got %v", condType)
		}
		thenType, err := TypeOf(ctx, t.Then)
		if err != nil {
			return nil, err
		}
		elseType, err := TypeOf(ctx, t.Else)
		if err != nil {
			return nil, err
		}
		if !TypeEquals(thenType, elseType) {
			return nil, typeErrorf(BranchMismatch, t.Span(), "arms of conditional have different types: %v and %v", thenType, elseType)
		}
		return thenType, nil
	case Var:
		ty, ok := ctx.TypeOfIndex(t.Index)
		if !ok {
			if name, bound := ctx.IndexToName(t.Index); bound {
				return nil, typeErrorf(UnboundOrWrongBinding, t.Span(), "wrong kind of binding for variable %q", name)
			}
			return nil, typeErrorf(UnboundOrWrongBinding, t.Span(), "unbound variable index %d", t.Index)
		}
		return ty, nil
	case Fun:
		ctxPrime := ctx.AddBinding(t.Name, VarBind{t.Param})
		bodyType, err := TypeOf(ctxPrime, t.Body)
		if err != nil {
			return nil, err
		}
		return TyArr{t.Param, bodyType}, nil
	case Call:
		calleeType, err := TypeOf(ctx, t.Callee)
		if err != nil {
			return nil, err
		}
		argType, err := TypeOf(ctx, t.Arg)
		if err != nil {
			return nil, err
		}
		arr, ok := calleeType.(TyArr)
		if !ok {
			return nil, typeErrorf(NotAFunction, t.Span(), "arrow type expected, got %v", calleeType)
		}
		if !TypeEquals(argType, arr.From) {
			return nil, typeErrorf(ArgTypeMismatch, t.Span(), "parameter type mismatch: expected %v, got %v", arr.From, argType)
		}
		return arr.To, nil
	}
	panic("unreachable")
}

func expectNat(ctx Context, t Term) error {
	ty, err := TypeOf(ctx, t)
	if err != nil {
		return err
	}
	if !TypeEquals(ty, TyNat{}) {
		return typeErrorf(ExpectedNat, t.Span(), "argument must be a Nat, got %v", ty)
	}
	return nil
}
