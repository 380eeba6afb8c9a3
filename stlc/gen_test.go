package stlc

import (
	"math/rand"

	"github.com/samber/lo"
)

// gen builds random well-typed terms.
type gen struct {
	rng *rand.Rand
}

func newGen(seed int64) *gen {
	return &gen{rand.New(rand.NewSource(seed))}
}

var paramNames = []string{"x", "y", "f", "n"}

func (g *gen) baseType() Type {
	if g.rng.Intn(2) == 0 {
		return TyBool{}
	}
	return TyNat{}
}

func (g *gen) anyType() Type {
	if g.rng.Intn(4) == 0 {
		return TyArr{g.baseType(), g.baseType()}
	}
	return g.baseType()
}

// term returns a term of type ty under ctx, whose entries are listed
// innermost first.
func (g *gen) term(ctx []Type, ty Type, depth int) Term {
	vars := lo.Filter(lo.Times(len(ctx), func(i int) int { return i }), func(i int, _ int) bool {
		return TypeEquals(ctx[i], ty)
	})
	if len(vars) > 0 && g.rng.Intn(3) == 0 {
		return Var{Index: vars[g.rng.Intn(len(vars))], Len: len(ctx)}
	}
	if depth <= 0 {
		return g.leaf(ctx, ty)
	}
	switch g.rng.Intn(4) {
	case 0:
		return If{
			Cond: g.term(ctx, TyBool{}, depth-1),
			Then: g.term(ctx, ty, depth-1),
			Else: g.term(ctx, ty, depth-1),
		}
	case 1:
		from := g.anyType()
		return Call{
			Callee: Fun{
				Name:  paramNames[g.rng.Intn(len(paramNames))],
				Param: from,
				Body:  g.term(prepend(from, ctx), ty, depth-1),
			},
			Arg: g.term(ctx, from, depth-1),
		}
	}
	switch ty := ty.(type) {
	case TyBool:
		if g.rng.Intn(2) == 0 {
			return IsZero{T: g.term(ctx, TyNat{}, depth-1)}
		}
	case TyNat:
		if g.rng.Intn(2) == 0 {
			return Succ{T: g.term(ctx, TyNat{}, depth-1)}
		}
		return Pred{T: g.term(ctx, TyNat{}, depth-1)}
	case TyArr:
		return Fun{
			Name:  paramNames[g.rng.Intn(len(paramNames))],
			Param: ty.From,
			Body:  g.term(prepend(ty.From, ctx), ty.To, depth-1),
		}
	}
	return g.leaf(ctx, ty)
}

func (g *gen) leaf(ctx []Type, ty Type) Term {
	switch ty := ty.(type) {
	case TyBool:
		if g.rng.Intn(2) == 0 {
			return True{}
		}
		return False{}
	case TyNat:
		return Numeral(g.rng.Intn(3), Info{})
	case TyArr:
		return Fun{Name: "z", Param: ty.From, Body: g.leaf(prepend(ty.From, ctx), ty.To)}
	}
	panic("unreachable")
}

// open returns a term with up to free free variables and no literal
// pred/iszero redexes, so that shifting it is a pure renaming.
func (g *gen) open(binders, free, depth int) Term {
	n := binders + free
	if depth <= 0 || g.rng.Intn(5) == 0 {
		if n > 0 && g.rng.Intn(2) == 0 {
			return Var{Index: g.rng.Intn(n), Len: n}
		}
		return True{}
	}
	switch g.rng.Intn(6) {
	case 0:
		return Fun{Name: "x", Param: g.baseType(), Body: g.open(binders+1, free, depth-1)}
	case 1:
		return Call{Callee: g.open(binders, free, depth-1), Arg: g.open(binders, free, depth-1)}
	case 2:
		return If{Cond: g.open(binders, free, depth-1), Then: g.open(binders, free, depth-1), Else: g.open(binders, free, depth-1)}
	case 3:
		return Succ{T: g.open(binders, free, depth-1)}
	case 4:
		return Pred{T: Call{Callee: g.open(binders, free, depth-1), Arg: Zero{}}}
	default:
		return IsZero{T: Call{Callee: g.open(binders, free, depth-1), Arg: Zero{}}}
	}
}
