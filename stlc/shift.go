package stlc

// tmMap rebuilds t, calling onVar for every Var with the number of binders
// crossed so far (c). Arithmetic redexes on literals are folded on the way.
func tmMap(t Term, c int, onVar func(v Var, c int) Term) Term {
	var walk func(t Term, c int) Term
	walk = func(t Term, c int) Term {
		switch t := t.(type) {
		case True, False, Zero:
			return t
		case Var:
			return onVar(t, c)
		case If:
			return If{t.Info, walk(t.Cond, c), walk(t.Then, c), walk(t.Else, c)}
		case Succ:
			return Succ{t.Info, walk(t.T, c)}
		case Pred:
			switch t1 := t.T.(type) {
			case Zero:
				return Zero{t.Info}
			case Succ:
				return walk(t1.T, c)
			}
			return Pred{t.Info, walk(t.T, c)}
		case IsZero:
			switch t.T.(type) {
			case Zero:
				return True{t.Info}
			case Succ:
				return False{t.Info}
			}
			return IsZero{t.Info, walk(t.T, c)}
		case Fun:
			return Fun{t.Info, t.Name, t.Param, walk(t.Body, c+1)}
		case Call:
			return Call{t.Info, walk(t.Callee, c), walk(t.Arg, c)}
		}
		panic("unreachable")
	}
	return walk(t, c)
}

// ShiftAbove adds d to every Var index at or above cutoff c, and d to every
// recorded context length.
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

// Subst replaces the variable j (as seen from the root of t) with s.
func Subst(t Term, j int, s Term) Term {
	return tmMap(t, 0, func(v Var, c int) Term {
		if v.Index == j+c {
			return Shift(s, c)
		}
		return v
	})
}

// SubstTop substitutes s for the outermost bound variable of body and
// removes that binder: the body of a beta-redex.
func SubstTop(body, s Term) Term {
	return Shift(Subst(body, 0, Shift(s, 1)), -1)
}
