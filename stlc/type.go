package stlc

type Type interface {
	isType()
	String() string
}

type TyBool struct{}

func (TyBool) isType()        {}
func (TyBool) String() string { return "Bool" }

type TyNat struct{}

func (TyNat) isType()        {}
func (TyNat) String() string { return "Nat" }

type TyArr struct {
	From, To Type
}

func (TyArr) isType() {}

func (t TyArr) String() string {
	from := t.From.String()
	if _, ok := t.From.(TyArr); ok {
		from = "(" + from + ")"
	}
	return from + "->" + t.To.String()
}

// TypeEquals compares types structurally.
func TypeEquals(l, r Type) bool {
	switch l := l.(type) {
	case TyBool:
		_, ok := r.(TyBool)
		return ok
	case TyNat:
		_, ok := r.(TyNat)
		return ok
	case TyArr:
		r, ok := r.(TyArr)
		return ok && TypeEquals(l.From, r.From) && TypeEquals(l.To, r.To)
	}
	return false
}
