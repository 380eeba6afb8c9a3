package stlc

import "errors"

// ErrNoRuleApplies is returned by Eval1 when t is a value or is stuck.
var ErrNoRuleApplies = errors.New("no rule applies")

// Eval1 performs one call-by-value reduction step.
func Eval1(t Term) (Term, error) {
	return eval1(t, false)
}

// open treats variables as values, which is sound while reducing the body of
// an abstraction: call-by-value only ever substitutes values for them.
func eval1(t Term, open bool) (Term, error) {
	isVal := func(t Term) bool {
		_, isVar := t.(Var)
		return IsVal(t) || open && isVar
	}
	switch t := t.(type) {
	case If:
		switch t.Cond.(type) {
		case True:
			return t.Then, nil
		case False:
			return t.Else, nil
		}
		if isVal(t.Cond) {
			return nil, ErrNoRuleApplies
		}
		cond, err := eval1(t.Cond, open)
		if err != nil {
			return nil, err
		}
		return If{t.Info, cond, t.Then, t.Else}, nil
	case Call:
		if fun, ok := t.Callee.(Fun); ok && isVal(t.Arg) {
			return SubstTop(fun.Body, t.Arg), nil
		}
		if isVal(t.Callee) {
			arg, err := eval1(t.Arg, open)
			if err != nil {
				return nil, err
			}
			return Call{t.Info, t.Callee, arg}, nil
		}
		callee, err := eval1(t.Callee, open)
		if err != nil {
			return nil, err
		}
		return Call{t.Info, callee, t.Arg}, nil
	case Succ:
		t1, err := eval1(t.T, open)
		if err != nil {
			return nil, err
		}
		return Succ{t.Info, t1}, nil
	case Pred:
		switch v := eval(t.T, open).(type) {
		case Zero:
			return Zero{t.Info}, nil
		case Succ:
			if isNumericVal(v.T) {
				return v.T, nil
			}
		}
		return nil, ErrNoRuleApplies
	case IsZero:
		switch v := eval(t.T, open).(type) {
		case Zero:
			return True{t.Info}, nil
		case Succ:
			if isNumericVal(v.T) {
				return False{t.Info}, nil
			}
		}
		return nil, ErrNoRuleApplies
	}
	return nil, ErrNoRuleApplies
}

// Eval reduces t until no rule applies. The result is a value unless t is
// stuck; callers that care must check IsVal.
func Eval(t Term) Term {
	return eval(t, false)
}

func eval(t Term, open bool) Term {
	for {
		t1, err := eval1(t, open)
		if err != nil {
			return t
		}
		t = t1
	}
}

// Trace returns every term of the reduction sequence starting at t, t
// itself included.
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

// EvalUnder evaluates t and then, if the result is an abstraction, its body,
// recursively.
func EvalUnder(t Term) Term {
	return evalUnder(t, false)
}

func evalUnder(t Term, open bool) Term {
	v := eval(t, open)
	if fun, ok := v.(Fun); ok {
		return Fun{fun.Info, fun.Name, fun.Param, evalUnder(fun.Body, true)}
	}
	return v
}

// EvalBigStep evaluates t with a natural semantics. A stuck term is returned
// unchanged.
func EvalBigStep(t Term) Term {
	switch t := t.(type) {
	case If:
		switch EvalBigStep(t.Cond).(type) {
		case True:
			return EvalBigStep(t.Then)
		case False:
			return EvalBigStep(t.Else)
		}
	case Call:
		if fun, ok := EvalBigStep(t.Callee).(Fun); ok {
			if v2 := EvalBigStep(t.Arg); IsVal(v2) {
				return EvalBigStep(SubstTop(fun.Body, v2))
			}
		}
	case Succ:
		if v1 := EvalBigStep(t.T); isNumericVal(v1) {
			return Succ{t.Info, v1}
		}
	case Pred:
		switch v1 := EvalBigStep(t.T).(type) {
		case Zero:
			return v1
		case Succ:
			if isNumericVal(v1.T) {
				return v1.T
			}
		}
	case IsZero:
		switch v1 := EvalBigStep(t.T).(type) {
		case Zero:
			return True{t.Info}
		case Succ:
			if isNumericVal(v1.T) {
				return False{t.Info}
			}
		}
	}
	return t
}
