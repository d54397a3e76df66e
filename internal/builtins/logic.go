package builtins

import (
	"github.com/nunb/pyscheme-go/internal/trampoline"
	"github.com/nunb/pyscheme-go/internal/types"
	"github.com/nunb/pyscheme-go/internal/values"
)

// andForm and orForm are SpecialForms, not Primitives, because they must
// not always evaluate their second operand: an unknown first operand
// still needs the second to resolve the three-valued result, but a
// decisive first operand short-circuits it.
func andForm() *values.SpecialForm {
	return values.NewSpecialForm("and", func(operands values.List, env *values.Environment, ret values.Ret, amb values.Amb) trampoline.Step {
		if operands.Len() != 2 {
			return values.Fail(arityError("and", 2, operands.Len()))
		}
		aExpr, bExpr := operands.Car(), operands.Cdr().Car()
		aRet := func(aVal values.Expr, amb values.Amb) trampoline.Step {
			a, err := values.AsBoolean(aVal)
			if err != nil {
				return values.Fail(err)
			}
			switch {
			case a.IsFalse():
				return trampoline.Thunk(func() trampoline.Step { return ret(aVal, amb) })
			case a.IsTrue():
				return trampoline.Thunk(func() trampoline.Step { return bExpr.Eval(env, ret, amb) })
			default: // unknown
				bRet := func(bVal values.Expr, amb values.Amb) trampoline.Step {
					b, err := values.AsBoolean(bVal)
					if err != nil {
						return values.Fail(err)
					}
					if b.IsFalse() {
						return trampoline.Thunk(func() trampoline.Step { return ret(bVal, amb) })
					}
					return trampoline.Thunk(func() trampoline.Step { return ret(aVal, amb) })
				}
				return trampoline.Thunk(func() trampoline.Step { return bExpr.Eval(env, bRet, amb) })
			}
		}
		return trampoline.Thunk(func() trampoline.Step { return aExpr.Eval(env, aRet, amb) })
	})
}

func orForm() *values.SpecialForm {
	return values.NewSpecialForm("or", func(operands values.List, env *values.Environment, ret values.Ret, amb values.Amb) trampoline.Step {
		if operands.Len() != 2 {
			return values.Fail(arityError("or", 2, operands.Len()))
		}
		aExpr, bExpr := operands.Car(), operands.Cdr().Car()
		aRet := func(aVal values.Expr, amb values.Amb) trampoline.Step {
			a, err := values.AsBoolean(aVal)
			if err != nil {
				return values.Fail(err)
			}
			switch {
			case a.IsTrue():
				return trampoline.Thunk(func() trampoline.Step { return ret(aVal, amb) })
			case a.IsFalse():
				return trampoline.Thunk(func() trampoline.Step { return bExpr.Eval(env, ret, amb) })
			default: // unknown
				bRet := func(bVal values.Expr, amb values.Amb) trampoline.Step {
					b, err := values.AsBoolean(bVal)
					if err != nil {
						return values.Fail(err)
					}
					if b.IsTrue() {
						return trampoline.Thunk(func() trampoline.Step { return ret(bVal, amb) })
					}
					return trampoline.Thunk(func() trampoline.Step { return ret(aVal, amb) })
				}
				return trampoline.Thunk(func() trampoline.Step { return bExpr.Eval(env, bRet, amb) })
			}
		}
		return trampoline.Thunk(func() trampoline.Step { return aExpr.Eval(env, aRet, amb) })
	})
}

func logicBuiltins() []Builtin {
	boolTV := types.Bool
	notFn := values.NewPrimitive("not", func(args values.List, ret values.Ret, amb values.Amb) trampoline.Step {
		xs := argSlice(args)
		if len(xs) != 1 {
			return values.Fail(arityError("not", 1, len(xs)))
		}
		b, err := values.AsBoolean(xs[0])
		if err != nil {
			return values.Fail(err)
		}
		return trampoline.Thunk(func() trampoline.Step { return ret(values.Not(b), amb) })
	})
	xorFn := values.NewPrimitive("xor", func(args values.List, ret values.Ret, amb values.Amb) trampoline.Step {
		xs := argSlice(args)
		if len(xs) != 2 {
			return values.Fail(arityError("xor", 2, len(xs)))
		}
		a, err := values.AsBoolean(xs[0])
		if err != nil {
			return values.Fail(err)
		}
		b, err := values.AsBoolean(xs[1])
		if err != nil {
			return values.Fail(err)
		}
		return trampoline.Thunk(func() trampoline.Step { return ret(values.Xor(a, b), amb) })
	})

	return []Builtin{
		{Name: "and", Value: andForm(), Type: types.FuncN([]types.Type{boolTV, boolTV}, types.Bool)},
		{Name: "or", Value: orForm(), Type: types.FuncN([]types.Type{boolTV, boolTV}, types.Bool)},
		{Name: "not", Value: notFn, Type: types.FuncN([]types.Type{boolTV}, types.Bool)},
		{Name: "xor", Value: xorFn, Type: types.FuncN([]types.Type{boolTV, boolTV}, types.Bool)},
	}
}
