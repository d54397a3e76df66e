package builtins

import (
	"github.com/nunb/pyscheme-go/internal/trampoline"
	"github.com/nunb/pyscheme-go/internal/types"
	"github.com/nunb/pyscheme-go/internal/values"
)

// cmpConstants compares two Constants (Integer, Character or StringVal) of
// the same underlying kind, returning Go's -1/0/1 convention. Comparing
// constants of different kinds, or a non-constant, is a shape error.
func cmpConstants(name string, a, b values.Expr) (int, error) {
	switch av := a.(type) {
	case *values.Integer:
		bv, ok := b.(*values.Integer)
		if !ok {
			return 0, shapeError(name + ": operands are not the same constant kind")
		}
		return av.Cmp(bv), nil
	case *values.Character:
		bv, ok := b.(*values.Character)
		if !ok {
			return 0, shapeError(name + ": operands are not the same constant kind")
		}
		return av.Cmp(bv), nil
	case *values.StringVal:
		bv, ok := b.(*values.StringVal)
		if !ok {
			return 0, shapeError(name + ": operands are not the same constant kind")
		}
		return av.Cmp(bv), nil
	default:
		return 0, shapeError(name + ": operand is not an ordered constant")
	}
}

// orderingOp builds a Primitive comparing two Constants of the same kind
// and yielding T or F, never U.
func orderingOp(name string, accept func(cmp int) bool) Builtin {
	fn := values.NewPrimitive(name, func(args values.List, ret values.Ret, amb values.Amb) trampoline.Step {
		xs := argSlice(args)
		if len(xs) != 2 {
			return values.Fail(arityError(name, 2, len(xs)))
		}
		c, err := cmpConstants(name, xs[0], xs[1])
		if err != nil {
			return values.Fail(err)
		}
		var result values.Boolean = values.F
		if accept(c) {
			result = values.T
		}
		return trampoline.Thunk(func() trampoline.Step { return ret(result, amb) })
	})
	tv := types.NewTypeVariable()
	return Builtin{
		Name:  name,
		Value: fn,
		Type:  types.FuncN([]types.Type{tv, tv}, types.Bool),
	}
}

func compareBuiltins() []Builtin {
	eq := values.NewPrimitive("==", func(args values.List, ret values.Ret, amb values.Amb) trampoline.Step {
		xs := argSlice(args)
		if len(xs) != 2 {
			return values.Fail(arityError("==", 2, len(xs)))
		}
		return trampoline.Thunk(func() trampoline.Step { return ret(values.Eq(xs[0], xs[1]), amb) })
	})
	eqTV := types.NewTypeVariable()

	return []Builtin{
		{Name: "==", Value: eq, Type: types.FuncN([]types.Type{eqTV, eqTV}, types.Bool)},
		orderingOp(">", func(c int) bool { return c > 0 }),
		orderingOp("<", func(c int) bool { return c < 0 }),
		orderingOp(">=", func(c int) bool { return c >= 0 }),
		orderingOp("<=", func(c int) bool { return c <= 0 }),
		orderingOp("!=", func(c int) bool { return c != 0 }),
	}
}
