package builtins

import (
	"github.com/nunb/pyscheme-go/internal/trampoline"
	"github.com/nunb/pyscheme-go/internal/types"
	"github.com/nunb/pyscheme-go/internal/values"
)

// binaryIntOp builds a Primitive of declared type int -> int -> int that
// destructures its (already-evaluated) two-element argument list itself,
// raising ArityOrShape directly rather than through a generic arity-
// checking layer.
func binaryIntOp(name string, op func(a, b *values.Integer) (*values.Integer, error)) Builtin {
	fn := values.NewPrimitive(name, func(args values.List, ret values.Ret, amb values.Amb) trampoline.Step {
		xs := argSlice(args)
		if len(xs) != 2 {
			return values.Fail(arityError(name, 2, len(xs)))
		}
		a, err := asInteger(name, xs[0])
		if err != nil {
			return values.Fail(err)
		}
		b, err := asInteger(name, xs[1])
		if err != nil {
			return values.Fail(err)
		}
		result, err := op(a, b)
		if err != nil {
			return values.Fail(shapeError(name + ": " + err.Error()))
		}
		return trampoline.Thunk(func() trampoline.Step { return ret(result, amb) })
	})
	return Builtin{
		Name:  name,
		Value: fn,
		Type:  types.FuncN([]types.Type{types.Int, types.Int}, types.Int),
	}
}

func arithBuiltins() []Builtin {
	return []Builtin{
		binaryIntOp("+", func(a, b *values.Integer) (*values.Integer, error) { return a.Add(b), nil }),
		binaryIntOp("-", func(a, b *values.Integer) (*values.Integer, error) { return a.Sub(b), nil }),
		binaryIntOp("*", func(a, b *values.Integer) (*values.Integer, error) { return a.Mul(b), nil }),
		binaryIntOp("/", func(a, b *values.Integer) (*values.Integer, error) { return a.Quo(b) }),
		binaryIntOp("%", func(a, b *values.Integer) (*values.Integer, error) { return a.Rem(b) }),
	}
}
