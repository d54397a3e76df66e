package builtins

import (
	"github.com/nunb/pyscheme-go/internal/trampoline"
	"github.com/nunb/pyscheme-go/internal/types"
	"github.com/nunb/pyscheme-go/internal/values"
)

// listBuiltins implements `@` (cons), `@@` (append), `head`, `tail` and
// `length`. `@@` is values.List.Append: Pair.Append conses through, and
// Null.Append returns the other list unchanged.
func listBuiltins() []Builtin {
	elemTV := types.NewTypeVariable()
	listTV := types.List(elemTV)

	cons := values.NewPrimitive("@", func(args values.List, ret values.Ret, amb values.Amb) trampoline.Step {
		xs := argSlice(args)
		if len(xs) != 2 {
			return values.Fail(arityError("@", 2, len(xs)))
		}
		tail, err := asList("@", xs[1])
		if err != nil {
			return values.Fail(err)
		}
		result := values.NewPair(xs[0], tail)
		return trampoline.Thunk(func() trampoline.Step { return ret(result, amb) })
	})

	appendFn := values.NewPrimitive("@@", func(args values.List, ret values.Ret, amb values.Amb) trampoline.Step {
		xs := argSlice(args)
		if len(xs) != 2 {
			return values.Fail(arityError("@@", 2, len(xs)))
		}
		a, err := asList("@@", xs[0])
		if err != nil {
			return values.Fail(err)
		}
		b, err := asList("@@", xs[1])
		if err != nil {
			return values.Fail(err)
		}
		result := a.Append(b)
		return trampoline.Thunk(func() trampoline.Step { return ret(result, amb) })
	})

	head := values.NewPrimitive("head", func(args values.List, ret values.Ret, amb values.Amb) trampoline.Step {
		xs := argSlice(args)
		if len(xs) != 1 {
			return values.Fail(arityError("head", 1, len(xs)))
		}
		l, err := asList("head", xs[0])
		if err != nil {
			return values.Fail(err)
		}
		return trampoline.Thunk(func() trampoline.Step { return ret(l.Car(), amb) })
	})

	tail := values.NewPrimitive("tail", func(args values.List, ret values.Ret, amb values.Amb) trampoline.Step {
		xs := argSlice(args)
		if len(xs) != 1 {
			return values.Fail(arityError("tail", 1, len(xs)))
		}
		l, err := asList("tail", xs[0])
		if err != nil {
			return values.Fail(err)
		}
		return trampoline.Thunk(func() trampoline.Step { return ret(l.Cdr(), amb) })
	})

	length := values.NewPrimitive("length", func(args values.List, ret values.Ret, amb values.Amb) trampoline.Step {
		xs := argSlice(args)
		if len(xs) != 1 {
			return values.Fail(arityError("length", 1, len(xs)))
		}
		l, err := asList("length", xs[0])
		if err != nil {
			return values.Fail(err)
		}
		result := values.NewIntegerFromInt64(int64(l.Len()))
		return trampoline.Thunk(func() trampoline.Step { return ret(result, amb) })
	})

	return []Builtin{
		{Name: "@", Value: cons, Type: types.FuncN([]types.Type{elemTV, listTV}, listTV)},
		{Name: "@@", Value: appendFn, Type: types.FuncN([]types.Type{listTV, listTV}, listTV)},
		{Name: "head", Value: head, Type: types.FuncN([]types.Type{listTV}, elemTV)},
		{Name: "tail", Value: tail, Type: types.FuncN([]types.Type{listTV}, listTV)},
		{Name: "length", Value: length, Type: types.FuncN([]types.Type{listTV}, types.Int)},
	}
}
