package builtins

import (
	"io"

	"github.com/nunb/pyscheme-go/internal/trampoline"
	"github.com/nunb/pyscheme-go/internal/types"
	"github.com/nunb/pyscheme-go/internal/values"
)

// ioBuiltins implements `print`: writes each argument's String() to out,
// space-separated, followed by a newline, then yields the argument list
// to ret unchanged. out is the single configurable text sink, in place
// of a full stream-I/O subsystem.
func ioBuiltins(out io.Writer) []Builtin {
	// print is variadic, so its declared type here is a single
	// unconstrained TypeVariable rather than a fixed arity — Unify
	// against a TypeVariable always succeeds, which is the right
	// behaviour for a construct the prenex HM system in internal/types
	// has no variadic-arity notation for. `error`, which forwards its
	// own operands to print, takes the same approach (see control.go).
	printT := types.NewTypeVariable()
	printFn := values.NewPrimitive("print", func(args values.List, ret values.Ret, amb values.Amb) trampoline.Step {
		xs := argSlice(args)
		for i, x := range xs {
			if i > 0 {
				io.WriteString(out, " ")
			}
			io.WriteString(out, x.String())
		}
		io.WriteString(out, "\n")
		return trampoline.Thunk(func() trampoline.Step { return ret(args, amb) })
	})
	return []Builtin{
		{Name: "print", Value: printFn, Type: printT},
	}
}
