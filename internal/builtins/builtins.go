// Package builtins assembles the initial top-level environment: every
// primitive and special form, each carrying both its runtime Apply
// behaviour and its declared type scheme for the inferencer. Polymorphic
// positions get a fresh type variable on each reference. Install verifies
// every registered builtin carries both a name and a type before the
// package is used.
package builtins

import (
	"fmt"
	"io"

	"github.com/nunb/pyscheme-go/internal/errors"
	"github.com/nunb/pyscheme-go/internal/types"
	"github.com/nunb/pyscheme-go/internal/values"
)

// Builtin pairs one top-level binding's runtime value with its declared
// type scheme.
type Builtin struct {
	Name  string
	Value values.Expr
	Type  types.Type
}

// registry is built lazily by allBuiltins so that each *.go file in this
// package can contribute its own slice without import-order dependencies.
func allBuiltins(out io.Writer, errorRet values.Ret) []Builtin {
	var all []Builtin
	all = append(all, arithBuiltins()...)
	all = append(all, compareBuiltins()...)
	all = append(all, logicBuiltins()...)
	all = append(all, listBuiltins()...)
	all = append(all, controlBuiltins(errorRet)...)
	all = append(all, ioBuiltins(out)...)
	return all
}

// Install binds every builtin into env (the runtime top-level frame) and
// typeEnv (the inferencer's type environment), panicking if a builtin
// entry is missing its name or its declared type — a broken invariant,
// not a user-reachable condition, matching the teacher's init()-time
// panic on a builtin with no TypeInfo. out is the sink `print` writes to;
// errorRet is the continuation the `error` special form jumps to instead
// of its own caller's ret — see control.go's errorForm.
func Install(env *values.Environment, typeEnv *types.Env, out io.Writer, errorRet values.Ret) {
	for _, b := range allBuiltins(out, errorRet) {
		if b.Name == "" {
			panic("builtins: entry with no Name")
		}
		if b.Type == nil {
			panic(fmt.Sprintf("builtins: %q is missing its declared type", b.Name))
		}
		sym := values.Intern(b.Name)
		env.SetDirect(sym, b.Value)
		typeEnv.Bind(sym, b.Type)
	}
}

// argSlice flattens a Null-terminated list into a Go slice, for builtins
// that want positional access to an already-evaluated argument list.
func argSlice(l values.List) []values.Expr {
	out := make([]values.Expr, 0, l.Len())
	for cur := l; !cur.IsNull(); cur = cur.Cdr() {
		out = append(out, cur.Car())
	}
	return out
}

func arityError(name string, want int, got int) error {
	return errors.NewArityOrShapeError(fmt.Sprintf("%s expects %d argument(s), got %d", name, want, got))
}

func shapeError(reason string) error {
	return errors.NewArityOrShapeError(reason)
}

func asInteger(name string, e values.Expr) (*values.Integer, error) {
	i, ok := e.(*values.Integer)
	if !ok {
		return nil, shapeError(fmt.Sprintf("%s expects an integer, got %s", name, e.Kind()))
	}
	return i, nil
}

func asList(name string, e values.Expr) (values.List, error) {
	l, ok := e.(values.List)
	if !ok {
		return nil, shapeError(fmt.Sprintf("%s expects a list, got %s", name, e.Kind()))
	}
	return l, nil
}
