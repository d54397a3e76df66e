// Package values implements the unified AST/runtime value hierarchy: one
// Expr sum type whose variants are simultaneously syntax-tree nodes and the
// values evaluation produces, so that environment values and closures can be
// passed back through Eval without a separate quotation layer.
package values

import (
	"github.com/nunb/pyscheme-go/internal/errors"
	"github.com/nunb/pyscheme-go/internal/trampoline"
)

// Ret is the success continuation: invoked with the value a sub-expression
// completed with, and the failure continuation currently in effect.
type Ret func(value Expr, amb Amb) trampoline.Step

// Amb is the failure continuation: "try the next alternative". It takes no
// value because a failure carries no result, only a place to resume.
type Amb func() trampoline.Step

// Expr is the single variant type for every AST node and every runtime
// value. Constant, Boolean, Symbol, Pair, Null, Closure, Continuation and
// EnvironmentValue are self-evaluating or near-self-evaluating values;
// Conditional, Lambda, Application, Sequence, Nest and Env are AST-only
// shapes that never appear as the result of evaluation.
type Expr interface {
	// Eval evaluates the receiver in env, calling ret with the result and
	// the failure continuation in effect, or amb if the receiver itself
	// represents exhaustion. Eval never recurses to completion: it always
	// returns a trampoline.Step (usually a Thunk) rather than calling ret
	// or amb directly.
	Eval(env *Environment, ret Ret, amb Amb) trampoline.Step

	// Kind names the dynamic variant for error messages (e.g. "integer",
	// "closure", "null").
	Kind() string

	// String renders the value the way the `print` primitive and error
	// messages do.
	String() string
}

// Fail builds a terminal Step carrying an error value: evaluation halts
// immediately and the error propagates to the trampoline's caller
// unmodified.
func Fail(err error) trampoline.Step {
	return trampoline.Done{Value: &ErrorValue{Err: err}}
}

// ErrorValue is the terminal Expr an evaluation-time error is reported as.
// It is never bound to a name and never produced by ordinary computation;
// it only appears as the final value a trampoline run halts with.
type ErrorValue struct {
	Err error
}

func (e *ErrorValue) Eval(env *Environment, ret Ret, amb Amb) trampoline.Step {
	return thunk(func() trampoline.Step { return ret(e, amb) })
}

func (e *ErrorValue) Kind() string   { return "error" }
func (e *ErrorValue) String() string { return "error: " + e.Err.Error() }

// AsError reports whether v is an ErrorValue, for callers that need to
// short-circuit on failure.
func AsError(v Expr) (*ErrorValue, bool) {
	e, ok := v.(*ErrorValue)
	return e, ok
}

// thunk is a convenience constructor so call sites read like the original
// Python's `return lambda: ...`.
func thunk(f func() trampoline.Step) trampoline.Step {
	return trampoline.Thunk(f)
}

// notBoolean builds the NonBooleanExpressionError for a value of kind k.
func notBoolean(k string) error {
	return errors.NewNonBooleanExpressionError(k)
}

// notApplicable builds the ArityOrShapeError for an Application whose
// operator evaluated to a value of kind k that cannot be applied.
func notApplicable(k string) error {
	return errors.NewArityOrShapeError("not applicable: " + k)
}
