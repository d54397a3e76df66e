package values

import (
	"github.com/nunb/pyscheme-go/internal/errors"
	"github.com/nunb/pyscheme-go/internal/trampoline"
)

// Continuation reifies a success continuation captured by call/cc as a
// first-class, applicable value. Applying a Continuation to a single
// argument v invokes the captured ret with v and the *current* amb (the
// amb live at the application site, not the one live when the continuation
// was captured) — it abandons the caller's own ret entirely, which is what
// makes it an escape rather than an ordinary call.
type Continuation struct {
	ret Ret
}

// NewContinuation wraps ret as a first-class Continuation value.
func NewContinuation(ret Ret) *Continuation {
	return &Continuation{ret: ret}
}

func (k *Continuation) Eval(env *Environment, ret Ret, amb Amb) trampoline.Step {
	return thunk(func() trampoline.Step { return ret(k, amb) })
}
func (k *Continuation) Kind() string   { return "continuation" }
func (k *Continuation) String() string { return "#<continuation>" }

// Apply evaluates exactly one operand and invokes the captured ret with it.
func (k *Continuation) Apply(operands List, env *Environment, ret Ret, amb Amb) trampoline.Step {
	deferredApply := func(evaluatedArgs Expr, amb Amb) trampoline.Step {
		argsList, ok := evaluatedArgs.(List)
		if !ok || argsList.IsNull() || !argsList.Cdr().IsNull() {
			return Fail(errors.NewArityOrShapeError("continuation invoked with other than one argument"))
		}
		v := argsList.Car()
		return thunk(func() trampoline.Step { return k.ret(v, amb) })
	}
	return thunk(func() trampoline.Step { return operands.Eval(env, deferredApply, amb) })
}
