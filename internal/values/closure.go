package values

import (
	"github.com/nunb/pyscheme-go/internal/errors"
	"github.com/nunb/pyscheme-go/internal/trampoline"
)

// Closure pairs a Lambda's formals and body with the environment captured
// at the point the lambda expression was evaluated. It implements Applicable
// on its own rather than delegating to Primitive's machinery, since currying
// and over-application need to inspect leftover formals/actuals.
type Closure struct {
	formals List
	body    Expr
	env     *Environment
}

// NewClosure builds a Closure over formals (a list of *Symbol), body and
// the defining environment.
func NewClosure(formals List, body Expr, env *Environment) *Closure {
	return &Closure{formals: formals, body: body, env: env}
}

func (c *Closure) Eval(env *Environment, ret Ret, amb Amb) trampoline.Step {
	return thunk(func() trampoline.Step { return ret(c, amb) })
}
func (c *Closure) Kind() string   { return "closure" }
func (c *Closure) String() string { return "#<closure>" }

// Apply evaluates operands in the caller's environment, then binds the
// results against c.formals in a fresh child of c.env, handling exact,
// curried, and over-applied argument counts.
func (c *Closure) Apply(operands List, callerEnv *Environment, ret Ret, amb Amb) trampoline.Step {
	deferredApply := func(evaluatedArgs Expr, amb Amb) trampoline.Step {
		argsList, ok := evaluatedArgs.(List)
		if !ok {
			return Fail(errors.NewInternalError("closure operand list did not evaluate to a list"))
		}
		extended := c.env.Extend()
		return thunk(func() trampoline.Step { return bind(c.formals, argsList, c.body, extended, ret, amb) })
	}
	return thunk(func() trampoline.Step { return operands.Eval(callerEnv, deferredApply, amb) })
}

// bind walks formals and actuals in lockstep, defining each formal symbol
// directly into env as it consumes the matching actual.
//
//   - formals and actuals both exhausted: the exact-arity case — evaluate
//     body in env.
//   - formals exhausted, actuals remain (over-application): evaluate body
//     in env, then apply the resulting value to the leftover actuals —
//     `((lambda (f) f) + 1 2)` must behave like `(+ 1 2)`.
//   - actuals exhausted, formals remain (currying): return a new Closure
//     over the unconsumed formals, closing over env as it stands.
func bind(formals, actuals List, body Expr, env *Environment, ret Ret, amb Amb) trampoline.Step {
	switch {
	case formals.IsNull() && actuals.IsNull():
		return thunk(func() trampoline.Step { return body.Eval(env, ret, amb) })

	case formals.IsNull():
		leftover := actuals
		bodyRet := func(fn Expr, amb Amb) trampoline.Step {
			app, ok := fn.(Applicable)
			if !ok {
				return Fail(errors.NewArityOrShapeError("over-application of a value that is not applicable"))
			}
			return thunk(func() trampoline.Step { return app.Apply(leftover, env, ret, amb) })
		}
		return thunk(func() trampoline.Step { return body.Eval(env, bodyRet, amb) })

	case actuals.IsNull():
		return thunk(func() trampoline.Step { return ret(NewClosure(formals, body, env), amb) })

	default:
		sym, ok := formals.Car().(*Symbol)
		if !ok {
			return Fail(errors.NewArityOrShapeError("lambda formal is not a symbol"))
		}
		env.SetDirect(sym, actuals.Car())
		return thunk(func() trampoline.Step { return bind(formals.Cdr(), actuals.Cdr(), body, env, ret, amb) })
	}
}
