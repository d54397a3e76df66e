package builtins

import (
	"github.com/nunb/pyscheme-go/internal/trampoline"
	"github.com/nunb/pyscheme-go/internal/types"
	"github.com/nunb/pyscheme-go/internal/values"
)

// thenForm installs a new failure continuation that, on invocation,
// evaluates b under the caller's ret and original amb, then evaluates a
// under that new failure continuation. Nested `then`s compose into the
// chronological choice tree purely by nesting closures over amb this way;
// no explicit choice-point stack is kept.
func thenForm() *values.SpecialForm {
	return values.NewSpecialForm("then", func(operands values.List, env *values.Environment, ret values.Ret, amb values.Amb) trampoline.Step {
		if operands.Len() != 2 {
			return values.Fail(arityError("then", 2, operands.Len()))
		}
		aExpr, bExpr := operands.Car(), operands.Cdr().Car()
		amb2 := func() trampoline.Step {
			return trampoline.Thunk(func() trampoline.Step { return bExpr.Eval(env, ret, amb) })
		}
		return trampoline.Thunk(func() trampoline.Step { return aExpr.Eval(env, ret, amb2) })
	})
}

// backForm ignores its operands and returns a thunk invoking the current
// amb — the "no more alternatives here, try the next enclosing one" move.
func backForm() *values.SpecialForm {
	return values.NewSpecialForm("back", func(operands values.List, env *values.Environment, ret values.Ret, amb values.Amb) trampoline.Step {
		return trampoline.Thunk(func() trampoline.Step { return amb() })
	})
}

// defineForm evaluates expr, then binds sym in env's innermost frame. The
// type-level counterpart (letrec-style self-binding) is handled
// separately, in internal/types' Infer, which recognizes an Application
// whose operator is literally the `define` symbol; this runtime
// SpecialForm is the evaluation half of the same construct.
func defineForm() *values.SpecialForm {
	return values.NewSpecialForm("define", func(operands values.List, env *values.Environment, ret values.Ret, amb values.Amb) trampoline.Step {
		if operands.Len() != 2 {
			return values.Fail(arityError("define", 2, operands.Len()))
		}
		sym, ok := operands.Car().(*values.Symbol)
		if !ok {
			return values.Fail(shapeError("define target is not a symbol"))
		}
		valueExpr := operands.Cdr().Car()
		valueRet := func(val values.Expr, amb values.Amb) trampoline.Step {
			return env.Define(sym, val, ret, amb)
		}
		return trampoline.Thunk(func() trampoline.Step { return valueExpr.Eval(env, valueRet, amb) })
	})
}

// callCCForm evaluates f, then applies it to a Continuation reifying the
// caller's ret.
func callCCForm() *values.SpecialForm {
	return values.NewSpecialForm("call/cc", func(operands values.List, env *values.Environment, ret values.Ret, amb values.Amb) trampoline.Step {
		if operands.Len() != 1 {
			return values.Fail(arityError("call/cc", 1, operands.Len()))
		}
		fExpr := operands.Car()
		fRet := func(fVal values.Expr, amb values.Amb) trampoline.Step {
			app, ok := fVal.(values.Applicable)
			if !ok {
				return values.Fail(shapeError("call/cc argument is not applicable"))
			}
			k := values.NewContinuation(ret)
			return trampoline.Thunk(func() trampoline.Step {
				return app.Apply(values.ListOf(k), env, ret, amb)
			})
		}
		return trampoline.Thunk(func() trampoline.Step { return fExpr.Eval(env, fRet, amb) })
	})
}

// exitForm returns trampoline.Exit, the sentinel that halts the driver
// loop with no further value.
func exitForm() *values.SpecialForm {
	return values.NewSpecialForm("exit", func(operands values.List, env *values.Environment, ret values.Ret, amb values.Amb) trampoline.Step {
		return trampoline.Exit{}
	})
}

// evalInEnvForm evaluates envExpr to an EnvironmentValue, then evaluates
// bodyExpr under that environment.
func evalInEnvForm() *values.SpecialForm {
	return values.NewSpecialForm("eval-in-env", func(operands values.List, env *values.Environment, ret values.Ret, amb values.Amb) trampoline.Step {
		if operands.Len() != 2 {
			return values.Fail(arityError("eval-in-env", 2, operands.Len()))
		}
		envExpr, bodyExpr := operands.Car(), operands.Cdr().Car()
		envRet := func(envVal values.Expr, amb values.Amb) trampoline.Step {
			ev, ok := envVal.(*values.EnvironmentValue)
			if !ok {
				return values.Fail(shapeError("eval-in-env target is not an EnvironmentValue"))
			}
			return trampoline.Thunk(func() trampoline.Step { return bodyExpr.Eval(ev.Env, ret, amb) })
		}
		return trampoline.Thunk(func() trampoline.Step { return envExpr.Eval(env, envRet, amb) })
	})
}

// errorForm looks up `print` in env and applies it to operands, then
// jumps to errorRet (the pre-captured "error continuation", typically the
// outer driver's own ret) instead of the special form's own caller's ret —
// a user-level reporting path distinct from host-raised errors. errorRet
// is supplied at construction time by the embedder, which captures it from
// its own top-level ret.
func errorForm(errorRet values.Ret) *values.SpecialForm {
	return values.NewSpecialForm("error", func(operands values.List, env *values.Environment, ret values.Ret, amb values.Amb) trampoline.Step {
		printSym := values.Intern("print")
		printRet := func(printVal values.Expr, amb values.Amb) trampoline.Step {
			app, ok := printVal.(values.Applicable)
			if !ok {
				return values.Fail(shapeError("print is not applicable"))
			}
			reportedRet := func(reported values.Expr, amb values.Amb) trampoline.Step {
				return trampoline.Thunk(func() trampoline.Step { return errorRet(reported, amb) })
			}
			return trampoline.Thunk(func() trampoline.Step { return app.Apply(operands, env, reportedRet, amb) })
		}
		return trampoline.Thunk(func() trampoline.Step { return env.Lookup(printSym, printRet, amb) })
	})
}

// controlBuiltins takes errorRet, the embedder-supplied error
// continuation `error` jumps to in place of its caller's own ret.
func controlBuiltins(errorRet values.Ret) []Builtin {
	a := types.NewTypeVariable()
	backT := types.NewTypeVariable()
	exitT := types.NewTypeVariable()
	errT := types.NewTypeVariable()
	ccA, ccB := types.NewTypeVariable(), types.NewTypeVariable()
	eieT := types.NewTypeVariable()

	return []Builtin{
		{Name: "then", Value: thenForm(), Type: types.FuncN([]types.Type{a, a}, a)},
		{Name: "back", Value: backForm(), Type: backT},
		{Name: "define", Value: defineForm(), Type: types.List(types.NewTypeVariable())},
		{Name: "call/cc", Value: callCCForm(), Type: types.FuncN([]types.Type{types.Func(types.Func(ccA, ccB), ccA)}, ccA)},
		{Name: "exit", Value: exitForm(), Type: exitT},
		{Name: "eval-in-env", Value: evalInEnvForm(), Type: types.FuncN([]types.Type{types.Opaque, eieT}, eieT)},
		{Name: "error", Value: errorForm(errorRet), Type: errT},
	}
}
