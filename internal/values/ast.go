package values

import "github.com/nunb/pyscheme-go/internal/trampoline"

// Conditional, Lambda, Application, Sequence, Nest and Env are AST-only
// shapes: they are constructed by an embedder and never appear as the
// result of evaluation.

// Conditional evaluates Test; if it IsTrue, evaluates Cons, otherwise Alt.
// unknown follows the false branch, the same as false.
type Conditional struct {
	Test, Cons, Alt Expr
}

func (c *Conditional) Eval(env *Environment, ret Ret, amb Amb) trampoline.Step {
	testRet := func(testVal Expr, amb Amb) trampoline.Step {
		b, err := AsBoolean(testVal)
		if err != nil {
			return Fail(err)
		}
		if b.IsTrue() {
			return thunk(func() trampoline.Step { return c.Cons.Eval(env, ret, amb) })
		}
		return thunk(func() trampoline.Step { return c.Alt.Eval(env, ret, amb) })
	}
	return thunk(func() trampoline.Step { return c.Test.Eval(env, testRet, amb) })
}
func (c *Conditional) Kind() string   { return "conditional" }
func (c *Conditional) String() string { return "#<conditional>" }

// Lambda immediately returns a Closure capturing env: the body is never
// evaluated until the Closure is applied.
type Lambda struct {
	Formals List
	Body    Expr
}

func (l *Lambda) Eval(env *Environment, ret Ret, amb Amb) trampoline.Step {
	return thunk(func() trampoline.Step { return ret(NewClosure(l.Formals, l.Body, env), amb) })
}
func (l *Lambda) Kind() string   { return "lambda" }
func (l *Lambda) String() string { return "#<lambda>" }

// Application evaluates Op, then dispatches to the result's Apply with
// Operands still unevaluated — operand-evaluation timing is entirely up to
// the operator (a Primitive evaluates them all; a SpecialForm decides for
// itself; `then`/`back`/`call/cc` rely on this to control evaluation).
type Application struct {
	Op       Expr
	Operands List
}

func (a *Application) Eval(env *Environment, ret Ret, amb Amb) trampoline.Step {
	opRet := func(opVal Expr, amb Amb) trampoline.Step {
		app, ok := opVal.(Applicable)
		if !ok {
			return Fail(notApplicable(opVal.Kind()))
		}
		return thunk(func() trampoline.Step { return app.Apply(a.Operands, env, ret, amb) })
	}
	return thunk(func() trampoline.Step { return a.Op.Eval(env, opRet, amb) })
}
func (a *Application) Kind() string   { return "application" }
func (a *Application) String() string { return "#<application>" }

// Sequence evaluates Exprs left to right, yielding the value of the last
// one; an empty Sequence yields Null.
type Sequence struct {
	Exprs []Expr
}

func (s *Sequence) Eval(env *Environment, ret Ret, amb Amb) trampoline.Step {
	if len(s.Exprs) == 0 {
		return thunk(func() trampoline.Step { return ret(Null, amb) })
	}
	return evalSequenceFrom(s.Exprs, 0, env, ret, amb)
}

func evalSequenceFrom(exprs []Expr, i int, env *Environment, ret Ret, amb Amb) trampoline.Step {
	if i == len(exprs)-1 {
		return thunk(func() trampoline.Step { return exprs[i].Eval(env, ret, amb) })
	}
	stepRet := func(_ Expr, amb Amb) trampoline.Step {
		return evalSequenceFrom(exprs, i+1, env, ret, amb)
	}
	return thunk(func() trampoline.Step { return exprs[i].Eval(env, stepRet, amb) })
}

func (s *Sequence) Kind() string   { return "sequence" }
func (s *Sequence) String() string { return "#<sequence>" }

// Nest evaluates Body in a fresh child frame of env, discarding that
// frame's bindings once Body completes: a block scope with no surviving
// trace.
type Nest struct {
	Body Expr
}

func (n *Nest) Eval(env *Environment, ret Ret, amb Amb) trampoline.Step {
	child := env.Extend()
	return thunk(func() trampoline.Step { return n.Body.Eval(child, ret, amb) })
}
func (n *Nest) Kind() string   { return "nest" }
func (n *Nest) String() string { return "#<nest>" }

// Env evaluates Body in a fresh child frame of env, then yields that
// frame wrapped as an EnvironmentValue regardless of Body's own result —
// `(env { define x 1 })` captures the bindings `{ define x 1 }` made, not
// whatever value `define` itself returns.
type Env struct {
	Body Expr
}

func (e *Env) Eval(env *Environment, ret Ret, amb Amb) trampoline.Step {
	child := env.Extend()
	bodyRet := func(_ Expr, amb Amb) trampoline.Step {
		return thunk(func() trampoline.Step { return ret(&EnvironmentValue{Env: child}, amb) })
	}
	return thunk(func() trampoline.Step { return e.Body.Eval(child, bodyRet, amb) })
}
func (e *Env) Kind() string   { return "env" }
func (e *Env) String() string { return "#<env>" }

// EnvironmentValue is a first-class, self-evaluating wrapper around an
// environment frame chain — the result of Env, and the argument
// `eval-in-env` expects.
type EnvironmentValue struct {
	Env *Environment
}

func (v *EnvironmentValue) Eval(env *Environment, ret Ret, amb Amb) trampoline.Step {
	return thunk(func() trampoline.Step { return ret(v, amb) })
}
func (v *EnvironmentValue) Kind() string   { return "environment" }
func (v *EnvironmentValue) String() string { return "#<environment>" }
