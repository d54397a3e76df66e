package driver

import (
	"testing"

	"github.com/nunb/pyscheme-go/internal/trampoline"
	"github.com/nunb/pyscheme-go/internal/values"
)

func TestRunExprReturnsValueAndSteps(t *testing.T) {
	env := values.NewEnvironment()
	r := RunExpr(values.NewIntegerFromInt64(5), env)
	if r.Exited {
		t.Fatal("unexpected exit")
	}
	if r.Value.(*values.Integer).Cmp(values.NewIntegerFromInt64(5)) != 0 {
		t.Errorf("RunExpr(5) = %v, want 5", r.Value)
	}
	if r.Steps == 0 {
		t.Error("RunExpr should have counted at least one trampoline step")
	}
	if r.Resume != nil {
		t.Error("a literal with no choice point should not offer Resume")
	}
}

func TestRunExprExit(t *testing.T) {
	env := values.NewEnvironment()
	exitExpr := exitExpr{}
	r := RunExpr(exitExpr, env)
	if !r.Exited {
		t.Error("expected Exited")
	}
	if r.Resume != nil {
		t.Error("an Exited result should never offer Resume")
	}
}

// exitExpr is a minimal self-evaluating Expr that always halts the
// driver, standing in for the `exit` special form without pulling in
// internal/builtins.
type exitExpr struct{}

func (exitExpr) Eval(env *values.Environment, ret values.Ret, amb values.Amb) trampoline.Step {
	return trampoline.Exit{}
}
func (exitExpr) Kind() string   { return "exit-probe" }
func (exitExpr) String() string { return "#<exit-probe>" }

// choiceExpr is a minimal self-evaluating Expr standing in for
// `(then a back)`: it succeeds with val, and if its failure continuation
// is ever invoked (via Resume), falls through to fallback instead.
type choiceExpr struct {
	val      values.Expr
	fallback values.Expr
}

func (c choiceExpr) Eval(env *values.Environment, ret values.Ret, amb values.Amb) trampoline.Step {
	amb2 := func() trampoline.Step {
		return trampoline.Thunk(func() trampoline.Step { return c.fallback.Eval(env, ret, amb) })
	}
	return trampoline.Thunk(func() trampoline.Step { return ret(c.val, amb2) })
}
func (c choiceExpr) Kind() string   { return "choice-probe" }
func (c choiceExpr) String() string { return "#<choice-probe>" }

func TestResumeReentersTheCapturedAmb(t *testing.T) {
	env := values.NewEnvironment()
	expr := choiceExpr{val: values.NewIntegerFromInt64(1), fallback: values.NewIntegerFromInt64(2)}

	r := RunExpr(expr, env)
	if r.Exited || r.Value.(*values.Integer).Cmp(values.NewIntegerFromInt64(1)) != 0 {
		t.Fatalf("first result = %v, want 1", r.Value)
	}
	if r.Resume == nil {
		t.Fatal("expected Resume to be non-nil after a choice point succeeds")
	}

	r = r.Resume()
	if r.Exited || r.Value.(*values.Integer).Cmp(values.NewIntegerFromInt64(2)) != 0 {
		t.Fatalf("resumed result = %v, want 2", r.Value)
	}
	if r.Resume != nil {
		t.Error("the fallback branch here never installs its own amb, so Resume should now be nil")
	}
}

func TestRunProgramSharesEnvAcrossExpressionsAndStopsAtExit(t *testing.T) {
	env := values.NewEnvironment()
	x := values.Intern("driver-test-x")
	defineProbe := definerExpr{sym: x, val: values.NewIntegerFromInt64(7)}
	prog := values.Program{defineProbe, x, exitExpr{}, values.NewIntegerFromInt64(999)}

	results := RunProgram(prog, env)
	if len(results) != 3 {
		t.Fatalf("RunProgram returned %d results, want 3 (stopping at the exit)", len(results))
	}
	if results[1].Value.(*values.Integer).Cmp(values.NewIntegerFromInt64(7)) != 0 {
		t.Errorf("second expression's lookup = %v, want 7 (defined by the first)", results[1].Value)
	}
	if !results[2].Exited {
		t.Error("third result should report Exited")
	}
}

// definerExpr binds sym directly into env without going through
// internal/builtins' define special form, avoiding an import cycle.
type definerExpr struct {
	sym *values.Symbol
	val values.Expr
}

func (d definerExpr) Eval(env *values.Environment, ret values.Ret, amb values.Amb) trampoline.Step {
	return env.Define(d.sym, d.val, ret, amb)
}
func (d definerExpr) Kind() string   { return "definer-probe" }
func (d definerExpr) String() string { return "#<definer-probe>" }

// TestRunExprConstantStackOverDeepRecursion pins the constant-stack
// property end-to-end through the driver: a deeply (non-tail, via
// host-stack-free trampolining) self-referential chain of Eval calls
// must still drive to completion.
func TestRunExprConstantStackOverDeepRecursion(t *testing.T) {
	const n = 100000
	env := values.NewEnvironment()
	r := RunExpr(countExpr{remaining: n}, env)
	if r.Exited {
		t.Fatal("unexpected exit")
	}
	if r.Value.(*values.Integer).Cmp(values.NewIntegerFromInt64(0)) != 0 {
		t.Errorf("countExpr(%d) = %v, want 0", n, r.Value)
	}
}

type countExpr struct{ remaining int64 }

func (c countExpr) Eval(env *values.Environment, ret values.Ret, amb values.Amb) trampoline.Step {
	if c.remaining == 0 {
		return trampoline.Thunk(func() trampoline.Step { return ret(values.NewIntegerFromInt64(0), amb) })
	}
	next := countExpr{remaining: c.remaining - 1}
	return trampoline.Thunk(func() trampoline.Step { return next.Eval(env, ret, amb) })
}
func (c countExpr) Kind() string   { return "count-probe" }
func (c countExpr) String() string { return "#<count-probe>" }
