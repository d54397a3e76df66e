package values

import (
	"testing"

	"github.com/nunb/pyscheme-go/internal/trampoline"
)

func runEval(e Expr, env *Environment) (Expr, bool) {
	ret, got := collectRet()
	step := thunk(func() trampoline.Step { return e.Eval(env, ret, failAmb) })
	_, exited := trampoline.Run(step)
	if exited {
		return nil, true
	}
	return *got, false
}

func TestConditionalFollowsCons(t *testing.T) {
	env := NewEnvironment()
	c := &Conditional{Test: T, Cons: NewIntegerFromInt64(1), Alt: NewIntegerFromInt64(2)}
	v, exited := runEval(c, env)
	if exited {
		t.Fatal("unexpected exit")
	}
	if v.(*Integer).Cmp(NewIntegerFromInt64(1)) != 0 {
		t.Errorf("Conditional(T, ...) = %s, want 1", v)
	}
}

// TestConditionalUnknownFollowsAlt pins that an `unknown` test follows the
// false branch, not a third outcome.
func TestConditionalUnknownFollowsAlt(t *testing.T) {
	env := NewEnvironment()
	c := &Conditional{Test: U, Cons: NewIntegerFromInt64(1), Alt: NewIntegerFromInt64(2)}
	v, exited := runEval(c, env)
	if exited {
		t.Fatal("unexpected exit")
	}
	if v.(*Integer).Cmp(NewIntegerFromInt64(2)) != 0 {
		t.Errorf("Conditional(U, ...) = %s, want 2 (the Alt branch)", v)
	}
}

func TestConditionalRejectsNonBoolean(t *testing.T) {
	env := NewEnvironment()
	c := &Conditional{Test: NewIntegerFromInt64(1), Cons: NewIntegerFromInt64(1), Alt: NewIntegerFromInt64(2)}
	v, exited := runEval(c, env)
	if exited {
		t.Fatal("unexpected exit")
	}
	if _, ok := AsError(v); !ok {
		t.Errorf("Conditional with a non-boolean test should fail with an ErrorValue, got %s", v)
	}
}

func TestSequenceYieldsLastValue(t *testing.T) {
	env := NewEnvironment()
	seq := &Sequence{Exprs: []Expr{NewIntegerFromInt64(1), NewIntegerFromInt64(2), NewIntegerFromInt64(3)}}
	v, exited := runEval(seq, env)
	if exited {
		t.Fatal("unexpected exit")
	}
	if v.(*Integer).Cmp(NewIntegerFromInt64(3)) != 0 {
		t.Errorf("Sequence result = %s, want 3", v)
	}
}

func TestEmptySequenceYieldsNull(t *testing.T) {
	env := NewEnvironment()
	seq := &Sequence{}
	v, exited := runEval(seq, env)
	if exited {
		t.Fatal("unexpected exit")
	}
	if v != Null {
		t.Errorf("empty Sequence result = %s, want Null", v)
	}
}

// defineProbe is a test-only Expr that binds a symbol directly (bypassing
// the builtins package's `define` special form, which would need to import
// values and so can't be imported back here) to probe what frame a
// construct like Nest or Env actually evaluates its Body in.
type defineProbe struct {
	sym   *Symbol
	value Expr
}

func (p *defineProbe) Eval(env *Environment, ret Ret, amb Amb) trampoline.Step {
	env.SetDirect(p.sym, p.value)
	return thunk(func() trampoline.Step { return ret(Null, amb) })
}
func (p *defineProbe) Kind() string   { return "define-probe" }
func (p *defineProbe) String() string { return "#<define-probe>" }

func TestNestDiscardsBindingsAfterCompletion(t *testing.T) {
	env := NewEnvironment()
	sym := Intern("ast-test-nest-x")
	nest := &Nest{Body: &defineProbe{sym: sym, value: T}}

	_, exited := runEval(nest, env)
	if exited {
		t.Fatal("unexpected exit")
	}
	if _, ok := env.GetDirect(sym); ok {
		t.Error("a binding made inside Nest leaked into the outer environment")
	}
}

func TestEnvCapturesChildBindingsRegardlessOfBodyResult(t *testing.T) {
	env := NewEnvironment()
	sym := Intern("ast-test-env-x")
	e := &Env{Body: &defineProbe{sym: sym, value: NewIntegerFromInt64(7)}}

	v, exited := runEval(e, env)
	if exited {
		t.Fatal("unexpected exit")
	}
	ev, ok := v.(*EnvironmentValue)
	if !ok {
		t.Fatalf("Env result = %T, want *EnvironmentValue", v)
	}
	if got, ok := ev.Env.GetDirect(sym); !ok || got.(*Integer).Cmp(NewIntegerFromInt64(7)) != 0 {
		t.Error("EnvironmentValue did not capture the binding Body made in the child frame")
	}
	if _, ok := env.GetDirect(sym); ok {
		t.Error("Env's child frame binding leaked into the outer environment")
	}
}
