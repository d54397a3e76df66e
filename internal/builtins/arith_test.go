package builtins

import (
	"testing"

	"github.com/nunb/pyscheme-go/internal/trampoline"
	"github.com/nunb/pyscheme-go/internal/values"
)

func runPrim(t *testing.T, name string, args ...values.Expr) values.Expr {
	t.Helper()
	fn := lookupBuiltin(t, name)
	step := fn.Value.(values.Applicable).Apply(values.ListOf(args...), values.NewEnvironment(), doneRet, failAmb)
	v, exited := trampoline.Run(step)
	if exited {
		t.Fatalf("%s: unexpected exit", name)
	}
	return v.(values.Expr)
}

func lookupBuiltin(t *testing.T, name string) Builtin {
	t.Helper()
	for _, b := range arithBuiltins() {
		if b.Name == name {
			return b
		}
	}
	for _, b := range compareBuiltins() {
		if b.Name == name {
			return b
		}
	}
	for _, b := range logicBuiltins() {
		if b.Name == name {
			return b
		}
	}
	for _, b := range listBuiltins() {
		if b.Name == name {
			return b
		}
	}
	t.Fatalf("no builtin named %q", name)
	return Builtin{}
}

func doneRet(v values.Expr, amb values.Amb) trampoline.Step {
	return trampoline.Done{Value: v}
}

func failAmb() trampoline.Step { return trampoline.Exit{} }

func asInt(t *testing.T, e values.Expr) int64 {
	t.Helper()
	i, ok := e.(*values.Integer)
	if !ok {
		t.Fatalf("%v is not an Integer", e)
	}
	n, err := i.Int64()
	if err != nil {
		t.Fatalf("Int64() failed: %v", err)
	}
	return n
}

func TestArithBasics(t *testing.T) {
	cases := []struct {
		name string
		a, b int64
		want int64
	}{
		{"+", 2, 3, 5},
		{"-", 5, 3, 2},
		{"*", 4, 3, 12},
		{"/", 7, 2, 3},
		{"%", 7, 2, 1},
	}
	for _, c := range cases {
		got := runPrim(t, c.name, values.NewIntegerFromInt64(c.a), values.NewIntegerFromInt64(c.b))
		if n := asInt(t, got); n != c.want {
			t.Errorf("%s(%d, %d) = %d, want %d", c.name, c.a, c.b, n, c.want)
		}
	}
}

func TestArithDivByZeroFails(t *testing.T) {
	fn := lookupBuiltin(t, "/")
	args := values.ListOf(values.NewIntegerFromInt64(1), values.NewIntegerFromInt64(0))
	step := fn.Value.(values.Applicable).Apply(args, values.NewEnvironment(), doneRet, failAmb)
	v, exited := trampoline.Run(step)
	if exited {
		t.Fatal("unexpected exit")
	}
	if _, ok := values.AsError(v.(values.Expr)); !ok {
		t.Errorf("division by zero should yield an ErrorValue, got %v", v)
	}
}

func TestArithWrongArityFails(t *testing.T) {
	fn := lookupBuiltin(t, "+")
	step := fn.Value.(values.Applicable).Apply(values.ListOf(values.NewIntegerFromInt64(1)), values.NewEnvironment(), doneRet, failAmb)
	v, exited := trampoline.Run(step)
	if exited {
		t.Fatal("unexpected exit")
	}
	if _, ok := values.AsError(v.(values.Expr)); !ok {
		t.Errorf("+ with one argument should fail, got %v", v)
	}
}

func TestArithNonIntegerOperandFails(t *testing.T) {
	fn := lookupBuiltin(t, "+")
	args := values.ListOf(values.NewString("nope"), values.NewIntegerFromInt64(1))
	step := fn.Value.(values.Applicable).Apply(args, values.NewEnvironment(), doneRet, failAmb)
	v, exited := trampoline.Run(step)
	if exited {
		t.Fatal("unexpected exit")
	}
	if _, ok := values.AsError(v.(values.Expr)); !ok {
		t.Errorf("+ on a non-integer operand should fail, got %v", v)
	}
}

// TestArithHandlesArbitraryPrecision pins that a sum overflowing int64
// must still come out exact, since Integer is backed by apd.Decimal
// rather than a fixed-width machine word.
func TestArithHandlesArbitraryPrecision(t *testing.T) {
	huge, err := values.NewIntegerFromString("99999999999999999999999999999999999999")
	if err != nil {
		t.Fatalf("NewIntegerFromString failed: %v", err)
	}
	one := values.NewIntegerFromInt64(1)
	got := runPrim(t, "+", huge, one)

	want, err := values.NewIntegerFromString("100000000000000000000000000000000000000")
	if err != nil {
		t.Fatalf("NewIntegerFromString(want) failed: %v", err)
	}
	if got.(*values.Integer).Cmp(want) != 0 {
		t.Errorf("huge + 1 = %s, want %s", got, want)
	}
}
