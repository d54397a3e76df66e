package builtins

import (
	"bytes"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/nunb/pyscheme-go/internal/driver"
	"github.com/nunb/pyscheme-go/internal/trampoline"
	"github.com/nunb/pyscheme-go/internal/types"
	"github.com/nunb/pyscheme-go/internal/values"
)

// TestPrintOutputSnapshots pins `print`'s rendering of canned programs
// using go-snaps to capture each program's stdout across runs.
func TestPrintOutputSnapshots(t *testing.T) {
	cases := []struct {
		name string
		prog values.Program
	}{
		{
			name: "print_integer_and_string",
			prog: values.Program{
				app2(values.Intern("print"), values.NewIntegerFromInt64(42), values.NewString("hi")),
			},
		},
		{
			name: "print_list",
			prog: values.Program{
				app2(values.Intern("print"), values.ListOf(
					values.NewIntegerFromInt64(1), values.NewIntegerFromInt64(2), values.NewIntegerFromInt64(3))),
			},
		},
		{
			name: "print_booleans",
			prog: values.Program{
				app2(values.Intern("print"), values.T, values.F, values.U),
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var out bytes.Buffer
			env := values.NewEnvironment()
			errorRet := func(v values.Expr, amb values.Amb) trampoline.Step { return trampoline.Exit{} }
			Install(env, types.NewEnv(), &out, errorRet)

			for _, r := range driver.RunProgram(c.prog, env) {
				if r.Exited {
					t.Fatal("unexpected exit while running snapshot program")
				}
			}
			snaps.MatchSnapshot(t, c.name, out.String())
		})
	}
}
