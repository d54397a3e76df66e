package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/nunb/pyscheme-go/internal/builtins"
	"github.com/nunb/pyscheme-go/internal/driver"
	"github.com/nunb/pyscheme-go/internal/trampoline"
	"github.com/nunb/pyscheme-go/internal/types"
	"github.com/nunb/pyscheme-go/internal/values"
)

var demoStats bool

var demoCmd = &cobra.Command{
	Use:   "demo [name]",
	Short: "Run a canned program through the evaluator",
	Long: `demo runs one of a handful of programs built directly with Go
constructors (this module bundles no parser). Pass a name to run just
that one, or omit it to run all of them:

  fact      - recursive factorial via define and a Conditional
  amb       - then/back chronological backtracking exhaustion
  callcc    - a call/cc round trip`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		isTTY := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
		if isTTY {
			fmt.Println("--- amb demo ---")
		}
		noInfer, err := cmd.Flags().GetBool("no-infer")
		if err != nil {
			return err
		}
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		for _, d := range demos {
			if name != "" && d.name != name {
				continue
			}
			runDemo(d, noInfer)
		}
		return nil
	},
}

func init() {
	demoCmd.Flags().BoolVar(&demoStats, "stats", false, "print a humanized trampoline step count")
	rootCmd.AddCommand(demoCmd)
}

type demo struct {
	name    string
	env     *values.Environment
	typeEnv *types.Env
	prog    values.Program
	// resumes is how many times to call Result.Resume after running the
	// last entry of prog — used by the amb demo to walk a then/back
	// choice point instead of re-entering fresh at the top level each
	// time (see ambProgram).
	resumes int
}

// newDemoEnv builds a fresh top-level environment and type environment,
// with every builtin installed. errorRet mirrors the driver's own
// top-level ret, since there is no outer REPL continuation to capture one
// from in this demo harness.
func newDemoEnv() (*values.Environment, *types.Env) {
	env := values.NewEnvironment()
	typeEnv := types.NewEnv()
	errorRet := func(v values.Expr, amb values.Amb) trampoline.Step {
		return trampoline.Done{Value: v}
	}
	builtins.Install(env, typeEnv, os.Stdout, errorRet)
	return env, typeEnv
}

var demos = buildDemos()

func buildDemos() []demo {
	factEnv, factTypes := newDemoEnv()
	ambEnv, ambTypes := newDemoEnv()
	ccEnv, ccTypes := newDemoEnv()

	return []demo{
		{name: "fact", env: factEnv, typeEnv: factTypes, prog: factProgram()},
		{name: "amb", env: ambEnv, typeEnv: ambTypes, prog: ambProgram(), resumes: 3},
		{name: "callcc", env: ccEnv, typeEnv: ccTypes, prog: callCCProgram()},
	}
}

func runDemo(d demo, noInfer bool) {
	fmt.Printf("[%s]\n", d.name)
	for _, expr := range d.prog {
		if !noInfer {
			if _, err := types.Infer(expr, d.typeEnv, nil); err != nil {
				fmt.Printf("  ! type error: %s\n", err)
				continue
			}
		}
		r := driver.RunExpr(expr, d.env)
		printResult(r)
		for i := 0; i < d.resumes && !r.Exited && r.Resume != nil; i++ {
			r = r.Resume()
			printResult(r)
		}
	}
}

func printResult(r driver.Result) {
	switch {
	case r.Exited:
		fmt.Println("  (exit)")
	case r.Value != nil:
		fmt.Printf("  => %s\n", r.Value.String())
	}
	if demoStats {
		fmt.Printf("  (%s trampoline steps)\n", humanize.Comma(int64(r.Steps)))
	}
}

// sym is a short alias for values.Intern, for readability in the
// hand-built ASTs below.
func sym(name string) *values.Symbol { return values.Intern(name) }

func app(op values.Expr, operands ...values.Expr) *values.Application {
	return &values.Application{Op: op, Operands: values.ListOf(operands...)}
}

// factProgram builds:
//
//	define fact = lambda (n) if (== n 0) 1 (* n (fact (- n 1)))
//	fact(6)
func factProgram() values.Program {
	n := sym("n")
	factSym := sym("fact")
	body := &values.Conditional{
		Test: app(sym("=="), n, values.NewIntegerFromInt64(0)),
		Cons: values.NewIntegerFromInt64(1),
		Alt: app(sym("*"), n, app(factSym,
			app(sym("-"), n, values.NewIntegerFromInt64(1)))),
	}
	lambda := &values.Lambda{Formals: values.ListOf(n), Body: body}
	define := app(sym("define"), factSym, lambda)
	call := app(factSym, values.NewIntegerFromInt64(6))

	return values.Program{define, call}
}

// ambProgram builds `then a (then b (then c back))`, where a, b, c are
// distinct string constants. The first evaluation yields "a"; resuming
// the amb chain captured at that point (see demo.resumes) walks "b",
// then "c", then exhausts — the final resumption's `back` has no
// enclosing alternative left and halts the driver.
func ambProgram() values.Program {
	choice := app(sym("then"),
		values.NewString("a"),
		app(sym("then"),
			values.NewString("b"),
			app(sym("then"),
				values.NewString("c"),
				app(sym("back")))))

	return values.Program{choice}
}

// callCCProgram builds `(+ 1 (call/cc (lambda (k) (k 10))))`, which
// yields 11: k reifies call/cc's own ret, so invoking it with 10 plugs
// 10 into the same place call/cc's normal return value would have gone.
func callCCProgram() values.Program {
	k := sym("k")
	capture := app(sym("call/cc"), &values.Lambda{
		Formals: values.ListOf(k),
		Body:    app(k, values.NewIntegerFromInt64(10)),
	})
	return values.Program{app(sym("+"), values.NewIntegerFromInt64(1), capture)}
}
