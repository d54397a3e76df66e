// Package driver wires a top-level ret/amb pair around
// internal/trampoline's Run loop: the part of an embedder — a
// read-eval-print loop, a CLI subcommand, a test — needs to drive an
// already-built values.Expr to completion and, if it passed through a
// backtracking choice point, resume the search later.
package driver

import (
	"reflect"

	"github.com/nunb/pyscheme-go/internal/trampoline"
	"github.com/nunb/pyscheme-go/internal/values"
)

// Result is the outcome of driving one expression (or one resumption of
// a prior backtracking choice point) to completion.
type Result struct {
	// Value is the final value, or nil if Exited is true.
	Value values.Expr
	// Exited reports whether the `exit` special form was reached, or a
	// `back` unwound every choice point with nothing left to try.
	Exited bool
	// Steps counts how many trampoline.Thunk steps Run actually
	// unwound — exposed for cmd/amb's --stats flag and as a liveness
	// check that deep recursion still runs in constant host stack.
	Steps int
	// Resume re-enters the amb chain captured at the moment this Result
	// succeeded, exploring the next chronologically-installed alternative.
	// It is nil once Exited, or for a Result that never passed through a
	// `then`/`amb` choice point.
	Resume func() Result
}

// topAmb is the outermost failure continuation: a `back` with no
// enclosing `then` alternative halts the driver entirely, producing no
// value.
func topAmb() trampoline.Step {
	return trampoline.Exit{}
}

// countingStep wraps a values.Expr Eval call so Run's loop can count
// how many thunks it actually invoked, without trampoline itself (which
// is deliberately value-agnostic) knowing anything about values.Expr.
func countingStep(s trampoline.Step, steps *int) trampoline.Step {
	t, ok := s.(trampoline.Thunk)
	if !ok {
		return s
	}
	return trampoline.Thunk(func() trampoline.Step {
		*steps++
		return countingStep(t(), steps)
	})
}

// session threads a single success continuation across an initial
// RunExpr call and every Result.Resume that follows it: `then`'s amb2
// closure carries the very same ret forward into each alternative it
// tries, so a resumed backtrack must call back into the one continuation
// that keeps recording the amb most recently handed to it, not a fresh
// top-level one.
type session struct {
	ret values.Ret
	amb values.Amb
}

func newSession() *session {
	s := &session{}
	s.ret = func(v values.Expr, amb values.Amb) trampoline.Step {
		s.amb = amb
		return trampoline.Done{Value: v}
	}
	return s
}

func (s *session) run(start func() trampoline.Step) Result {
	steps := 0
	initial := countingStep(trampoline.Thunk(start), &steps)
	value, exited := trampoline.Run(initial)
	if exited {
		return Result{Exited: true, Steps: steps}
	}
	v, _ := value.(values.Expr)
	result := Result{Value: v, Steps: steps}
	// An amb that is still topAmb has no alternative left to explore, so
	// no Resume is offered for it.
	if s.amb != nil && reflect.ValueOf(s.amb).Pointer() != reflect.ValueOf(values.Amb(topAmb)).Pointer() {
		amb := s.amb
		result.Resume = func() Result { return s.run(func() trampoline.Step { return amb() }) }
	}
	return result
}

// RunExpr evaluates expr in env through the trampoline to completion. If
// expr ever reaches a choice point (an `amb`/`then` that succeeded with
// an alternative still unexplored), the returned Result's Resume
// continues the search from there.
func RunExpr(expr values.Expr, env *values.Environment) Result {
	s := newSession()
	return s.run(func() trampoline.Step { return expr.Eval(env, s.ret, topAmb) })
}

// RunProgram evaluates each expression in prog, in order, against the
// same env (so a `define` in one top-level expression is visible to the
// next), the way a caller feeding it one parsed top-level form at a time
// would. Evaluation stops at the first Exited result.
func RunProgram(prog values.Program, env *values.Environment) []Result {
	results := make([]Result, 0, len(prog))
	for _, expr := range prog {
		r := RunExpr(expr, env)
		results = append(results, r)
		if r.Exited {
			break
		}
	}
	return results
}
