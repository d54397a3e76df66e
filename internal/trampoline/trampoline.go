// Package trampoline drives a chain of zero-argument thunks until a final
// value is produced or an exit sentinel is observed, giving the evaluator
// unbounded tail-call and backtracking depth in constant host-stack space.
//
// The package deliberately knows nothing about the evaluator's value types:
// Done carries an opaque `any`, and internal/values casts it back. This
// keeps the dependency one-directional (values imports trampoline, never
// the reverse) while letting both the CPS evaluator and the nondeterministic
// amb/back machinery share one driver loop.
package trampoline

// Step is the result of one evaluation step: either more work to do
// (Thunk), a final value (Done), or a request to halt the driver without
// producing a value (Exit).
type Step interface {
	isStep()
}

// Thunk is a zero-argument deferred computation. Eval, Ret and Amb
// implementations must return a Thunk rather than calling onward directly,
// so that Run can drive arbitrarily long chains iteratively.
type Thunk func() Step

func (Thunk) isStep() {}

// Done is a terminal value: the trampoline stops and Run returns it.
type Done struct {
	Value any
}

func (Done) isStep() {}

// Exit is the sentinel the `exit` special form returns: the trampoline
// stops having produced no value at all.
type Exit struct{}

func (Exit) isStep() {}

// Run repeatedly invokes the thunk chain rooted at s until it observes a
// Done or an Exit, and reports which. This is the only place in the module
// that loops instead of recursing: every Thunk returned by eval/ret/amb
// code is expected to do O(1) work before returning the next Step.
func Run(s Step) (value any, exited bool) {
	for {
		switch v := s.(type) {
		case Thunk:
			s = v()
		case Done:
			return v.Value, false
		case Exit:
			return nil, true
		default:
			panic("trampoline: unknown Step variant")
		}
	}
}
