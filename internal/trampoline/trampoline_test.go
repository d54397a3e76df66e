package trampoline

import "testing"

func TestRunDoneAndExit(t *testing.T) {
	v, exited := Run(Done{Value: 42})
	if exited {
		t.Fatal("Done should not report exited")
	}
	if v != 42 {
		t.Errorf("Run(Done{42}) = %v, want 42", v)
	}

	_, exited = Run(Exit{})
	if !exited {
		t.Fatal("Exit should report exited")
	}
}

// TestRunUnwindsLongThunkChainsInConstantStack pins that a long chain of
// tail Thunks drives to completion without recursing the host call stack
// — Run's own loop is the only place that iterates.
func TestRunUnwindsLongThunkChainsInConstantStack(t *testing.T) {
	const n = 200000
	var step func(i int) Step
	step = func(i int) Step {
		if i == n {
			return Done{Value: i}
		}
		return Thunk(func() Step { return step(i + 1) })
	}
	v, exited := Run(Thunk(func() Step { return step(0) }))
	if exited {
		t.Fatal("unexpected exit")
	}
	if v != n {
		t.Errorf("Run unwound to %v, want %d", v, n)
	}
}

func TestRunPanicsOnUnknownStepVariant(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Run should panic on an unrecognized Step implementation")
		}
	}()
	Run(unknownStep{})
}

type unknownStep struct{}

func (unknownStep) isStep() {}
