package values

import (
	"github.com/nunb/pyscheme-go/internal/errors"
	"github.com/nunb/pyscheme-go/internal/trampoline"
)

// Applicable is implemented by every value that can appear in operator
// position of an Application: Closure, Continuation, Primitive and
// SpecialForm.
type Applicable interface {
	Expr
	// Apply receives the Application's unevaluated operand list and the
	// caller's environment. A Primitive (and a Closure, which is one)
	// evaluates operands itself before acting; a SpecialForm chooses what,
	// if anything, to evaluate.
	Apply(operands List, env *Environment, ret Ret, amb Amb) trampoline.Step
}

// ApplyEvaluatedFunc is the business logic of a Primitive: given the
// already-evaluated argument list, produce the next step.
type ApplyEvaluatedFunc func(args List, ret Ret, amb Amb) trampoline.Step

// Primitive evaluates its operands as a list before calling its
// ApplyEvaluatedFunc. Arithmetic, comparison and list operations are all
// Primitives.
type Primitive struct {
	name           string
	applyEvaluated ApplyEvaluatedFunc
}

// NewPrimitive builds a named Primitive from its evaluated-argument logic.
func NewPrimitive(name string, fn ApplyEvaluatedFunc) *Primitive {
	return &Primitive{name: name, applyEvaluated: fn}
}

func (p *Primitive) Eval(env *Environment, ret Ret, amb Amb) trampoline.Step {
	return thunk(func() trampoline.Step { return ret(p, amb) })
}
func (p *Primitive) Kind() string   { return "primitive" }
func (p *Primitive) String() string { return "#<primitive " + p.name + ">" }

func (p *Primitive) Apply(operands List, env *Environment, ret Ret, amb Amb) trampoline.Step {
	deferredApply := func(evaluatedArgs Expr, amb Amb) trampoline.Step {
		argsList, ok := evaluatedArgs.(List)
		if !ok {
			return Fail(errors.NewInternalError("primitive operand list did not evaluate to a list"))
		}
		return thunk(func() trampoline.Step { return p.applyEvaluated(argsList, ret, amb) })
	}
	return thunk(func() trampoline.Step { return operands.Eval(env, deferredApply, amb) })
}

// SpecialFormFunc receives unevaluated operands and chooses what to
// evaluate, and how.
type SpecialFormFunc func(operands List, env *Environment, ret Ret, amb Amb) trampoline.Step

// SpecialForm receives unevaluated operands — `and`, `or`, `then`, `back`,
// `define`, `call/cc`, `error` and `eval-in-env` are all special forms.
// `if` is not: it is encoded as the Conditional AST node instead.
type SpecialForm struct {
	name  string
	apply SpecialFormFunc
}

// NewSpecialForm builds a named SpecialForm from its apply logic.
func NewSpecialForm(name string, fn SpecialFormFunc) *SpecialForm {
	return &SpecialForm{name: name, apply: fn}
}

func (s *SpecialForm) Eval(env *Environment, ret Ret, amb Amb) trampoline.Step {
	return thunk(func() trampoline.Step { return ret(s, amb) })
}
func (s *SpecialForm) Kind() string   { return "special-form" }
func (s *SpecialForm) String() string { return "#<special-form " + s.name + ">" }

func (s *SpecialForm) Apply(operands List, env *Environment, ret Ret, amb Amb) trampoline.Step {
	return s.apply(operands, env, ret, amb)
}
