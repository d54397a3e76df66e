package types

import (
	"github.com/nunb/pyscheme-go/internal/errors"
	"github.com/nunb/pyscheme-go/internal/values"
)

// Env is the inferencer's own symbol-to-type-scheme mapping. It is a
// separate structure from values.Environment: the inferencer and the
// evaluator share only the AST and the environment's symbol identities,
// never mutable state, so Env is built once, ahead of evaluation, over the
// same *values.Symbol pointers the runtime environment uses as keys.
type Env struct {
	vars  map[*values.Symbol]Type
	outer *Env
}

// NewEnv returns a fresh, empty, parentless type environment.
func NewEnv() *Env {
	return &Env{vars: make(map[*values.Symbol]Type)}
}

// Extend returns a new child scope with sym bound to t.
func (e *Env) Extend(sym *values.Symbol, t Type) *Env {
	return &Env{vars: map[*values.Symbol]Type{sym: t}, outer: e}
}

// Bind adds sym -> t to e's own frame, overwriting any prior binding
// there — used for define's letrec-style self-binding.
func (e *Env) Bind(sym *values.Symbol, t Type) {
	e.vars[sym] = t
}

// Lookup searches innermost to outermost for sym.
func (e *Env) Lookup(sym *values.Symbol) (Type, bool) {
	for env := e; env != nil; env = env.outer {
		if t, ok := env.vars[sym]; ok {
			return t, true
		}
	}
	return nil, false
}

var defineSym = values.Intern("define")

// Infer walks expr, returning its inferred Type or the first error
// encountered. nonGeneric names the type variables that must NOT be
// refreshed by Fresh — the formals of every Lambda currently being
// inferred, plus (for the duration of inferring its own value) the symbol
// a `define` is binding, which is what lets a recursive definition's
// self-reference infer consistently rather than diverging.
func Infer(expr values.Expr, env *Env, nonGeneric []*TypeVariable) (Type, error) {
	switch e := expr.(type) {
	case *values.Integer:
		return Int, nil
	case *values.Character:
		return Char, nil
	case *values.StringVal:
		return Str, nil

	case values.Boolean:
		return Bool, nil

	case *values.Symbol:
		t, ok := env.Lookup(e)
		if !ok {
			return nil, errors.NewSymbolNotFoundError(e.Name())
		}
		return Fresh(t, nonGeneric), nil

	case values.List:
		return inferList(e, env, nonGeneric)

	case *values.Conditional:
		testType, err := Infer(e.Test, env, nonGeneric)
		if err != nil {
			return nil, err
		}
		if err := Unify(testType, Bool); err != nil {
			return nil, err
		}
		consType, err := Infer(e.Cons, env, nonGeneric)
		if err != nil {
			return nil, err
		}
		altType, err := Infer(e.Alt, env, nonGeneric)
		if err != nil {
			return nil, err
		}
		if err := Unify(consType, altType); err != nil {
			return nil, err
		}
		return consType, nil

	case *values.Lambda:
		return inferLambda(e, env, nonGeneric)

	case *values.Application:
		if sym, ok := e.Op.(*values.Symbol); ok && sym == defineSym {
			return inferDefine(e, env, nonGeneric)
		}
		return inferApplication(e, env, nonGeneric)

	case *values.Sequence:
		result := Type(List(NewTypeVariable()))
		for _, sub := range e.Exprs {
			t, err := Infer(sub, env, nonGeneric)
			if err != nil {
				return nil, err
			}
			result = t
		}
		return result, nil

	case *values.Nest:
		return Infer(e.Body, env, nonGeneric)

	case *values.Env:
		if _, err := Infer(e.Body, env, nonGeneric); err != nil {
			return nil, err
		}
		return Opaque, nil

	case *values.EnvironmentValue:
		return Opaque, nil

	default:
		return nil, errors.NewInternalError("unsupported expression shape in inference")
	}
}

// inferList handles Pair literals and Null: unify every element's type
// with a single fresh element variable and return list(elem).
func inferList(l values.List, env *Env, nonGeneric []*TypeVariable) (Type, error) {
	elem := Type(NewTypeVariable())
	for cur := l; !cur.IsNull(); cur = cur.Cdr() {
		t, err := Infer(cur.Car(), env, nonGeneric)
		if err != nil {
			return nil, err
		}
		if err := Unify(elem, t); err != nil {
			return nil, err
		}
	}
	return List(elem), nil
}

func inferLambda(l *values.Lambda, env *Env, nonGeneric []*TypeVariable) (Type, error) {
	var argTypes []Type
	childEnv := env
	childNonGeneric := nonGeneric
	for cur := l.Formals; !cur.IsNull(); cur = cur.Cdr() {
		sym, ok := cur.Car().(*values.Symbol)
		if !ok {
			return nil, errors.NewArityOrShapeError("lambda formal is not a symbol")
		}
		tv := NewTypeVariable()
		argTypes = append(argTypes, tv)
		childEnv = childEnv.Extend(sym, tv)
		childNonGeneric = append(childNonGeneric, tv)
	}
	bodyType, err := Infer(l.Body, childEnv, childNonGeneric)
	if err != nil {
		return nil, err
	}
	return FuncN(argTypes, bodyType), nil
}

func inferApplication(a *values.Application, env *Env, nonGeneric []*TypeVariable) (Type, error) {
	opType, err := Infer(a.Op, env, nonGeneric)
	if err != nil {
		return nil, err
	}
	var argTypes []Type
	for cur := a.Operands; !cur.IsNull(); cur = cur.Cdr() {
		t, err := Infer(cur.Car(), env, nonGeneric)
		if err != nil {
			return nil, err
		}
		argTypes = append(argTypes, t)
	}
	result := Type(NewTypeVariable())
	if err := Unify(opType, FuncN(argTypes, result)); err != nil {
		return nil, err
	}
	return result, nil
}

// inferDefine treats `(define sym expr)` as letrec: sym is bound to a
// fresh, non-generic type variable before expr is inferred, so a
// self-reference inside expr (direct recursion) infers against that same
// variable rather than failing to resolve. Once expr's type is known it
// is unified with the placeholder; env keeps the (now possibly refined)
// variable, to be refreshed by Fresh independently at each later
// reference.
func inferDefine(a *values.Application, env *Env, nonGeneric []*TypeVariable) (Type, error) {
	operands := a.Operands
	if operands.IsNull() || operands.Cdr().IsNull() {
		return nil, errors.NewArityOrShapeError("define requires a symbol and a value expression")
	}
	sym, ok := operands.Car().(*values.Symbol)
	if !ok {
		return nil, errors.NewArityOrShapeError("define target is not a symbol")
	}
	valueExpr := operands.Cdr().Car()

	placeholder := NewTypeVariable()
	env.Bind(sym, placeholder)
	valueType, err := Infer(valueExpr, env, append(nonGeneric, placeholder))
	if err != nil {
		return nil, err
	}
	if err := Unify(placeholder, valueType); err != nil {
		return nil, err
	}
	return List(NewTypeVariable()), nil
}
