// Package types implements Hindley–Milner type inference with prenex
// polymorphism over the values.Expr AST, via the classic mutable-Instance
// algorithm (TypeVariable.Instance, Prune, OccursIn, Unify, Fresh) split
// across types.go/unify.go/infer.go, with its error taxonomy shared from
// internal/errors.
package types

import "fmt"

// Type is implemented by TypeVariable and TypeOperator.
type Type interface {
	fmt.Stringer
	isType()
}

// TypeVariable has a unique identity (its pointer) and an optional
// Instance set by Unify once it has been bound to a concrete type.
// Id is kept only for readable String() output; identity for unification
// purposes is always the pointer.
type TypeVariable struct {
	Id       int
	Instance Type
}

var nextVarID int

// NewTypeVariable returns a fresh, unbound TypeVariable.
func NewTypeVariable() *TypeVariable {
	nextVarID++
	return &TypeVariable{Id: nextVarID}
}

func (v *TypeVariable) isType() {}
func (v *TypeVariable) String() string {
	if v.Instance != nil {
		return v.Instance.String()
	}
	return fmt.Sprintf("t%d", v.Id)
}

// TypeOperator names a type constructor (int, bool, list, ->) applied to
// zero or more argument types.
type TypeOperator struct {
	Name string
	Args []Type
}

func (o *TypeOperator) isType() {}
func (o *TypeOperator) String() string {
	switch len(o.Args) {
	case 0:
		return o.Name
	case 2:
		if o.Name == "->" {
			return fmt.Sprintf("(%s -> %s)", o.Args[0], o.Args[1])
		}
	}
	s := o.Name + "("
	for i, a := range o.Args {
		if i > 0 {
			s += ", "
		}
		s += a.String()
	}
	return s + ")"
}

// Built-in nullary type operators.
var (
	Int    Type = &TypeOperator{Name: "int"}
	Bool   Type = &TypeOperator{Name: "bool"}
	Char   Type = &TypeOperator{Name: "char"}
	Str    Type = &TypeOperator{Name: "string"}
	Opaque Type = &TypeOperator{Name: "environment"}
)

// List builds list(elem).
func List(elem Type) Type { return &TypeOperator{Name: "list", Args: []Type{elem}} }

// Func builds the binary function operator arg -> result.
func Func(arg, result Type) Type { return &TypeOperator{Name: "->", Args: []Type{arg, result}} }

// FuncN folds args -> ... -> result into nested binary Func operators,
// right to left, for lambdas and applications of more than one argument.
func FuncN(args []Type, result Type) Type {
	t := result
	for i := len(args) - 1; i >= 0; i-- {
		t = Func(args[i], t)
	}
	return t
}
