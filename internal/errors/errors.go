// Package errors defines the structured error taxonomy raised by the
// evaluator, the inferencer, and the environment: non-boolean conditions,
// unbound symbols, type mismatches, occurs-check failures, arity/shape
// violations, and broken invariants.
package errors

import "fmt"

// NonBooleanExpressionError is raised when IsTrue/IsFalse/IsUnknown is asked
// of a value that is not one of the three boolean singletons.
type NonBooleanExpressionError struct {
	Got string
}

func NewNonBooleanExpressionError(got string) *NonBooleanExpressionError {
	return &NonBooleanExpressionError{Got: got}
}

func (e *NonBooleanExpressionError) Error() string {
	return fmt.Sprintf("non-boolean expression: %s", e.Got)
}

// SymbolNotFoundError indicates an environment lookup miss.
type SymbolNotFoundError struct {
	Name string
}

func NewSymbolNotFoundError(name string) *SymbolNotFoundError {
	return &SymbolNotFoundError{Name: name}
}

func (e *SymbolNotFoundError) Error() string {
	return fmt.Sprintf("symbol not found: %s", e.Name)
}

// TypeMismatchError indicates unification of two differently-named type
// operators, or operators of mismatched arity.
type TypeMismatchError struct {
	Left  string
	Right string
}

func NewTypeMismatchError(left, right string) *TypeMismatchError {
	return &TypeMismatchError{Left: left, Right: right}
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: %s is not %s", e.Left, e.Right)
}

// RecursiveUnificationError indicates an occurs-check failure: a type
// variable would have to unify with a type that contains it.
type RecursiveUnificationError struct {
	Variable string
	Type     string
}

func NewRecursiveUnificationError(variable, typ string) *RecursiveUnificationError {
	return &RecursiveUnificationError{Variable: variable, Type: typ}
}

func (e *RecursiveUnificationError) Error() string {
	return fmt.Sprintf("recursive unification: %s occurs in %s", e.Variable, e.Type)
}

// ArityOrShapeError covers list indexing out of range, indexing with a
// non-integer, and other shape violations a primitive discovers when it
// destructures its evaluated argument list.
type ArityOrShapeError struct {
	Reason string
}

func NewArityOrShapeError(reason string) *ArityOrShapeError {
	return &ArityOrShapeError{Reason: reason}
}

func (e *ArityOrShapeError) Error() string {
	return fmt.Sprintf("arity or shape error: %s", e.Reason)
}

// InternalError indicates a broken invariant: unreachable in correct code.
type InternalError struct {
	Reason string
}

func NewInternalError(reason string) *InternalError {
	return &InternalError{Reason: reason}
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: %s", e.Reason)
}
