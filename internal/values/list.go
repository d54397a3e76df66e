package values

import (
	"strings"

	"github.com/nunb/pyscheme-go/internal/errors"
	"github.com/nunb/pyscheme-go/internal/trampoline"
)

// List is the common interface of Pair and Null: a length-cached,
// right-recursive cons list.
type List interface {
	Expr
	IsNull() bool
	Car() Expr
	Cdr() List
	Len() int
	// Last returns the final element of a non-empty list, or itself
	// (Null) if called on the empty list. An internal helper, not a bound
	// primitive; Sequence does not use it.
	Last() Expr
	// Append conses the receiver onto other: Pair.Append recurses through
	// the receiver and returns other unchanged from Null.Append.
	Append(other List) List
}

// Pair is a nonempty list cell. Its length is cached at construction and
// never changes.
type Pair struct {
	car Expr
	cdr List
	len int
}

// NewPair builds a Pair with a cached length of 1+len(cdr).
func NewPair(car Expr, cdr List) *Pair {
	return &Pair{car: car, cdr: cdr, len: 1 + cdr.Len()}
}

// ListOf builds a Null-terminated list from args, left to right.
func ListOf(args ...Expr) List {
	var result List = Null
	for i := len(args) - 1; i >= 0; i-- {
		result = NewPair(args[i], result)
	}
	return result
}

func (p *Pair) IsNull() bool { return false }
func (p *Pair) Car() Expr    { return p.car }
func (p *Pair) Cdr() List    { return p.cdr }
func (p *Pair) Len() int     { return p.len }
func (p *Pair) Kind() string { return "pair" }

func (p *Pair) Last() Expr {
	if p.len == 1 {
		return p.car
	}
	return p.cdr.Last()
}

func (p *Pair) Append(other List) List {
	return NewPair(p.car, p.cdr.Append(other))
}

// Eval evaluates car, then cdr, then reconstructs a Pair of the two
// results, preserving left-to-right evaluation order: car's entire success
// continuation chain completes before cdr's begins.
func (p *Pair) Eval(env *Environment, ret Ret, amb Amb) trampoline.Step {
	carContinuation := func(evaluatedCar Expr, amb Amb) trampoline.Step {
		cdrContinuation := func(evaluatedCdr Expr, amb Amb) trampoline.Step {
			evaluatedCdrList, ok := evaluatedCdr.(List)
			if !ok {
				return Fail(errors.NewArityOrShapeError("list element is not a list tail: " + evaluatedCdr.Kind()))
			}
			return thunk(func() trampoline.Step {
				return ret(NewPair(evaluatedCar, evaluatedCdrList), amb)
			})
		}
		return thunk(func() trampoline.Step { return p.cdr.Eval(env, cdrContinuation, amb) })
	}
	return thunk(func() trampoline.Step { return p.car.Eval(env, carContinuation, amb) })
}

func (p *Pair) String() string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(p.car.String())
	writeTrailing(&b, p.cdr)
	b.WriteByte(']')
	return b.String()
}

func writeTrailing(b *strings.Builder, l List) {
	for !l.IsNull() {
		b.WriteString(", ")
		b.WriteString(l.Car().String())
		l = l.Cdr()
	}
}

// nullList is the singleton empty list. car and cdr of Null are Null;
// length is 0.
type nullList struct{}

// Null is the single, process-wide empty-list object, also used as the
// neutral "no value" result yielded by define and by an empty Sequence.
var Null List = nullList{}

func (nullList) IsNull() bool { return true }
func (nullList) Car() Expr    { return Null }
func (nullList) Cdr() List    { return Null }
func (nullList) Len() int     { return 0 }
func (nullList) Kind() string { return "null" }
func (nullList) Last() Expr   { return Null }
func (nullList) Append(other List) List { return other }

func (nullList) Eval(env *Environment, ret Ret, amb Amb) trampoline.Step {
	return thunk(func() trampoline.Step { return ret(Null, amb) })
}

func (nullList) String() string { return "[]" }
