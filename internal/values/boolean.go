package values

import "github.com/nunb/pyscheme-go/internal/trampoline"

// Boolean is implemented only by the three singletons T, F and U. Asking
// IsTrue/IsFalse/IsUnknown of any other Expr is an error (see AsBoolean
// below); restricting the interface to the three singletons lets that
// check be a type assertion instead of a virtual method every Expr must
// stub out.
type Boolean interface {
	Expr
	IsTrue() bool
	IsFalse() bool
	IsUnknown() bool
	and(Boolean) Boolean
	not() Boolean
	eqBool(Boolean) Boolean
}

type trueBool struct{}
type falseBool struct{}
type unknownBool struct{}

// T, F and U are the three process-wide boolean singletons. Equality among
// them is identity: there is never a second trueBool{} allocated.
var (
	T Boolean = trueBool{}
	F Boolean = falseBool{}
	U Boolean = unknownBool{}
)

func (trueBool) Eval(env *Environment, ret Ret, amb Amb) trampoline.Step {
	return thunk(func() trampoline.Step { return ret(T, amb) })
}
func (trueBool) Kind() string              { return "boolean" }
func (trueBool) String() string            { return "true" }
func (trueBool) IsTrue() bool              { return true }
func (trueBool) IsFalse() bool             { return false }
func (trueBool) IsUnknown() bool           { return false }
func (trueBool) and(other Boolean) Boolean { return other }
func (trueBool) not() Boolean              { return F }

// eqBool: T.eq(other) is other when other is T, else other itself (F or U).
func (t trueBool) eqBool(other Boolean) Boolean {
	if other == T {
		return t
	}
	return other
}

func (falseBool) Eval(env *Environment, ret Ret, amb Amb) trampoline.Step {
	return thunk(func() trampoline.Step { return ret(F, amb) })
}
func (falseBool) Kind() string    { return "boolean" }
func (falseBool) String() string  { return "false" }
func (falseBool) IsTrue() bool    { return false }
func (falseBool) IsFalse() bool   { return true }
func (falseBool) IsUnknown() bool { return false }
func (falseBool) and(Boolean) Boolean { return F }
func (falseBool) not() Boolean     { return T }

// eqBool: F.eq(other) is T when other is F, U when other is U, else F. Note
// the asymmetry with T.eq: false compared to unknown is unknown, not false.
func (f falseBool) eqBool(other Boolean) Boolean {
	if other == F {
		return T
	}
	if other == U {
		return other
	}
	return f
}

func (unknownBool) Eval(env *Environment, ret Ret, amb Amb) trampoline.Step {
	return thunk(func() trampoline.Step { return ret(U, amb) })
}
func (unknownBool) Kind() string    { return "boolean" }
func (unknownBool) String() string  { return "unknown" }
func (unknownBool) IsTrue() bool    { return false }
func (unknownBool) IsFalse() bool   { return false }
func (unknownBool) IsUnknown() bool { return true }
func (unknownBool) and(other Boolean) Boolean {
	if other == F {
		return F
	}
	return U
}
func (unknownBool) not() Boolean { return U }

// eqBool: U.eq(other) is always U.
func (u unknownBool) eqBool(Boolean) Boolean { return u }

// And implements Kleene conjunction: T&x=x, F&x=F, U&F=F, U&T=U, U&U=U.
func And(a, b Boolean) Boolean { return a.and(b) }

// Or implements Kleene disjunction via De Morgan (valid for Kleene logic,
// which is self-dual): T|x=T, F|x=x, U|T=T, U|F=U, U|U=U.
func Or(a, b Boolean) Boolean { return Not(And(Not(a), Not(b))) }

// Not implements Kleene negation: ~U=U.
func Not(a Boolean) Boolean { return a.not() }

// Xor: (a and not b) or (b and not a).
func Xor(a, b Boolean) Boolean {
	return Or(And(a, Not(b)), And(b, Not(a)))
}

// AsBoolean asserts that e is one of the three boolean singletons, or
// reports a NonBooleanExpressionError for the caller to surface via Fail.
func AsBoolean(e Expr) (Boolean, error) {
	b, ok := e.(Boolean)
	if !ok {
		return nil, notBoolean(e.Kind())
	}
	return b, nil
}
