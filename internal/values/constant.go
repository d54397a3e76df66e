package values

import (
	"strconv"

	"github.com/cockroachdb/apd/v3"
	"github.com/nunb/pyscheme-go/internal/trampoline"
)

// arithCtx is the arbitrary-precision context arithmetic runs through.
// apd.BaseContext carries Precision 0 (unlimited — it never rounds).
var arithCtx = apd.BaseContext

// Integer wraps an apd.Decimal constrained to always hold an exact integer
// (Exponent 0): arbitrary precision, ordering, arithmetic.
type Integer struct {
	d apd.Decimal
}

// NewIntegerFromInt64 builds an Integer from a native int64.
func NewIntegerFromInt64(v int64) *Integer {
	i := &Integer{}
	i.d.SetInt64(v)
	return i
}

// NewIntegerFromString parses a base-10 integer literal of arbitrary size.
func NewIntegerFromString(s string) (*Integer, error) {
	i := &Integer{}
	_, _, err := i.d.SetString(s)
	return i, err
}

func (i *Integer) Eval(env *Environment, ret Ret, amb Amb) trampoline.Step {
	return thunk(func() trampoline.Step { return ret(i, amb) })
}

func (i *Integer) Kind() string   { return "integer" }
func (i *Integer) String() string { return i.d.Text('f') }

// Cmp compares i and other as exact integers: -1, 0 or 1.
func (i *Integer) Cmp(other *Integer) int {
	return i.d.Cmp(&other.d)
}

// Add, Sub, Mul and Quo run through the arbitrary-precision context; Quo is
// truncating integer division (the `/` primitive), and Rem is the `%`
// primitive's remainder.
func (i *Integer) Add(other *Integer) *Integer {
	r := &Integer{}
	_, _ = arithCtx.Add(&r.d, &i.d, &other.d)
	return r
}

func (i *Integer) Sub(other *Integer) *Integer {
	r := &Integer{}
	_, _ = arithCtx.Sub(&r.d, &i.d, &other.d)
	return r
}

func (i *Integer) Mul(other *Integer) *Integer {
	r := &Integer{}
	_, _ = arithCtx.Mul(&r.d, &i.d, &other.d)
	return r
}

func (i *Integer) Quo(other *Integer) (*Integer, error) {
	r := &Integer{}
	_, err := arithCtx.QuoInteger(&r.d, &i.d, &other.d)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (i *Integer) Rem(other *Integer) (*Integer, error) {
	r := &Integer{}
	_, err := arithCtx.Rem(&r.d, &i.d, &other.d)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Int64 reports i as an int64, for callers that need a native integer
// rather than an arbitrary-precision value; it fails if i does not fit.
func (i *Integer) Int64() (int64, error) {
	return i.d.Int64()
}

// Character is a single interned code point, ordered and compared by
// underlying rune value.
type Character struct {
	value rune
}

var charTable = make(map[rune]*Character)

// InternChar returns the process-wide Character for r.
func InternChar(r rune) *Character {
	if c, ok := charTable[r]; ok {
		return c
	}
	c := &Character{value: r}
	charTable[r] = c
	return c
}

func (c *Character) Eval(env *Environment, ret Ret, amb Amb) trampoline.Step {
	return thunk(func() trampoline.Step { return ret(c, amb) })
}

func (c *Character) Kind() string   { return "character" }
func (c *Character) String() string { return "'" + string(c.value) + "'" }
func (c *Character) Rune() rune     { return c.value }
func (c *Character) Cmp(other *Character) int {
	switch {
	case c.value < other.value:
		return -1
	case c.value > other.value:
		return 1
	default:
		return 0
	}
}

// StringVal is a Go-native string constant. Equality and ordering are
// Go string comparison.
type StringVal struct {
	value string
}

func NewString(s string) *StringVal { return &StringVal{value: s} }

func (s *StringVal) Eval(env *Environment, ret Ret, amb Amb) trampoline.Step {
	return thunk(func() trampoline.Step { return ret(s, amb) })
}

func (s *StringVal) Kind() string   { return "string" }
func (s *StringVal) String() string { return strconv.Quote(s.value) }
func (s *StringVal) Value() string  { return s.value }
func (s *StringVal) Cmp(other *StringVal) int {
	switch {
	case s.value < other.value:
		return -1
	case s.value > other.value:
		return 1
	default:
		return 0
	}
}
