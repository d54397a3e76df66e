package values

// Eq implements the `eq` primitive's three-valued equality: the eqBool
// tables for booleans (so U compared with anything, U included, is U),
// identity for symbols and the self-evaluating applicable values, and
// structural equality for lists (Null equals only Null) and Constants,
// yielding U wherever a component comparison is unknown.
func Eq(a, b Expr) Boolean {
	switch av := a.(type) {
	case Boolean:
		bv, ok := b.(Boolean)
		if !ok {
			return F
		}
		return av.eqBool(bv)

	case *Symbol:
		bv, ok := b.(*Symbol)
		if !ok {
			return F
		}
		return boolOf(av == bv)

	case List:
		bv, ok := b.(List)
		if !ok {
			return F
		}
		return eqList(av, bv)

	case *Integer:
		bv, ok := b.(*Integer)
		if !ok {
			return F
		}
		return boolOf(av.Cmp(bv) == 0)

	case *Character:
		bv, ok := b.(*Character)
		if !ok {
			return F
		}
		return boolOf(av.value == bv.value)

	case *StringVal:
		bv, ok := b.(*StringVal)
		if !ok {
			return F
		}
		return boolOf(av.value == bv.value)

	default:
		// Closures, Continuations, EnvironmentValues and any other
		// applicable/self-evaluating value compare by object identity.
		return boolOf(a == b)
	}
}

func eqList(a, b List) Boolean {
	if a.IsNull() || b.IsNull() {
		return boolOf(a.IsNull() == b.IsNull())
	}
	return And(Eq(a.Car(), b.Car()), eqList(a.Cdr(), b.Cdr()))
}

func boolOf(v bool) Boolean {
	if v {
		return T
	}
	return F
}
