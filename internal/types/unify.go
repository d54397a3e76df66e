package types

import "github.com/nunb/pyscheme-go/internal/errors"

// Prune follows Instance chains to the representative type for t,
// path-compressing along the way so repeated pruning of the same
// variable is O(1) amortized.
func Prune(t Type) Type {
	v, ok := t.(*TypeVariable)
	if !ok || v.Instance == nil {
		return t
	}
	result := Prune(v.Instance)
	v.Instance = result
	return result
}

// OccursInType reports whether v occurs (after pruning) within t.
func OccursInType(v *TypeVariable, t Type) bool {
	pruned := Prune(t)
	if pruned == v {
		return true
	}
	if op, ok := pruned.(*TypeOperator); ok {
		return OccursIn(v, op.Args)
	}
	return false
}

// OccursIn reports whether v occurs in any member of types.
func OccursIn(v *TypeVariable, types []Type) bool {
	for _, t := range types {
		if OccursInType(v, t) {
			return true
		}
	}
	return false
}

// Unify prunes both a and b, then: if either is an unbound variable, it
// sets that variable's Instance to the other side (after an occurs
// check); if both are TypeOperators, their names and arities must match
// and their arguments unify pairwise; otherwise the types are
// irreconcilable.
func Unify(a, b Type) error {
	prunedA, prunedB := Prune(a), Prune(b)

	if va, ok := prunedA.(*TypeVariable); ok {
		if va == prunedB {
			return nil
		}
		if OccursInType(va, prunedB) {
			return errors.NewRecursiveUnificationError(va.String(), prunedB.String())
		}
		va.Instance = prunedB
		return nil
	}

	if vb, ok := prunedB.(*TypeVariable); ok {
		return Unify(vb, prunedA)
	}

	oa, oka := prunedA.(*TypeOperator)
	ob, okb := prunedB.(*TypeOperator)
	if !oka || !okb {
		return errors.NewTypeMismatchError(prunedA.String(), prunedB.String())
	}
	if oa.Name != ob.Name || len(oa.Args) != len(ob.Args) {
		return errors.NewTypeMismatchError(prunedA.String(), prunedB.String())
	}
	for i := range oa.Args {
		if err := Unify(oa.Args[i], ob.Args[i]); err != nil {
			return err
		}
	}
	return nil
}

// Fresh copies t, replacing every free TypeVariable (one not present,
// after pruning, in nonGeneric) with a fresh variable, consistently
// reusing the same replacement for repeated occurrences within the one
// copy. Variables present in nonGeneric are left untouched: this is what
// keeps a lambda formal monomorphic within its own body while a `define`d
// symbol is refreshed, independently, at each reference (prenex / let-
// polymorphism).
func Fresh(t Type, nonGeneric []*TypeVariable) Type {
	mapping := make(map[*TypeVariable]*TypeVariable)
	return freshRec(t, nonGeneric, mapping)
}

func freshRec(t Type, nonGeneric []*TypeVariable, mapping map[*TypeVariable]*TypeVariable) Type {
	pruned := Prune(t)
	switch p := pruned.(type) {
	case *TypeVariable:
		if isNonGeneric(p, nonGeneric) {
			return p
		}
		if fresh, ok := mapping[p]; ok {
			return fresh
		}
		fresh := NewTypeVariable()
		mapping[p] = fresh
		return fresh
	case *TypeOperator:
		args := make([]Type, len(p.Args))
		for i, a := range p.Args {
			args[i] = freshRec(a, nonGeneric, mapping)
		}
		return &TypeOperator{Name: p.Name, Args: args}
	default:
		return pruned
	}
}

// isNonGeneric reports whether v is held fixed by the current scope (it
// occurs in some variable already bound as non-generic), in which case
// Fresh must leave it alone rather than replacing it with a new variable.
func isNonGeneric(v *TypeVariable, nonGeneric []*TypeVariable) bool {
	for _, ng := range nonGeneric {
		if OccursInType(v, ng) {
			return true
		}
	}
	return false
}
