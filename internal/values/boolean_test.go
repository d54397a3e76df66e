package values

import "testing"

func name(b Boolean) string {
	switch b {
	case T:
		return "T"
	case F:
		return "F"
	case U:
		return "U"
	default:
		return "?"
	}
}

// TestThreeValuedLogic checks and/or/xor across all nine input pairs and
// not across all three values. The asymmetric eq cases are pinned
// separately, by TestEqBoolAsymmetry below.
func TestThreeValuedLogic(t *testing.T) {
	vals := []Boolean{T, F, U}

	wantAnd := map[[2]Boolean]Boolean{
		{T, T}: T, {T, F}: F, {T, U}: U,
		{F, T}: F, {F, F}: F, {F, U}: F,
		{U, T}: U, {U, F}: F, {U, U}: U,
	}
	wantOr := map[[2]Boolean]Boolean{
		{T, T}: T, {T, F}: T, {T, U}: T,
		{F, T}: T, {F, F}: F, {F, U}: U,
		{U, T}: T, {U, F}: U, {U, U}: U,
	}
	wantXor := map[[2]Boolean]Boolean{
		{T, T}: F, {T, F}: T, {T, U}: U,
		{F, T}: T, {F, F}: F, {F, U}: U,
		{U, T}: U, {U, F}: U, {U, U}: U,
	}

	for _, a := range vals {
		for _, b := range vals {
			key := [2]Boolean{a, b}
			if got := And(a, b); got != wantAnd[key] {
				t.Errorf("And(%s, %s) = %s, want %s", name(a), name(b), name(got), name(wantAnd[key]))
			}
			if got := Or(a, b); got != wantOr[key] {
				t.Errorf("Or(%s, %s) = %s, want %s", name(a), name(b), name(got), name(wantOr[key]))
			}
			if got := Xor(a, b); got != wantXor[key] {
				t.Errorf("Xor(%s, %s) = %s, want %s", name(a), name(b), name(got), name(wantXor[key]))
			}
		}
	}

	wantNot := map[Boolean]Boolean{T: F, F: T, U: U}
	for _, a := range vals {
		if got := Not(a); got != wantNot[a] {
			t.Errorf("Not(%s) = %s, want %s", name(a), name(got), name(wantNot[a]))
		}
	}
}

// TestEqBoolAsymmetry pins down the asymmetric cases eq.go's And-based
// three-valued equality relies on: F.eq(U) is U, not F, and T.eq(U) is U.
func TestEqBoolAsymmetry(t *testing.T) {
	if got := Eq(F, U); got != U {
		t.Errorf("Eq(F, U) = %s, want U", name(got))
	}
	if got := Eq(U, F); got != U {
		t.Errorf("Eq(U, F) = %s, want U", name(got))
	}
	if got := Eq(T, U); got != U {
		t.Errorf("Eq(T, U) = %s, want U", name(got))
	}
	if got := Eq(U, U); got != U {
		t.Errorf("Eq(U, U) = %s, want U", name(got))
	}
	if got := Eq(T, T); got != T {
		t.Errorf("Eq(T, T) = %s, want T", name(got))
	}
}

func TestAsBooleanRejectsNonBoolean(t *testing.T) {
	if _, err := AsBoolean(NewIntegerFromInt64(1)); err == nil {
		t.Error("AsBoolean(integer) should fail")
	}
	b, err := AsBoolean(T)
	if err != nil || b != T {
		t.Errorf("AsBoolean(T) = %v, %v, want T, nil", b, err)
	}
}
