package values

import "testing"

func TestInternIdentity(t *testing.T) {
	a := Intern("x")
	b := Intern("x")
	if a != b {
		t.Errorf("Intern(\"x\") returned distinct objects: %p != %p", a, b)
	}
	if Intern("x") == Intern("y") {
		t.Errorf("distinct names interned to the same Symbol")
	}
}

// TestInternNormalizesNFC checks that visually identical names built from
// different combining-character sequences intern to one Symbol: "e" with a
// precomposed acute accent versus "e" followed by a combining acute accent
// (U+0301).
func TestInternNormalizesNFC(t *testing.T) {
	precomposed := "\u00e9"  // LATIN SMALL LETTER E WITH ACUTE
	decomposed := "e\u0301"  // "e" + COMBINING ACUTE ACCENT
	if precomposed == decomposed {
		t.Fatal("test setup is broken: the two byte sequences are already equal")
	}
	a := Intern(precomposed)
	b := Intern(decomposed)
	if a != b {
		t.Errorf("Intern did not normalize combining sequences to one Symbol")
	}
	if a.Name() != precomposed {
		t.Errorf("Name() = %q, want NFC form %q", a.Name(), precomposed)
	}
}
