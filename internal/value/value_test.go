package value

import "testing"

func TestEqualIsStructuralOnLists(t *testing.T) {
	a := List([]Value{Number(1), Word("x"), List([]Value{Number(2)})})
	b := List([]Value{Number(1), Word("x"), List([]Value{Number(2)})})
	c := List([]Value{Number(1), Word("x"), List([]Value{Number(3)})})

	if !Equal(a, b) {
		t.Fatalf("expected structurally identical lists to be equal")
	}
	if Equal(a, c) {
		t.Fatalf("expected lists differing in a nested element to be unequal")
	}
}

func TestEqualDiffersByKind(t *testing.T) {
	if Equal(Number(1), Word("1")) {
		t.Fatalf("a number and a word with the same text must not be equal")
	}
}

func TestEqualIsReflexiveSymmetricTransitive(t *testing.T) {
	a := List([]Value{Number(1), Word("a")})
	b := List([]Value{Number(1), Word("a")})
	c := List([]Value{Number(1), Word("a")})

	if !Equal(a, a) {
		t.Fatalf("Equal must be reflexive")
	}
	if Equal(a, b) != Equal(b, a) {
		t.Fatalf("Equal must be symmetric")
	}
	if Equal(a, b) && Equal(b, c) && !Equal(a, c) {
		t.Fatalf("Equal must be transitive")
	}
}

func TestDisplayFormatsIntegersWithoutDecimal(t *testing.T) {
	if got := Display(Number(5)); got != "5" {
		t.Errorf("Display(5) = %q, want %q", got, "5")
	}
	if got := Display(Number(5.5)); got != "5.5" {
		t.Errorf("Display(5.5) = %q, want %q", got, "5.5")
	}
}

func TestDisplayBracketsNestedLists(t *testing.T) {
	v := List([]Value{Number(1), List([]Value{Number(2), Number(3)}), Number(4)})
	got := Display(v)
	want := "1 [2 3] 4"
	if got != want {
		t.Errorf("Display(nested list) = %q, want %q", got, want)
	}
}

func TestBoolProducesTheWordSentinels(t *testing.T) {
	if !Bool(true).IsTrue() || Bool(true).IsFalse() {
		t.Errorf("Bool(true) must be the True word")
	}
	if !Bool(false).IsFalse() || Bool(false).IsTrue() {
		t.Errorf("Bool(false) must be the False word")
	}
	if Word("banana").IsBoolean() {
		t.Errorf("an arbitrary word must not be considered boolean")
	}
}
