package translator

import "testing"

// TestMapTypeTotality checks the type-mapping totality invariant:
// every code in [0..7] maps to a non-empty name, and every code
// outside that range reports absent.
func TestMapTypeTotality(t *testing.T) {
	want := map[int]string{
		0: "i32", 1: "i16", 2: "i64", 3: "f32",
		4: "f64", 5: "char", 6: "bool", 7: "void",
	}
	for code, name := range want {
		got, ok := MapType(code)
		if !ok {
			t.Errorf("code %d: expected a mapped name, got absent", code)
		}
		if got != name {
			t.Errorf("code %d: got %q, want %q", code, got, name)
		}
	}

	for _, code := range []int{-1, 8, 100} {
		if _, ok := MapType(code); ok {
			t.Errorf("code %d: expected absent, got a mapped name", code)
		}
		if got := mapTypeOrUnknown(code); got != unknownType {
			t.Errorf("code %d: mapTypeOrUnknown = %q, want %q", code, got, unknownType)
		}
	}
}
