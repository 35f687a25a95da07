package entropy

import "testing"

func TestSeed_NonZero(t *testing.T) {
	for i := 0; i < 100; i++ {
		if s := Seed(); s <= 0 {
			t.Fatalf("Seed() = %d, want a positive seed", s)
		}
	}
}

func TestResolve(t *testing.T) {
	if got := Resolve(42); got != 42 {
		t.Errorf("Resolve(42) = %d, want 42", got)
	}
	if got := Resolve(0); got == 0 {
		t.Error("Resolve(0) = 0, want a drawn seed")
	}
}
