package trilife

import "testing"

func TestCombineIdentity(t *testing.T) {
	for s := uint8(0); s < NumStates; s++ {
		if got := Combine(s, StateDead); got != s {
			t.Fatalf("Combine(%d, 0) = %d, want %d", s, got, s)
		}
		if got := Combine(StateDead, s); got != s {
			t.Fatalf("Combine(0, %d) = %d, want %d", s, got, s)
		}
	}
}

func TestCombineAssociative(t *testing.T) {
	for a := uint8(0); a < NumStates; a++ {
		for b := uint8(0); b < NumStates; b++ {
			for c := uint8(0); c < NumStates; c++ {
				left := Combine(Combine(a, b), c)
				right := Combine(a, Combine(b, c))
				if left != right {
					t.Fatalf("associativity broken for (%d,%d,%d): (ab)c=%d, a(bc)=%d", a, b, c, left, right)
				}
			}
		}
	}
}

func TestCombineNotCommutative(t *testing.T) {
	// Rotation-then-reflection and reflection-then-rotation differ.
	if got := Combine(1, 3); got != 4 {
		t.Fatalf("Combine(1, 3) = %d, want 4", got)
	}
	if got := Combine(3, 1); got != 5 {
		t.Fatalf("Combine(3, 1) = %d, want 5", got)
	}
	if Combine(1, 3) == Combine(3, 1) {
		t.Fatal("expected a non-commutative witness at (1, 3)")
	}
}

func TestCombineClosure(t *testing.T) {
	for a := uint8(0); a < NumStates; a++ {
		for b := uint8(0); b < NumStates; b++ {
			if got := Combine(a, b); got >= NumStates {
				t.Fatalf("Combine(%d, %d) = %d escapes the group", a, b, got)
			}
		}
	}
}

func TestStateDecomposition(t *testing.T) {
	for s := uint8(0); s < NumStates; s++ {
		if got := Rotation(s); got != s%3 {
			t.Fatalf("Rotation(%d) = %d, want %d", s, got, s%3)
		}
		if got := IsReflection(s); got != (s >= 3) {
			t.Fatalf("IsReflection(%d) = %v, want %v", s, got, s >= 3)
		}
	}
}

func TestFloorMod(t *testing.T) {
	cases := []struct{ v, m, want int }{
		{7, 6, 1},
		{6, 6, 0},
		{-1, 6, 5},
		{-7, 6, 5},
		{-3, 3, 0},
	}
	for _, c := range cases {
		if got := floorMod(c.v, c.m); got != c.want {
			t.Fatalf("floorMod(%d, %d) = %d, want %d", c.v, c.m, got, c.want)
		}
	}
}
