package trilife

// Cell states are elements of the dihedral group D3, encoded as integers
// in [0,5]: values 0..2 are rotations by value*120 degrees and values
// 3..5 are the reflections paired with rotations 0..2. State 0 is the
// group identity and doubles as the dead cell.
const (
	// StateDead is the identity element and the dead cell state.
	StateDead uint8 = 0
	// NumStates is the order of the group.
	NumStates = 6

	// birthState is the state a dead cell takes when it is born. Births
	// always produce the 120-degree rotation no matter which neighbour
	// states triggered them.
	birthState uint8 = 1
)

// floorMod returns the non-negative remainder of v modulo m.
func floorMod(v, m int) int {
	return (v%m + m) % m
}

// Rotation returns the rotation component of a state.
func Rotation(s uint8) uint8 { return s % 3 }

// IsReflection reports whether a state includes a reflection.
func IsReflection(s uint8) bool { return s >= 3 }

// Combine multiplies two group elements. The product is associative with
// identity 0 but not commutative: a reflection on the left negates the
// rotation contributed by the right operand, so operand order matters.
func Combine(a, b uint8) uint8 {
	ak := int(a % 3)
	bk := int(b % 3)
	aFlip := a >= 3
	bFlip := b >= 3

	if aFlip {
		bk = -bk
	}
	k := uint8(floorMod(ak+bk, 3))
	if aFlip != bFlip {
		return k + 3
	}
	return k
}
