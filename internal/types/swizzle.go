package types

var swizzleSets = [...]string{"xyzw", "rgba", "stpq"}

// Swizzle returns the type of base.member when member is a valid swizzle:
// one component gives the scalar, two to four give a vector of that degree.
// Anything else is Void.
func Swizzle(base Type, member string) Type {
	n := len(member)
	if base.Len() == 0 || n == 0 || n > MaxDegree {
		return Void()
	}
	if !isSwizzle(member, base.Len()) {
		return Void()
	}
	if n == 1 {
		return MakeScalar(base.Scalar)
	}
	return MakeVector(uint8(n), base.Scalar)
}

// isSwizzle checks that every letter comes from the same set and addresses
// one of the first width components.
func isSwizzle(member string, width int) bool {
	for _, set := range swizzleSets {
		ok := true
		for i := 0; i < len(member); i++ {
			idx := indexByte(set, member[i])
			if idx < 0 || idx >= width {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}
