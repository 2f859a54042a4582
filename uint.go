package widerand

// Uint is an unsigned integer of some fixed bit width stored as little
// endian 32 bit words: word 0 holds bits 31:0. The most significant word
// may cover fewer than 32 bits, and its unused high bits must be zero.
type Uint []uint32

// words returns how many 32 bit words cover width bits.
func words(width int) int { return (width + 31) / 32 }

// topMask returns the mask of valid bits in the most significant word of a
// width bit integer.
func topMask(width int) uint32 {
	if rem := width % 32; rem != 0 {
		return 1<<uint(rem) - 1
	}
	return ^uint32(0)
}

// NewUint returns a zero Uint sized for width bits. The width must be
// positive.
func NewUint(width int) Uint { return make(Uint, words(width)) }

// UintFrom64 returns a Uint sized for width bits holding v. Bits of v at or
// above the width are dropped.
func UintFrom64(width int, v uint64) Uint {
	u := NewUint(width)
	for i := range u {
		u[i] = uint32(v)
		v >>= 32
	}
	u[len(u)-1] &= topMask(width)
	return u
}

// Uint64 returns the low 64 bits of u.
func (u Uint) Uint64() uint64 {
	var v uint64
	if len(u) > 0 {
		v = uint64(u[0])
	}
	if len(u) > 1 {
		v |= uint64(u[1]) << 32
	}
	return v
}

// Cmp compares u to v, which must have the same number of words. It returns
// -1, 0, or 1.
func (u Uint) Cmp(v Uint) int {
	for i := len(u) - 1; i >= 0; i-- {
		if u[i] < v[i] {
			return -1
		}
		if u[i] > v[i] {
			return 1
		}
	}
	return 0
}

// Bit returns bit i of u.
func (u Uint) Bit(i int) uint {
	return uint(u[i/32]>>(uint(i)%32)) & 1
}
