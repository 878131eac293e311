package bignum

import "fmt"

// NewFromBitSlice returns the exact decimal value of the IEEE 754
// double-precision number given as a sequence of 64 bits in little-endian
// bit order: bits[0] is the least significant fraction bit and bits[63]
// is the sign bit.
// Also see [NewFromBits].
//
// NewFromBitSlice returns an error if bits is nil or does not have
// exactly 64 elements.
func NewFromBitSlice(bits []bool) (Decimal, error) {
	if err := checkArg("NewFromBitSlice", "bits", bits == nil); err != nil {
		return Decimal{}, err
	}
	if len(bits) != 64 {
		return Decimal{}, fmt.Errorf("NewFromBitSlice: got %v bits, want 64: %w", len(bits), ErrFormat)
	}
	return NewFromBits(bitsToUint64(bits, true)), nil
}

// bitsToUint64 packs bits into an integer.
// In big-endian order bits[0] is the most significant bit, in little-endian
// order it is the least significant one.
// bits must not have more than 64 elements.
func bitsToUint64(bits []bool, littleEndian bool) uint64 {
	if littleEndian {
		bits = reverseBits(bits)
	}
	var u uint64
	for _, b := range bits {
		u <<= 1
		if b {
			u |= 1
		}
	}
	return u
}

// reverseBits returns a reversed copy of bits.
func reverseBits(bits []bool) []bool {
	r := make([]bool, len(bits))
	for i, b := range bits {
		r[len(bits)-1-i] = b
	}
	return r
}
