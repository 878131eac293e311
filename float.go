package bignum

import (
	"fmt"
	"math"
	"strconv"
)

// IEEE 754 double-precision layout.
const (
	float64FracBits = 52
	float64ExpBits  = 11
	float64Bias     = 1023
	float64ExpMask  = 1<<float64ExpBits - 1
	float64FracMask = 1<<float64FracBits - 1
)

// NewFromFloat64 returns the exact decimal value of f, obtained by decoding
// its IEEE 754 bit pattern with [NewFromBits].
// Every finite float64 has a terminating decimal expansion, so no digits
// are lost: 0.1 becomes
// 0.1000000000000000055511151231257827021181583404541015625.
// Both zeros decode to 0.
// If f is NaN or an infinity, the result is undefined.
// Also see [NewFromFloat64Text].
func NewFromFloat64(f float64) Decimal {
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		return Undefined()
	case f == 0:
		return Decimal{}
	}
	return NewFromBits(math.Float64bits(f))
}

// NewFromFloat64Text returns the decimal value of the shortest decimal
// string that converts back to f, as produced by [strconv.FormatFloat].
// 0.1 becomes 0.1.
// The result is only as exact as the text conversion.
// If f is NaN or an infinity, the result is undefined.
func NewFromFloat64Text(f float64) Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Undefined()
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("NewFromFloat64Text(%v) failed: %v", f, err)) // FormatFloat output is always valid
	}
	return d
}

// NewFromBits returns the exact decimal value of the IEEE 754
// double-precision number with the bit pattern u.
// Bit 63 is the sign, bits 52 to 62 are the biased exponent and bits
// 0 to 51 are the fraction.
// The result has all trailing zeros moved into the exponent, so the bits
// of 0.5 decode to significand 5 and exponent -1.
//
// A pattern with both the biased exponent and the fraction equal to zero
// decodes to 1 (or -1 with the sign bit set), not to 0.
// [NewFromFloat64] handles zeros before decoding.
//
// The expansion is exact for every finite pattern, including subnormals:
// powers of two are divided out to as many digits as they need, not to the
// [DefaultDivisionPrecision] digits of [Decimal.Quo].
//
// If u encodes NaN or an infinity, the result is undefined.
func NewFromBits(u uint64) Decimal {
	neg := u>>63 != 0
	biased := int((u >> float64FracBits) & float64ExpMask)
	frac := u & float64FracMask

	var d Decimal
	switch {
	case biased == float64ExpMask:
		return Undefined()
	case biased == 0 && frac == 0:
		d = New(1, 0)
	case biased == 0:
		// Subnormal
		d = newDecimalFromUint64(frac).Mul(pow2(1 - float64Bias - float64FracBits))
	default:
		frac |= 1 << float64FracBits
		d = newDecimalFromUint64(frac).Mul(pow2(biased - float64Bias - float64FracBits))
	}

	d = d.Reduce()
	if neg {
		return d.Neg()
	}
	return d
}

func newDecimalFromUint64(u uint64) Decimal {
	z := newBint()
	z.setUint64(u)
	return newDecimal(z, 0)
}

// pow2 returns 2^n.
// Negative powers are computed as 1 / 2^-n by long division.
// 1 / 2^k has at most k significant digits, so the quotient is exact.
func pow2(n int) Decimal {
	if n >= 0 {
		z := newBint()
		z.pow2(uint(n))
		return newDecimal(z, 0)
	}
	q, _ := quo(New(1, 0), pow2(-n), -n+1)
	return q
}
