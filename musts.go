package bignum

import (
	"fmt"
	"math/big"
)

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}

// MustNewFromBigInt is like [NewFromBigInt] but panics if coef is nil.
func MustNewFromBigInt(coef *big.Int, exp int) Decimal {
	d, err := NewFromBigInt(coef, exp)
	if err != nil {
		panic(fmt.Sprintf("MustNewFromBigInt(%v, %v) failed: %v", coef, exp, err))
	}
	return d
}

// MustNewFromBitSlice is like [NewFromBitSlice] but panics if bits is nil
// or does not have exactly 64 elements.
func MustNewFromBitSlice(bits []bool) Decimal {
	d, err := NewFromBitSlice(bits)
	if err != nil {
		panic(fmt.Sprintf("MustNewFromBitSlice(%v) failed: %v", bits, err))
	}
	return d
}
