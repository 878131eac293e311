package bignum

import (
	"errors"
	"math/big"

	"fortio.org/safecast"
)

var errExponentRange = errors.New("exponent out of range")

// expFast bounds the exponents whose sum and difference fit in an int
// on every platform.
const expFast = 1 << 30

// addExp returns a + b, or an error if the sum does not fit in an int.
func addExp(a, b int) (int, error) {
	if a > -expFast && a < expFast && b > -expFast && b < expFast {
		return a + b, nil
	}
	z := new(big.Int).Add(big.NewInt(int64(a)), big.NewInt(int64(b)))
	return expFromBig(z)
}

// subExp returns a - b, or an error if the difference does not fit in an int.
func subExp(a, b int) (int, error) {
	if a > -expFast && a < expFast && b > -expFast && b < expFast {
		return a - b, nil
	}
	z := new(big.Int).Sub(big.NewInt(int64(a)), big.NewInt(int64(b)))
	return expFromBig(z)
}

// expFromBig converts an exponent computed in unbounded arithmetic.
func expFromBig(z *big.Int) (int, error) {
	if !z.IsInt64() {
		return 0, errExponentRange
	}
	exp, err := safecast.Conv[int](z.Int64())
	if err != nil {
		return 0, errExponentRange
	}
	return exp, nil
}
