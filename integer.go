package bignum

import (
	"fmt"
	"math/big"
	"sync"
)

// bint (Big INTeger) is a wrapper around big.Int.
type bint big.Int

// bpow10 is a cache of powers of 10, where bpow10[x] = 10^x.
var bpow10 = func() [100]*bint {
	var cache [100]*bint
	p := big.NewInt(1)
	for i := range cache {
		cache[i] = (*bint)(new(big.Int).Set(p))
		p.Mul(p, big.NewInt(10))
	}
	return cache
}()

// mustParseBint converts a string to *big.Int, panicking on error.
// Use only for package variable initialization and test code!
func mustParseBint(s string) *bint {
	z, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic(fmt.Errorf("mustParseBint(%q) failed: parsing error", s))
	}
	return (*bint)(z)
}

func newBint() *bint {
	return (*bint)(new(big.Int))
}

// cloneBint returns a copy of x as a *bint.
func cloneBint(x *big.Int) *bint {
	return (*bint)(new(big.Int).Set(x))
}

// bigInt returns a copy of z as a *big.Int.
func (z *bint) bigInt() *big.Int {
	return new(big.Int).Set((*big.Int)(z))
}

func (z *bint) sign() int {
	return (*big.Int)(z).Sign()
}

func (z *bint) cmp(x *bint) int {
	return (*big.Int)(z).Cmp((*big.Int)(x))
}

func (z *bint) string() string {
	return (*big.Int)(z).String()
}

func (z *bint) setBint(x *bint) {
	(*big.Int)(z).Set((*big.Int)(x))
}

func (z *bint) setInt64(x int64) {
	(*big.Int)(z).SetInt64(x)
}

func (z *bint) setUint64(x uint64) {
	(*big.Int)(z).SetUint64(x)
}

// setString parses a string of decimal digits into z.
func (z *bint) setString(s string) bool {
	_, ok := (*big.Int)(z).SetString(s, 10)
	return ok
}

// add calculates z = x + y.
func (z *bint) add(x, y *bint) {
	(*big.Int)(z).Add((*big.Int)(x), (*big.Int)(y))
}

// sub calculates z = x - y.
func (z *bint) sub(x, y *bint) {
	(*big.Int)(z).Sub((*big.Int)(x), (*big.Int)(y))
}

// neg calculates z = -x.
func (z *bint) neg(x *bint) {
	(*big.Int)(z).Neg((*big.Int)(x))
}

// abs calculates z = |x|.
func (z *bint) abs(x *bint) {
	(*big.Int)(z).Abs((*big.Int)(x))
}

// mul calculates z = x * y.
func (z *bint) mul(x, y *bint) {
	(*big.Int)(z).Mul((*big.Int)(x), (*big.Int)(y))
}

// pow10 calculates z = 10^power.
// If power is negative, the result is unpredictable.
func (z *bint) pow10(power int) {
	if power < len(bpow10) {
		z.setBint(bpow10[power])
		return
	}
	(*big.Int)(z).Exp(big.NewInt(10), big.NewInt(int64(power)), nil)
}

// pow2 calculates z = 2^power.
// If power is negative, the result is unpredictable.
func (z *bint) pow2(power uint) {
	(*big.Int)(z).Lsh(big.NewInt(1), power)
}

// quoRem calculates z = x / y truncated towards zero, r = x - y * z.
func (z *bint) quoRem(x, y, r *bint) {
	(*big.Int)(z).QuoRem((*big.Int)(x), (*big.Int)(y), (*big.Int)(r))
}

// lsh (Left Shift) calculates z = x * 10^shift.
func (z *bint) lsh(x *bint, shift int) {
	if shift <= 0 {
		z.setBint(x)
		return
	}
	var y *bint
	if shift < len(bpow10) {
		y = bpow10[shift]
	} else {
		y = getBint()
		defer putBint(y)
		y.pow10(shift)
	}
	z.mul(x, y)
}

// rshDown (Right Shift) calculates z = x / 10^shift and rounds
// result towards zero.
func (z *bint) rshDown(x *bint, shift int) {
	// Special cases
	switch {
	case x.sign() == 0:
		z.setInt64(0)
		return
	case shift <= 0:
		z.setBint(x)
		return
	}
	// General case
	var y *bint
	if shift < len(bpow10) {
		y = bpow10[shift]
	} else {
		y = getBint()
		defer putBint(y)
		y.pow10(shift)
	}
	(*big.Int)(z).Quo((*big.Int)(x), (*big.Int)(y))
}

// prec returns length of |z| in decimal digits.
// prec assumes that 0 has no digits.
//
// z.prec() is significantly faster than len(z.string()),
// if z has less than len(bpow10) digits.
func (z *bint) prec() int {
	x := getBint()
	defer putBint(x)
	x.abs(z)
	// Special case
	if x.cmp(bpow10[len(bpow10)-1]) >= 0 {
		return len(x.string())
	}
	// General case
	left, right := 0, len(bpow10)
	for left < right {
		mid := (left + right) / 2
		if x.cmp(bpow10[mid]) < 0 {
			right = mid
		} else {
			left = mid + 1
		}
	}
	return left
}

// ntz returns number of trailing decimal zeros in z.
// ntz assumes that 0 has no trailing zeros.
func (z *bint) ntz() int {
	if z.sign() == 0 {
		return 0
	}
	q, r := getBint(), getBint()
	defer putBint(q)
	defer putBint(r)
	q.setBint(z)
	n := 0
	for {
		q.quoRem(q, bpow10[1], r)
		if r.sign() != 0 {
			return n
		}
		n++
	}
}

// bpool is a cache of reusable *big.Int instances.
var bpool = sync.Pool{
	New: func() any {
		return (*bint)(new(big.Int))
	},
}

// getBint obtains a *big.Int from the pool.
func getBint() *bint {
	return bpool.Get().(*bint)
}

// putBint returns the *big.Int into the pool.
func putBint(b *bint) {
	bpool.Put(b)
}
