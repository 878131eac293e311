package bignum

import (
	"fmt"
	"math/big"
)

// align returns significands of d and e rescaled to the smaller of
// their exponents.
// align returns an error if the exponents are too far apart for the
// rescaling factor to fit in an int.
func align(d, e Decimal) (dcoef, ecoef *bint, exp int, err error) {
	dcoef, ecoef = newBint(), newBint()
	if d.exp > e.exp {
		shift, err := subExp(d.exp, e.exp)
		if err != nil {
			return nil, nil, 0, err
		}
		dcoef.lsh(d.significand(), shift)
		ecoef.setBint(e.significand())
		return dcoef, ecoef, e.exp, nil
	}
	shift, err := subExp(e.exp, d.exp)
	if err != nil {
		return nil, nil, 0, err
	}
	dcoef.setBint(d.significand())
	ecoef.lsh(e.significand(), shift)
	return dcoef, ecoef, d.exp, nil
}

// Add returns the exact sum of d and e.
// The exponent of the sum is the smaller of the two exponents,
// unless one of them is zero: then the other operand is returned as is.
// If d or e is undefined, or the sum needs an exponent outside the range
// of int, the result is undefined.
func (d Decimal) Add(e Decimal) Decimal {
	switch {
	case d.undef || e.undef:
		return Undefined()
	case d.significand().sign() == 0:
		return e
	case e.significand().sign() == 0:
		return d
	}
	dcoef, ecoef, exp, err := align(d, e)
	if err != nil {
		return Undefined()
	}
	dcoef.add(dcoef, ecoef)
	return newDecimal(dcoef, exp)
}

// Sub returns the exact difference of d and e.
// The exponent of the difference is the smaller of the two exponents,
// unless one of them is zero: then d or -e is returned as is.
// If d or e is undefined, or the difference needs an exponent outside
// the range of int, the result is undefined.
func (d Decimal) Sub(e Decimal) Decimal {
	switch {
	case d.undef || e.undef:
		return Undefined()
	case d.significand().sign() == 0:
		return e.Neg()
	case e.significand().sign() == 0:
		return d
	}
	dcoef, ecoef, exp, err := align(d, e)
	if err != nil {
		return Undefined()
	}
	dcoef.sub(dcoef, ecoef)
	return newDecimal(dcoef, exp)
}

// Mul returns the exact product of d and e.
// If d or e is undefined, or the product needs an exponent outside the
// range of int, the result is undefined.
func (d Decimal) Mul(e Decimal) Decimal {
	switch {
	case d.undef || e.undef:
		return Undefined()
	case d.significand().sign() == 0 || e.significand().sign() == 0:
		return Decimal{}
	}
	exp, err := addExp(d.exp, e.exp)
	if err != nil {
		return Undefined()
	}
	z := newBint()
	z.mul(d.significand(), e.significand())
	return newDecimal(z, exp)
}

// Quo returns the quotient of d and e truncated to
// [DefaultDivisionPrecision] significant digits.
// The result is not rounded: 2 / 3 is 0.666666666666666666666666666666.
// If e is zero, d or e is undefined, or the quotient needs an exponent
// outside the range of int, the result is undefined.
// Also see method [Decimal.QuoPrecise].
func (d Decimal) Quo(e Decimal) Decimal {
	q, _ := quo(d, e, DefaultDivisionPrecision)
	return q
}

// QuoPrecise is like [Decimal.Quo] but also reports whether the quotient
// is exact, that is, whether the division terminated within
// [DefaultDivisionPrecision] digits.
func (d Decimal) QuoPrecise(e Decimal) (q Decimal, precise bool) {
	return quo(d, e, DefaultDivisionPrecision)
}

// quo computes d / e by long division, one decimal digit at a time,
// stopping when the remainder is zero or prec significant digits have
// been produced.
func quo(d, e Decimal, prec int) (Decimal, bool) {

	// Special cases
	switch {
	case d.undef || e.undef:
		return Undefined(), false
	case e.significand().sign() == 0:
		return Undefined(), false
	case d.significand().sign() == 0:
		return Decimal{}, true
	}

	var (
		dcoef *bint
		ecoef *bint
		q     *bint
		r     *bint
		exp   int
		frac  int
		prod  int
		err   error
	)

	dcoef = getBint()
	defer putBint(dcoef)
	ecoef = getBint()
	defer putBint(ecoef)
	dcoef.abs(d.significand())
	ecoef.abs(e.significand())

	// Integer part
	q, r = newBint(), getBint()
	defer putBint(r)
	q.quoRem(dcoef, ecoef, r)
	exp, err = subExp(d.exp, e.exp)
	if err != nil {
		return Undefined(), false
	}
	prod = q.prec()

	// Integer part longer than precision
	if prod > prec {
		cut := prod - prec
		t, y, dropped := getBint(), getBint(), getBint()
		defer putBint(t)
		defer putBint(y)
		defer putBint(dropped)
		t.setBint(q)
		y.pow10(cut)
		q.quoRem(t, y, dropped)
		if exp, err = addExp(exp, cut); err != nil {
			return Undefined(), false
		}
		return signed(q, exp, d, e), dropped.sign() == 0 && r.sign() == 0
	}

	// Fractional digits
	t, digit := getBint(), getBint()
	defer putBint(t)
	defer putBint(digit)
	for r.sign() != 0 && prod < prec {
		t.mul(r, bpow10[1])
		digit.quoRem(t, ecoef, r)
		q.mul(q, bpow10[1])
		q.add(q, digit)
		frac++
		if q.sign() != 0 {
			prod++
		}
	}
	if exp, err = subExp(exp, frac); err != nil {
		return Undefined(), false
	}

	return signed(q, exp, d, e), r.sign() == 0
}

// signed builds the quotient with the sign of d / e.
func signed(q *bint, exp int, d, e Decimal) Decimal {
	if d.significand().sign() != e.significand().sign() {
		q.neg(q)
	}
	return newDecimal(q, exp)
}

// cmp returns the sign of d - e.
// Operands of different magnitude are ordered by their adjusted exponents,
// so their difference is never built.
func (d Decimal) cmp(e Decimal) int {
	ds, es := d.significand().sign(), e.significand().sign()
	switch {
	case ds < es:
		return -1
	case ds > es:
		return 1
	case ds == 0:
		return 0
	}
	return ds * cmpAbs(d, e)
}

// cmpAbs compares |d| and |e|, both non-zero.
func cmpAbs(d, e Decimal) int {
	dadj, derr := addExp(d.exp, d.significand().prec()-1)
	eadj, eerr := addExp(e.exp, e.significand().prec()-1)
	switch {
	case derr != nil && eerr != nil:
		// Both adjusted exponents exceed math.MaxInt
	case derr != nil:
		return 1
	case eerr != nil:
		return -1
	case dadj > eadj:
		return 1
	case dadj < eadj:
		return -1
	}

	// Same adjusted exponent, so the exponents differ by less than
	// the length of the longer significand.
	dcoef, ecoef, _, err := align(d, e)
	if err != nil {
		panic(fmt.Sprintf("cmpAbs(%v, %v) failed: %v", d, e, err))
	}
	return (*big.Int)(dcoef).CmpAbs((*big.Int)(ecoef))
}

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
//
// Cmp returns an error wrapping [ErrInvalidState] if d or e is undefined.
func (d Decimal) Cmp(e Decimal) (int, error) {
	if err := checkDefined("Cmp", d, e); err != nil {
		return 0, err
	}
	return d.cmp(e), nil
}

// Less returns true if d < e.
// Less returns false if d or e is undefined.
func (d Decimal) Less(e Decimal) bool {
	if d.undef || e.undef {
		return false
	}
	return d.cmp(e) < 0
}

// Greater returns true if d > e.
// Greater returns false if d or e is undefined.
func (d Decimal) Greater(e Decimal) bool {
	if d.undef || e.undef {
		return false
	}
	return d.cmp(e) > 0
}

// LessOrEqual returns true if d <= e.
// Two undefined decimals are considered equal, whereas an undefined decimal
// is not comparable to a defined one.
func (d Decimal) LessOrEqual(e Decimal) bool {
	if d.undef || e.undef {
		return d.undef && e.undef
	}
	return d.cmp(e) <= 0
}

// GreaterOrEqual returns true if d >= e.
// Two undefined decimals are considered equal, whereas an undefined decimal
// is not comparable to a defined one.
func (d Decimal) GreaterOrEqual(e Decimal) bool {
	if d.undef || e.undef {
		return d.undef && e.undef
	}
	return d.cmp(e) >= 0
}

// Equal returns true if d and e represent the same value,
// regardless of their exponents.
// Also see methods [Decimal.LessOrEqual] and [Decimal.GreaterOrEqual].
func (d Decimal) Equal(e Decimal) bool {
	return d.LessOrEqual(e) && d.GreaterOrEqual(e)
}

// Max returns maximum of d and e.
// If d or e is undefined, the result is undefined.
func (d Decimal) Max(e Decimal) Decimal {
	if d.undef || e.undef {
		return Undefined()
	}
	if d.cmp(e) >= 0 {
		return d
	}
	return e
}

// Min returns minimum of d and e.
// If d or e is undefined, the result is undefined.
func (d Decimal) Min(e Decimal) Decimal {
	if d.undef || e.undef {
		return Undefined()
	}
	if d.cmp(e) <= 0 {
		return d
	}
	return e
}
