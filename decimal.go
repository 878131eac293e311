package bignum

import (
	"database/sql/driver"
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// Decimal type is a representation of an exact decimal number of unbounded
// magnitude and precision.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A decimal is a struct with three parameters:
//
//   - Significand: an arbitrary-precision signed integer holding all
//     significant digits of the decimal.
//   - Exponent: a power of ten applied to the significand.
//     For example, a decimal with a significand of 12345 and an exponent of -2
//     represents the value 123.45.
//   - Undefined: a flag marking the result of an operation that has no
//     finite value, such as decoding NaN or dividing by zero.
//
// The same numerical value can have multiple representations.
// For example, 12 can be stored as (12, 0) or as (120, -1).
// A zero significand always has the exponent 0.
type Decimal struct {
	coef  *bint // significand, nil means 0; never mutated after construction
	exp   int   // power of ten
	undef bool  // no numeric meaning when set
}

const (
	// DefaultDivisionPrecision is the maximum number of significant digits
	// produced by [Decimal.Quo].
	DefaultDivisionPrecision = 30

	undefinedToken = "undefined"
)

// bzero is a shared read-only zero significand.
var bzero = newBint()

// newDecimal takes ownership of coef.
func newDecimal(coef *bint, exp int) Decimal {
	if coef == nil || coef.sign() == 0 {
		return Decimal{}
	}
	return Decimal{coef: coef, exp: exp}
}

// New returns a decimal equal to coef * 10^exp.
func New(coef int64, exp int) Decimal {
	z := newBint()
	z.setInt64(coef)
	return newDecimal(z, exp)
}

// NewFromBigInt returns a decimal equal to coef * 10^exp.
// The decimal keeps its own copy of coef.
//
// NewFromBigInt returns an error if coef is nil.
func NewFromBigInt(coef *big.Int, exp int) (Decimal, error) {
	if err := checkArg("NewFromBigInt", "coef", coef == nil); err != nil {
		return Decimal{}, err
	}
	return newDecimal(cloneBint(coef), exp), nil
}

// Undefined returns the undefined decimal.
// All arithmetic operations on an undefined decimal produce an undefined decimal.
func Undefined() Decimal {
	return Decimal{undef: true}
}

// IsUndefined returns true if d has no numeric value.
func (d Decimal) IsUndefined() bool {
	return d.undef
}

// significand returns the significand of d for read-only use.
func (d Decimal) significand() *bint {
	if d.coef == nil {
		return bzero
	}
	return d.coef
}

// Coef returns a copy of the significand of d.
func (d Decimal) Coef() (*big.Int, error) {
	if err := checkDefined("Coef", d); err != nil {
		return nil, err
	}
	return d.significand().bigInt(), nil
}

// Exp returns the power of ten applied to the significand of d.
func (d Decimal) Exp() (int, error) {
	if err := checkDefined("Exp", d); err != nil {
		return 0, err
	}
	return d.exp, nil
}

// Prec returns number of digits in the significand.
// Prec returns 0 for a zero decimal.
func (d Decimal) Prec() (int, error) {
	if err := checkDefined("Prec", d); err != nil {
		return 0, err
	}
	return d.significand().prec(), nil
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d == 0
//	+1 if d > 0
func (d Decimal) Sign() (int, error) {
	if err := checkDefined("Sign", d); err != nil {
		return 0, err
	}
	return d.significand().sign(), nil
}

// IsZero returns true if d == 0.
func (d Decimal) IsZero() (bool, error) {
	s, err := d.Sign()
	return s == 0, err
}

// IsNeg returns true if d < 0.
func (d Decimal) IsNeg() (bool, error) {
	s, err := d.Sign()
	return s < 0, err
}

// IsPos returns true if d > 0.
func (d Decimal) IsPos() (bool, error) {
	s, err := d.Sign()
	return s > 0, err
}

// Neg returns d with opposite sign.
func (d Decimal) Neg() Decimal {
	if d.undef {
		return Undefined()
	}
	z := newBint()
	z.neg(d.significand())
	return newDecimal(z, d.exp)
}

// Abs returns absolute value of d.
func (d Decimal) Abs() Decimal {
	if d.undef {
		return Undefined()
	}
	z := newBint()
	z.abs(d.significand())
	return newDecimal(z, d.exp)
}

// Reduce returns d with all trailing zeros of the significand moved into
// the exponent.
// Zeros that would push the exponent past [math.MaxInt] stay in the
// significand.
func (d Decimal) Reduce() Decimal {
	if d.undef {
		return Undefined()
	}
	n := d.significand().ntz()
	exp, err := addExp(d.exp, n)
	if err != nil {
		// Move only as many zeros as the exponent can take
		n = math.MaxInt - d.exp
		exp = math.MaxInt
	}
	if n == 0 {
		return d
	}
	z := newBint()
	z.rshDown(d.significand(), n)
	return newDecimal(z, exp)
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of a decimal value.
// The returned string does not use scientific notation.
// Trailing zeros after the decimal point are removed, so "1.50" is
// returned as "1.5" and "2.0" as "2".
// An undefined decimal is returned as "undefined".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {
	switch {
	case d.undef:
		return undefinedToken
	case d.significand().sign() == 0:
		return "0"
	}

	coef := d.significand()
	digits := coef.string()
	neg := coef.sign() < 0
	if neg {
		digits = digits[1:]
	}

	buf := make([]byte, 0, len(digits)+2)
	if neg {
		buf = append(buf, '-')
	}

	// Integer
	if d.exp >= 0 {
		buf = append(buf, digits...)
		for i := 0; i < d.exp; i++ {
			buf = append(buf, '0')
		}
		return string(buf)
	}

	// Fraction
	fracdigs := -d.exp
	if fracdigs >= len(digits) {
		buf = append(buf, '0', '.')
		for i := len(digits); i < fracdigs; i++ {
			buf = append(buf, '0')
		}
		buf = append(buf, digits...)
	} else {
		buf = append(buf, digits[:len(digits)-fracdigs]...)
		buf = append(buf, '.')
		buf = append(buf, digits[len(digits)-fracdigs:]...)
	}

	// Trailing zeros
	for buf[len(buf)-1] == '0' {
		buf = buf[:len(buf)-1]
	}
	if buf[len(buf)-1] == '.' {
		buf = buf[:len(buf)-1]
	}
	return string(buf)
}

// ScientificString returns a string representation of a decimal value in
// scientific notation: the first digit of the significand, a decimal point,
// the remaining digits, and the power of ten, for example "1.25e2".
// A significand with a single digit is written with a ".0" fraction.
// An undefined decimal is returned as "undefined".
func (d Decimal) ScientificString() string {
	if d.undef {
		return undefinedToken
	}
	coef := d.significand()
	if coef.sign() == 0 {
		return "0.0e0"
	}

	digits := coef.string()
	neg := coef.sign() < 0
	if neg {
		digits = digits[1:]
	}
	rest := digits[1:]
	if rest == "" {
		rest = "0"
	}

	buf := make([]byte, 0, len(digits)+8)
	if neg {
		buf = append(buf, '-')
	}
	buf = append(buf, digits[0], '.')
	buf = append(buf, rest...)
	buf = append(buf, 'e')
	if adj, err := addExp(d.exp, len(digits)-1); err == nil {
		buf = strconv.AppendInt(buf, int64(adj), 10)
	} else {
		adj := big.NewInt(int64(d.exp))
		adj.Add(adj, big.NewInt(int64(len(digits)-1)))
		buf = adj.Append(buf, 10)
	}
	return string(buf)
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Besides the formats accepted by [Parse], it accepts "undefined".
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Decimal) UnmarshalText(text []byte) error {
	if string(text) == undefinedToken {
		*d = Undefined()
		return nil
	}
	var err error
	*d, err = Parse(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Decimal.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Scan implements the [sql.Scanner] interface.
// It accepts strings and byte slices in the formats of [Decimal.UnmarshalText],
// float64 values (decoded with [NewFromFloat64]) and int64 values.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (d *Decimal) Scan(value any) error {
	switch value := value.(type) {
	case nil:
		return checkArg("Scan", "value", true)
	case string:
		return d.UnmarshalText([]byte(value))
	case []byte:
		return d.UnmarshalText(value)
	case float64:
		*d = NewFromFloat64(value)
		return nil
	case int64:
		*d = New(value, 0)
		return nil
	default:
		return fmt.Errorf("failed to convert from %T to %T: %w", value, Decimal{}, ErrFormat)
	}
}

// Value implements the [driver.Valuer] interface.
// The value is the string returned by [Decimal.String].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (d Decimal) Value() (driver.Value, error) {
	return d.String(), nil
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%s, %v: -123.456
//	%q:    "-123.456"
//	%e:     -1.23456e2
//	%E:     -1.23456E2
//
// The following format flags can be used with all verbs: '+', '0', '-'.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (d Decimal) Format(state fmt.State, verb rune) {

	// Body
	var body string
	switch verb {
	case 'e':
		body = d.ScientificString()
	case 'E':
		body = d.ScientificString()
		if !d.undef {
			body = string(toUpperE([]byte(body)))
		}
	default:
		body = d.String()
	}

	// Arithmetic sign
	rsign := ""
	switch {
	case d.undef:
	case body[0] == '-':
		rsign, body = "-", body[1:]
	case state.Flag('+'):
		rsign = "+"
	}

	// Quotes
	lquote, tquote := "", ""
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = `"`, `"`
	}

	// Padding
	width := len(lquote) + len(rsign) + len(body) + len(tquote)
	lspaces, tspaces, lzeroes := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0') && !d.undef && lquote == "":
			lzeroes = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	// Writing buffer
	buf := make([]byte, 0, width)
	buf = appendRepeat(buf, ' ', lspaces)
	buf = append(buf, lquote...)
	buf = append(buf, rsign...)
	buf = appendRepeat(buf, '0', lzeroes)
	buf = append(buf, body...)
	buf = append(buf, tquote...)
	buf = appendRepeat(buf, ' ', tspaces)

	// Writing result
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'e', 'E':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(bignum.Decimal="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

func appendRepeat(buf []byte, b byte, n int) []byte {
	for i := 0; i < n; i++ {
		buf = append(buf, b)
	}
	return buf
}

func toUpperE(buf []byte) []byte {
	for i, b := range buf {
		if b == 'e' {
			buf[i] = 'E'
		}
	}
	return buf
}
