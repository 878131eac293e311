package bignum

import (
	"fmt"
	"math/big"
	"strings"
	"unicode"
)

// Parse converts a string to an exact decimal.
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	0.000001234
//	.5
//	1.83E5
//	0.22e-9
//
// The formal EBNF grammar for the supported format is as follows:
//
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | '.' digits | digits '.' | digits | '.'
//	exponent       ::= ('e' | 'E') ['+' | '-'] digits
//	numeric-string ::= ['-'] significand [exponent]
//
// Scientific notation gives the same value as the plain notation
// returned by [NormalizeScientific], without building the padded string.
// Parse removes leading zeros and trailing zeros, so "100" is stored with
// significand 1 and exponent 2.
//
// Parse returns an error wrapping [ErrFormat] if the string is empty,
// contains whitespace, more than one decimal point, a sign in any position
// other than the first, or any other character.
// It also returns such an error if the exponent of the result does not
// fit in an int.
func Parse(s string) (Decimal, error) {
	t, err := scan(s)
	if err != nil {
		return Decimal{}, err
	}
	d := parsePlain(t.neg, t.mant)
	if !t.hasexp || d.significand().sign() == 0 {
		return d, nil
	}
	exp := big.NewInt(int64(d.exp))
	if d.exp, err = expFromBig(exp.Add(exp, t.exp)); err != nil {
		return Decimal{}, formatErrorf(s, "%v", err)
	}
	return d, nil
}

// MaxNormalizedZeros is the maximum number of zeros [NormalizeScientific]
// inserts when it moves the decimal point.
const MaxNormalizedZeros = 1 << 20

// NormalizeScientific rewrites a string in scientific notation into an
// equivalent string in plain decimal notation by moving the decimal point
// of the mantissa and padding it with zeros:
//
//	5E3     -> 5000
//	5E-3    -> 0.005
//	-1.25e1 -> -12.5
//
// Strings without an exponent are returned unchanged.
// NormalizeScientific accepts the same input as [Parse], but returns an
// error wrapping [ErrFormat] if the result would need more than
// [MaxNormalizedZeros] padding zeros.
func NormalizeScientific(s string) (string, error) {
	t, err := scan(s)
	if err != nil {
		return "", err
	}
	if !t.hasexp {
		return s, nil
	}
	return t.normalize(s)
}

// literal is a validated numeric string split into its parts.
type literal struct {
	neg    bool   // leading '-'
	mant   string // digits and at most one '.', without sign
	hasexp bool     // exponent marker present
	exp    *big.Int // exponent value, nil without exponent
}

func scan(s string) (literal, error) {
	var (
		pos    int
		width  int
		t      literal
		points int
		digits int
		epos   int
	)

	width = len(s)
	if width == 0 {
		return literal{}, formatErrorf(s, "empty string")
	}

	// Sign
	if s[pos] == '-' {
		t.neg = true
		pos++
	}
	start := pos

	// Mantissa
	for pos < width && s[pos] != 'e' && s[pos] != 'E' {
		switch c := s[pos]; {
		case c >= '0' && c <= '9':
			digits++
		case c == '.':
			points++
			if points > 1 {
				return literal{}, formatErrorf(s, "more than one decimal point")
			}
		default:
			return literal{}, invalidChar(s, pos)
		}
		pos++
	}
	t.mant = s[start:pos]
	if digits == 0 && points == 0 {
		return literal{}, formatErrorf(s, "no digits")
	}

	// Exponent
	if pos == width {
		return t, nil
	}
	t.hasexp = true
	pos++
	epos = pos
	if pos < width && (s[pos] == '-' || s[pos] == '+') {
		pos++
	}
	if pos == width {
		return literal{}, formatErrorf(s, "no exponent")
	}
	for ; pos < width; pos++ {
		if c := s[pos]; c < '0' || c > '9' {
			return literal{}, invalidChar(s, pos)
		}
	}
	exp, ok := new(big.Int).SetString(s[epos:], 10)
	if !ok {
		return literal{}, formatErrorf(s, "invalid exponent")
	}
	t.exp = exp
	return t, nil
}

func invalidChar(s string, pos int) error {
	c := rune(s[pos])
	switch {
	case unicode.IsSpace(c):
		return formatErrorf(s, "whitespace at position %v", pos)
	case c == '-' || c == '+':
		return formatErrorf(s, "misplaced sign at position %v", pos)
	case c == '.':
		return formatErrorf(s, "decimal point in exponent")
	case c == 'e' || c == 'E':
		return formatErrorf(s, "more than one exponent")
	default:
		return formatErrorf(s, "invalid character %q", c)
	}
}

// normalize moves the decimal point of the mantissa by the exponent.
func (t literal) normalize(s string) (string, error) {
	var intdigs, fracdigs string
	if point := strings.IndexByte(t.mant, '.'); point < 0 {
		intdigs = t.mant
	} else {
		intdigs, fracdigs = t.mant[:point], t.mant[point+1:]
	}
	digits := intdigs + fracdigs

	// Position of the point in digits, and the zeros needed to reach it
	pos := big.NewInt(int64(len(intdigs)))
	pos.Add(pos, t.exp)
	pad := new(big.Int)
	switch {
	case pos.Sign() <= 0:
		pad.Neg(pos)
	case pos.Cmp(big.NewInt(int64(len(digits)))) >= 0:
		pad.Sub(pos, big.NewInt(int64(len(digits))))
	}
	if pad.Cmp(big.NewInt(MaxNormalizedZeros)) > 0 {
		return "", formatErrorf(s, "more than %v zeros in plain notation", MaxNormalizedZeros)
	}
	point := int(pos.Int64()) // |pos| <= len(digits) + MaxNormalizedZeros
	zeros := strings.Repeat("0", int(pad.Int64()))

	var sb strings.Builder
	if t.neg {
		sb.WriteByte('-')
	}
	switch {
	case point <= 0:
		sb.WriteString("0.")
		sb.WriteString(zeros)
		sb.WriteString(digits)
	case point >= len(digits):
		sb.WriteString(digits)
		sb.WriteString(zeros)
	default:
		sb.WriteString(digits[:point])
		sb.WriteByte('.')
		sb.WriteString(digits[point:])
	}
	return sb.String(), nil
}

// parsePlain converts a validated unsigned plain decimal string.
func parsePlain(neg bool, mant string) Decimal {
	var d Decimal

	point := strings.IndexByte(mant, '.')
	if point < 0 {
		d = parseInteger(mant)
	} else {
		t := strings.Trim(mant, "0")
		point = strings.IndexByte(t, '.')
		switch {
		case t == ".":
			// zero
		case point == len(t)-1:
			d = parseInteger(t[:point])
		case point == 0:
			// Pure fraction
			coef := newBint()
			if !coef.setString(t[1:]) {
				coef.setInt64(0)
			}
			d = newDecimal(coef, -(len(t) - 1))
		default:
			coef := newBint()
			coef.setString(t[:point] + t[point+1:])
			d = newDecimal(coef, -(coef.prec() - point))
		}
	}

	if neg {
		return d.Neg()
	}
	return d
}

// parseInteger converts a string of digits, moving trailing zeros
// into the exponent.
func parseInteger(digits string) Decimal {
	if digits == "0" {
		return Decimal{}
	}
	trimmed := strings.TrimRight(digits, "0")
	if trimmed == "" {
		return Decimal{}
	}
	coef := newBint()
	if !coef.setString(trimmed) {
		panic(fmt.Sprintf("parseInteger(%q) failed: unexpected digits", digits)) // digits are validated by scan
	}
	return newDecimal(coef, len(digits)-len(trimmed))
}
