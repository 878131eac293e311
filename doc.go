/*
Package bignum implements immutable, exact decimal numbers of unbounded
magnitude and precision.
Numbers are stored in base ten, so values such as 0.1 carry no binary
rounding error.

# Representation

[Decimal] is a struct with three fields:

  - Significand: a signed [big.Int] holding all digits of the decimal.
  - Exponent: an integer power of ten applied to the significand.
    For example, a decimal with a significand of 12345 and an exponent of -2
    represents the value 123.45.
  - Undefined: a flag marking a value without numeric meaning.

The numerical value of a decimal is calculated as:

  - Significand * 10^Exponent

In this approach, the same numeric value can have multiple representations.
For example, (12, 0) and (120, -1) both represent 12.
A zero significand always has the exponent 0.

# Constraints

The precision of a decimal is limited only by available memory.
The exponent is an int.
An operation whose result needs an exponent outside the range of int
returns an undefined decimal, and [Parse] returns an error for such input.

Parsing "1E1000000000" is cheap, but adding 1 to it builds a significand
with a billion digits, and so does printing it with [Decimal.String].
Callers that accept untrusted input should bound the size of exponents.

# Conversions

The package provides methods for converting decimals:

  - from/to string:
    [Parse], [NormalizeScientific], [Decimal.String], [Decimal.ScientificString].
  - from float64:
    [NewFromFloat64] (exact, from the bit pattern),
    [NewFromFloat64Text] (from the shortest decimal text),
    [NewFromBits], [NewFromBitSlice].
  - from/to integers:
    [New], [NewFromBigInt], [Decimal.Coef], [Decimal.Exp].

# Operations

[Decimal.Add], [Decimal.Sub] and [Decimal.Mul] are always exact.

[Decimal.Quo] performs long division and stops after
[DefaultDivisionPrecision] significant digits.
The quotient is truncated, not rounded.
[Decimal.QuoPrecise] also reports whether the quotient is exact.

[Decimal.Less], [Decimal.Greater], [Decimal.LessOrEqual],
[Decimal.GreaterOrEqual] and [Decimal.Cmp] compare values, not
representations.

# Undefined values

Decoding NaN or an infinity, and dividing by zero, produce an undefined
decimal instead of an error.
An undefined decimal propagates through every arithmetic operation.
Reading the numeric state of an undefined decimal, for example with
[Decimal.Sign] or [Decimal.Cmp], returns an error wrapping [ErrInvalidState].

Ordering treats undefined decimals as follows:

	| Operands            | <, >  | <=, >= |
	| ------------------- | ----- | ------ |
	| both undefined      | false | true   |
	| one undefined       | false | false  |

# Errors

  - [ErrFormat]: a string is not a valid decimal literal.
  - [ErrNilArgument]: a required argument is nil.
  - [ErrInvalidState]: the numeric state of an undefined decimal is read.

[big.Int]: https://pkg.go.dev/math/big#Int
*/
package bignum
