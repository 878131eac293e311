package bignum_test

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strings"

	bignum "github.com/cjphillips/BigNum"
)

func evaluate(input string) (bignum.Decimal, error) {
	tokens, err := parseTokens(input)
	if err != nil {
		return bignum.Decimal{}, fmt.Errorf("parsing tokens: %w", err)
	}
	stack, err := processTokens(tokens)
	if err != nil {
		return bignum.Decimal{}, fmt.Errorf("processing tokens: %w", err)
	}
	if len(stack) != 1 {
		return bignum.Decimal{}, fmt.Errorf("post-processed stack contains %v, expected exactly one item", stack)
	}
	return stack[0], nil
}

func parseTokens(input string) ([]string, error) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("no tokens")
	}
	return tokens, nil
}

func processTokens(tokens []string) ([]bignum.Decimal, error) {
	stack := make([]bignum.Decimal, 0, len(tokens))
	var err error
	for _, token := range tokens {
		switch token {
		case "+", "-", "*", "/":
			stack, err = processOperator(stack, token)
		default:
			stack, err = processOperand(stack, token)
		}
		if err != nil {
			return nil, fmt.Errorf("processing token %q: %w", token, err)
		}
	}
	return stack, nil
}

func processOperator(stack []bignum.Decimal, token string) ([]bignum.Decimal, error) {
	if len(stack) < 2 {
		return nil, fmt.Errorf("not enough operands")
	}
	left := stack[len(stack)-2]
	right := stack[len(stack)-1]
	stack = stack[:len(stack)-2]
	var result bignum.Decimal
	switch token {
	case "+":
		result = left.Add(right)
	case "-":
		result = left.Sub(right)
	case "*":
		result = left.Mul(right)
	case "/":
		result = left.Quo(right)
	}
	if result.IsUndefined() {
		return nil, fmt.Errorf("evaluating \"%s %s %s\": %w", left, token, right, bignum.ErrInvalidState)
	}
	return append(stack, result), nil
}

func processOperand(stack []bignum.Decimal, token string) ([]bignum.Decimal, error) {
	d, err := bignum.Parse(token)
	if err != nil {
		return nil, err
	}
	return append(stack, d), nil
}

// This example implements a simple calculator that evaluates mathematical
// expressions written in postfix (or reverse Polish) notation.
// The calculator can handle basic arithmetic operations such as addition,
// subtraction, multiplication, and division.
func Example_postfixCalculator() {
	d, err := evaluate("1.23 4.56 + 10 *")
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	_, err = evaluate("1 0 /")
	fmt.Println(err)
	// Output:
	// 57.9
	// processing tokens: processing token "/": evaluating "1 / 0": undefined decimal
}

// This example shows how undefined values behave in comparisons.
// Two undefined values compare as equal, while an undefined value is
// neither less nor greater than a defined one.
func Example_undefined() {
	u := bignum.Undefined()
	d := bignum.MustParse("1")
	fmt.Println(u.Less(d), u.Greater(d), u.Equal(d))
	fmt.Println(u.LessOrEqual(u), u.GreaterOrEqual(u), u.Equal(u))
	fmt.Println(d.Add(u), u.Neg())
	fmt.Println(u.Cmp(d))
	// Output:
	// false false false
	// true true true
	// undefined undefined
	// 0 Cmp: undefined decimal
}

func ExampleNew() {
	fmt.Println(bignum.New(-123, -3))
	fmt.Println(bignum.New(-123, -2))
	fmt.Println(bignum.New(-123, -1))
	fmt.Println(bignum.New(-123, 0))
	fmt.Println(bignum.New(-123, 2))
	// Output:
	// -0.123
	// -1.23
	// -12.3
	// -123
	// -12300
}

func ExampleNewFromBigInt() {
	coef := big.NewInt(-123)
	fmt.Println(bignum.NewFromBigInt(coef, -2))
	fmt.Println(bignum.NewFromBigInt(nil, 0))
	// Output:
	// -1.23 <nil>
	// 0 NewFromBigInt: argument "coef": nil argument
}

func ExampleNewFromFloat64() {
	fmt.Println(bignum.NewFromFloat64(0.1))
	fmt.Println(bignum.NewFromFloat64(-2.5))
	fmt.Println(bignum.NewFromFloat64(math.NaN()))
	// Output:
	// 0.1000000000000000055511151231257827021181583404541015625
	// -2.5
	// undefined
}

func ExampleNewFromFloat64Text() {
	fmt.Println(bignum.NewFromFloat64Text(0.1))
	fmt.Println(bignum.NewFromFloat64Text(1e-7))
	// Output:
	// 0.1
	// 0.0000001
}

func ExampleNewFromBits() {
	d := bignum.NewFromBits(math.Float64bits(0.5))
	coef, _ := d.Coef()
	exp, _ := d.Exp()
	fmt.Println(coef, exp)
	fmt.Println(bignum.NewFromBits(0x7ff0000000000000))
	// Output:
	// 5 -1
	// undefined
}

func ExampleNewFromBitSlice() {
	bits := make([]bool, 64)
	// 2.0 has only the highest exponent bit set
	bits[62] = true
	fmt.Println(bignum.NewFromBitSlice(bits))
	fmt.Println(bignum.NewFromBitSlice(bits[:8]))
	// Output:
	// 2 <nil>
	// 0 NewFromBitSlice: got 8 bits, want 64: invalid decimal format
}

func ExampleParse() {
	fmt.Println(bignum.Parse("-1.23"))
	fmt.Println(bignum.Parse("1.25E2"))
	fmt.Println(bignum.Parse("0.00"))
	// Output:
	// -1.23 <nil>
	// 125 <nil>
	// 0 <nil>
}

func ExampleMustParse() {
	fmt.Println(bignum.MustParse("-1.23"))
	// Output: -1.23
}

func ExampleNormalizeScientific() {
	fmt.Println(bignum.NormalizeScientific("5E3"))
	fmt.Println(bignum.NormalizeScientific("5E-3"))
	fmt.Println(bignum.NormalizeScientific("-1.25e1"))
	// Output:
	// 5000 <nil>
	// 0.005 <nil>
	// -12.5 <nil>
}

func ExampleDecimal_String() {
	d := bignum.New(-12300, -4)
	fmt.Println(d.String())
	// Output: -1.23
}

func ExampleDecimal_ScientificString() {
	fmt.Println(bignum.MustParse("1234.5").ScientificString())
	fmt.Println(bignum.MustParse("0.005").ScientificString())
	fmt.Println(bignum.MustParse("-100").ScientificString())
	// Output:
	// 1.2345e3
	// 5.0e-3
	// -1.0e2
}

func ExampleDecimal_UnmarshalText() {
	type Object struct {
		Number bignum.Decimal `json:"number"`
	}
	var v Object
	err := json.Unmarshal([]byte(`{"number": "-15.67"}`), &v)
	fmt.Println(v, err)
	// Output: {-15.67} <nil>
}

func ExampleDecimal_MarshalText() {
	type Object struct {
		Number bignum.Decimal `json:"number"`
	}
	v := Object{
		Number: bignum.MustParse("-15.670"),
	}
	data, err := json.Marshal(v)
	fmt.Println(string(data), err)
	// Output: {"number":"-15.67"} <nil>
}

func ExampleDecimal_Scan() {
	var d bignum.Decimal
	_ = d.Scan("-15.67")
	fmt.Println(d)
	_ = d.Scan(int64(42))
	fmt.Println(d)
	// Output:
	// -15.67
	// 42
}

func ExampleDecimal_Value() {
	d := bignum.MustParse("-15.67")
	fmt.Println(d.Value())
	// Output: -15.67 <nil>
}

func ExampleDecimal_Format() {
	d := bignum.MustParse("-123.456")
	fmt.Printf("%v\n", d)
	fmt.Printf("%q\n", d)
	fmt.Printf("%e\n", d)
	fmt.Printf("%E\n", d)
	fmt.Printf("%+v\n", bignum.MustParse("5"))
	fmt.Printf("%08v\n", bignum.MustParse("-1.5"))
	fmt.Printf("%-8v|\n", bignum.MustParse("-1.5"))
	fmt.Printf("%d\n", d)
	// Output:
	// -123.456
	// "-123.456"
	// -1.23456e2
	// -1.23456E2
	// +5
	// -00001.5
	// -1.5    |
	// %!d(bignum.Decimal=-123.456)
}

func ExampleDecimal_Coef() {
	d := bignum.MustParse("-1.2300")
	fmt.Println(d.Coef())
	fmt.Println(d.Exp())
	// Output:
	// -123 <nil>
	// -2 <nil>
}

func ExampleDecimal_Prec() {
	fmt.Println(bignum.MustParse("-1.2300").Prec())
	fmt.Println(bignum.MustParse("0").Prec())
	// Output:
	// 3 <nil>
	// 0 <nil>
}

func ExampleDecimal_Reduce() {
	d := bignum.New(1200, -2)
	fmt.Println(d.Coef())
	fmt.Println(d.Reduce().Coef())
	// Output:
	// 1200 <nil>
	// 12 <nil>
}

func ExampleDecimal_Add() {
	d := bignum.MustParse("1.5")
	e := bignum.MustParse("0.25")
	fmt.Println(d.Add(e))
	// Output: 1.75
}

func ExampleDecimal_Sub() {
	d := bignum.MustParse("1.5")
	e := bignum.MustParse("2.25")
	fmt.Println(d.Sub(e))
	// Output: -0.75
}

func ExampleDecimal_Mul() {
	d := bignum.MustParse("-1.5")
	e := bignum.MustParse("2")
	fmt.Println(d.Mul(e))
	// Output: -3
}

func ExampleDecimal_Quo() {
	d := bignum.MustParse("1")
	e := bignum.MustParse("3")
	fmt.Println(d.Quo(e))
	fmt.Println(d.Quo(bignum.Decimal{}))
	// Output:
	// 0.333333333333333333333333333333
	// undefined
}

func ExampleDecimal_QuoPrecise() {
	d := bignum.MustParse("1")
	fmt.Println(d.QuoPrecise(bignum.MustParse("8")))
	fmt.Println(d.QuoPrecise(bignum.MustParse("3")))
	// Output:
	// 0.125 true
	// 0.333333333333333333333333333333 false
}

func ExampleDecimal_Cmp() {
	d := bignum.MustParse("-23")
	e := bignum.MustParse("5.67")
	fmt.Println(d.Cmp(e))
	fmt.Println(d.Cmp(d))
	fmt.Println(e.Cmp(d))
	// Output:
	// -1 <nil>
	// 0 <nil>
	// 1 <nil>
}

func ExampleDecimal_Equal() {
	d := bignum.MustParse("1.50")
	e := bignum.MustParse("15E-1")
	fmt.Println(d.Equal(e))
	// Output: true
}

func ExampleDecimal_Max() {
	d := bignum.MustParse("23")
	e := bignum.MustParse("-2")
	fmt.Println(d.Max(e))
	// Output: 23
}

func ExampleDecimal_Min() {
	d := bignum.MustParse("23")
	e := bignum.MustParse("-2")
	fmt.Println(d.Min(e))
	// Output: -2
}

func ExampleDecimal_Neg() {
	fmt.Println(bignum.MustParse("15.67").Neg())
	// Output: -15.67
}

func ExampleDecimal_Abs() {
	fmt.Println(bignum.MustParse("-15.67").Abs())
	// Output: 15.67
}

func ExampleDecimal_Sign() {
	fmt.Println(bignum.MustParse("-23").Sign())
	fmt.Println(bignum.MustParse("0").Sign())
	fmt.Println(bignum.MustParse("23").Sign())
	// Output:
	// -1 <nil>
	// 0 <nil>
	// 1 <nil>
}
