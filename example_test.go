package rational_test

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/govalues/rational"
	"github.com/shopspring/decimal"
)

func evaluate(input string) (rational.Rational, error) {
	tokens, err := parseTokens(input)
	if err != nil {
		return rational.Rational{}, fmt.Errorf("parsing tokens: %w", err)
	}
	stack, err := processTokens(tokens)
	if err != nil {
		return rational.Rational{}, fmt.Errorf("processing tokens: %w", err)
	}
	if len(stack) != 1 {
		return rational.Rational{}, fmt.Errorf("post-processed stack contains %v, expected exactly one item", stack)
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

func processTokens(tokens []string) ([]rational.Rational, error) {
	stack := make([]rational.Rational, 0, len(tokens))
	var err error
	for i := len(tokens) - 1; i >= 0; i-- {
		token := tokens[i]
		switch token {
		case "+", "-", "*", ":":
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

func processOperator(stack []rational.Rational, token string) ([]rational.Rational, error) {
	if len(stack) < 2 {
		return nil, fmt.Errorf("not enough operands")
	}
	right := stack[len(stack)-2]
	left := stack[len(stack)-1]
	stack = stack[:len(stack)-2]
	var result rational.Rational
	var err error
	switch token {
	case "+":
		result = left.Add(right)
	case "-":
		result = left.Sub(right)
	case "*":
		result = left.Mul(right)
	case ":":
		result, err = left.Quo(right)
	}
	if err != nil {
		return nil, fmt.Errorf("evaluating \"%s %s %s\": %w", left, token, right, err)
	}
	return append(stack, result), nil
}

func processOperand(stack []rational.Rational, token string) ([]rational.Rational, error) {
	x, err := rational.Parse(token)
	if err != nil {
		return nil, err
	}
	return append(stack, x), nil
}

// This example implements a simple calculator that evaluates mathematical
// expressions written in prefix (or Polish) notation.
// Since fractions are written with a slash, division is written as a colon.
func Example_prefixCalculator() {
	x, err := evaluate("* 10 + 1/3 1/6")
	if err != nil {
		panic(err)
	}
	fmt.Println(x)
	x, err = evaluate(": 1 - 1/2 1/3")
	if err != nil {
		panic(err)
	}
	fmt.Println(x)
	_, err = evaluate(": 1 - 1/2 1/2")
	fmt.Println(err)
	// Output:
	// 5/1
	// 6/1
	// processing token ":": evaluating "1/1 : 0/1": computing [1/1 / 0/1]: division by zero
}

func approximate(terms int) rational.Rational {
	pi := rational.Rational{}
	four := rational.MustNew(4, 1)
	for i := 0; i < terms; i++ {
		term := four.MustQuo(rational.NewFromInt64(int64(2*i + 1)))
		if i%2 == 1 {
			term = term.Neg()
		}
		pi = pi.Add(term)
	}
	return pi
}

// This example calculates an approximate value of pi using the Leibniz formula for pi.
// The Leibniz formula is an infinite series that converges to pi/4, and is
// given by the equation: 1 - 1/3 + 1/5 - 1/7 + 1/9 - 1/11 + ... = pi/4.
// Unlike floating-point arithmetic, the partial sum is computed exactly.
func Example_piApproximation() {
	pi := approximate(10)
	fmt.Println(pi)
	fmt.Println(pi.MustExpand(10))
	// Output:
	// 44257352/14549535
	// 3.041839618
}

func ExampleNew() {
	fmt.Println(rational.New(2, 4))
	fmt.Println(rational.New(-1, 2))
	fmt.Println(rational.New(1, -2))
	fmt.Println(rational.New(-1, -2))
	fmt.Println(rational.New(1, 0))
	// Output:
	// 1/2 <nil>
	// -1/2 <nil>
	// -1/2 <nil>
	// 1/2 <nil>
	// 0/1 New(1, 0) failed: division by zero
}

func ExampleMustNew() {
	fmt.Println(rational.MustNew(0, 5))
	fmt.Println(rational.MustNew(-3, 7))
	// Output:
	// 0/1
	// -3/7
}

func ExampleParse() {
	fmt.Println(rational.Parse("6/-8"))
	fmt.Println(rational.Parse("12"))
	// Output:
	// -3/4 <nil>
	// 12/1 <nil>
}

func ExampleNewFromDecimal() {
	d := decimal.RequireFromString("-1.25")
	fmt.Println(rational.NewFromDecimal(d))
	// Output:
	// -5/4
}

func ExampleRational_Add() {
	x := rational.MustNew(1, 2)
	y := rational.MustNew(1, 3)
	fmt.Println(x.Add(y))
	// Output:
	// 5/6
}

func ExampleRational_Sub() {
	x := rational.MustNew(1, 3)
	y := rational.MustNew(1, 2)
	fmt.Println(x.Sub(y))
	// Output:
	// -1/6
}

func ExampleRational_Mul() {
	x := rational.MustNew(-2, 3)
	y := rational.MustNew(3, 4)
	fmt.Println(x.Mul(y))
	// Output:
	// -1/2
}

func ExampleRational_Quo() {
	x := rational.MustNew(3, 4)
	y := rational.MustNew(2, 3)
	fmt.Println(x.Quo(y))
	// Output:
	// 9/8 <nil>
}

func ExampleAdd() {
	fmt.Println(rational.Add())
	fmt.Println(rational.Add(rational.MustNew(1, 2), rational.MustNew(1, 3), rational.MustNew(1, 6)))
	// Output:
	// 0/1
	// 1/1
}

func ExampleSub() {
	fmt.Println(rational.Sub(rational.NewFromInt64(1), rational.MustNew(1, 2), rational.MustNew(1, 3)))
	// Output:
	// 1/6
}

func ExampleMul() {
	fmt.Println(rational.Mul())
	fmt.Println(rational.Mul(rational.MustNew(2, 3), rational.MustNew(3, 4), rational.MustNew(-4, 5)))
	// Output:
	// 1/1
	// -2/5
}

func ExampleRational_Cmp() {
	x := rational.MustNew(-2, 3)
	y := rational.MustNew(-3, 5)
	fmt.Println(x.Cmp(x))
	fmt.Println(x.Cmp(y))
	fmt.Println(y.Cmp(x))
	// Output:
	// 0
	// -1
	// 1
}

func ExampleRational_Expand() {
	fmt.Println(rational.MustNew(1, 3).Expand(5))
	fmt.Println(rational.MustNew(367, 1000).Expand(3))
	fmt.Println(rational.MustNew(5, 3).Expand(2))
	fmt.Println(rational.MustNew(-1, 100).Expand(1))
	_, err := rational.MustNew(1, 3).Expand(-1)
	fmt.Println(err)
	// Output:
	// 0.33333 <nil>
	// 0.367 <nil>
	// 1.6 <nil>
	// -0.01 <nil>
	// expanding 1/3 to -1 significant digit(s): out of range
}

func ExampleParsePrecision() {
	fmt.Println(rational.ParsePrecision("5"))
	fmt.Println(rational.ParsePrecision("1.6"))
	fmt.Println(rational.ParsePrecision("-1"))
	// Output:
	// 5 <nil>
	// 0 parsing digit count "1.6": invalid argument
	// 0 parsing digit count "-1": out of range
}

func ExampleRational_Format() {
	x := rational.MustNew(-5, 3)
	fmt.Printf("%v\n", x)
	fmt.Printf("%q\n", x)
	fmt.Printf("%.4f\n", x)
	fmt.Printf("%10.2f|\n", x)
	// Output:
	// -5/3
	// "-5/3"
	// -1.666
	//       -1.6|
}

func ExampleRational_MarshalText() {
	type Share struct {
		Owner string            `json:"owner"`
		Part  rational.Rational `json:"part"`
	}
	data, _ := json.Marshal(Share{Owner: "alice", Part: rational.MustNew(2, 6)})
	fmt.Println(string(data))
	var s Share
	fmt.Println(json.Unmarshal([]byte(`{"owner":"bob","part":"-3/9"}`), &s), s.Part)
	// Output:
	// {"owner":"alice","part":"1/3"}
	// <nil> -1/3
}
