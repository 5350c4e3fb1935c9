package rational

import (
	"errors"
	"fmt"
	"math/big"
)

// Rational type is a representation of an exact fraction of two arbitrary-precision
// integers.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A rational is a struct with three parameters:
//
//   - Sign: a boolean indicating whether the rational is negative.
//   - Numerator: a non-negative integer.
//   - Denominator: a positive integer.
//
// Rationals are always kept in lowest terms, so every numeric value has exactly
// one representation.
// For example, 2/4 and -1/-2 are both stored as 1/2, and 0/5 is stored as 0/1.
//
// Rationals are immutable.
// All methods return new values and never modify the receiver or the arguments.
type Rational struct {
	neg bool  // indicates whether the rational is negative
	num *bint // the numerator magnitude, nil stands for 0
	den *bint // the denominator magnitude, nil stands for 1
}

var (
	// ErrDivisionByZero is returned when a rational with a zero denominator is
	// constructed or when a rational is divided by zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrInvalidArgument is returned when a digit count is not an integer.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOutOfRange is returned when a digit count is negative.
	ErrOutOfRange = errors.New("out of range")
	// ErrSyntax is returned when a string does not represent a rational.
	ErrSyntax = errors.New("invalid syntax")
)

// newRational returns p / q in lowest terms.
// It takes ownership of p and q, which must not be used by the caller afterwards.
func newRational(p, q *bint) (Rational, error) {
	if q.sign() == 0 {
		return Rational{}, ErrDivisionByZero
	}

	// Sign
	neg := false
	switch {
	case p.sign() < 0 && q.sign() < 0:
		p.neg(p)
		q.neg(q)
	case p.sign() < 0:
		neg = true
		p.neg(p)
	case q.sign() < 0:
		neg = true
		q.neg(q)
	}

	// Special case: canonical zero
	if p.sign() == 0 {
		return Rational{}, nil
	}

	// Lowest terms
	g := getBint()
	defer putBint(g)
	g.gcd(p, q)
	if g.cmp(bone) != 0 {
		p.quo(p, g)
		q.quo(q, g)
	}
	return Rational{neg: neg, num: p, den: q}, nil
}

// normalize is like newRational for a known non-zero q.
func normalize(p, q *bint) Rational {
	x, err := newRational(p, q)
	if err != nil {
		panic(fmt.Sprintf("normalize(%v, %v) failed: %v", p.string(), q.string(), err))
	}
	return x
}

// New returns a rational equal to num / den in lowest terms.
// The result is negative if exactly one of num and den is negative.
//
// New returns an error wrapping [ErrDivisionByZero] if den is 0.
func New(num, den int64) (Rational, error) {
	x, err := newRational(newBintFromInt64(num), newBintFromInt64(den))
	if err != nil {
		return Rational{}, fmt.Errorf("New(%v, %v) failed: %w", num, den, err)
	}
	return x, nil
}

// NewFromInt64 returns a rational equal to v / 1.
func NewFromInt64(v int64) Rational {
	return normalize(newBintFromInt64(v), newBintFromInt64(1))
}

// NewFromBigInt is like [New] but accepts arbitrary-precision integers.
// The arguments are copied and are not modified.
// Both arguments must be non-nil.
func NewFromBigInt(num, den *big.Int) (Rational, error) {
	x, err := newRational(newBintFromBigInt(num), newBintFromBigInt(den))
	if err != nil {
		return Rational{}, fmt.Errorf("NewFromBigInt(%v, %v) failed: %w", num, den, err)
	}
	return x, nil
}

// numer returns the numerator magnitude, which must not be modified.
func (x Rational) numer() *bint {
	if x.num == nil {
		return bzero
	}
	return x.num
}

// denom returns the denominator magnitude, which must not be modified.
func (x Rational) denom() *bint {
	if x.den == nil {
		return bone
	}
	return x.den
}

// signedNumer sets z to the numerator of x carrying the sign of x.
func (x Rational) signedNumer(z *bint) {
	z.setBint(x.numer())
	if x.neg {
		z.neg(z)
	}
}

// Num returns the numerator of x as a non-negative integer.
// The result is a copy and can be modified freely.
// Also see methods [Rational.Denom] and [Rational.Sign].
func (x Rational) Num() *big.Int {
	return new(big.Int).Set(x.numer().big())
}

// Denom returns the denominator of x, which is always positive.
// The result is a copy and can be modified freely.
func (x Rational) Denom() *big.Int {
	return new(big.Int).Set(x.denom().big())
}

// Rat returns x as a [big.Rat].
func (x Rational) Rat() *big.Rat {
	r := new(big.Rat).SetFrac(x.Num(), x.Denom())
	if x.neg {
		r.Neg(r)
	}
	return r
}

// Sign returns:
//
//	-1 if x < 0
//	 0 if x == 0
//	+1 if x > 0
func (x Rational) Sign() int {
	switch {
	case x.neg:
		return -1
	case x.IsZero():
		return 0
	default:
		return 1
	}
}

// IsNeg returns true if x < 0.
func (x Rational) IsNeg() bool {
	return x.neg
}

// IsPos returns true if x > 0.
func (x Rational) IsPos() bool {
	return !x.neg && !x.IsZero()
}

// IsZero returns true if x == 0.
func (x Rational) IsZero() bool {
	return x.numer().sign() == 0
}

// IsInt returns true if the denominator of x is 1.
func (x Rational) IsInt() bool {
	return x.denom().cmp(bone) == 0
}

// Trunc returns the integer part of x, that is x rounded towards zero.
func (x Rational) Trunc() Rational {
	if x.IsInt() {
		return x
	}
	q := new(bint)
	q.quo(x.numer(), x.denom())
	if x.neg {
		q.neg(q)
	}
	return normalize(q, newBintFromInt64(1))
}

// Neg returns x with the opposite sign.
// The negation of zero is zero.
func (x Rational) Neg() Rational {
	if x.IsZero() {
		return Rational{}
	}
	return Rational{neg: !x.neg, num: x.num, den: x.den}
}

// Abs returns the absolute value of x.
func (x Rational) Abs() Rational {
	return Rational{num: x.num, den: x.den}
}

// Add returns the exact sum x + y.
func (x Rational) Add(y Rational) Rational {
	// Special cases
	switch {
	case y.IsZero():
		return x
	case x.IsZero():
		return y
	}

	var p, q, t *bint

	// Numerator: sign(x) * x.num * y.den + sign(y) * y.num * x.den
	p = new(bint)
	x.signedNumer(p)
	p.mul(p, y.denom())
	t = getBint()
	defer putBint(t)
	y.signedNumer(t)
	t.mul(t, x.denom())
	p.add(p, t)

	// Denominator: x.den * y.den
	q = new(bint)
	q.mul(x.denom(), y.denom())

	return normalize(p, q)
}

// Sub returns the exact difference x - y.
func (x Rational) Sub(y Rational) Rational {
	return x.Add(y.Neg())
}

// Mul returns the exact product x * y.
func (x Rational) Mul(y Rational) Rational {
	// Special case
	if x.IsZero() || y.IsZero() {
		return Rational{}
	}

	var p, q *bint

	// Numerator
	p = new(bint)
	p.mul(x.numer(), y.numer())
	if x.neg != y.neg {
		p.neg(p)
	}

	// Denominator
	q = new(bint)
	q.mul(x.denom(), y.denom())

	return normalize(p, q)
}

// Quo returns the exact quotient x / y.
//
// Quo returns an error wrapping [ErrDivisionByZero] if y is 0.
func (x Rational) Quo(y Rational) (Rational, error) {
	z, err := y.Inv()
	if err != nil {
		return Rational{}, fmt.Errorf("computing [%v / %v]: %w", x, y, ErrDivisionByZero)
	}
	return x.Mul(z), nil
}

// Inv returns the reciprocal 1 / x.
//
// Inv returns an error wrapping [ErrDivisionByZero] if x is 0.
func (x Rational) Inv() (Rational, error) {
	if x.IsZero() {
		return Rational{}, fmt.Errorf("computing [1 / %v]: %w", x, ErrDivisionByZero)
	}
	// Lowest terms are preserved by swapping.
	return Rational{neg: x.neg, num: x.denom(), den: x.numer()}, nil
}

// Add returns the sum of xs.
// The sum of no rationals is 0.
func Add(xs ...Rational) Rational {
	z := Rational{}
	for _, x := range xs {
		z = z.Add(x)
	}
	return z
}

// Sub returns x minus each of ys, subtracted from left to right.
// With no ys the result is x.
func Sub(x Rational, ys ...Rational) Rational {
	z := x
	for _, y := range ys {
		z = z.Sub(y)
	}
	return z
}

// Mul returns the product of xs.
// The product of no rationals is 1.
func Mul(xs ...Rational) Rational {
	z := NewFromInt64(1)
	for _, x := range xs {
		z = z.Mul(x)
	}
	return z
}

// Cmp compares x and y numerically and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
func (x Rational) Cmp(y Rational) int {
	// Special case: different signs
	switch {
	case y.Sign() < x.Sign():
		return 1
	case x.Sign() < y.Sign():
		return -1
	}

	// General case: sign(x) * x.num * y.den <=> sign(y) * y.num * x.den
	a := getBint()
	defer putBint(a)
	b := getBint()
	defer putBint(b)
	x.signedNumer(a)
	a.mul(a, y.denom())
	y.signedNumer(b)
	b.mul(b, x.denom())
	return a.cmp(b)
}

// Equal returns true if x and y represent the same value.
// Since rationals are kept in lowest terms, it compares the representations
// without any multiplication.
func (x Rational) Equal(y Rational) bool {
	return x.neg == y.neg &&
		x.numer().cmp(y.numer()) == 0 &&
		x.denom().cmp(y.denom()) == 0
}

// Max returns the maximum of x and y.
// Also see method [Rational.Cmp].
func (x Rational) Max(y Rational) Rational {
	if x.Cmp(y) >= 0 {
		return x
	}
	return y
}

// Min returns the minimum of x and y.
// Also see method [Rational.Cmp].
func (x Rational) Min(y Rational) Rational {
	if x.Cmp(y) <= 0 {
		return x
	}
	return y
}
