package rational

import "fmt"

// MustNew is like [New] but panics if the rational cannot be constructed.
// It simplifies safe initialization of global variables holding rationals.
func MustNew(num, den int64) Rational {
	x, err := New(num, den)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v, %v) failed: %v", num, den, err))
	}
	return x
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding rationals.
func MustParse(s string) Rational {
	x, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return x
}

// MustExpand is like [Rational.Expand] but panics if prec is negative.
func (x Rational) MustExpand(prec int) string {
	s, err := x.Expand(prec)
	if err != nil {
		panic(fmt.Sprintf("%v.MustExpand(%v) failed: %v", x, prec, err))
	}
	return s
}

// MustQuo is like [Rational.Quo] but panics if y is 0.
func (x Rational) MustQuo(y Rational) Rational {
	z, err := x.Quo(y)
	if err != nil {
		panic(fmt.Sprintf("%v.MustQuo(%v) failed: %v", x, y, err))
	}
	return z
}

// MustInv is like [Rational.Inv] but panics if x is 0.
func (x Rational) MustInv() Rational {
	z, err := x.Inv()
	if err != nil {
		panic(fmt.Sprintf("%v.MustInv() failed: %v", x, err))
	}
	return z
}
