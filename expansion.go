package rational

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

// digit is an element of a decimal expansion.
// It is either a decimal digit from 0 to 9 or the decimal point marker.
type digit int8

// point marks the position of the decimal point in an expansion.
const point digit = -1

func (d digit) char() byte {
	if d == point {
		return '.'
	}
	return '0' + byte(d)
}

// sigDigits returns the number of significant digits in s,
// that is the number of digits following the leading zeros.
// Decimal points in s are ignored.
func sigDigits(s []byte) int {
	n, lead := 0, true
	for _, c := range s {
		switch {
		case c == '.':
			continue
		case lead && c == '0':
			continue
		}
		lead = false
		n++
	}
	return n
}

// expander generates the decimal expansion of a non-negative fraction x / y
// by long division.
// Each step either emits the digits of an integer quotient or scales the
// remainder by 10, emitting the decimal point and zeros as needed.
// Steps are taken while fewer than prec significant digits have been emitted,
// so the integer part is never cut short.
//
// An expander cannot be restarted.
type expander struct {
	x, y    *bint  // remainder and divisor
	prec    int    // significant digit budget
	started bool   // a digit has been emitted
	pointed bool   // the decimal point has been emitted
	digits  []byte // digits emitted so far, without the decimal point
	queue   []digit
}

// newExpander returns an expander for |x| with the budget of prec
// significant digits.
func newExpander(x Rational, prec int) *expander {
	e := &expander{
		x:    new(bint),
		y:    x.denom(),
		prec: prec,
	}
	e.x.setBint(x.numer())
	return e
}

// more reports whether the expansion has another element.
func (e *expander) more() bool {
	for len(e.queue) == 0 {
		if e.x.sign() == 0 || sigDigits(e.digits) >= e.prec {
			return false
		}
		e.step()
	}
	return true
}

// next returns the next element of the expansion.
// It must only be called after more has reported true.
func (e *expander) next() digit {
	d := e.queue[0]
	e.queue = e.queue[1:]
	return d
}

func (e *expander) emit(d digit) {
	e.queue = append(e.queue, d)
	if d != point {
		e.started = true
		e.digits = append(e.digits, d.char())
	}
}

func (e *expander) step() {
	// Remainder is smaller than divisor
	if e.x.cmp(e.y) < 0 {
		if !e.pointed {
			if !e.started {
				e.emit(0)
			}
			e.emit(point)
			e.pointed = true
		}
		e.x.mul(e.x, bten)
		// Look-ahead: the next quotient digit is 0
		if e.x.cmp(e.y) < 0 {
			e.emit(0)
		}
		return
	}

	// Quotient
	q := getBint()
	defer putBint(q)
	r := getBint()
	defer putBint(r)
	q.quoRem(e.x, e.y, r)
	e.x.setBint(r)
	for _, c := range q.string() {
		e.emit(digit(c - '0'))
	}
}

// Expand returns the decimal expansion of x truncated to prec significant
// digits.
// Leading zeros of a value below 1 are not significant, and the integer part
// is always written in full:
//
//	1/3   with prec 5 → 0.33333
//	1/100 with prec 1 → 0.01
//	5/3   with prec 2 → 1.6
//	125/1 with prec 1 → 125
//
// Digits beyond the budget are dropped without rounding.
// Exact expansions end as soon as the division terminates, so 1/2 is written
// as 0.5 for any positive prec.
// With prec 0 only the integer part is written.
// The result of zero is always "0".
//
// Expand returns an error wrapping [ErrOutOfRange] if prec is negative.
func (x Rational) Expand(prec int) (string, error) {
	if prec < 0 {
		return "", fmt.Errorf("expanding %v to %v significant digit(s): %w", x, prec, ErrOutOfRange)
	}

	// Special cases
	switch {
	case x.IsZero():
		return "0", nil
	case prec == 0:
		return x.Trunc().intString(), nil
	}

	// General case
	var buf strings.Builder
	if x.neg {
		buf.WriteByte('-')
	}
	e := newExpander(x, prec)
	for e.more() {
		buf.WriteByte(e.next().char())
	}
	return buf.String(), nil
}

// intString returns the numerator of x with its sign.
func (x Rational) intString() string {
	if x.neg {
		return "-" + x.numer().string()
	}
	return x.numer().string()
}

// ParsePrecision converts a textual digit count to an int suitable for
// [Rational.Expand].
// The count may be written in any form accepted by [big.Rat.SetString],
// so "2", "2.0" and "4/2" are all accepted.
//
// ParsePrecision returns an error wrapping:
//   - [ErrInvalidArgument] if s is not an integer.
//   - [ErrOutOfRange] if s is negative or does not fit an int.
func ParsePrecision(s string) (int, error) {
	r, ok := new(big.Rat).SetString(strings.TrimSpace(s))
	if !ok || !r.IsInt() {
		return 0, fmt.Errorf("parsing digit count %q: %w", s, ErrInvalidArgument)
	}
	n := r.Num()
	if n.Sign() < 0 || !n.IsInt64() || n.Int64() > math.MaxInt {
		return 0, fmt.Errorf("parsing digit count %q: %w", s, ErrOutOfRange)
	}
	return int(n.Int64()), nil
}
