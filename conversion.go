package rational

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Parse converts a string to a rational.
// The input string must be in one of the following formats:
//
//	3/4
//	-3/4
//	3/-4
//	+12
//	-12/1
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '+' | '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	integer        ::= [sign] digits
//	rational       ::= integer ['/' integer]
//
// The signs of the numerator and the denominator are combined,
// so "-3/-4" is equal to 3/4.
// The result is reduced to lowest terms.
//
// Parse returns an error wrapping:
//   - [ErrSyntax] if s does not match the grammar above.
//   - [ErrDivisionByZero] if the denominator is 0.
func Parse(s string) (Rational, error) {
	ns, ds, hasden := strings.Cut(s, "/")
	p, ok := parseInt(ns)
	if !ok {
		return Rational{}, fmt.Errorf("parsing numerator of %q: %w", s, ErrSyntax)
	}
	q := newBintFromInt64(1)
	if hasden {
		q, ok = parseInt(ds)
		if !ok {
			return Rational{}, fmt.Errorf("parsing denominator of %q: %w", s, ErrSyntax)
		}
	}
	x, err := newRational(p, q)
	if err != nil {
		return Rational{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	return x, nil
}

// parseInt accepts an optionally signed sequence of decimal digits.
func parseInt(s string) (*bint, bool) {
	// Sign
	digits := s
	if len(digits) > 0 && (digits[0] == '+' || digits[0] == '-') {
		digits = digits[1:]
	}
	// Digits
	if len(digits) == 0 {
		return nil, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return nil, false
		}
	}
	z, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, false
	}
	return (*bint)(z), true
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of a rational value in the following form:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	rational       ::= [sign] digits '/' digits
//
// The denominator is always written, so 5 is "5/1" and 0 is "0/1".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (x Rational) String() string {
	var buf strings.Builder
	if x.neg {
		buf.WriteByte('-')
	}
	buf.WriteString(x.numer().string())
	buf.WriteByte('/')
	buf.WriteString(x.denom().string())
	return buf.String()
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (x *Rational) UnmarshalText(text []byte) error {
	var err error
	*x, err = Parse(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Rational.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (x Rational) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%s, %v: -3/4
//	%q:    "-3/4"
//	%f:     -0.75
//
// The %f verb writes the expansion of [Rational.Expand], with the precision
// taken as the number of significant digits (6 by default).
// The following format flags can be used with all verbs: '+', '-', '0'.
// The '0' flag only pads %f.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (x Rational) Format(state fmt.State, verb rune) {
	var body string

	// Body
	switch verb {
	case 'f', 'F':
		prec, ok := state.Precision()
		if !ok {
			prec = 6
		}
		body = x.MustExpand(prec)
	case 's', 'S', 'v', 'V', 'q', 'Q':
		body = x.String()
	default:
		fmt.Fprintf(state, "%%!%c(rational.Rational=%s)", verb, x.String())
		return
	}

	// Arithmetic sign
	sign := ""
	switch {
	case strings.HasPrefix(body, "-"):
		sign, body = "-", body[1:]
	case state.Flag('+'):
		sign = "+"
	}

	// Quotes
	lquote, tquote := "", ""
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = `"`, `"`
	}

	// Padding
	width := len(lquote) + len(sign) + len(body) + len(tquote)
	lspaces, tspaces, lzeroes := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0') && (verb == 'f' || verb == 'F'):
			lzeroes = w - width
		default:
			lspaces = w - width
		}
	}

	// Writing result
	var buf strings.Builder
	buf.WriteString(strings.Repeat(" ", lspaces))
	buf.WriteString(lquote)
	buf.WriteString(sign)
	buf.WriteString(strings.Repeat("0", lzeroes))
	buf.WriteString(body)
	buf.WriteString(tquote)
	buf.WriteString(strings.Repeat(" ", tspaces))
	fmt.Fprint(state, buf.String())
}

// NewFromDecimal returns the exact rational value of d.
// For example, 1.25 is converted to 5/4.
func NewFromDecimal(d decimal.Decimal) Rational {
	p := (*bint)(d.Coefficient())
	q := newBintFromInt64(1)
	exp := int(d.Exponent())
	switch {
	case exp > 0:
		t := getBint()
		defer putBint(t)
		t.pow10(exp)
		p.mul(p, t)
	case exp < 0:
		q.pow10(-exp)
	}
	return normalize(p, q)
}

// Decimal returns the expansion of x truncated to prec significant digits
// as a [decimal.Decimal].
// Also see method [Rational.Expand].
//
// Decimal returns an error wrapping [ErrOutOfRange] if prec is negative.
func (x Rational) Decimal(prec int) (decimal.Decimal, error) {
	s, err := x.Expand(prec)
	if err != nil {
		return decimal.Decimal{}, err
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %q: %w", s, err)
	}
	return d, nil
}
