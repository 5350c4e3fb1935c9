/*
Package rational implements immutable exact rational numbers over
arbitrary-precision integers.
No operation of this package ever rounds a value, except for the explicit
conversion of a rational to a truncated decimal expansion.

# Representation

[Rational] is a struct with three fields:

  - Sign: a boolean indicating whether the rational is negative.
  - Numerator: a non-negative arbitrary-precision integer.
  - Denominator: a positive arbitrary-precision integer.

The numerical value of a rational is calculated as:

  - -Numerator / Denominator, if Sign is true.
  - Numerator / Denominator, if Sign is false.

Rationals are always reduced to lowest terms, that is the greatest common
divisor of the numerator and the denominator is 1.
Zero is always represented as 0/1 with a positive sign.
Consequently, every numeric value has exactly one representation,
and two rationals are equal if and only if their fields are equal.

The zero value of [Rational] is a valid 0.

# Constructors

The package provides several ways to construct rationals:

  - from a pair of integers:
    [New], [NewFromBigInt].
  - from an integer:
    [NewFromInt64].
  - from a string of the form "-3/4":
    [Parse], [Rational.UnmarshalText].
  - from a decimal:
    [NewFromDecimal].

Constructing a rational with a zero denominator fails with [ErrDivisionByZero].

# Operations

[Rational.Add], [Rational.Sub] and [Rational.Mul] produce exact results and never
fail.
[Rational.Quo] and [Rational.Inv] fail with [ErrDivisionByZero] when dividing
by zero.
The functions [Add], [Sub] and [Mul] fold any number of operands.

Comparison is exact as well: [Rational.Cmp] cross-multiplies the operands instead
of approximating them.

# Decimal expansion

[Rational.Expand] writes a rational as a decimal string computed by long
division, one digit at a time.
The number of digits is bounded by a budget of significant digits, where
leading zeros of values below 1 do not count:

	1/3   with 5 digits → 0.33333
	1/100 with 1 digit  → 0.01
	5/3   with 2 digits → 1.6

The expansion is truncated, not rounded, and the integer part is always written
in full.
*/
package rational
