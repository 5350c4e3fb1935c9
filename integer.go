package rational

import (
	"fmt"
	"math/big"
	"sync"
)

// bint (Big INTeger) is a wrapper around big.Int.
type bint big.Int

var (
	bzero = newBintFromInt64(0)
	bone  = newBintFromInt64(1)
	bten  = newBintFromInt64(10)
)

func newBintFromInt64(x int64) *bint {
	return (*bint)(big.NewInt(x))
}

// newBintFromBigInt returns a copy of x.
func newBintFromBigInt(x *big.Int) *bint {
	return (*bint)(new(big.Int).Set(x))
}

// mustParseBint converts a string to *bint, panicking on error.
// Use only for package variable initialization and test code!
func mustParseBint(s string) *bint {
	z, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic(fmt.Errorf("mustParseBint(%q) failed: parsing error", s))
	}
	return (*bint)(z)
}

func (z *bint) big() *big.Int {
	return (*big.Int)(z)
}

func (z *bint) sign() int {
	return (*big.Int)(z).Sign()
}

func (z *bint) cmp(x *bint) int {
	return (*big.Int)(z).Cmp((*big.Int)(x))
}

func (z *bint) string() string {
	return (*big.Int)(z).String()
}

func (z *bint) setBint(x *bint) {
	(*big.Int)(z).Set((*big.Int)(x))
}

// add calculates z = x + y.
func (z *bint) add(x, y *bint) {
	(*big.Int)(z).Add((*big.Int)(x), (*big.Int)(y))
}

// sub calculates z = x - y.
func (z *bint) sub(x, y *bint) {
	(*big.Int)(z).Sub((*big.Int)(x), (*big.Int)(y))
}

// neg calculates z = -x.
func (z *bint) neg(x *bint) {
	(*big.Int)(z).Neg((*big.Int)(x))
}

// abs calculates z = |x|.
func (z *bint) abs(x *bint) {
	(*big.Int)(z).Abs((*big.Int)(x))
}

// mul calculates z = x * y.
func (z *bint) mul(x, y *bint) {
	(*big.Int)(z).Mul((*big.Int)(x), (*big.Int)(y))
}

// quo calculates z = x / y truncated towards zero.
func (z *bint) quo(x, y *bint) {
	// Passing r to reuse pooled memory.
	r := getBint()
	defer putBint(r)
	z.quoRem(x, y, r)
}

// quoRem calculates z = x / y truncated towards zero, r = x - y * z.
// z and r must be distinct.
func (z *bint) quoRem(x, y, r *bint) {
	(*big.Int)(z).QuoRem((*big.Int)(x), (*big.Int)(y), (*big.Int)(r))
}

// rem calculates z = x - y * (x / y).
func (z *bint) rem(x, y *bint) {
	(*big.Int)(z).Rem((*big.Int)(x), (*big.Int)(y))
}

// gcd calculates z = gcd(|x|, |y|) with the Euclidean algorithm.
// gcd(0, 0) is 0.
func (z *bint) gcd(x, y *bint) {
	a := getBint()
	defer putBint(a)
	b := getBint()
	defer putBint(b)
	r := getBint()
	defer putBint(r)
	a.abs(x)
	b.abs(y)
	for b.sign() != 0 {
		r.rem(a, b)
		a.setBint(b)
		b.setBint(r)
	}
	z.setBint(a)
}

// pow10 calculates z = 10^power.
// If power is negative, the result is unpredictable.
func (z *bint) pow10(power int) {
	(*big.Int)(z).Exp((*big.Int)(bten), big.NewInt(int64(power)), nil)
}

// prec returns length of |z| in decimal digits.
// prec assumes that 0 has no digits.
func (z *bint) prec() int {
	if z.sign() == 0 {
		return 0
	}
	s := z.string()
	if s[0] == '-' {
		return len(s) - 1
	}
	return len(s)
}

// bpool is a cache of reusable *big.Int instances.
var bpool = sync.Pool{
	New: func() any {
		return (*bint)(new(big.Int))
	},
}

// getBint obtains a *big.Int from the pool.
func getBint() *bint {
	return bpool.Get().(*bint)
}

// putBint returns the *big.Int into the pool.
func putBint(b *bint) {
	bpool.Put(b)
}
