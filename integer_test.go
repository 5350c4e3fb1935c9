package rational

import (
	"math/big"
	"testing"
)

func TestBint_Gcd(t *testing.T) {
	tests := []struct {
		x, y, want string
	}{
		{"0", "0", "0"},
		{"0", "7", "7"},
		{"7", "0", "7"},
		{"12", "18", "6"},
		{"-12", "18", "6"},
		{"12", "-18", "6"},
		{"-12", "-18", "6"},
		{"17", "5", "1"},
		{"123456789012345678901234567890", "987654321098765432109876543210", "9000000000900000000090"},
	}
	for _, tt := range tests {
		x := mustParseBint(tt.x)
		y := mustParseBint(tt.y)
		got := new(bint)
		got.gcd(x, y)
		if got.string() != tt.want {
			t.Errorf("gcd(%v, %v) = %v, want %v", tt.x, tt.y, got.string(), tt.want)
		}
		if x.string() != tt.x || y.string() != tt.y {
			t.Errorf("gcd(%v, %v) modified its arguments", tt.x, tt.y)
		}
		want := new(big.Int).GCD(nil, nil, new(big.Int).Abs(x.big()), new(big.Int).Abs(y.big()))
		if got.big().Cmp(want) != 0 {
			t.Errorf("gcd(%v, %v) = %v, whereas big.Int.GCD gives %v", tt.x, tt.y, got.string(), want)
		}
	}
}

func TestBint_QuoRem(t *testing.T) {
	tests := []struct {
		x, y, q, r string
	}{
		{"7", "2", "3", "1"},
		{"-7", "2", "-3", "-1"},
		{"7", "-2", "-3", "1"},
		{"100000000000000000000", "3", "33333333333333333333", "1"},
	}
	for _, tt := range tests {
		x := mustParseBint(tt.x)
		y := mustParseBint(tt.y)
		q, r := new(bint), new(bint)
		q.quoRem(x, y, r)
		if q.string() != tt.q || r.string() != tt.r {
			t.Errorf("quoRem(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, q.string(), r.string(), tt.q, tt.r)
		}
	}
}

func TestBint_Prec(t *testing.T) {
	tests := []struct {
		x    string
		want int
	}{
		{"0", 0},
		{"1", 1},
		{"-9", 1},
		{"10", 2},
		{"-123456789012345678901234567890", 30},
	}
	for _, tt := range tests {
		x := mustParseBint(tt.x)
		got := x.prec()
		if got != tt.want {
			t.Errorf("mustParseBint(%q).prec() = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestBint_Pow10(t *testing.T) {
	for _, power := range []int{0, 1, 2, 19, 40} {
		z := new(bint)
		z.pow10(power)
		if z.prec() != power+1 {
			t.Errorf("10^%v has %v digit(s), want %v", power, z.prec(), power+1)
		}
	}
}
