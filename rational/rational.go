// Package rational provides the exact-rational numeric kernel shared by the
// Simplex and polynomial layers. It wraps math/big.Rat behind a small value
// type with the constructors and comparisons the rest of the solver needs,
// so the arithmetic cores never touch math/big directly.
package rational

import (
	"fmt"
	"math/big"
)

// Rat is an exact rational number. The zero value is 0/1 and is safe to use.
type Rat struct {
	r big.Rat
}

// Zero is the additive identity.
var Zero = Rat{}

// One is the multiplicative identity.
var One = FromInt(1)

// FromInt builds a rational from an integer.
func FromInt(n int64) Rat {
	var r Rat
	r.r.SetInt64(n)
	return r
}

// FromFrac builds num/denom. Panics if denom is zero: a zero denominator is
// a programmer error, not a representable value.
func FromFrac(num, denom int64) Rat {
	if denom == 0 {
		panic("rational: zero denominator")
	}
	var r Rat
	r.r.SetFrac64(num, denom)
	return r
}

func (a Rat) Add(b Rat) Rat {
	var r Rat
	r.r.Add(&a.r, &b.r)
	return r
}

func (a Rat) Sub(b Rat) Rat {
	var r Rat
	r.r.Sub(&a.r, &b.r)
	return r
}

func (a Rat) Mul(b Rat) Rat {
	var r Rat
	r.r.Mul(&a.r, &b.r)
	return r
}

// Div divides a by b. Panics on division by zero: callers must check
// IsZero first, as required by the Simplex pivot contract (§4.2.2).
func (a Rat) Div(b Rat) Rat {
	if b.IsZero() {
		panic("rational: division by zero")
	}
	var r Rat
	r.r.Quo(&a.r, &b.r)
	return r
}

func (a Rat) Neg() Rat {
	var r Rat
	r.r.Neg(&a.r)
	return r
}

func (a Rat) IsZero() bool { return a.r.Sign() == 0 }

func (a Rat) Sign() int { return a.r.Sign() }

// Cmp returns -1, 0, or +1 as a is less than, equal to, or greater than b.
func (a Rat) Cmp(b Rat) int { return a.r.Cmp(&b.r) }

func (a Rat) Equal(b Rat) bool { return a.Cmp(b) == 0 }

func (a Rat) Less(b Rat) bool { return a.Cmp(b) < 0 }

func (a Rat) LessEq(b Rat) bool { return a.Cmp(b) <= 0 }

func (a Rat) Greater(b Rat) bool { return a.Cmp(b) > 0 }

func (a Rat) GreaterEq(b Rat) bool { return a.Cmp(b) >= 0 }

// Min returns the smaller of a and b.
func Min(a, b Rat) Rat {
	if a.Less(b) {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b Rat) Rat {
	if a.Greater(b) {
		return a
	}
	return b
}

// Float64 converts to a float64, for use only where the ICP engine's
// extended-precision floating domain needs to seed from an exact bound.
func (a Rat) Float64() float64 {
	f, _ := a.r.Float64()
	return f
}

// Floor returns the greatest integer <= a, as a Rat.
func (a Rat) Floor() Rat {
	var q big.Int
	var m big.Int
	q.DivMod(a.r.Num(), a.r.Denom(), &m)
	var r Rat
	r.r.SetInt(&q)
	return r
}

// Ceil returns the least integer >= a, as a Rat.
func (a Rat) Ceil() Rat {
	f := a.Floor()
	if f.Equal(a) {
		return f
	}
	return f.Add(One)
}

// IsInteger reports whether a has denominator 1.
func (a Rat) IsInteger() bool {
	return a.r.IsInt()
}

func (a Rat) String() string { return a.r.RatString() }

func (a Rat) GoString() string { return fmt.Sprintf("rational.Rat(%s)", a.r.RatString()) }
