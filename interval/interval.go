// Package interval implements the extended-precision interval arithmetic
// that underlies the NRA interval-constraint-propagation engine: a numeric
// domain with ±infinity, closed intervals over it, and IntervalUnion, an
// ordered, pairwise-disjoint set of intervals kept in reduced form.
package interval

import "math"

// Num is the extended-precision numeric kind from §9's "dynamic
// polymorphism across numeric kinds" note: ICP runs over floating values
// extended with ±infinity, unlike Simplex's exact rationals.
type Num = float64

// Inf and NegInf are the extended bounds.
var (
	Inf    = math.Inf(1)
	NegInf = math.Inf(-1)
)

// Interval is a closed interval [Lo, Hi] over the extended reals. Lo may
// be NegInf and Hi may be Inf. Empty is represented by Lo > Hi.
type Interval struct {
	Lo, Hi Num
}

// Empty is the canonical empty interval.
var Empty = Interval{Lo: 1, Hi: 0}

func (i Interval) IsEmpty() bool { return i.Lo > i.Hi }

// Full spans the entire extended real line.
var Full = Interval{Lo: NegInf, Hi: Inf}

// Point builds a degenerate [v,v] interval.
func Point(v Num) Interval { return Interval{Lo: v, Hi: v} }

// Diameter is Hi-Lo, or +Inf for an unbounded interval, or 0 for empty.
func (i Interval) Diameter() Num {
	if i.IsEmpty() {
		return 0
	}
	return i.Hi - i.Lo
}

// Contains reports whether v lies in the closed interval.
func (i Interval) Contains(v Num) bool {
	return !i.IsEmpty() && i.Lo <= v && v <= i.Hi
}

// Intersect returns the largest interval contained in both i and j.
func (i Interval) Intersect(j Interval) Interval {
	lo := math.Max(i.Lo, j.Lo)
	hi := math.Min(i.Hi, j.Hi)
	if lo > hi {
		return Empty
	}
	return Interval{Lo: lo, Hi: hi}
}

// Add, Sub, Mul, Div implement interval arithmetic (§4.3's numeric
// substrate). Div returns ok=false when the divisor contains 0, signaling
// the caller must apply the relation-dependent division-by-zero rule from
// §4.3's solveFor semantics rather than a bogus numeric result.
func (i Interval) Add(j Interval) Interval {
	if i.IsEmpty() || j.IsEmpty() {
		return Empty
	}
	return Interval{Lo: i.Lo + j.Lo, Hi: i.Hi + j.Hi}
}

func (i Interval) Sub(j Interval) Interval {
	if i.IsEmpty() || j.IsEmpty() {
		return Empty
	}
	return Interval{Lo: i.Lo - j.Hi, Hi: i.Hi - j.Lo}
}

func (i Interval) Neg() Interval {
	if i.IsEmpty() {
		return Empty
	}
	return Interval{Lo: -i.Hi, Hi: -i.Lo}
}

func (i Interval) Mul(j Interval) Interval {
	if i.IsEmpty() || j.IsEmpty() {
		return Empty
	}
	candidates := [4]Num{i.Lo * j.Lo, i.Lo * j.Hi, i.Hi * j.Lo, i.Hi * j.Hi}
	lo, hi := candidates[0], candidates[0]
	for _, c := range candidates[1:] {
		lo = math.Min(lo, c)
		hi = math.Max(hi, c)
	}
	return Interval{Lo: lo, Hi: hi}
}

// ContainsZero reports whether the interval contains 0.
func (i Interval) ContainsZero() bool { return i.Contains(0) }

func (i Interval) Div(j Interval) (Interval, bool) {
	if i.IsEmpty() || j.IsEmpty() {
		return Empty, true
	}
	if j.ContainsZero() {
		return Interval{}, false
	}
	inv := Interval{Lo: 1 / j.Hi, Hi: 1 / j.Lo}
	return i.Mul(inv), true
}

// Pow raises the interval to a positive integer power, accounting for
// even powers folding negative sub-ranges into non-negative results.
func (i Interval) Pow(k int) Interval {
	if i.IsEmpty() || k == 0 {
		return Point(1)
	}
	if k%2 == 1 {
		return Interval{Lo: signedPow(i.Lo, k), Hi: signedPow(i.Hi, k)}
	}
	// Even power: minimum magnitude is 0 if the interval spans it.
	a, b := math.Pow(math.Abs(i.Lo), float64(k)), math.Pow(math.Abs(i.Hi), float64(k))
	hi := math.Max(a, b)
	lo := 0.0
	if i.Lo > 0 || i.Hi < 0 {
		lo = math.Min(a, b)
	}
	return Interval{Lo: lo, Hi: hi}
}

func signedPow(v Num, k int) Num {
	sign := 1.0
	if v < 0 {
		sign = -1
	}
	return sign * math.Pow(math.Abs(v), float64(k))
}

// NthRoot computes the degree-k root closure of the interval (§4.3's
// "solveFor" degree-k root step). For even k the result may need two
// disjoint components (positive and negative root branches); that case is
// returned as an IntervalUnion by the caller (see NthRootUnion).
func (i Interval) NthRoot(k int) IntervalUnion {
	return NthRootUnion(i, k)
}
