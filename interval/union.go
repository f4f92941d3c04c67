package interval

import (
	"math"
	"sort"
)

// IntervalUnion is an ordered, pairwise-disjoint set of intervals, always
// kept in reduced form (§3, §4.3): no two stored intervals overlap or
// touch, and they're sorted ascending by Lo.
type IntervalUnion struct {
	parts []Interval
}

// MkIntervalUnion builds a reduced union from arbitrary (possibly
// overlapping or empty) input intervals.
func MkIntervalUnion(intervals ...Interval) IntervalUnion {
	return IntervalUnion{parts: reduce(intervals)}
}

// Single builds a one-interval union, or the empty union if i is empty.
func Single(i Interval) IntervalUnion { return MkIntervalUnion(i) }

// EmptyUnion is the union with no components.
var EmptyUnion = IntervalUnion{}

func (u IntervalUnion) IsEmpty() bool { return len(u.parts) == 0 }

// Parts returns the reduced components in ascending order.
func (u IntervalUnion) Parts() []Interval {
	out := make([]Interval, len(u.parts))
	copy(out, u.parts)
	return out
}

// Diameter is the sum of the component diameters, or +Inf if any is
// unbounded.
func (u IntervalUnion) Diameter() Num {
	var total Num
	for _, p := range u.parts {
		d := p.Diameter()
		if math.IsInf(d, 1) {
			return Inf
		}
		total += d
	}
	return total
}

// reduce sorts intervals by Lo, drops empties, and merges any that
// overlap or touch.
func reduce(intervals []Interval) []Interval {
	var nonEmpty []Interval
	for _, i := range intervals {
		if !i.IsEmpty() {
			nonEmpty = append(nonEmpty, i)
		}
	}
	if len(nonEmpty) == 0 {
		return nil
	}
	sort.Slice(nonEmpty, func(i, j int) bool { return nonEmpty[i].Lo < nonEmpty[j].Lo })

	merged := []Interval{nonEmpty[0]}
	for _, cur := range nonEmpty[1:] {
		last := &merged[len(merged)-1]
		if cur.Lo <= last.Hi {
			if cur.Hi > last.Hi {
				last.Hi = cur.Hi
			}
			continue
		}
		merged = append(merged, cur)
	}
	return merged
}

// Intersect intersects every component of u against every component of v
// and re-reduces, the component-wise restriction used by contraction
// (§4.3).
func (u IntervalUnion) Intersect(v IntervalUnion) IntervalUnion {
	var out []Interval
	for _, a := range u.parts {
		for _, b := range v.parts {
			if c := a.Intersect(b); !c.IsEmpty() {
				out = append(out, c)
			}
		}
	}
	return MkIntervalUnion(out...)
}

// Union merges u and v's components, re-reducing.
func (u IntervalUnion) Union(v IntervalUnion) IntervalUnion {
	return MkIntervalUnion(append(append([]Interval{}, u.parts...), v.parts...)...)
}

// Contains reports whether any component contains v.
func (u IntervalUnion) Contains(v Num) bool {
	for _, p := range u.parts {
		if p.Contains(v) {
			return true
		}
	}
	return false
}

// Bounds returns the enclosing [min Lo, max Hi] interval, or Empty if u
// has no components.
func (u IntervalUnion) Bounds() Interval {
	if u.IsEmpty() {
		return Empty
	}
	return Interval{Lo: u.parts[0].Lo, Hi: u.parts[len(u.parts)-1].Hi}
}

func apply1(u IntervalUnion, f func(Interval) Interval) IntervalUnion {
	out := make([]Interval, len(u.parts))
	for i, p := range u.parts {
		out[i] = f(p)
	}
	return MkIntervalUnion(out...)
}

func apply2(u, v IntervalUnion, f func(a, b Interval) Interval) IntervalUnion {
	var out []Interval
	for _, a := range u.parts {
		for _, b := range v.parts {
			out = append(out, f(a, b))
		}
	}
	return MkIntervalUnion(out...)
}

func (u IntervalUnion) Add(v IntervalUnion) IntervalUnion {
	return apply2(u, v, Interval.Add)
}

func (u IntervalUnion) Sub(v IntervalUnion) IntervalUnion {
	return apply2(u, v, Interval.Sub)
}

func (u IntervalUnion) Neg() IntervalUnion {
	return apply1(u, Interval.Neg)
}

func (u IntervalUnion) Mul(v IntervalUnion) IntervalUnion {
	return apply2(u, v, Interval.Mul)
}

// Div divides component-wise, dropping any pairing whose divisor contains
// zero; ok reports whether every pairing was well-defined.
func (u IntervalUnion) Div(v IntervalUnion) (IntervalUnion, bool) {
	var out []Interval
	ok := true
	for _, a := range u.parts {
		for _, b := range v.parts {
			res, defined := a.Div(b)
			if !defined {
				ok = false
				continue
			}
			out = append(out, res)
		}
	}
	return MkIntervalUnion(out...), ok
}

func (u IntervalUnion) Pow(k int) IntervalUnion {
	return apply1(u, func(i Interval) Interval { return i.Pow(k) })
}

// NthRootUnion computes the degree-k root closure (§4.3): for odd k a
// single signed-root component per input component; for even k, a
// negative and positive branch when the input includes positive values.
func NthRootUnion(i Interval, k int) IntervalUnion {
	if i.IsEmpty() || i.Hi < 0 && k%2 == 0 {
		return EmptyUnion
	}
	if k%2 == 1 {
		return Single(Interval{Lo: signedRoot(i.Lo, k), Hi: signedRoot(i.Hi, k)})
	}
	hi := i.Hi
	lo := math.Max(i.Lo, 0)
	if hi < 0 {
		return EmptyUnion
	}
	posRootHi := math.Pow(hi, 1.0/float64(k))
	posRootLo := 0.0
	if lo > 0 {
		posRootLo = math.Pow(lo, 1.0/float64(k))
	}
	pos := Interval{Lo: posRootLo, Hi: posRootHi}
	neg := Interval{Lo: -posRootHi, Hi: -posRootLo}
	return MkIntervalUnion(neg, pos)
}

// NthRoot applies the degree-k root closure component-wise and unions the
// results.
func (u IntervalUnion) NthRoot(k int) IntervalUnion {
	out := EmptyUnion
	for _, p := range u.parts {
		out = out.Union(NthRootUnion(p, k))
	}
	return out
}

func signedRoot(v Num, k int) Num {
	sign := 1.0
	if v < 0 {
		sign = -1
	}
	return sign * math.Pow(math.Abs(v), 1.0/float64(k))
}
