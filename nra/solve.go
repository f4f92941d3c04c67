package nra

import (
	"github.com/gruhn/SMT-solver/interval"
	"github.com/gruhn/SMT-solver/poly"
)

// solveFor implements §4.3's solveFor: extract v's term, move everything
// else to the right-hand side, divide by v's coefficient (the rest of that
// term's monomial, interval-evaluated), apply the degree-k root closure,
// and flip the relation if the coefficient is strictly negative.
//
// The bool result is false only when the divisor interval contains zero
// and the relation is strict, per §4.3's rule -- in that case the caller
// must treat v's domain as empty. When the divisor contains zero under a
// non-strict or equality relation, solveFor returns target=Full (meaning
// "no constraint can be derived right now") and true.
func solveFor(c Constraint, v poly.Var, domains DomainMap) (target interval.IntervalUnion, rel Rel, ok bool) {
	terms := c.Poly.Terms()
	idx := -1
	k := 0
	for i, t := range terms {
		if e, has := t.Mono[v]; has {
			idx = i
			k = e
			break
		}
	}
	if idx == -1 {
		return interval.Single(interval.Full), c.Rel, true
	}

	term := terms[idx]
	coeffOfV := evalMonomialWithout(term, v, domains)
	rest := evalExcluding(c.Poly, idx, domains)

	divisorContainsZero := false
	for _, p := range coeffOfV.Parts() {
		if p.ContainsZero() {
			divisorContainsZero = true
		}
	}
	if coeffOfV.IsEmpty() || divisorContainsZero {
		if c.Rel.strict() {
			return interval.EmptyUnion, c.Rel, false
		}
		return interval.Single(interval.Full), c.Rel, true
	}

	numerator := interval.Single(interval.Point(0)).Sub(rest)
	quotient, divOK := numerator.Div(coeffOfV)
	if !divOK {
		if c.Rel.strict() {
			return interval.EmptyUnion, c.Rel, false
		}
		return interval.Single(interval.Full), c.Rel, true
	}

	result := quotient
	if k > 1 {
		result = quotient.NthRoot(k)
	}

	effectiveRel := c.Rel
	if allNegative(coeffOfV) {
		effectiveRel = c.Rel.flip()
	}
	return result, effectiveRel, true
}

func allNegative(u interval.IntervalUnion) bool {
	for _, p := range u.Parts() {
		if p.Hi >= 0 {
			return false
		}
	}
	return len(u.Parts()) > 0
}

// evalMonomialWithout evaluates coeff * (monomial with v's exponent
// removed), the "coefficient of v" in solveFor's sense.
func evalMonomialWithout(t poly.Term, v poly.Var, domains DomainMap) interval.IntervalUnion {
	rest := poly.Term{Coeff: t.Coeff, Mono: poly.MkMonomial(withoutVar(t.Mono, v))}
	return evalMonomial(rest, domains)
}

func withoutVar(m poly.Monomial, v poly.Var) map[poly.Var]int {
	out := make(map[poly.Var]int, len(m))
	for vv, e := range m {
		if vv != v {
			out[vv] = e
		}
	}
	return out
}

// contract restricts v's current domain using the constraint, per §4.3's
// contraction step: intersecting current bounds with the solved target
// according to the relation, and never widening.
func contract(c Constraint, v poly.Var, domains DomainMap) interval.IntervalUnion {
	cur, ok := domains[v]
	if !ok {
		cur = interval.Single(interval.Full)
	}
	target, rel, ok := solveFor(c, v, domains)
	if !ok {
		return interval.EmptyUnion
	}
	switch rel {
	case EQ:
		return cur.Intersect(target)
	case LE, LT:
		return tighten(cur, target, false)
	case GE, GT:
		return tighten(cur, target, true)
	default:
		return cur
	}
}

// tighten restricts cur to the side of target's bounding envelope the
// relation allows: lower=true keeps values >= target's min; lower=false
// keeps values <= target's max.
func tighten(cur, target interval.IntervalUnion, lower bool) interval.IntervalUnion {
	bounds := target.Bounds()
	if bounds.IsEmpty() {
		return cur
	}
	var clip interval.Interval
	if lower {
		clip = interval.Interval{Lo: bounds.Lo, Hi: interval.Inf}
	} else {
		clip = interval.Interval{Lo: interval.NegInf, Hi: bounds.Hi}
	}
	return cur.Intersect(interval.Single(clip))
}
