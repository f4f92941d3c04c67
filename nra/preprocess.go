package nra

import (
	"github.com/gruhn/SMT-solver/interval"
	"github.com/gruhn/SMT-solver/poly"
	"github.com/gruhn/SMT-solver/rational"
)

// Preprocess replaces every non-linear term (coefficient x monomial with
// total degree > 1) in every constraint by a fresh variable, emitting a
// side constraint `h - coefficient*monomial = 0` and an initial domain for
// h from interval-evaluating the replaced term under the given domains
// (§4.3's preprocessing step). Fresh ids start at firstFreeVar and count
// upward.
func Preprocess(constraints []Constraint, domains DomainMap, firstFreeVar poly.Var) ([]Constraint, DomainMap) {
	next := firstFreeVar
	out := make([]Constraint, 0, len(constraints))
	doms := domains.clone()

	for _, c := range constraints {
		var newTerms []poly.Term
		for _, term := range c.Poly.Terms() {
			if term.Mono.Degree() <= 1 {
				newTerms = append(newTerms, term)
				continue
			}
			h := next
			next++

			sideConstraint := Constraint{
				Poly: poly.MkPolynomial([]poly.Term{
					{Coeff: rational.One, Mono: poly.MkMonomial(map[poly.Var]int{h: 1})},
					{Coeff: term.Coeff.Neg(), Mono: term.Mono},
				}),
				Rel: EQ,
			}
			out = append(out, sideConstraint)
			doms[h] = evalMonomial(term, doms)

			newTerms = append(newTerms, poly.Term{
				Coeff: rational.One,
				Mono:  poly.MkMonomial(map[poly.Var]int{h: 1}),
			})
		}
		out = append(out, Constraint{Poly: poly.MkPolynomial(newTerms), Rel: c.Rel})
	}
	return out, doms
}

// evalMonomial interval-evaluates coeff*monomial under the given domains.
func evalMonomial(t poly.Term, domains DomainMap) interval.IntervalUnion {
	result := interval.Single(interval.Point(t.Coeff.Float64()))
	for _, v := range t.Mono.Vars() {
		dom, ok := domains[v]
		if !ok {
			dom = interval.Single(interval.Full)
		}
		result = result.Mul(dom.Pow(t.Mono[v]))
	}
	return result
}

// evalExcluding sums the interval evaluation of every term in p except the
// one at skip.
func evalExcluding(p poly.Polynomial, skip int, domains DomainMap) interval.IntervalUnion {
	sum := interval.Single(interval.Point(0))
	for i, t := range p.Terms() {
		if i == skip {
			continue
		}
		sum = sum.Add(evalMonomial(t, domains))
	}
	return sum
}
