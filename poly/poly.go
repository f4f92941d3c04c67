// Package poly implements the polynomial kernel (§3, §4.3): monomials,
// terms and polynomials over exact rational coefficients, with invariants
// enforced by smart constructors rather than left to callers.
package poly

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gruhn/SMT-solver/rational"
)

// Var is a variable identifier. Identifiers are dense, non-negative
// integers used as map keys throughout (§3).
type Var int

// Monomial maps variable -> strictly positive exponent. The empty monomial
// denotes the constant 1. No zero exponent is ever stored (invariant
// enforced by MkMonomial, never by direct map mutation).
type Monomial map[Var]int

// MkMonomial builds a monomial from raw exponents, dropping zero entries so
// the no-zero-exponent invariant always holds.
func MkMonomial(exponents map[Var]int) Monomial {
	m := make(Monomial, len(exponents))
	for v, e := range exponents {
		if e < 0 {
			panic("poly: negative exponent")
		}
		if e == 0 {
			continue
		}
		m[v] = e
	}
	return m
}

// Degree is the total degree (sum of exponents).
func (m Monomial) Degree() int {
	d := 0
	for _, e := range m {
		d += e
	}
	return d
}

// IsConstant reports whether m is the empty monomial (degree 0).
func (m Monomial) IsConstant() bool { return len(m) == 0 }

// Vars returns the monomial's variables in ascending order.
func (m Monomial) Vars() []Var {
	vs := make([]Var, 0, len(m))
	for v := range m {
		vs = append(vs, v)
	}
	sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })
	return vs
}

// key returns a canonical string so equal monomials compare equal as map
// keys inside a Polynomial.
func (m Monomial) key() string {
	vs := m.Vars()
	var b strings.Builder
	for _, v := range vs {
		fmt.Fprintf(&b, "%d^%d;", v, m[v])
	}
	return b.String()
}

// Mul multiplies two monomials by summing exponents.
func (m Monomial) Mul(n Monomial) Monomial {
	out := make(map[Var]int, len(m)+len(n))
	for v, e := range m {
		out[v] = e
	}
	for v, e := range n {
		out[v] += e
	}
	return MkMonomial(out)
}

func (m Monomial) String() string {
	if m.IsConstant() {
		return "1"
	}
	vs := m.Vars()
	parts := make([]string, len(vs))
	for i, v := range vs {
		if m[v] == 1 {
			parts[i] = fmt.Sprintf("x%d", v)
		} else {
			parts[i] = fmt.Sprintf("x%d^%d", v, m[v])
		}
	}
	return strings.Join(parts, "*")
}

// Term is a single (coefficient, monomial) pair. A Term with a zero
// coefficient is never constructed by mkPolynomial and is otherwise a
// programmer error to build directly.
type Term struct {
	Coeff rational.Rat
	Mono  Monomial
}

// Polynomial is a set of terms with pairwise distinct monomials and no
// zero-coefficient terms (§3). Construct with MkPolynomial, never by
// populating the slice directly.
type Polynomial struct {
	terms []Term
}

// MkPolynomial combines like monomials (summing coefficients) and drops any
// resulting zero terms, establishing the Polynomial invariants.
func MkPolynomial(terms []Term) Polynomial {
	byKey := make(map[string]Term)
	order := make([]string, 0, len(terms))
	for _, t := range terms {
		k := t.Mono.key()
		if existing, ok := byKey[k]; ok {
			existing.Coeff = existing.Coeff.Add(t.Coeff)
			byKey[k] = existing
		} else {
			byKey[k] = t
			order = append(order, k)
		}
	}
	out := make([]Term, 0, len(order))
	for _, k := range order {
		t := byKey[k]
		if !t.Coeff.IsZero() {
			out = append(out, t)
		}
	}
	return Polynomial{terms: out}
}

// Terms returns the polynomial's terms in construction order. The returned
// slice must not be mutated.
func (p Polynomial) Terms() []Term { return p.terms }

// IsEmpty reports whether the polynomial has no terms (i.e. is the zero
// polynomial). Per §7, an empty polynomial passed where a non-empty one is
// required is an invalid-input programmer error for the caller to check.
func (p Polynomial) IsEmpty() bool { return len(p.terms) == 0 }

// Add combines two polynomials.
func (p Polynomial) Add(q Polynomial) Polynomial {
	return MkPolynomial(append(append([]Term{}, p.terms...), q.terms...))
}

// Scale multiplies every term's coefficient by c.
func (p Polynomial) Scale(c rational.Rat) Polynomial {
	out := make([]Term, len(p.terms))
	for i, t := range p.terms {
		out[i] = Term{Coeff: t.Coeff.Mul(c), Mono: t.Mono}
	}
	return MkPolynomial(out)
}

// Vars returns the set of variables occurring in p, ascending.
func (p Polynomial) Vars() []Var {
	seen := make(map[Var]bool)
	for _, t := range p.terms {
		for v := range t.Mono {
			seen[v] = true
		}
	}
	vs := make([]Var, 0, len(seen))
	for v := range seen {
		vs = append(vs, v)
	}
	sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })
	return vs
}

// Degree is the maximum degree among the polynomial's monomials (0 for the
// zero polynomial or a non-zero constant).
func (p Polynomial) Degree() int {
	d := 0
	for _, t := range p.terms {
		if td := t.Mono.Degree(); td > d {
			d = td
		}
	}
	return d
}

// IsLinear reports whether every term has degree <= 1.
func (p Polynomial) IsLinear() bool { return p.Degree() <= 1 }

func (p Polynomial) String() string {
	if p.IsEmpty() {
		return "0"
	}
	parts := make([]string, len(p.terms))
	for i, t := range p.terms {
		if t.Mono.IsConstant() {
			parts[i] = t.Coeff.String()
		} else {
			parts[i] = fmt.Sprintf("%s*%s", t.Coeff, t.Mono)
		}
	}
	return strings.Join(parts, " + ")
}
