// Package nra implements the interval-constraint-propagation engine for
// non-linear real arithmetic (§4.3): preprocessing that linearizes
// non-linear monomials via fresh auxiliary variables, a solveFor/
// contraction step per (constraint, variable) pair, and a weighted lazy
// candidate scheduler driving bounded-iteration fixpoint search.
package nra

import (
	"fmt"

	"github.com/gruhn/SMT-solver/interval"
	"github.com/gruhn/SMT-solver/poly"
)

// Rel is a polynomial constraint relation; the polynomial side is always
// compared against zero (p Rel 0), matching every example in §8.
type Rel int

const (
	LE Rel = iota
	LT
	EQ
	GE
	GT
)

func (r Rel) String() string {
	switch r {
	case LE:
		return "<="
	case LT:
		return "<"
	case EQ:
		return "="
	case GE:
		return ">="
	case GT:
		return ">"
	default:
		return "?"
	}
}

func (r Rel) flip() Rel {
	switch r {
	case LE:
		return GE
	case LT:
		return GT
	case GE:
		return LE
	case GT:
		return LT
	default:
		return EQ
	}
}

func (r Rel) strict() bool { return r == LT || r == GT }

// Constraint is a polynomial relation against zero (§3, §4.3).
type Constraint struct {
	Poly poly.Polynomial
	Rel  Rel
}

func (c Constraint) String() string { return fmt.Sprintf("%s %s 0", c.Poly, c.Rel) }

// DomainMap is the variable -> current-domain state ICP refines (§6).
type DomainMap map[poly.Var]interval.IntervalUnion

func (d DomainMap) clone() DomainMap {
	out := make(DomainMap, len(d))
	for v, iv := range d {
		out[v] = iv
	}
	return out
}

// IsUnsat reports whether any domain has become empty.
func (d DomainMap) IsUnsat() bool {
	for _, iv := range d {
		if iv.IsEmpty() {
			return true
		}
	}
	return false
}
