// Package simplex implements the LRA/LIA theory solver (§4.2): a
// Dantzig-style bounded-variable Simplex over exact rationals with Bland's
// rule for anti-cycling, Gomory cutting planes, branch-and-bound for
// integer variables, and a Fourier-Motzkin elimination procedure used only
// as a soundness oracle.
package simplex

import (
	"fmt"
	"sort"

	"github.com/gruhn/SMT-solver/rational"
)

// Var is a variable identifier (§3). Slack variables introduced during
// initialization are assigned ids greater than every input variable.
type Var int

// LinearTerm maps variable -> non-zero rational coefficient (§3).
type LinearTerm map[Var]rational.Rat

// MkLinearTerm drops zero coefficients, matching the "zero coefficients
// absent" invariant.
func MkLinearTerm(coeffs map[Var]rational.Rat) LinearTerm {
	t := make(LinearTerm, len(coeffs))
	for v, c := range coeffs {
		if !c.IsZero() {
			t[v] = c
		}
	}
	return t
}

// Eval evaluates the term under an assignment, treating any variable
// absent from assign as 0.
func (t LinearTerm) Eval(assign map[Var]rational.Rat) rational.Rat {
	sum := rational.Zero
	for v, c := range t {
		sum = sum.Add(c.Mul(assign[v]))
	}
	return sum
}

// Vars returns the term's variables in ascending order.
func (t LinearTerm) Vars() []Var {
	vs := make([]Var, 0, len(t))
	for v := range t {
		vs = append(vs, v)
	}
	sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })
	return vs
}

// Rel is a constraint relation (§3).
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

// Constraint is the triple (linear term, relation, rational bound) from
// §3.
type Constraint struct {
	Term  LinearTerm
	Rel   Rel
	Bound rational.Rat
}

// RatBound pairs a rational value with a strictness flag; the total order
// on (value, strictness) resolves comparisons (§4.2.2).
type RatBound struct {
	Value  rational.Rat
	Strict bool
}

// violatesUpper reports whether val fails to satisfy "val <= Value" (or
// "val < Value" when Strict).
func (b RatBound) violatesUpper(val rational.Rat) bool {
	c := val.Cmp(b.Value)
	if c > 0 {
		return true
	}
	return c == 0 && b.Strict
}

// violatesLower reports whether val fails to satisfy "val >= Value" (or
// "val > Value" when Strict).
func (b RatBound) violatesLower(val rational.Rat) bool {
	c := val.Cmp(b.Value)
	if c < 0 {
		return true
	}
	return c == 0 && b.Strict
}

// VarBounds is the optional lower/upper pair a variable (almost always a
// slack variable) may carry.
type VarBounds struct {
	Lower *RatBound
	Upper *RatBound
}

func (vb VarBounds) violates(val rational.Rat) (lower, upper bool) {
	if vb.Lower != nil && vb.Lower.violatesLower(val) {
		lower = true
	}
	if vb.Upper != nil && vb.Upper.violatesUpper(val) {
		upper = true
	}
	return
}

func (c Constraint) String() string {
	return fmt.Sprintf("%v %s %s", c.Term, c.Rel, c.Bound)
}
