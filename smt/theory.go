// Package smt wires the CDCL Boolean engine to the Simplex-based LRA
// theory solver through the interoperation contract of §6: CDCL delegates
// arithmetic-literal assignments to a `check(assignments) -> SAT |
// UNSAT(conflict-clause)` function, and a conflict clause is a subset of
// the input literals that is itself LRA-unsatisfiable.
package smt

import (
	"github.com/pkg/errors"

	"github.com/gruhn/SMT-solver/sat"
	"github.com/gruhn/SMT-solver/simplex"
)

// AtomTable maps every Boolean atom variable the SAT engine can assign to
// the arithmetic constraint it stands for. A positive literal asserts the
// constraint; a negative literal asserts its negation.
type AtomTable map[sat.Var]simplex.Constraint

// NegateConstraint builds the logical negation of an inequality
// constraint. Equality atoms cannot be negated into a single linear
// constraint (not(t=b) is a disjunction, t<b or t>b) and are rejected;
// callers that need negated equalities must model them as a pair of
// inequality atoms instead (see DESIGN.md).
func NegateConstraint(c simplex.Constraint) (simplex.Constraint, error) {
	switch c.Rel {
	case simplex.LE:
		return simplex.Constraint{Term: c.Term, Rel: simplex.GT, Bound: c.Bound}, nil
	case simplex.LT:
		return simplex.Constraint{Term: c.Term, Rel: simplex.GE, Bound: c.Bound}, nil
	case simplex.GE:
		return simplex.Constraint{Term: c.Term, Rel: simplex.LT, Bound: c.Bound}, nil
	case simplex.GT:
		return simplex.Constraint{Term: c.Term, Rel: simplex.LE, Bound: c.Bound}, nil
	default:
		return simplex.Constraint{}, errors.Errorf("smt: cannot negate relation %v as a single constraint", c.Rel)
	}
}

// Theory resolves a trail of Boolean literals to arithmetic constraints
// and checks them for joint satisfiability via Simplex.
type Theory struct {
	Atoms      AtomTable
	FirstSlack simplex.Var
}

// Check implements the §6 interoperation contract. On UNSAT, the returned
// conflict is exactly the sub-trail that was fed to Simplex (every literal
// resolved to a constraint); the caller is responsible for turning it into
// a learned clause (the disjunction of each literal's negation).
func (th Theory) Check(trail []sat.Lit) (ok bool, conflict []sat.Lit, err error) {
	var constraints []simplex.Constraint
	var used []sat.Lit
	for _, lit := range trail {
		c, has := th.Atoms[lit.V]
		if !has {
			continue // purely Boolean variable, not a theory atom
		}
		if lit.Neg {
			negated, err := NegateConstraint(c)
			if err != nil {
				return false, nil, err
			}
			c = negated
		}
		constraints = append(constraints, c)
		used = append(used, lit)
	}

	if _, sat := simplex.SolveLRA(th.FirstSlack, constraints); sat {
		return true, nil, nil
	}
	return false, used, nil
}
