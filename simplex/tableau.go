package simplex

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/gruhn/SMT-solver/rational"
)

// Tableau is the Simplex state (§3): three mappings keyed by variable --
// basis (basic var -> linear term in non-basic vars), bounds (slack var ->
// bound(s)), assignment (every variable's current rational value) -- plus
// bookkeeping for fresh slack ids.
type Tableau struct {
	basis      map[Var]LinearTerm
	nonbasic   map[Var]bool
	bounds     map[Var]VarBounds
	assignment map[Var]rational.Rat
	nextSlack  Var
	log        *logrus.Entry
}

// Unsat is returned by Check when no assignment satisfies the tableau's
// constraints. It carries the slack variables whose rows were identically
// zero and out of bound, when that's what triggered the contradiction
// (§4.2.2's zero-row elimination step), or is empty for a contradiction
// found during the pivot loop.
type Unsat struct {
	ZeroRowSlacks []Var
}

func (Unsat) Error() string { return "simplex: unsatisfiable" }

// NewTableau builds the initial tableau from a set of constraints,
// introducing one fresh slack variable per constraint and performing
// zero-row elimination (§4.2.2 step 0) before any pivoting.
func NewTableau(firstFreeVar Var, constraints []Constraint, log *logrus.Entry) (*Tableau, error) {
	if log == nil {
		log = logrus.NewEntry(logrus.New())
	}
	t := &Tableau{
		basis:      make(map[Var]LinearTerm),
		nonbasic:   make(map[Var]bool),
		bounds:     make(map[Var]VarBounds),
		assignment: make(map[Var]rational.Rat),
		nextSlack:  firstFreeVar,
		log:        log,
	}

	origVars := make(map[Var]bool)
	for _, c := range constraints {
		for v := range c.Term {
			origVars[v] = true
		}
	}
	for v := range origVars {
		t.nonbasic[v] = true
		t.assignment[v] = rational.Zero
	}

	var zeroRowSlacks []Var
	for _, c := range constraints {
		slack := t.nextSlack
		t.nextSlack++

		bounds, err := boundsFor(c)
		if err != nil {
			return nil, err
		}
		t.bounds[slack] = bounds
		t.basis[slack] = c.Term
		val := c.Term.Eval(t.assignment)
		t.assignment[slack] = val

		if len(c.Term) == 0 {
			if lo, up := bounds.violates(val); lo || up {
				zeroRowSlacks = append(zeroRowSlacks, slack)
			}
		}
	}
	if len(zeroRowSlacks) > 0 {
		return nil, Unsat{ZeroRowSlacks: zeroRowSlacks}
	}
	// Drop the now-redundant zero rows (term is empty, bound already
	// verified satisfied) so they never participate in pivoting.
	for slack, term := range t.basis {
		if len(term) == 0 {
			delete(t.basis, slack)
			delete(t.bounds, slack)
			delete(t.assignment, slack)
		}
	}
	return t, nil
}

func boundsFor(c Constraint) (VarBounds, error) {
	switch c.Rel {
	case LE:
		return VarBounds{Upper: &RatBound{Value: c.Bound}}, nil
	case LT:
		return VarBounds{Upper: &RatBound{Value: c.Bound, Strict: true}}, nil
	case GE:
		return VarBounds{Lower: &RatBound{Value: c.Bound}}, nil
	case GT:
		return VarBounds{Lower: &RatBound{Value: c.Bound, Strict: true}}, nil
	case EQ:
		return VarBounds{
			Lower: &RatBound{Value: c.Bound},
			Upper: &RatBound{Value: c.Bound},
		}, nil
	default:
		return VarBounds{}, errors.Errorf("simplex: unknown relation %v", c.Rel)
	}
}

// violated picks the Bland's-rule leaving variable: the lowest-id basic
// variable currently violating its bound, and the direction it must move.
func (t *Tableau) violated() (v Var, mustIncrease bool, found bool) {
	ids := make([]Var, 0, len(t.basis))
	for b := range t.basis {
		ids = append(ids, b)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, b := range ids {
		val := t.assignment[b]
		bounds := t.bounds[b]
		lo, up := bounds.violates(val)
		if lo {
			return b, true, true
		}
		if up {
			return b, false, true
		}
	}
	return 0, false, false
}

// Check runs the bounded Simplex pivot loop (§4.2.2) to a fixed point:
// SAT (nil error, assignment satisfies every bound) or Unsat.
func (t *Tableau) Check() error {
	for {
		basicVar, mustIncrease, found := t.violated()
		if !found {
			return nil
		}
		row := t.basis[basicVar]
		enter, coeff, target, ok := t.pickEntering(basicVar, row, mustIncrease)
		if !ok {
			return Unsat{}
		}
		t.pivot(basicVar, row, enter, coeff, target)
	}
}

// pickEntering selects the lowest-id eligible non-basic variable in row
// per the bounded-variable Bland's rule (Dutertre & de Moura, "A Fast
// Linear-Arithmetic Solver for DPLL(T)"): for a basic variable that must
// increase, a positive-coefficient neighbor with room to grow, or a
// negative-coefficient neighbor with room to shrink; mirrored when the
// basic variable must decrease.
func (t *Tableau) pickEntering(basicVar Var, row LinearTerm, mustIncrease bool) (enter Var, coeff rational.Rat, target rational.Rat, ok bool) {
	ids := row.Vars()
	for _, n := range ids {
		c := row[n]
		if c.IsZero() {
			continue
		}
		nb := t.bounds[n]
		val := t.assignment[n]
		roomUp := nb.Upper == nil || val.Less(nb.Upper.Value)
		roomDown := nb.Lower == nil || nb.Lower.Value.Less(val)

		eligible := false
		if mustIncrease {
			eligible = (c.Sign() > 0 && roomUp) || (c.Sign() < 0 && roomDown)
		} else {
			eligible = (c.Sign() > 0 && roomDown) || (c.Sign() < 0 && roomUp)
		}
		if eligible {
			bounds := t.bounds[basicVar]
			var tgt rational.Rat
			if mustIncrease {
				tgt = bounds.Lower.Value
			} else {
				tgt = bounds.Upper.Value
			}
			return n, c, tgt, true
		}
	}
	return 0, rational.Zero, rational.Zero, false
}

// pivot moves basicVar to target by adjusting enter, then swaps their
// roles in the tableau (§4.2.2 step 3).
func (t *Tableau) pivot(basicVar Var, row LinearTerm, enter Var, coeff rational.Rat, target rational.Rat) {
	delta := target.Sub(t.assignment[basicVar])
	theta := delta.Div(coeff)

	t.assignment[basicVar] = target
	t.assignment[enter] = t.assignment[enter].Add(theta)

	for b, r := range t.basis {
		if b == basicVar {
			continue
		}
		if c, ok := r[enter]; ok {
			t.assignment[b] = t.assignment[b].Add(c.Mul(theta))
		}
	}

	// Solve row ( basicVar = row ) for enter: enter = (basicVar - rest)/coeff.
	newRow := make(LinearTerm, len(row))
	invCoeff := rational.One.Div(coeff)
	for v, c := range row {
		if v == enter {
			continue
		}
		newRow[v] = c.Mul(invCoeff).Neg()
	}
	newRow[basicVar] = invCoeff
	newRow = MkLinearTerm(newRow)

	delete(t.basis, basicVar)
	delete(t.nonbasic, enter)
	t.nonbasic[basicVar] = true
	t.basis[enter] = newRow

	// Substitute the new definition of enter into every remaining basic
	// row that still mentions it.
	for b, r := range t.basis {
		if b == enter {
			continue
		}
		c, ok := r[enter]
		if !ok {
			continue
		}
		merged := make(map[Var]rational.Rat, len(r)+len(newRow))
		for v, rc := range r {
			if v == enter {
				continue
			}
			merged[v] = merged[v].Add(rc)
		}
		for v, nc := range newRow {
			merged[v] = merged[v].Add(c.Mul(nc))
		}
		t.basis[b] = MkLinearTerm(merged)
	}

	t.log.WithFields(logrus.Fields{"leaving": basicVar, "entering": enter}).Debug("simplex: pivot")
}

// Assignment returns a snapshot of the current variable assignment.
func (t *Tableau) Assignment() map[Var]rational.Rat {
	out := make(map[Var]rational.Rat, len(t.assignment))
	for v, r := range t.assignment {
		out[v] = r
	}
	return out
}

// IsBasic reports whether v is currently a basic (row-defining) variable.
func (t *Tableau) IsBasic(v Var) bool {
	_, ok := t.basis[v]
	return ok
}

// Row returns the current row for a basic variable.
func (t *Tableau) Row(v Var) (LinearTerm, bool) {
	r, ok := t.basis[v]
	return r, ok
}

// SolveLRA is the top-level LRA entry point from §6: build the tableau,
// run the pivot loop, and report SAT/UNSAT with the assignment restricted
// to the original, non-slack variables (ids below firstFreeVar).
func SolveLRA(firstFreeVar Var, constraints []Constraint) (map[Var]rational.Rat, bool) {
	t, err := NewTableau(firstFreeVar, constraints, nil)
	if err != nil {
		return nil, false
	}
	if err := t.Check(); err != nil {
		return nil, false
	}
	out := make(map[Var]rational.Rat)
	for v, val := range t.assignment {
		if v < firstFreeVar {
			out[v] = val
		}
	}
	return out, true
}
