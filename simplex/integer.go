package simplex

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/gruhn/SMT-solver/rational"
)

// fractionalBasic returns the lowest-id integer-constrained basic variable
// whose current assignment is non-integral, matching Bland-style
// determinism for reproducible cut sequences.
func fractionalBasic(t *Tableau, integral map[Var]bool) (Var, bool) {
	ids := make([]Var, 0, len(t.basis))
	for v := range t.basis {
		if integral[v] {
			ids = append(ids, v)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, v := range ids {
		if !t.assignment[v].IsInteger() {
			return v, true
		}
	}
	return 0, false
}

// gomoryCut derives the fractional Gomory cut (§4.2.3) from a basic
// variable's row: for x = sum(a_j * x_j) with x's current value having
// fractional part f, the cut sum(frac(a_j) * x_j) >= f excludes the
// current fractional point while admitting every integer point reachable
// from the current basis. As is standard for the textbook derivation,
// this assumes the row's non-basic variables sit at a zero reference
// point, which holds for every non-basic variable that has not yet been
// pivoted away from its initial value (see DESIGN.md).
func gomoryCut(row LinearTerm, value rational.Rat) Constraint {
	f := fracPart(value)
	coeffs := make(map[Var]rational.Rat, len(row))
	for v, a := range row {
		fa := fracPart(a)
		if !fa.IsZero() {
			coeffs[v] = fa
		}
	}
	return Constraint{
		Term:  MkLinearTerm(coeffs),
		Rel:   GE,
		Bound: f,
	}
}

func fracPart(a rational.Rat) rational.Rat {
	return a.Sub(a.Floor())
}

// BranchAndBoundConfig configures the LIA search (§4.2.4).
type BranchAndBoundConfig struct {
	MaxGomoryCuts int // 0 means "use the default of 10"
	Log           *logrus.Entry
}

func (c BranchAndBoundConfig) withDefaults() BranchAndBoundConfig {
	if c.MaxGomoryCuts == 0 {
		c.MaxGomoryCuts = 10
	}
	if c.Log == nil {
		c.Log = logrus.NewEntry(logrus.New())
	}
	return c
}

// node is one frame of the depth-first branch-and-bound search.
type node struct {
	extra []Constraint // extra branching bounds layered on top of the base problem
}

// SolveLIA decides satisfiability of a linear constraint system over a
// declared subset of integer-valued variables (§4.2.4). It first tries
// Gomory cuts to tighten the LP relaxation, then falls back to depth-first
// branch-and-bound, splitting on the lowest-id fractional integer
// variable's floor/ceiling. Best-bound tie-breaking and termination for
// unbounded integer domains are open (§9a); this search bounds itself by
// recursion depth as a pragmatic stopgap, documented in DESIGN.md.
func SolveLIA(firstFreeVar Var, constraints []Constraint, integral map[Var]bool, cfg BranchAndBoundConfig) (map[Var]rational.Rat, bool) {
	cfg = cfg.withDefaults()
	return search(firstFreeVar, constraints, integral, cfg, 0)
}

const maxBranchDepth = 200

func search(firstFreeVar Var, constraints []Constraint, integral map[Var]bool, cfg BranchAndBoundConfig, depth int) (map[Var]rational.Rat, bool) {
	if depth > maxBranchDepth {
		return nil, false
	}

	t, err := NewTableau(firstFreeVar, constraints, cfg.Log)
	if err != nil {
		return nil, false
	}
	if err := t.Check(); err != nil {
		return nil, false
	}

	for cuts := 0; cuts < cfg.MaxGomoryCuts; cuts++ {
		fracVar, ok := fractionalBasic(t, integral)
		if !ok {
			return t.Assignment(), true
		}
		row, _ := t.Row(fracVar)
		cut := gomoryCut(row, t.assignment[fracVar])
		constraints = append(constraints, cut)

		t, err = NewTableau(firstFreeVar, constraints, cfg.Log)
		if err != nil {
			return nil, false
		}
		if err := t.Check(); err != nil {
			return nil, false
		}
	}

	fracVar, ok := fractionalBasic(t, integral)
	if !ok {
		return t.Assignment(), true
	}

	val := t.assignment[fracVar]
	row := rowAsTerm(fracVar)

	floorBound := Constraint{Term: row, Rel: LE, Bound: val.Floor()}
	ceilBound := Constraint{Term: row, Rel: GE, Bound: val.Ceil()}

	if m, ok := search(firstFreeVar, append(append([]Constraint{}, constraints...), floorBound), integral, cfg, depth+1); ok {
		return m, true
	}
	return search(firstFreeVar, append(append([]Constraint{}, constraints...), ceilBound), integral, cfg, depth+1)
}

func rowAsTerm(v Var) LinearTerm {
	return LinearTerm{v: rational.One}
}
