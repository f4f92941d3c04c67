package smt

import (
	"github.com/sirupsen/logrus"

	"github.com/gruhn/SMT-solver/rational"
	"github.com/gruhn/SMT-solver/sat"
	"github.com/gruhn/SMT-solver/simplex"
)

// Config bounds the lazy CDCL(T) refinement loop.
type Config struct {
	MaxRefinements int // 0 means 1000
	Log            *logrus.Entry
}

func (c Config) withDefaults() Config {
	if c.MaxRefinements == 0 {
		c.MaxRefinements = 1000
	}
	return c
}

// Result is the outcome of combined Boolean+arithmetic solving.
type Result struct {
	Sat         bool
	BoolModel   sat.Model
	ArithModel  map[simplex.Var]rational.Rat
	Refinements int
}

// Solve implements the abstraction-refinement ("lazy CDCL(T)") loop built
// on the §6 interoperation contract: find a Boolean model of the
// CNF-with-learned-lemmas, ask the theory whether the arithmetic atoms it
// touches are jointly satisfiable, and on conflict add the theory's
// blocking clause (the disjunction of each conflicting literal's negation)
// before trying again.
func Solve(cnf sat.CNF, th Theory, cfg Config) Result {
	cfg = cfg.withDefaults()
	working := cnf

	for i := 0; i < cfg.MaxRefinements; i++ {
		res := sat.SolveCDCL(working, sat.Config{Log: cfg.Log})
		if !res.Sat {
			return Result{Sat: false, Refinements: i}
		}

		trail := modelToTrail(res.Model)
		ok, conflict, err := th.Check(trail)
		if err != nil {
			return Result{Sat: false, Refinements: i}
		}
		if ok {
			arith := arithModel(th, trail)
			return Result{Sat: true, BoolModel: res.Model, ArithModel: arith, Refinements: i}
		}

		lemma := make([]sat.Lit, len(conflict))
		for j, lit := range conflict {
			lemma[j] = lit.Not()
		}
		if !working.AddClause(lemma...) {
			// The blocking clause is a tautology: the theory conflict was
			// degenerate (e.g. both polarities of the same atom appeared),
			// which cannot be refined away.
			return Result{Sat: false, Refinements: i}
		}
	}
	return Result{Sat: false, Refinements: cfg.MaxRefinements}
}

func modelToTrail(m sat.Model) []sat.Lit {
	vars := make([]sat.Var, 0, len(m))
	for v := range m {
		vars = append(vars, v)
	}
	trail := make([]sat.Lit, 0, len(m))
	for _, v := range vars {
		trail = append(trail, sat.Lit{V: v, Neg: !m[v]})
	}
	return trail
}

func arithModel(th Theory, trail []sat.Lit) map[simplex.Var]rational.Rat {
	var constraints []simplex.Constraint
	for _, lit := range trail {
		c, has := th.Atoms[lit.V]
		if !has {
			continue
		}
		if lit.Neg {
			c, _ = NegateConstraint(c)
		}
		constraints = append(constraints, c)
	}
	assign, _ := simplex.SolveLRA(th.FirstSlack, constraints)
	return assign
}
