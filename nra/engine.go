package nra

import "github.com/gruhn/SMT-solver/poly"

// Config controls the ICP engine's bounded search (§4.3).
type Config struct {
	MaxIterations int // 0 means "use the reference default of 10"
}

func (c Config) withDefaults() Config {
	if c.MaxIterations == 0 {
		c.MaxIterations = 10
	}
	return c
}

// Solve runs Config.MaxIterations contraction steps of interval constraint
// propagation, stopping earlier only if some variable's domain becomes
// empty (§4.3's termination rule). It does not detect a fixed point.
// It returns the refined domain map; DomainMap.IsUnsat reports whether any
// variable's domain collapsed to empty.
func Solve(constraints []Constraint, domains DomainMap, firstFreeVar poly.Var, cfg Config) DomainMap {
	cfg = cfg.withDefaults()
	linear, doms := Preprocess(constraints, domains, firstFreeVar)

	var cands []candidate
	for i, c := range linear {
		for _, v := range c.Poly.Vars() {
			cands = append(cands, candidate{ConstraintIdx: i, Var: v})
		}
	}
	sched := newScheduler(cands)

	for iter := 0; iter < cfg.MaxIterations; iter++ {
		c, ok := sched.choose()
		if !ok {
			break
		}
		constraint := linear[c.ConstraintIdx]
		oldDomain := doms[c.Var]
		newDomain := contract(constraint, c.Var, doms)

		doms[c.Var] = newDomain
		if doms.IsUnsat() {
			break
		}

		weight := relativeContraction(oldDomain.Diameter(), newDomain.Diameter())
		sched.reinsert(c, weight)
	}
	return doms
}
