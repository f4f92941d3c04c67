package simplex

import "github.com/gruhn/SMT-solver/rational"

// normalForm is a constraint canonicalized to "term <= bound" (or "< bound"
// when strict); used only by the Fourier-Motzkin reference oracle.
type normalForm struct {
	term   LinearTerm
	bound  rational.Rat
	strict bool
}

func toNormalForms(cs []Constraint) []normalForm {
	var out []normalForm
	for _, c := range cs {
		switch c.Rel {
		case LE:
			out = append(out, normalForm{c.Term, c.Bound, false})
		case LT:
			out = append(out, normalForm{c.Term, c.Bound, true})
		case GE:
			out = append(out, normalForm{negate(c.Term), c.Bound.Neg(), false})
		case GT:
			out = append(out, normalForm{negate(c.Term), c.Bound.Neg(), true})
		case EQ:
			out = append(out, normalForm{c.Term, c.Bound, false})
			out = append(out, normalForm{negate(c.Term), c.Bound.Neg(), false})
		}
	}
	return out
}

func negate(t LinearTerm) LinearTerm {
	out := make(LinearTerm, len(t))
	for v, c := range t {
		out[v] = c.Neg()
	}
	return out
}

// FourierMotzkinSatisfiable decides satisfiability of a linear constraint
// system by repeated variable elimination (§4.2.1). It is used only as a
// sound reference oracle to cross-check the Simplex engine's SAT/UNSAT
// verdicts in tests; it does not produce a model and is not on any
// production solving path.
func FourierMotzkinSatisfiable(cs []Constraint) bool {
	forms := toNormalForms(cs)

	allVars := make(map[Var]bool)
	for _, f := range forms {
		for v := range f.term {
			allVars[v] = true
		}
	}
	vars := make([]Var, 0, len(allVars))
	for v := range allVars {
		vars = append(vars, v)
	}

	for _, v := range vars {
		forms = eliminate(forms, v)
		if hasContradiction(forms) {
			return false
		}
	}
	return !hasContradiction(forms)
}

func eliminate(forms []normalForm, v Var) []normalForm {
	var withoutV, pos, neg []normalForm
	for _, f := range forms {
		c, ok := f.term[v]
		switch {
		case !ok || c.IsZero():
			withoutV = append(withoutV, f)
		case c.Sign() > 0:
			pos = append(pos, f)
		default:
			neg = append(neg, f)
		}
	}

	result := withoutV
	for _, p := range pos {
		cp := p.term[v]
		for _, n := range neg {
			cn := n.term[v].Neg() // positive magnitude
			combined := make(map[Var]rational.Rat)
			for vv, c := range p.term {
				if vv == v {
					continue
				}
				combined[vv] = combined[vv].Add(cn.Mul(c))
			}
			for vv, c := range n.term {
				if vv == v {
					continue
				}
				combined[vv] = combined[vv].Add(cp.Mul(c))
			}
			bound := cn.Mul(p.bound).Add(cp.Mul(n.bound))
			result = append(result, normalForm{
				term:   MkLinearTerm(combined),
				bound:  bound,
				strict: p.strict || n.strict,
			})
		}
	}
	return result
}

// hasContradiction reports whether any constraint reduced to a trivially
// false constant inequality, i.e. 0 <= c with c < 0, or 0 < c with c <= 0.
func hasContradiction(forms []normalForm) bool {
	for _, f := range forms {
		if len(f.term) > 0 {
			continue
		}
		if f.strict {
			if f.bound.Sign() <= 0 {
				return true
			}
		} else if f.bound.Sign() < 0 {
			return true
		}
	}
	return false
}
