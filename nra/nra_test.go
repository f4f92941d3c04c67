package nra

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gruhn/SMT-solver/interval"
	"github.com/gruhn/SMT-solver/poly"
	"github.com/gruhn/SMT-solver/rational"
)

const (
	x poly.Var = iota
	y
	firstFresh
)

func mono(exp map[poly.Var]int) poly.Monomial { return poly.MkMonomial(exp) }

func term(coeff int64, exp map[poly.Var]int) poly.Term {
	return poly.Term{Coeff: rational.FromInt(coeff), Mono: mono(exp)}
}

// TestScenario6XSquaredYSquaredIsZero is concrete scenario 6 from §8.
func TestScenario6XSquaredYSquaredIsZero(t *testing.T) {
	c := Constraint{
		Poly: poly.MkPolynomial([]poly.Term{term(1, map[poly.Var]int{x: 2, y: 2})}),
		Rel:  EQ,
	}
	domains := DomainMap{
		x: interval.Single(interval.Interval{Lo: -1, Hi: 1}),
		y: interval.Single(interval.Interval{Lo: -1, Hi: 1}),
	}
	before := domains.clone()
	result := Solve([]Constraint{c}, domains, firstFresh, Config{})

	require.Truef(t, result[x].Contains(0), "x domain %v must still contain 0", result[x].Parts())
	require.Truef(t, result[y].Contains(0), "y domain %v must still contain 0", result[y].Parts())
	require.LessOrEqualf(t, result[x].Diameter(), before[x].Diameter(), "x domain widened")
	require.LessOrEqualf(t, result[y].Diameter(), before[y].Diameter(), "y domain widened")
}

// TestScenario7QuadraticContractsTowardRoots is concrete scenario 7 from
// §8: x^2 + 50x + 561 = 0 over x in [-34,-16] has roots at -33 and -17.
func TestScenario7QuadraticContractsTowardRoots(t *testing.T) {
	c := Constraint{
		Poly: poly.MkPolynomial([]poly.Term{
			term(1, map[poly.Var]int{x: 2}),
			term(50, map[poly.Var]int{x: 1}),
			term(561, map[poly.Var]int{}),
		}),
		Rel: EQ,
	}
	domains := DomainMap{
		x: interval.Single(interval.Interval{Lo: -34, Hi: -16}),
	}
	before := domains[x].Diameter()
	result := Solve([]Constraint{c}, domains, firstFresh, Config{MaxIterations: 30})

	got := result[x]
	require.LessOrEqual(t, got.Diameter(), before, "domain widened")
	require.Truef(t, got.Contains(-33) || got.Contains(-17), "domain %v lost both roots -33 and -17", got.Parts())
}

func TestPreprocessLinearizesNonlinearTerm(t *testing.T) {
	c := Constraint{
		Poly: poly.MkPolynomial([]poly.Term{term(1, map[poly.Var]int{x: 2, y: 2})}),
		Rel:  EQ,
	}
	domains := DomainMap{
		x: interval.Single(interval.Interval{Lo: -1, Hi: 1}),
		y: interval.Single(interval.Interval{Lo: -1, Hi: 1}),
	}
	out, doms := Preprocess([]Constraint{c}, domains, firstFresh)
	require.Lenf(t, out, 2, "want side constraint + linearized main")
	_, ok := doms[firstFresh]
	require.True(t, ok, "fresh variable has no initial domain")
	// out[1] is the original constraint with its non-linear term replaced
	// by the fresh variable; out[0] is the side constraint defining that
	// variable and is expected to still carry the non-linear monomial.
	require.Truef(t, out[1].Poly.IsLinear(), "linearized constraint %v is not linear", out[1])
}
