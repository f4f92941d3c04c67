package simplex

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gruhn/SMT-solver/rational"
)

const (
	x Var = iota
	y
	firstSlack
)

func r(n, d int64) rational.Rat { return rational.FromFrac(n, d) }

func term(coeffs map[Var]int64) LinearTerm {
	m := make(map[Var]rational.Rat, len(coeffs))
	for v, c := range coeffs {
		m[v] = rational.FromInt(c)
	}
	return MkLinearTerm(m)
}

// TestScenario3Sat is concrete scenario 3 from §8.
func TestScenario3Sat(t *testing.T) {
	cs := []Constraint{
		{Term: term(map[Var]int64{x: 1, y: 1}), Rel: LE, Bound: r(3, 1)},
		{Term: term(map[Var]int64{x: 1, y: 1}), Rel: GE, Bound: r(1, 1)},
		{Term: term(map[Var]int64{x: 1, y: -1}), Rel: LE, Bound: r(3, 1)},
		{Term: term(map[Var]int64{x: 1, y: -1}), Rel: GE, Bound: r(1, 1)},
	}
	assign, ok := SolveLRA(firstSlack, cs)
	require.True(t, ok, "got UNSAT, want SAT")
	sum := assign[x].Add(assign[y])
	diff := assign[x].Sub(assign[y])
	require.Falsef(t, sum.Less(r(1, 1)) || r(3, 1).Less(sum), "x+y = %v out of [1,3]", sum)
	require.Falsef(t, diff.Less(r(1, 1)) || r(3, 1).Less(diff), "x-y = %v out of [1,3]", diff)
	require.True(t, FourierMotzkinSatisfiable(cs), "Fourier-Motzkin disagrees: says UNSAT")
}

// TestScenario4Unsat is concrete scenario 4 from §8.
func TestScenario4Unsat(t *testing.T) {
	cs := []Constraint{
		{Term: term(map[Var]int64{x: 1}), Rel: LE, Bound: r(1, 1)},
		{Term: term(map[Var]int64{x: 1}), Rel: GE, Bound: r(2, 1)},
	}
	_, ok := SolveLRA(firstSlack, cs)
	require.False(t, ok, "got SAT, want UNSAT")
	require.False(t, FourierMotzkinSatisfiable(cs), "Fourier-Motzkin disagrees: says SAT")
}

// TestScenario5Lia is concrete scenario 5 from §8.
func TestScenario5Lia(t *testing.T) {
	cs := []Constraint{
		{Term: term(map[Var]int64{x: 2}), Rel: LE, Bound: r(3, 1)},
		{Term: term(map[Var]int64{x: 2}), Rel: GE, Bound: r(1, 1)},
	}
	model, ok := SolveLIA(firstSlack, cs, map[Var]bool{x: true}, BranchAndBoundConfig{})
	require.True(t, ok, "got UNSAT, want SAT x=1")
	require.Truef(t, model[x].Equal(rational.FromInt(1)), "x = %v, want 1", model[x])
}

func TestZeroRowElimination(t *testing.T) {
	cs := []Constraint{
		{Term: LinearTerm{}, Rel: LE, Bound: r(-1, 1)},
	}
	_, err := NewTableau(firstSlack, cs, nil)
	require.Error(t, err, "expected UNSAT for violated zero-row constraint")
}

// TestSimplexInvariants fuzzes random feasible-looking systems and checks
// the §8 Simplex invariants hold at the fixed point.
func TestSimplexInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		n := 3
		var cs []Constraint
		for k := 0; k < 4; k++ {
			coeffs := map[Var]int64{}
			for v := 0; v < n; v++ {
				coeffs[Var(v)] = int64(rng.Intn(5) - 2)
			}
			rel := []Rel{LE, GE}[rng.Intn(2)]
			cs = append(cs, Constraint{Term: term(coeffs), Rel: rel, Bound: r(int64(rng.Intn(11)-5), 1)})
		}
		tab, err := NewTableau(Var(n), cs, nil)
		if err != nil {
			continue
		}
		if err := tab.Check(); err != nil {
			continue
		}
		for b, row := range tab.basis {
			if tab.nonbasic[b] {
				t.Fatalf("var %d is both basic and non-basic", b)
			}
			got := row.Eval(tab.assignment)
			if !got.Equal(tab.assignment[b]) {
				t.Fatalf("basic var %d assignment %v != row eval %v", b, tab.assignment[b], got)
			}
		}
		for nb := range tab.nonbasic {
			bounds := tab.bounds[nb]
			lo, up := bounds.violates(tab.assignment[nb])
			if lo || up {
				t.Fatalf("non-basic var %d violates its bound at %v", nb, tab.assignment[nb])
			}
		}
	}
}
