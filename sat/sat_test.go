package sat

import (
	"math/rand"
	"testing"

	"golang.org/x/sync/errgroup"
)

func clauseOf(lits ...Lit) Clause {
	c, ok := NewClause(lits...)
	if !ok {
		panic("unexpected tautology in test fixture")
	}
	return c
}

// TestScenario1UnsatTriangle is concrete scenario 1 from §8: a formula
// that forces both polarities of a variable and is UNSAT.
func TestScenario1UnsatTriangle(t *testing.T) {
	f := CNF{NumVars: 2, Clauses: []Clause{
		clauseOf(Pos(0), Pos(1)),
		clauseOf(Neg(0), Pos(1)),
		clauseOf(Neg(1)),
	}}
	for name, solve := range solvers() {
		t.Run(name, func(t *testing.T) {
			if res := solve(f); res.Sat {
				t.Fatalf("got SAT with %v, want UNSAT", res.Model)
			}
		})
	}
}

// TestScenario2Sat is concrete scenario 2 from §8.
func TestScenario2Sat(t *testing.T) {
	f := CNF{NumVars: 2, Clauses: []Clause{
		clauseOf(Pos(0), Pos(1)),
		clauseOf(Neg(0), Neg(1)),
	}}
	for name, solve := range solvers() {
		t.Run(name, func(t *testing.T) {
			res := solve(f)
			if !res.Sat {
				t.Fatal("got UNSAT, want SAT")
			}
			if !f.Satisfies(res.Model) {
				t.Fatalf("model %v does not satisfy %v", res.Model, f)
			}
		})
	}
}

func solvers() map[string]func(CNF) Result {
	return map[string]func(CNF) Result{
		"DPLL": SolveDPLL,
		"CDCL": func(f CNF) Result { return SolveCDCL(f, Config{}) },
	}
}

func TestDPLLSoundness(t *testing.T) {
	for seed := int64(0); seed < 300; seed++ {
		f := randomCNF(seed, 6, 12)
		res := SolveDPLL(f)
		if res.Sat && !f.Satisfies(res.Model) {
			t.Fatalf("seed %d: DPLL returned unsound model %v for %v", seed, res.Model, f)
		}
	}
}

func TestCDCLSoundness(t *testing.T) {
	for seed := int64(0); seed < 300; seed++ {
		f := randomCNF(seed, 6, 12)
		res := SolveCDCL(f, Config{})
		if res.Sat && !f.Satisfies(res.Model) {
			t.Fatalf("seed %d: CDCL returned unsound model %v for %v", seed, res.Model, f)
		}
	}
}

// TestDPLLEquivalentToCDCL checks DPLL ≡ CDCL (§8) across many small random
// CNFs, fanned out across goroutines with errgroup.
func TestDPLLEquivalentToCDCL(t *testing.T) {
	const numSeeds = 500
	g := new(errgroup.Group)
	for seed := int64(0); seed < numSeeds; seed++ {
		seed := seed
		g.Go(func() error {
			f := randomCNF(seed, 5, 10)
			dpll := SolveDPLL(f)
			cdcl := SolveCDCL(f, Config{})
			if dpll.Sat != cdcl.Sat {
				t.Errorf("seed %d: DPLL sat=%v, CDCL sat=%v for %v", seed, dpll.Sat, cdcl.Sat, f)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}

func randomCNF(seed int64, numVars, numClauses int) CNF {
	rng := rand.New(rand.NewSource(seed))
	f := CNF{NumVars: numVars}
	for len(f.Clauses) < numClauses {
		size := rng.Intn(3) + 1
		lits := make([]Lit, size)
		for i := range lits {
			v := Var(rng.Intn(numVars))
			lits[i] = Lit{V: v, Neg: rng.Intn(2) == 0}
		}
		if c, ok := NewClause(lits...); ok {
			f.Clauses = append(f.Clauses, c)
		}
	}
	return f
}
