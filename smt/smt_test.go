package smt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gruhn/SMT-solver/rational"
	"github.com/gruhn/SMT-solver/sat"
	"github.com/gruhn/SMT-solver/simplex"
)

// TestTheoryConflictBlocksBooleanModel forces both "x<=1" and "x>=2" true at
// the Boolean level and checks the combined solver rejects it via the
// theory, with no other Boolean choice to retry.
func TestTheoryConflictBlocksBooleanModel(t *testing.T) {
	const xVar simplex.Var = 0
	const slackStart simplex.Var = 1
	const atomLE sat.Var = 0
	const atomGE sat.Var = 1

	atoms := AtomTable{
		atomLE: {Term: simplex.MkLinearTerm(map[simplex.Var]rational.Rat{xVar: rational.One}), Rel: simplex.LE, Bound: rational.FromInt(1)},
		atomGE: {Term: simplex.MkLinearTerm(map[simplex.Var]rational.Rat{xVar: rational.One}), Rel: simplex.GE, Bound: rational.FromInt(2)},
	}

	var cnf sat.CNF
	cnf.AddClause(sat.Pos(atomLE))
	cnf.AddClause(sat.Pos(atomGE))

	th := Theory{Atoms: atoms, FirstSlack: slackStart}
	res := Solve(cnf, th, Config{})
	require.Falsef(t, res.Sat, "x<=1 and x>=2 can't both hold (model %v)", res.ArithModel)
}

// TestTheoryAcceptsConsistentAssignment checks a satisfiable pairing of
// Boolean and arithmetic atoms round-trips through the refinement loop.
func TestTheoryAcceptsConsistentAssignment(t *testing.T) {
	const xVar simplex.Var = 0
	const slackStart simplex.Var = 1
	const atomLE sat.Var = 0

	atoms := AtomTable{
		atomLE: {Term: simplex.MkLinearTerm(map[simplex.Var]rational.Rat{xVar: rational.One}), Rel: simplex.LE, Bound: rational.FromInt(5)},
	}
	var cnf sat.CNF
	cnf.AddClause(sat.Pos(atomLE))

	th := Theory{Atoms: atoms, FirstSlack: slackStart}
	res := Solve(cnf, th, Config{})
	require.True(t, res.Sat, "got UNSAT, want SAT")
	if v, ok := res.ArithModel[xVar]; ok {
		require.Falsef(t, v.Greater(rational.FromInt(5)), "x = %v violates x<=5", v)
	}
}

func TestNegateConstraintRejectsEquality(t *testing.T) {
	c := simplex.Constraint{Rel: simplex.EQ}
	_, err := NegateConstraint(c)
	require.Error(t, err, "expected error negating an equality constraint")
}
