// Package sat implements the Boolean engine (§4.1): a reference DPLL
// procedure and a two-watched-literal CDCL solver with 1UIP learning and
// non-chronological backjumping, sharing the clause/literal data model.
package sat

import (
	"fmt"
	"sort"
)

// Var is a variable identifier (§3): a non-negative integer used as a map
// key throughout.
type Var int

// Lit is a signed variable. Negation is total and involutive (§3).
type Lit struct {
	V   Var
	Neg bool
}

// Pos builds the positive literal for v.
func Pos(v Var) Lit { return Lit{V: v} }

// Neg builds the negative literal for v.
func Neg(v Var) Lit { return Lit{V: v, Neg: true} }

// Not returns the negation of l. Involutive: l.Not().Not() == l.
func (l Lit) Not() Lit { return Lit{V: l.V, Neg: !l.Neg} }

func (l Lit) String() string {
	if l.Neg {
		return fmt.Sprintf("-%d", l.V)
	}
	return fmt.Sprintf("+%d", l.V)
}

// index packs a Lit into a dense non-negative integer (2v for +v, 2v+1 for
// -v), used as the key of the CDCL watch-list map.
func (l Lit) index() int {
	i := int(l.V) << 1
	if l.Neg {
		i++
	}
	return i
}

// Clause is a set of literals: order is irrelevant and duplicates are
// removed on construction (§3). The empty clause denotes falsity.
type Clause struct {
	Lits []Lit

	// Learned marks a clause produced by conflict analysis rather than
	// present in the original input.
	Learned bool
}

// NewClause builds a clause from literals, deduplicating and detecting
// tautologies. The second return value is false for a tautology (a clause
// containing both l and ¬l), which callers must drop rather than insert
// (§3): "tautologies are dropped on insertion".
func NewClause(lits ...Lit) (Clause, bool) {
	seen := make(map[Lit]bool, len(lits))
	out := make([]Lit, 0, len(lits))
	for _, l := range lits {
		if seen[l.Not()] {
			return Clause{}, false
		}
		if seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return Clause{Lits: out}, true
}

func (c Clause) String() string {
	if len(c.Lits) == 0 {
		return "⊥"
	}
	s := fmt.Sprintf("%v", c.Lits)
	return s
}

// CNF is a set of clauses (§3). Duplicate and subsumed clauses are
// tolerated: the learner may add them.
type CNF struct {
	Clauses []Clause
	NumVars int // variables are assumed dense in [0, NumVars)
}

// AddClause appends a well-formed (non-tautological) clause to the CNF,
// skipping tautologies per §3. Returns whether the clause was kept.
func (f *CNF) AddClause(lits ...Lit) bool {
	c, ok := NewClause(lits...)
	if !ok {
		return false
	}
	f.Clauses = append(f.Clauses, c)
	for _, l := range c.Lits {
		if int(l.V)+1 > f.NumVars {
			f.NumVars = int(l.V) + 1
		}
	}
	return true
}

// Model is a complete or partial variable -> truth value assignment
// returned as a SAT witness.
type Model map[Var]bool

// Satisfies reports whether m satisfies every clause in f.
func (f CNF) Satisfies(m Model) bool {
	for _, c := range f.Clauses {
		if !clauseSatisfied(c, m) {
			return false
		}
	}
	return true
}

func clauseSatisfied(c Clause, m Model) bool {
	if len(c.Lits) == 0 {
		return false
	}
	for _, l := range c.Lits {
		v, ok := m[l.V]
		if ok && v != l.Neg {
			return true
		}
	}
	return false
}

// Result is the outcome of a solver run: either SAT with a witness model,
// or UNSAT.
type Result struct {
	Sat   bool
	Model Model
	Stats Stats
}

// Stats mirrors the teacher's informational stats map but typed, in the
// style of a conventional CDCL solver's per-run counters.
type Stats struct {
	Decisions    int64
	Propagations int64
	Conflicts    int64
	Learned      int64
}

func sortedVars(vs map[Var]bool) []Var {
	out := make([]Var, 0, len(vs))
	for v := range vs {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
