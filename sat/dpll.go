package sat

// SolveDPLL is the reference solver (§4.1): recursive backtracking with
// unit propagation and pure-literal elimination, deciding variables in
// ascending id order. It exists to cross-check CDCL and is not tuned for
// performance.
func SolveDPLL(f CNF) Result {
	assign := make(Model, f.NumVars)
	stats := Stats{}
	ok := dpll(f, assign, &stats)
	return Result{Sat: ok, Model: assign, Stats: stats}
}

// dpll mutates assign in place. On success assign satisfies every clause
// (variables that no clause needs may stay unassigned). On failure the
// values this call propagated are left in assign; each caller restores its
// own snapshot before trying the other polarity.
func dpll(f CNF, assign Model, stats *Stats) bool {
	if !unitPropagate(f, assign, stats) {
		return false
	}
	if eliminatePureLiterals(f, assign) {
		// Pure-literal assignment can't conflict by construction, but
		// further propagation may now be unit.
		if !unitPropagate(f, assign, stats) {
			return false
		}
	}

	status := evalCNF(f, assign)
	if status == clauseFalse {
		return false
	}
	if status == clauseTrue {
		return true
	}

	v := firstUnassigned(f, assign)
	stats.Decisions++
	for _, val := range [2]bool{true, false} {
		trail := snapshot(assign)
		assign[v] = val
		if dpll(f, assign, stats) {
			return true
		}
		restore(assign, trail)
	}
	delete(assign, v)
	return false
}

type cnfStatus int

const (
	clauseUnknown cnfStatus = iota
	clauseTrue
	clauseFalse
)

// evalCNF reports whether f is fully satisfied, falsified (some clause has
// no remaining satisfiable literal), or still undetermined under assign.
func evalCNF(f CNF, assign Model) cnfStatus {
	allSat := true
	for _, c := range f.Clauses {
		switch evalClause(c, assign) {
		case clauseFalse:
			return clauseFalse
		case clauseUnknown:
			allSat = false
		}
	}
	if allSat {
		return clauseTrue
	}
	return clauseUnknown
}

func evalClause(c Clause, assign Model) cnfStatus {
	if len(c.Lits) == 0 {
		return clauseFalse
	}
	sawUnassigned := false
	for _, l := range c.Lits {
		v, ok := assign[l.V]
		if !ok {
			sawUnassigned = true
			continue
		}
		if v != l.Neg {
			return clauseTrue
		}
	}
	if sawUnassigned {
		return clauseUnknown
	}
	return clauseFalse
}

// unitPropagate repeatedly assigns the single unassigned literal of any
// unit clause until a fixpoint or a conflict is found.
func unitPropagate(f CNF, assign Model, stats *Stats) bool {
	changed := true
	for changed {
		changed = false
		for _, c := range f.Clauses {
			var unassignedLit Lit
			unassignedCount := 0
			falsified := true
			for _, l := range c.Lits {
				v, ok := assign[l.V]
				if !ok {
					unassignedCount++
					unassignedLit = l
					falsified = false
					continue
				}
				if v != l.Neg {
					falsified = false
					unassignedCount = -1 // clause already satisfied
					break
				}
			}
			if unassignedCount == -1 {
				continue
			}
			if falsified && unassignedCount == 0 {
				return false
			}
			if unassignedCount == 1 {
				assign[unassignedLit.V] = !unassignedLit.Neg
				stats.Propagations++
				changed = true
			}
		}
	}
	return true
}

// eliminatePureLiterals assigns every variable that occurs with only one
// polarity across all not-yet-satisfied clauses. Returns whether any
// assignment was made.
func eliminatePureLiterals(f CNF, assign Model) bool {
	polarity := make(map[Var]int) // +1 seen only positive, -1 only negative, 2 both
	for _, c := range f.Clauses {
		if evalClause(c, assign) == clauseTrue {
			continue
		}
		for _, l := range c.Lits {
			if _, ok := assign[l.V]; ok {
				continue
			}
			sign := 1
			if l.Neg {
				sign = -1
			}
			switch cur, seen := polarity[l.V]; {
			case !seen:
				polarity[l.V] = sign
			case cur != sign:
				polarity[l.V] = 2
			}
		}
	}
	did := false
	for v, sign := range polarity {
		if sign == 2 {
			continue
		}
		assign[v] = sign == 1
		did = true
	}
	return did
}

func firstUnassigned(f CNF, assign Model) Var {
	for v := Var(0); v < Var(f.NumVars); v++ {
		if _, ok := assign[v]; !ok {
			return v
		}
	}
	panic("sat: firstUnassigned called with no unassigned variable")
}

func snapshot(m Model) Model {
	out := make(Model, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func restore(m Model, snap Model) {
	for k := range m {
		if _, ok := snap[k]; !ok {
			delete(m, k)
		}
	}
	for k, v := range snap {
		m[k] = v
	}
}
