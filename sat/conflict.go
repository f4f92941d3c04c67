package sat

import "sort"

// analyze performs 1UIP conflict analysis (§4.1): starting from the
// conflict clause, it repeatedly resolves against the reason of the most
// recently assigned literal at the current decision level until exactly
// one literal at that level remains. The backjump level is the
// second-highest decision level among the learned clause's literals, or -1
// to signal root-level UNSAT (a learned empty clause).
func (s *cdclSolver) analyze(conflict *watchedClause) (*Clause, int) {
	currentLevel := s.decisionLvl
	if currentLevel == 0 {
		// Every literal of a level-0 conflict was forced at the root, so
		// resolution reaches the empty clause.
		return nil, -1
	}
	seen := make(map[Var]bool)
	var outLits []Lit
	counter := 0

	pReason := conflict.clause
	var p Lit
	first := true

	for {
		for _, q := range pReason.Lits {
			if !first && q == p {
				continue
			}
			if seen[q.V] {
				continue
			}
			seen[q.V] = true
			s.bumpActivity(q.V)
			if s.level[q.V] == currentLevel {
				counter++
			} else {
				outLits = append(outLits, q)
			}
		}
		first = false

		if counter == 0 {
			// No literal at the current level remains: treated as
			// unsatisfiable. Defensive only, since a conflict above level 0
			// always contains the literal just falsified at that level.
			return nil, -1
		}

		idx := len(s.trail) - 1
		for idx >= 0 && !seen[s.trail[idx].lit.V] {
			idx--
		}
		if idx < 0 {
			// Exhausted the trail without closing the resolution: only
			// possible if every remaining seen var is a root decision
			// with no reason, i.e. root-level UNSAT.
			return nil, -1
		}
		p = s.trail[idx].lit
		seen[p.V] = false
		counter--
		if counter == 0 {
			break
		}
		reason := s.reason[p.V]
		if reason == nil {
			// p is itself a decision at the current level with nothing
			// left to resolve against: also root-level UNSAT territory,
			// but guarded defensively since this should be unreachable
			// while counter > 0.
			return nil, -1
		}
		pReason = reason.clause
	}

	uip := p.Not()
	sort.Slice(outLits, func(i, j int) bool {
		return s.level[outLits[i].V] > s.level[outLits[j].V]
	})
	lits := append([]Lit{uip}, outLits...)

	backLevel := 0
	if len(outLits) > 0 {
		backLevel = s.level[outLits[0].V]
	}

	return &Clause{Lits: lits, Learned: true}, backLevel
}
