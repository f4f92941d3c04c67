package sat

import (
	"container/heap"

	"github.com/sirupsen/logrus"
)

// Config tunes the CDCL search. The zero value is usable; DecayInterval and
// Decay default to conventional VSIDS-ish values when zero.
type Config struct {
	// DecayInterval is how many conflicts pass between activity decays.
	// Zero selects a default of 1 (decay after every conflict).
	DecayInterval int64
	// Decay is the multiplicative factor applied on decay (0 < Decay < 1).
	// Zero selects a default of 0.95.
	Decay float64
	// Log, if non-nil, receives per-decision/per-conflict debug traces.
	Log *logrus.Entry
}

func (c Config) withDefaults() Config {
	if c.DecayInterval == 0 {
		c.DecayInterval = 1
	}
	if c.Decay == 0 {
		c.Decay = 0.95
	}
	return c
}

// watchedClause pairs a clause with the indices (into Lits) of its two
// watched literals. A unit clause has Watch2 == Watch1.
type watchedClause struct {
	clause  *Clause
	watch1  int
	watch2  int
}

type trailEntry struct {
	lit    Lit
	level  int
	reason *watchedClause // nil for a decision
}

type cdclSolver struct {
	cfg Config

	numVars int
	db      []*watchedClause
	watches map[int][]*watchedClause // keyed by Lit.index(): clauses watching that literal

	assign map[Var]bool   // current partial assignment
	level  map[Var]int    // decision level each assigned var was set at
	reason map[Var]*watchedClause

	trail        []trailEntry
	propagated   int // index into trail of the next entry to propagate
	decisionLvl  int

	activity map[Var]float64
	queue    *varHeap

	stats Stats
}

// SolveCDCL decides f's satisfiability with conflict-driven clause learning
// and two-watched-literal propagation (§4.1).
func SolveCDCL(f CNF, cfg Config) Result {
	s := newCDCLSolver(f, cfg.withDefaults())
	ok := s.search()
	res := Result{Sat: ok, Stats: s.stats}
	if ok {
		res.Model = make(Model, s.numVars)
		for v := Var(0); v < Var(s.numVars); v++ {
			val, assigned := s.assign[v]
			if !assigned {
				val = false // unconstrained variable: any value satisfies
			}
			res.Model[v] = val
		}
	}
	return res
}

func newCDCLSolver(f CNF, cfg Config) *cdclSolver {
	s := &cdclSolver{
		cfg:      cfg,
		numVars:  f.NumVars,
		watches:  make(map[int][]*watchedClause),
		assign:   make(map[Var]bool),
		level:    make(map[Var]int),
		reason:   make(map[Var]*watchedClause),
		activity: make(map[Var]float64, f.NumVars),
		queue:    newVarHeap(),
	}
	for v := Var(0); v < Var(f.NumVars); v++ {
		s.activity[v] = 0
		heap.Push(s.queue, &varHeapItem{v: v, activity: 0})
	}
	for _, c := range f.Clauses {
		cc := c
		s.addClause(&cc)
	}
	return s
}

func (s *cdclSolver) addClause(c *Clause) {
	wc := &watchedClause{clause: c}
	switch len(c.Lits) {
	case 0:
		// The empty clause is unsatisfiable on its own; record it so the
		// first propagate() call reports conflict immediately.
		wc.watch1, wc.watch2 = -1, -1
	case 1:
		wc.watch1, wc.watch2 = 0, 0
	default:
		wc.watch1, wc.watch2 = 0, 1
	}
	s.db = append(s.db, wc)
	if len(c.Lits) == 0 {
		return
	}
	s.watch(c.Lits[wc.watch1], wc)
	if wc.watch2 != wc.watch1 {
		s.watch(c.Lits[wc.watch2], wc)
	}
}

func (s *cdclSolver) watch(l Lit, wc *watchedClause) {
	s.watches[l.index()] = append(s.watches[l.index()], wc)
}

func (s *cdclSolver) unwatch(l Lit, wc *watchedClause) {
	list := s.watches[l.index()]
	for i, w := range list {
		if w == wc {
			list[i] = list[len(list)-1]
			s.watches[l.index()] = list[:len(list)-1]
			return
		}
	}
}

func (s *cdclSolver) valueOf(l Lit) (bool, bool) {
	v, ok := s.assign[l.V]
	if !ok {
		return false, false
	}
	return v != l.Neg, true
}

// search is the main CDCL loop (§4.1): propagate to fixpoint; on conflict,
// analyze and backjump; on no conflict with everything assigned, return
// SAT; otherwise decide.
func (s *cdclSolver) search() bool {
	// An explicit empty clause in the input is immediately UNSAT.
	for _, wc := range s.db {
		if len(wc.clause.Lits) == 0 {
			return false
		}
	}
	for {
		conflict := s.propagate()
		if conflict != nil {
			s.stats.Conflicts++
			learned, backLevel := s.analyze(conflict)
			if backLevel < 0 {
				return false
			}
			s.backjumpTo(backLevel)
			s.addClause(learned)
			s.stats.Learned++
			uip := learned.Lits[0]
			s.assignLit(uip, backLevel, s.db[len(s.db)-1])
			if s.stats.Conflicts%s.cfg.DecayInterval == 0 {
				s.decayActivities()
			}
			continue
		}
		if len(s.assign) == s.numVars {
			return true
		}
		s.decide()
	}
}

// decide picks the unassigned variable with highest activity, ties broken
// by lowest id (§4.1), and assigns it negative polarity by default.
func (s *cdclSolver) decide() {
	for s.queue.Len() > 0 {
		top := heap.Pop(s.queue).(*varHeapItem)
		if _, assigned := s.assign[top.v]; assigned {
			continue
		}
		s.decisionLvl++
		s.stats.Decisions++
		s.assignLit(Neg(top.v), s.decisionLvl, nil)
		return
	}
	panic("sat: decide called with no unassigned variable")
}

func (s *cdclSolver) assignLit(l Lit, level int, reason *watchedClause) {
	s.assign[l.V] = !l.Neg
	s.level[l.V] = level
	s.reason[l.V] = reason
	s.trail = append(s.trail, trailEntry{lit: l, level: level, reason: reason})
	if s.cfg.Log != nil {
		s.cfg.Log.WithFields(logrus.Fields{
			"var": l.V, "value": !l.Neg, "level": level, "decision": reason == nil,
		}).Debug("assign")
	}
}

// propagate carries out unit propagation via the two-watched-literal
// scheme until fixpoint or conflict (§4.1). It returns the falsified
// clause on conflict, or nil once there is nothing left to propagate.
func (s *cdclSolver) propagate() *watchedClause {
	for s.propagated < len(s.trail) {
		lit := s.trail[s.propagated].lit
		s.propagated++
		falseLit := lit.Not() // watchers of falseLit may now need a new watch
		watchers := append([]*watchedClause{}, s.watches[falseLit.index()]...)
		for _, wc := range watchers {
			if conflict := s.propagateClause(wc, falseLit); conflict != nil {
				return conflict
			}
		}
	}
	return nil
}

// propagateClause re-establishes wc's watch invariant after falseLit (one
// of its two watched literals) became false. It returns wc itself if both
// watches are now falsified (a conflict), or nil otherwise.
func (s *cdclSolver) propagateClause(wc *watchedClause, falseLit Lit) *watchedClause {
	lits := wc.clause.Lits
	var falseIdx, otherIdx int
	if lits[wc.watch1] == falseLit {
		falseIdx, otherIdx = wc.watch1, wc.watch2
	} else if lits[wc.watch2] == falseLit {
		falseIdx, otherIdx = wc.watch2, wc.watch1
	} else {
		// Already repaired by an earlier iteration this round.
		return nil
	}
	other := lits[otherIdx]
	if val, ok := s.valueOf(other); ok && val {
		return nil // clause already satisfied by the other watch
	}
	for i, l := range lits {
		if i == wc.watch1 || i == wc.watch2 {
			continue
		}
		if val, ok := s.valueOf(l); ok && !val {
			continue // already falsified, not a usable replacement
		}
		s.unwatch(falseLit, wc)
		if falseIdx == wc.watch1 {
			wc.watch1 = i
		} else {
			wc.watch2 = i
		}
		s.watch(l, wc)
		return nil
	}
	// No replacement: the clause is unit on `other`, or a conflict if
	// `other` is already falsified.
	if val, ok := s.valueOf(other); ok && !val {
		return wc
	}
	s.stats.Propagations++
	s.assignLit(other, s.decisionLvl, wc)
	return nil
}

func (s *cdclSolver) decayActivities() {
	for v := range s.activity {
		s.activity[v] *= s.cfg.Decay
	}
}

func (s *cdclSolver) bumpActivity(v Var) {
	s.activity[v] += 1
	if item, ok := s.queue.index[v]; ok {
		s.queue.items[item].activity = s.activity[v]
		heap.Fix(s.queue, item)
	}
}

// backjumpTo undoes every trail entry above level, returning the freed
// variables to the decision queue (§4.1, non-chronological backjumping).
func (s *cdclSolver) backjumpTo(level int) {
	i := len(s.trail)
	for i > 0 && s.trail[i-1].level > level {
		i--
	}
	for j := len(s.trail) - 1; j >= i; j-- {
		v := s.trail[j].lit.V
		delete(s.assign, v)
		delete(s.level, v)
		delete(s.reason, v)
		if item, ok := s.queue.index[v]; ok {
			s.queue.items[item].activity = s.activity[v]
			heap.Fix(s.queue, item)
		} else {
			heap.Push(s.queue, &varHeapItem{v: v, activity: s.activity[v]})
		}
	}
	s.trail = s.trail[:i]
	s.propagated = i
	s.decisionLvl = level
}
