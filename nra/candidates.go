package nra

import "github.com/gruhn/SMT-solver/poly"

// candidate is a (constraint, variable) pairing eligible for contraction.
type candidate struct {
	ConstraintIdx int
	Var           poly.Var
}

const initialWeight = 0.1

// scheduler is the weight -> candidate-list map from §9's "explicit
// laziness" note: the full list for a weight only needs to be walked far
// enough to pop its head, never materialized as a flat priority queue.
type scheduler struct {
	buckets map[float64][]candidate
}

func newScheduler(cands []candidate) *scheduler {
	s := &scheduler{buckets: make(map[float64][]candidate)}
	s.buckets[initialWeight] = append([]candidate{}, cands...)
	return s
}

// choose returns the first element of the maximum-weight non-empty list,
// removing it from the map. Empty lists are discarded eagerly so they
// never count as "the maximum" on a later call.
func (s *scheduler) choose() (candidate, bool) {
	bestWeight := 0.0
	haveBest := false
	for w, list := range s.buckets {
		if len(list) == 0 {
			delete(s.buckets, w)
			continue
		}
		if !haveBest || w > bestWeight {
			bestWeight = w
			haveBest = true
		}
	}
	if !haveBest {
		return candidate{}, false
	}
	list := s.buckets[bestWeight]
	c := list[0]
	rest := list[1:]
	if len(rest) == 0 {
		delete(s.buckets, bestWeight)
	} else {
		s.buckets[bestWeight] = rest
	}
	return c, true
}

// reinsert puts c back with a weight equal to the relative contraction it
// just achieved.
func (s *scheduler) reinsert(c candidate, weight float64) {
	s.buckets[weight] = append(s.buckets[weight], c)
}

func relativeContraction(oldDiameter, newDiameter float64) float64 {
	if oldDiameter == 0 {
		return 0
	}
	return (oldDiameter - newDiameter) / oldDiameter
}
