package sat

// varHeap is a max-heap of unassigned variables ordered by activity, ties
// broken by lowest id (§4.1's decision rule), in the same lazy-membership
// style as the teacher's watch-count literal heap (container/heap plus an
// index map for O(log n) updates and deletions).
type varHeap struct {
	items []*varHeapItem
	index map[Var]int // var -> position in items
}

type varHeapItem struct {
	v        Var
	activity float64
}

func newVarHeap() *varHeap {
	return &varHeap{index: make(map[Var]int)}
}

func (h *varHeap) Len() int { return len(h.items) }

func (h *varHeap) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if a.activity != b.activity {
		return a.activity > b.activity
	}
	return a.v < b.v
}

func (h *varHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.index[h.items[i].v] = i
	h.index[h.items[j].v] = j
}

func (h *varHeap) Push(x interface{}) {
	item := x.(*varHeapItem)
	h.index[item.v] = len(h.items)
	h.items = append(h.items, item)
}

func (h *varHeap) Pop() interface{} {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]
	delete(h.index, item.v)
	return item
}
