package model

// TopK is a bounded collector that keeps the k best results pushed into it.
// It is a value-based min-heap ordered by rank (the root is the result that
// would be evicted next), so pushing n results costs O(n log k) instead of
// sorting the full candidate set.
type TopK struct {
	k     int
	items []Result
}

// NewTopK creates a collector that retains at most k results. A collector
// with k <= 0 retains nothing.
func NewTopK(k int) *TopK {
	if k < 0 {
		k = 0
	}
	return &TopK{k: k, items: make([]Result, 0, k)}
}

// Push offers a result to the collector. If the collector is full and r
// ranks behind every retained result, it is dropped.
func (t *TopK) Push(r Result) {
	if t.k == 0 {
		return
	}
	if len(t.items) < t.k {
		t.items = append(t.items, r)
		t.siftUp(len(t.items) - 1)
		return
	}
	// Full: replace the worst retained result if r ranks before it.
	if r.Less(t.items[0]) {
		t.items[0] = r
		t.siftDown(0)
	}
}

// Len returns the number of retained results.
func (t *TopK) Len() int { return len(t.items) }

// Results drains the collector and returns the retained results in ranked
// order (descending score, ties by ascending ID). The collector must not be
// reused afterwards.
func (t *TopK) Results() []Result {
	out := make([]Result, len(t.items))
	for i := len(t.items) - 1; i >= 0; i-- {
		out[i] = t.items[0]
		last := len(t.items) - 1
		t.items[0] = t.items[last]
		t.items = t.items[:last]
		if last > 0 {
			t.siftDown(0)
		}
	}
	return out
}

// worse reports whether items[i] ranks behind items[j].
func (t *TopK) worse(i, j int) bool {
	return t.items[j].Less(t.items[i])
}

func (t *TopK) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !t.worse(i, parent) {
			break
		}
		t.items[i], t.items[parent] = t.items[parent], t.items[i]
		i = parent
	}
}

func (t *TopK) siftDown(i int) {
	n := len(t.items)
	for {
		worst := i
		if l := 2*i + 1; l < n && t.worse(l, worst) {
			worst = l
		}
		if r := 2*i + 2; r < n && t.worse(r, worst) {
			worst = r
		}
		if worst == i {
			return
		}
		t.items[i], t.items[worst] = t.items[worst], t.items[i]
		i = worst
	}
}
