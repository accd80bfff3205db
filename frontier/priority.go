package frontier

import (
	"container/heap"
)

// PriorityQueue is a min-priority frontier with replace-if-better.
// The priority of a value is computed once, when it is pushed or replaced.
type PriorityQueue[K comparable, V any] struct {
	heap     itemPQ[K, V]
	index    map[K]*item[K, V]
	priority func(V) float64
	seq      uint64
}

// NewPriorityQueue returns an empty PriorityQueue ordering values by priority(v), lowest first.
func NewPriorityQueue[K comparable, V any](priority func(V) float64) *PriorityQueue[K, V] {
	return &PriorityQueue[K, V]{
		index:    make(map[K]*item[K, V]),
		priority: priority,
	}
}

// Push inserts v under key. If key is already resident, Push behaves as Replace.
func (pq *PriorityQueue[K, V]) Push(key K, v V) bool {
	if _, ok := pq.index[key]; ok {
		return pq.Replace(key, v)
	}
	it := &item[K, V]{
		entry:    entry[K, V]{key: key, value: v},
		priority: pq.priority(v),
		seq:      pq.next(),
	}
	heap.Push(&pq.heap, it)
	pq.index[key] = it

	return true
}

// Replace swaps the entry stored under key for v when v's priority is
// strictly lower. It reports whether v was stored. Replace on an absent key
// stores nothing and returns false.
func (pq *PriorityQueue[K, V]) Replace(key K, v V) bool {
	it, ok := pq.index[key]
	if !ok {
		return false
	}
	p := pq.priority(v)
	if p >= it.priority {
		return false
	}
	it.value = v
	it.priority = p
	// re-sequenced so that a revised entry queues behind existing equals
	it.seq = pq.next()
	heap.Fix(&pq.heap, it.pos)

	return true
}

// Pop removes the value with the lowest priority.
func (pq *PriorityQueue[K, V]) Pop() (V, bool) {
	if pq.heap.Len() == 0 {
		var zero V
		return zero, false
	}
	it := heap.Pop(&pq.heap).(*item[K, V])
	delete(pq.index, it.key)

	return it.value, true
}

// Priority returns the stored priority of key.
func (pq *PriorityQueue[K, V]) Priority(key K) (float64, bool) {
	it, ok := pq.index[key]
	if !ok {
		return 0, false
	}

	return it.priority, true
}

// Len returns the number of queued values.
func (pq *PriorityQueue[K, V]) Len() int { return pq.heap.Len() }

// Empty reports whether the queue holds nothing.
func (pq *PriorityQueue[K, V]) Empty() bool { return pq.heap.Len() == 0 }

// Contains reports whether key is queued.
func (pq *PriorityQueue[K, V]) Contains(key K) bool {
	_, ok := pq.index[key]
	return ok
}

func (pq *PriorityQueue[K, V]) next() uint64 {
	pq.seq++
	return pq.seq
}

// item is a heap entry; pos tracks its index for heap.Fix.
type item[K comparable, V any] struct {
	entry[K, V]
	priority float64
	seq      uint64
	pos      int
}

// itemPQ is a min-heap of *item ordered by (priority, seq).
type itemPQ[K comparable, V any] []*item[K, V]

// Len returns the number of items in the heap.
func (h itemPQ[K, V]) Len() int { return len(h) }

// Less orders by priority, then by insertion sequence.
func (h itemPQ[K, V]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}

// Swap swaps two elements and keeps their positions current.
func (h itemPQ[K, V]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].pos = i
	h[j].pos = j
}

// Push adds a new element x onto the heap. Called by heap.Push.
func (h *itemPQ[K, V]) Push(x interface{}) {
	it := x.(*item[K, V])
	it.pos = len(*h)
	*h = append(*h, it)
}

// Pop removes and returns the last element. Called by heap.Pop.
func (h *itemPQ[K, V]) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.pos = -1
	*h = old[:n-1]

	return it
}
