package frontier

import (
	"github.com/zyedidia/generic/mapset"
)

// Queue is a FIFO frontier.
type Queue[K comparable, V any] struct {
	items   []entry[K, V]
	members mapset.Set[K]
}

// NewQueue returns an empty Queue.
func NewQueue[K comparable, V any]() *Queue[K, V] {
	return &Queue[K, V]{members: mapset.New[K]()}
}

// Push appends v at the back unless key is already resident.
func (q *Queue[K, V]) Push(key K, v V) bool {
	if q.members.Has(key) {
		return false
	}
	q.members.Put(key)
	q.items = append(q.items, entry[K, V]{key: key, value: v})

	return true
}

// Pop removes the front value.
func (q *Queue[K, V]) Pop() (V, bool) {
	if len(q.items) == 0 {
		var zero V
		return zero, false
	}
	e := q.items[0]
	q.items[0] = entry[K, V]{}
	q.items = q.items[1:]
	q.members.Remove(e.key)

	return e.value, true
}

// Len returns the number of queued values.
func (q *Queue[K, V]) Len() int { return len(q.items) }

// Empty reports whether the queue holds nothing.
func (q *Queue[K, V]) Empty() bool { return len(q.items) == 0 }

// Contains reports whether key is queued.
func (q *Queue[K, V]) Contains(key K) bool { return q.members.Has(key) }
