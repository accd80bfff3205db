package frontier

import (
	"github.com/zyedidia/generic/mapset"
)

// Stack is a LIFO frontier.
type Stack[K comparable, V any] struct {
	items   []entry[K, V]
	members mapset.Set[K]
}

// NewStack returns an empty Stack.
func NewStack[K comparable, V any]() *Stack[K, V] {
	return &Stack[K, V]{members: mapset.New[K]()}
}

// Push places v on top unless key is already resident.
func (s *Stack[K, V]) Push(key K, v V) bool {
	if s.members.Has(key) {
		return false
	}
	s.members.Put(key)
	s.items = append(s.items, entry[K, V]{key: key, value: v})

	return true
}

// Pop removes the top value.
func (s *Stack[K, V]) Pop() (V, bool) {
	n := len(s.items)
	if n == 0 {
		var zero V
		return zero, false
	}
	e := s.items[n-1]
	s.items[n-1] = entry[K, V]{}
	s.items = s.items[:n-1]
	s.members.Remove(e.key)

	return e.value, true
}

// Len returns the number of stacked values.
func (s *Stack[K, V]) Len() int { return len(s.items) }

// Empty reports whether the stack holds nothing.
func (s *Stack[K, V]) Empty() bool { return len(s.items) == 0 }

// Contains reports whether key is on the stack.
func (s *Stack[K, V]) Contains(key K) bool { return s.members.Has(key) }
