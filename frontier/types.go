package frontier

// Frontier is the behaviour shared by Queue, Stack and PriorityQueue.
type Frontier[K comparable, V any] interface {
	// Push offers v under key and reports whether it was stored.
	Push(key K, v V) bool
	// Pop removes and returns the value selected by the discipline.
	// ok is false when the frontier is empty.
	Pop() (v V, ok bool)
	// Len returns the number of resident keys.
	Len() int
	// Empty reports whether Len() == 0.
	Empty() bool
	// Contains reports whether key is resident.
	Contains(key K) bool
}

// entry pairs a key with its stored value.
type entry[K comparable, V any] struct {
	key   K
	value V
}

var (
	_ Frontier[int, string] = (*Queue[int, string])(nil)
	_ Frontier[int, string] = (*Stack[int, string])(nil)
	_ Frontier[int, string] = (*PriorityQueue[int, string])(nil)
)
