// Package frontier provides the three ordering disciplines a search keeps its
// generated-but-unexpanded nodes in:
//
//   - Queue: FIFO (breadth-first).
//   - Stack: LIFO (depth-first).
//   - PriorityQueue: minimum priority first, ties broken by insertion order.
//
// Every discipline is keyed: values are stored under a comparable key (a grid
// coordinate in practice) and Contains answers membership by key, not by value
// identity. A key is resident at most once.
//
// Queue and Stack refuse a Push for a resident key. PriorityQueue treats it
// as a Replace: the stored entry is swapped only if the new priority is
// strictly lower (decrease-key). A stored priority never changes any other way.
//
// Complexity:
//
//   - Queue, Stack: Push/Pop/Contains O(1) amortised.
//   - PriorityQueue: Push/Pop/Replace O(log n), Contains/Priority O(1).
package frontier
