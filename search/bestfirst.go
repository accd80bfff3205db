package search

import (
	"github.com/katalvlaran/turfpath/frontier"
	"github.com/katalvlaran/turfpath/grid"
)

func nodePriority(n *Node) float64 { return n.Priority }

// greedy orders the frontier by straight-line distance to the destination only.
func (w *walker) greedy() *Node {
	return w.bestFirst(func(*Node) {})
}

// astar orders the frontier by weighted cost from the source plus straight-line
// distance to the destination. The heuristic never exceeds a step's cost, so it
// is consistent and an explored coordinate never needs reopening.
func (w *walker) astar() *Node {
	return w.bestFirst(func(n *Node) { n.Priority += n.Cost })
}

// bestFirst pops the lowest-priority node until it is the destination.
// prioritize adjusts a fresh node's heuristic priority before it is offered.
// Offering a resident coordinate replaces it only on strictly better priority.
func (w *walker) bestFirst(prioritize func(*Node)) *Node {
	pq := frontier.NewPriorityQueue[grid.Point, *Node](nodePriority)
	root := w.root()
	prioritize(root)
	pq.Push(w.src, root)

	for !pq.Empty() {
		n, _ := pq.Pop()
		if n.Point == w.dst {
			return n
		}
		for _, c := range w.expand(n) {
			prioritize(c)
			pq.Push(c.Point, c)
		}
	}

	return nil
}
