package search

import (
	"github.com/katalvlaran/turfpath/frontier"
	"github.com/katalvlaran/turfpath/grid"
)

// bfs expands in FIFO order and stops as soon as the destination is generated.
// A coordinate already explored or queued is never queued again, so the first
// time the destination is generated it is at minimal step depth.
func (w *walker) bfs() *Node {
	q := frontier.NewQueue[grid.Point, *Node]()
	q.Push(w.src, w.root())

	for !q.Empty() {
		n, _ := q.Pop()
		for _, c := range w.expand(n) {
			if q.Contains(c.Point) {
				continue
			}
			if c.Point == w.dst {
				return c
			}
			q.Push(c.Point, c)
		}
	}

	return nil
}
