package search

import (
	"github.com/katalvlaran/turfpath/frontier"
	"github.com/katalvlaran/turfpath/grid"
)

// dfs expands in LIFO order and stops when the destination is popped.
// Successors are pushed in reverse direction order so the first direction is
// explored first. A coordinate already on the stack keeps its first parent.
func (w *walker) dfs() *Node {
	s := frontier.NewStack[grid.Point, *Node]()
	s.Push(w.src, w.root())

	for !s.Empty() {
		n, _ := s.Pop()
		if n.Point == w.dst {
			return n
		}
		children := w.expand(n)
		for i := len(children) - 1; i >= 0; i-- {
			s.Push(children[i].Point, children[i])
		}
	}

	return nil
}
