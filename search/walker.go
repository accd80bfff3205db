package search

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/turfpath/geometry"
	"github.com/katalvlaran/turfpath/grid"
)

// walker encapsulates the mutable state of a single run.
type walker struct {
	cls      *geometry.Classifier
	dirs     []grid.Point
	opts     Options
	src, dst grid.Point
	explored mapset.Set[grid.Point]
	expanded int
}

func newWalker(cls *geometry.Classifier, opts Options, src, dst grid.Point) *walker {
	return &walker{
		cls:      cls,
		dirs:     cls.Grid().Directions(),
		opts:     opts,
		src:      src,
		dst:      dst,
		explored: mapset.New[grid.Point](),
	}
}

// root builds the source node.
func (w *walker) root() *Node {
	return &Node{
		Point:    w.src,
		Priority: grid.Distance(w.src, w.dst),
		InTurf:   w.cls.IsInTurf(w.src),
	}
}

// expand finalizes n and returns its legal successors in direction order.
// A successor is legal if it is neither blocked nor explored. Each successor
// gets its parent, turf flag, weighted cost and heuristic priority here.
func (w *walker) expand(n *Node) []*Node {
	w.explored.Put(n.Point)
	w.expanded++
	w.opts.OnExpand(n.Point)

	children := make([]*Node, 0, len(w.dirs))
	for _, d := range w.dirs {
		p := n.Point.Add(d)
		if w.cls.IsBlocked(p) || w.explored.Has(p) {
			continue
		}
		child := &Node{
			Point:    p,
			Parent:   n,
			Priority: grid.Distance(p, w.dst),
			InTurf:   w.cls.IsInTurf(p),
		}
		child.Cost = n.Cost + stepCost(n.Point, p, child.InTurf, true)
		w.opts.OnGenerate(p)
		children = append(children, child)
	}

	return children
}

// stepCost is the cost of moving from a to b.
func stepCost(a, b grid.Point, inTurf, weightTurf bool) float64 {
	c := grid.Distance(a, b)
	if weightTurf && inTurf {
		c *= 1 + TurfPenalty
	}

	return c
}
