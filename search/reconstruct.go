package search

import (
	"github.com/katalvlaran/turfpath/grid"
)

// Reconstruct follows Parent links from goal back to the source, returning the
// path in source → goal order and its total cost. Every step costs its length;
// with weightTurf, a step landing on a turf node costs 1+TurfPenalty times that.
// The source contributes no cost. A nil goal yields (nil, 0).
func Reconstruct(goal *Node, weightTurf bool) ([]grid.Point, float64) {
	if goal == nil {
		return nil, 0
	}
	var chain []*Node
	for n := goal; n != nil; n = n.Parent {
		chain = append(chain, n)
	}

	path := make([]grid.Point, len(chain))
	cost := 0.0
	for i := range chain {
		n := chain[len(chain)-1-i]
		path[i] = n.Point
		if n.Parent != nil {
			cost += stepCost(n.Parent.Point, n.Point, n.InTurf, weightTurf)
		}
	}

	return path, cost
}

// turfSteps counts the steps of goal's chain that land on turf.
func turfSteps(goal *Node) int {
	k := 0
	for n := goal; n != nil && n.Parent != nil; n = n.Parent {
		if n.InTurf {
			k++
		}
	}

	return k
}
