package search

import (
	"fmt"

	"github.com/katalvlaran/turfpath/geometry"
	"github.com/katalvlaran/turfpath/grid"
)

// Engine runs searches over one classifier. It holds no per-run state.
type Engine struct {
	cls  *geometry.Classifier
	opts Options
}

// NewEngine builds an Engine over cls, applying any number of Options.
// Returns ErrNilClassifier if cls is nil.
func NewEngine(cls *geometry.Classifier, opts ...Option) (*Engine, error) {
	if cls == nil {
		return nil, ErrNilClassifier
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Engine{cls: cls, opts: o}, nil
}

// Classifier returns the classifier the engine validates moves with.
func (e *Engine) Classifier() *geometry.Classifier {
	return e.cls
}

// Run searches from src to dst with the given strategy.
//
// Preconditions and short-circuits (in order):
//  1. alg must be known (ErrUnknownAlgorithm).
//  2. src and dst out of bounds, or src blocked → not found, nothing expanded.
//  3. src == dst → found, one-point path, cost 0, nothing expanded.
//
// An unreachable destination is a not-found Result with a nil error.
func (e *Engine) Run(alg Algorithm, src, dst grid.Point) (*Result, error) {
	if !alg.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
	}
	res := &Result{Algorithm: alg}

	g := e.cls.Grid()
	if !g.InBounds(src) || !g.InBounds(dst) || e.cls.IsBlocked(src) {
		return res, nil
	}
	if src == dst {
		res.Path = []grid.Point{src}
		res.Found = true
		return res, nil
	}

	w := newWalker(e.cls, e.opts, src, dst)
	var goal *Node
	switch alg {
	case BFS:
		goal = w.bfs()
	case DFS:
		goal = w.dfs()
	case Greedy:
		goal = w.greedy()
	case AStar:
		goal = w.astar()
	}
	res.Expanded = w.expanded
	if goal == nil {
		return res, nil
	}

	res.Path, res.Cost = Reconstruct(goal, e.weighted(alg))
	_, res.WeightedCost = Reconstruct(goal, true)
	res.TurfSteps = turfSteps(goal)
	res.Found = true

	return res, nil
}

// RunAll runs every strategy in Algorithms() order.
func (e *Engine) RunAll(src, dst grid.Point) ([]*Result, error) {
	out := make([]*Result, 0, len(Algorithms()))
	for _, alg := range Algorithms() {
		res, err := e.Run(alg, src, dst)
		if err != nil {
			return out, err
		}
		out = append(out, res)
	}

	return out, nil
}

// BFS runs breadth-first search from src to dst.
func (e *Engine) BFS(src, dst grid.Point) (*Result, error) { return e.Run(BFS, src, dst) }

// DFS runs depth-first search from src to dst.
func (e *Engine) DFS(src, dst grid.Point) (*Result, error) { return e.Run(DFS, src, dst) }

// Greedy runs greedy best-first search from src to dst.
func (e *Engine) Greedy(src, dst grid.Point) (*Result, error) { return e.Run(Greedy, src, dst) }

// AStar runs A* from src to dst.
func (e *Engine) AStar(src, dst grid.Point) (*Result, error) { return e.Run(AStar, src, dst) }

// weighted reports whether alg's reported cost charges the turf penalty.
func (e *Engine) weighted(alg Algorithm) bool {
	switch alg {
	case BFS:
		return e.opts.TurfWeightedBFS
	case DFS:
		return false
	default:
		return true
	}
}
