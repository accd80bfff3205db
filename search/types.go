package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/turfpath/grid"
)

// Sentinel errors for search execution.
var (
	// ErrNilClassifier is returned when NewEngine receives a nil classifier.
	ErrNilClassifier = errors.New("search: classifier is nil")

	// ErrUnknownAlgorithm is returned for an algorithm the engine does not implement.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
)

// TurfPenalty is the extra fraction of a step's length charged when the step lands on turf.
const TurfPenalty = 0.5

// Algorithm selects a search strategy.
type Algorithm int

const (
	// BFS is uninformed breadth-first search.
	BFS Algorithm = iota
	// DFS is uninformed depth-first search.
	DFS
	// Greedy is greedy best-first search on straight-line distance.
	Greedy
	// AStar is A* on accumulated cost plus straight-line distance.
	AStar
)

var algorithmNames = [...]string{"bfs", "dfs", "gbfs", "astar"}

// Algorithms returns every strategy in a fixed order.
func Algorithms() []Algorithm {
	return []Algorithm{BFS, DFS, Greedy, AStar}
}

// Valid reports whether a is a known strategy.
func (a Algorithm) Valid() bool {
	return a >= BFS && a <= AStar
}

// String returns the short label used in reports ("bfs", "dfs", "gbfs", "astar").
func (a Algorithm) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// ParseAlgorithm maps a label (case-insensitive; "greedy" and "a*" accepted) to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	case "gbfs", "greedy":
		return Greedy, nil
	case "astar", "a*":
		return AStar, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Node is a grid cell reached during one search run.
//
// Only Point identifies a node; two nodes with the same Point are the same
// cell for explored and frontier membership. Parent links form a tree rooted
// at the source. InTurf is set at creation and never changes. Priority is set
// before the node is pushed and never changes afterwards.
type Node struct {
	Point    grid.Point
	Parent   *Node
	Priority float64 // frontier ordering value (heuristic, or cost+heuristic for A*)
	Cost     float64 // weighted cost from the source
	InTurf   bool
}

// Result is the outcome of one search run.
type Result struct {
	Algorithm Algorithm
	// Path runs source → destination; nil when not found.
	Path []grid.Point
	// Cost is the reported path cost under the algorithm's cost model.
	Cost float64
	// WeightedCost is the turf-weighted path cost, whatever the algorithm.
	// Use it to compare strategies on one cost model.
	WeightedCost float64
	// TurfSteps counts path steps landing on turf, whatever the cost model.
	TurfSteps int
	// Expanded counts nodes popped and expanded (successors generated).
	Expanded int
	Found    bool
}

// Steps returns the number of edges in the path.
func (r *Result) Steps() int {
	if len(r.Path) == 0 {
		return 0
	}

	return len(r.Path) - 1
}

// Option configures an Engine via functional arguments.
type Option func(*Options)

// Options holds Engine parameters and hooks.
type Options struct {
	// TurfWeightedBFS makes BFS report turf-weighted cost. Off by default.
	TurfWeightedBFS bool

	// OnExpand is called once for every node expanded.
	OnExpand func(p grid.Point)

	// OnGenerate is called for every legal successor generated,
	// before frontier membership is checked.
	OnGenerate func(p grid.Point)
}

// DefaultOptions returns Options with unweighted BFS cost and no-op hooks.
func DefaultOptions() Options {
	return Options{
		TurfWeightedBFS: false,
		OnExpand:        func(grid.Point) {},
		OnGenerate:      func(grid.Point) {},
	}
}

// WithTurfWeightedBFS makes BFS report turf-weighted path cost.
func WithTurfWeightedBFS() Option {
	return func(o *Options) {
		o.TurfWeightedBFS = true
	}
}

// WithOnExpand registers a callback run for each expanded node.
func WithOnExpand(fn func(p grid.Point)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnGenerate registers a callback run for each generated successor.
func WithOnGenerate(fn func(p grid.Point)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnGenerate = fn
		}
	}
}
