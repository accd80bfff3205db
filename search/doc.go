// Package search finds a route between two cells of a grid obstructed by
// enclosure polygons and overlaid by turf polygons, using one of four
// strategies that share a single expansion step.
//
// What
//
//   - BFS:    FIFO frontier; goal tested when the destination is generated.
//     Minimal step count on the unweighted grid.
//   - DFS:    LIFO frontier, first direction explored first; goal tested on pop.
//     Simple path, no optimality guarantee.
//   - Greedy: priority frontier ordered by Euclidean distance to the destination;
//     goal tested on pop.
//   - AStar:  priority frontier ordered by accumulated cost plus Euclidean
//     distance; goal tested on pop. Cost-optimal.
//
// Every strategy pops a node, finalizes it in the explored set, generates its
// successors in direction order, drops blocked or explored ones, tags turf
// membership, assigns cost and priority, and offers them to its frontier.
// A coordinate is expanded at most once per run.
//
// Cost model
//
//	A step costs its Euclidean length (1 under grid.Conn4). A step landing on a
//	turf cell costs 1+TurfPenalty times that. BFS reports unweighted cost unless
//	WithTurfWeightedBFS is set; DFS always reports unweighted cost; Greedy and
//	AStar report weighted cost. The source contributes nothing.
//
// Outcomes
//
//   - Found:     Result.Path runs source → destination, Result.Cost is its cost.
//   - Not found: Result.Found == false, Result.Path == nil, error == nil.
//     Out-of-bounds endpoints and a blocked source are reported this way
//     without expanding anything. A blocked destination is searched for
//     until the frontier is exhausted.
//   - Trivial:   source == destination yields a one-point path of cost 0 and
//     zero expansions.
//
// State
//
//	Each run allocates its own explored set, frontier and node records, keyed by
//	coordinate. An Engine holds only read-only inputs and may be shared across
//	goroutines.
//
// Complexity (N = W×H cells, d = directions)
//
//   - BFS, DFS:      O(N·d) time, O(N) memory.
//   - Greedy, AStar: O(N·d·log N) time, O(N) memory.
//
// Errors
//
//   - ErrNilClassifier     NewEngine received a nil classifier.
//   - ErrUnknownAlgorithm  Run received an algorithm outside BFS..AStar,
//     or ParseAlgorithm an unknown name.
package search
