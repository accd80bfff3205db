// Package grid models the bounded 2D integer coordinate space a search runs
// over: cell coordinates, bounds, and the per-cell direction set.
//
// What:
//
//   - Point is a comparable (x, y) value; it is the identity of a search node.
//   - Grid holds Width × Height bounds and a precomputed direction set.
//   - Conn4 (N, E, S, W) is the default; Conn8 adds the four diagonals.
//   - StepDistances and ReachableCount flood-fill the grid under a caller
//     supplied "blocked" predicate.
//
// Why:
//
//   - Every search strategy needs the same neighbour generation and bounds check.
//   - Flood fill gives an independent reference for shortest step counts and
//     for the number of cells reachable from a source.
//
// Complexity:
//
//   - InBounds, Index, Coordinate: O(1).
//   - StepDistances, ReachableCount: O(W×H×d), Memory: O(W×H) (d = 4 or 8).
//
// Errors:
//
//   - ErrEmptyGrid: width or height is not positive.
package grid
