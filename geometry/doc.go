// Package geometry classifies grid cells against polygonal obstacles.
//
// Two kinds of polygon are recognised:
//
//   - Enclosures are impassable. A cell inside an enclosure, on its boundary,
//     or within a small buffer of one of its edges is blocked.
//   - Turfs are passable but cost-elevated. A cell is "in turf" under the same
//     buffered containment test.
//
// Containment is computed with github.com/paulmach/orb/planar on float
// coordinates; the buffer keeps paths from grazing a vertex or an edge.
//
// A Classifier is pure: it copies its polygons at construction and never
// mutates them, so one Classifier may serve many runs, including concurrent ones.
//
// Errors:
//
//   - ErrTooFewVertices: a polygon has fewer than three vertices.
//   - ErrNilGrid: NewClassifier received a nil grid.
//   - ErrOptionViolation: an invalid Option (e.g. negative buffer).
package geometry
