package geometry

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/turfpath/grid"
)

// Polygon is a simple closed shape over integer vertices. The edge from the
// last vertex back to the first is implicit.
type Polygon struct {
	vertices []grid.Point
	ring     orb.Ring
	bound    orb.Bound
}

// NewPolygon builds a Polygon from its vertices in order.
// A trailing vertex equal to the first one is accepted and dropped.
// Returns ErrTooFewVertices if fewer than three distinct-position vertices remain.
func NewPolygon(vertices []grid.Point) (Polygon, error) {
	vs := make([]grid.Point, len(vertices))
	copy(vs, vertices)
	if n := len(vs); n > 1 && vs[0] == vs[n-1] {
		vs = vs[:n-1]
	}
	if len(vs) < 3 {
		return Polygon{}, ErrTooFewVertices
	}

	ring := make(orb.Ring, 0, len(vs)+1)
	for _, v := range vs {
		ring = append(ring, orb.Point{float64(v.X), float64(v.Y)})
	}
	ring = append(ring, ring[0])

	return Polygon{vertices: vs, ring: ring, bound: ring.Bound()}, nil
}

// MustPolygon is like NewPolygon but panics on error. Intended for fixtures.
func MustPolygon(vertices ...grid.Point) Polygon {
	p, err := NewPolygon(vertices)
	if err != nil {
		panic(err)
	}

	return p
}

// Rect returns the axis-aligned rectangle with opposite corners a and b.
func Rect(a, b grid.Point) Polygon {
	return MustPolygon(
		grid.Point{X: a.X, Y: a.Y},
		grid.Point{X: b.X, Y: a.Y},
		grid.Point{X: b.X, Y: b.Y},
		grid.Point{X: a.X, Y: b.Y},
	)
}

// Vertices returns a copy of the polygon's vertices.
func (pg Polygon) Vertices() []grid.Point {
	out := make([]grid.Point, len(pg.vertices))
	copy(out, pg.vertices)

	return out
}

// Contains reports whether p is inside pg, on its boundary, or within buffer of an edge.
// Complexity: O(V) for V vertices.
func (pg Polygon) Contains(p grid.Point, buffer float64) bool {
	if len(pg.ring) == 0 {
		return false
	}
	pt := orb.Point{float64(p.X), float64(p.Y)}
	if !pg.bound.Pad(buffer).Contains(pt) {
		return false
	}
	// RingContains counts boundary points as inside.
	if planar.RingContains(pg.ring, pt) {
		return true
	}
	if buffer <= 0 {
		return false
	}
	for i := 0; i < len(pg.ring)-1; i++ {
		if planar.DistanceFromSegment(pg.ring[i], pg.ring[i+1], pt) <= buffer {
			return true
		}
	}

	return false
}
