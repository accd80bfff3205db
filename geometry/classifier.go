package geometry

import (
	"fmt"

	"github.com/katalvlaran/turfpath/grid"
)

// Classifier decides whether a cell is blocked or in turf.
type Classifier struct {
	grid       *grid.Grid
	enclosures []Polygon
	turfs      []Polygon
	buffer     float64
}

// NewClassifier builds a Classifier over g. The polygon slices are copied.
// Returns ErrNilGrid for a nil grid, ErrTooFewVertices for a polygon not built
// by NewPolygon (such as the zero value), or ErrOptionViolation for bad options.
func NewClassifier(g *grid.Grid, enclosures, turfs []Polygon, opts ...Option) (*Classifier, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := checkPolygons("enclosure", enclosures); err != nil {
		return nil, err
	}
	if err := checkPolygons("turf", turfs); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Classifier{
		grid:       g,
		enclosures: append([]Polygon(nil), enclosures...),
		turfs:      append([]Polygon(nil), turfs...),
		buffer:     o.Buffer,
	}, nil
}

// Grid returns the grid the classifier bounds-checks against.
func (c *Classifier) Grid() *grid.Grid {
	return c.grid
}

// Enclosures returns the enclosure polygons.
func (c *Classifier) Enclosures() []Polygon {
	return append([]Polygon(nil), c.enclosures...)
}

// Turfs returns the turf polygons.
func (c *Classifier) Turfs() []Polygon {
	return append([]Polygon(nil), c.turfs...)
}

// IsBlocked reports whether p is out of bounds or touches any enclosure.
func (c *Classifier) IsBlocked(p grid.Point) bool {
	if !c.grid.InBounds(p) {
		return true
	}

	return anyContains(c.enclosures, p, c.buffer)
}

// IsInTurf reports whether p touches any turf polygon.
func (c *Classifier) IsInTurf(p grid.Point) bool {
	return anyContains(c.turfs, p, c.buffer)
}

func checkPolygons(kind string, polys []Polygon) error {
	for i := range polys {
		if len(polys[i].vertices) < 3 {
			return fmt.Errorf("%w: %s %d", ErrTooFewVertices, kind, i)
		}
	}

	return nil
}

func anyContains(polys []Polygon, p grid.Point, buffer float64) bool {
	for i := range polys {
		if polys[i].Contains(p, buffer) {
			return true
		}
	}

	return false
}
