package grid

var (
	directions4 = []Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	directions8 = []Point{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewGrid constructs a Grid of the given size.
// Returns ErrEmptyGrid if width or height is not positive.
// Complexity: O(1).
func NewGrid(width, height int, opts Options) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	dirs := directions4
	if opts.Conn == Conn8 {
		dirs = directions8
	}
	// private copy so callers mutating Directions() cannot reach the tables
	own := make([]Point, len(dirs))
	copy(own, dirs)

	return &Grid{
		Width:      width,
		Height:     height,
		Conn:       opts.Conn,
		directions: own,
	}, nil
}

// Default returns the 50×50, 4-connected grid.
func Default() *Grid {
	g, _ := NewGrid(DefaultWidth, DefaultHeight, DefaultOptions())

	return g
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Directions returns the direction set in its fixed order.
// The slice is shared; callers must not modify it.
func (g *Grid) Directions() []Point {
	return g.directions
}

// IsStep reports whether b is exactly one direction vector away from a.
func (g *Grid) IsStep(a, b Point) bool {
	d := b.Sub(a)
	for _, dir := range g.directions {
		if d == dir {
			return true
		}
	}

	return false
}

// Neighbors returns the in-bounds neighbours of p in direction order.
func (g *Grid) Neighbors(p Point) []Point {
	out := make([]Point, 0, len(g.directions))
	for _, d := range g.directions {
		if q := p.Add(d); g.InBounds(q) {
			out = append(out, q)
		}
	}

	return out
}

// Size returns the number of cells.
func (g *Grid) Size() int {
	return g.Width * g.Height
}

// Index maps p to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(p Point) int {
	return p.Y*g.Width + p.X
}

// Coordinate converts a row-major index back to a Point.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Point {
	return Point{X: idx % g.Width, Y: idx / g.Width}
}
