package grid

import (
	"errors"
	"fmt"
	"math"
)

// ErrEmptyGrid indicates a grid with a non-positive width or height.
var ErrEmptyGrid = errors.New("grid: width and height must be positive")

// Default grid dimensions.
const (
	DefaultWidth  = 50
	DefaultHeight = 50
)

// Connectivity selects the direction set: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "4" or "8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "8"
	}

	return "4"
}

// Point is a cell coordinate. Two points are the same cell iff X and Y match.
type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns the displacement from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// String formats p as "x,y", the same form the polygon files use.
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(float64(b.X-a.X), float64(b.Y-a.Y))
}

// Options contains tunable parameters for grid construction.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultOptions returns Options with Conn=Conn4.
func DefaultOptions() Options {
	return Options{Conn: Conn4}
}

// Grid is a bounded Width × Height coordinate space. It is immutable once built.
type Grid struct {
	Width, Height int
	Conn          Connectivity
	directions    []Point
}
