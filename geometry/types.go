package geometry

import (
	"errors"
	"fmt"
)

// Sentinel errors for geometry construction.
var (
	// ErrTooFewVertices indicates a polygon with fewer than three vertices.
	ErrTooFewVertices = errors.New("geometry: polygon needs at least three vertices")

	// ErrNilGrid is returned when NewClassifier receives a nil grid.
	ErrNilGrid = errors.New("geometry: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("geometry: invalid option supplied")
)

// DefaultBuffer is the distance within which a point counts as touching a polygon edge.
const DefaultBuffer = 0.01

// Option configures a Classifier.
type Option func(*Options)

// Options holds Classifier parameters.
type Options struct {
	// Buffer is the edge distance treated as contact. Must be >= 0.
	Buffer float64

	err error
}

// DefaultOptions returns Options with Buffer=DefaultBuffer.
func DefaultOptions() Options {
	return Options{Buffer: DefaultBuffer}
}

// WithBuffer sets the contact buffer.
//
//	b >= 0: use b (0 means boundary points only)
//	b < 0:  invalid option → ErrOptionViolation
func WithBuffer(b float64) Option {
	return func(o *Options) {
		if b < 0 {
			o.err = fmt.Errorf("%w: buffer cannot be negative (%g)", ErrOptionViolation, b)
			return
		}
		o.Buffer = b
	}
}
