package grid_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/turfpath/grid"
)

// TestNewGrid_Errors verifies that NewGrid rejects non-positive sizes.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		w, h int
	}{
		{"ZeroWidth", 0, 5},
		{"ZeroHeight", 5, 0},
		{"Negative", -1, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.NewGrid(tc.w, tc.h, grid.DefaultOptions())
			if !errors.Is(err, grid.ErrEmptyGrid) {
				t.Errorf("NewGrid(%d,%d) error = %v; want ErrEmptyGrid", tc.w, tc.h, err)
			}
		})
	}
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := grid.NewGrid(3, 2, grid.DefaultOptions())
	require.NoError(t, err)

	for _, p := range []grid.Point{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, g.InBounds(p), "InBounds(%v)", p)
	}
	for _, p := range []grid.Point{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, g.InBounds(p), "InBounds(%v)", p)
	}
}

// TestDirections verifies the size and order of both direction sets.
func TestDirections(t *testing.T) {
	g4 := grid.Default()
	assert.Equal(t, []grid.Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}, g4.Directions())
	assert.Equal(t, 50, g4.Width)
	assert.Equal(t, 50, g4.Height)

	g8, err := grid.NewGrid(4, 4, grid.Options{Conn: grid.Conn8})
	require.NoError(t, err)
	assert.Len(t, g8.Directions(), 8)
	assert.True(t, g8.IsStep(grid.Point{1, 1}, grid.Point{2, 2}))
	assert.False(t, g4.IsStep(grid.Point{1, 1}, grid.Point{2, 2}))
	assert.False(t, g4.IsStep(grid.Point{1, 1}, grid.Point{1, 1}))
}

// TestNeighbors_Corner checks that corner cells only get in-bounds neighbours.
func TestNeighbors_Corner(t *testing.T) {
	g, _ := grid.NewGrid(3, 3, grid.DefaultOptions())
	assert.Equal(t, []grid.Point{{1, 0}, {0, 1}}, g.Neighbors(grid.Point{0, 0}))
	assert.Len(t, g.Neighbors(grid.Point{1, 1}), 4)
}

// TestIndexCoordinate round-trips every cell of a 4×3 grid.
func TestIndexCoordinate(t *testing.T) {
	g, _ := grid.NewGrid(4, 3, grid.DefaultOptions())
	for i := 0; i < g.Size(); i++ {
		assert.Equal(t, i, g.Index(g.Coordinate(i)))
	}
	assert.Equal(t, grid.Point{X: 1, Y: 2}, g.Coordinate(9))
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, grid.Distance(grid.Point{0, 0}, grid.Point{3, 4}))
	assert.Equal(t, 0.0, grid.Distance(grid.Point{7, 7}, grid.Point{7, 7}))
	assert.InDelta(t, math.Sqrt2, grid.Distance(grid.Point{0, 0}, grid.Point{1, 1}), 1e-12)
}

func TestPointString(t *testing.T) {
	assert.Equal(t, "8,10", grid.Point{8, 10}.String())
	assert.Equal(t, "4", grid.Conn4.String())
	assert.Equal(t, "8", grid.Conn8.String())
}
