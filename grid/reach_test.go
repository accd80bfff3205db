package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// wall blocks the middle column of a 5×5 grid except for its top cell.
//
//	. . . . .      y=0 (gap at x=2)
//	. . # . .
//	. . # . .
//	. . # . .
//	. . # . .
func wall(p Point) bool {
	return p.X == 2 && p.Y > 0
}

// TestStepDistances_Detour verifies that the flood fill routes around a wall.
func TestStepDistances_Detour(t *testing.T) {
	g, _ := NewGrid(5, 5, DefaultOptions())
	dist := g.StepDistances(Point{0, 4}, wall)

	assert.Equal(t, 0, dist[g.Index(Point{0, 4})])
	// up 4, across 4, down 4
	assert.Equal(t, 12, dist[g.Index(Point{4, 4})])
	assert.Equal(t, -1, dist[g.Index(Point{2, 3})], "blocked cell must stay unreachable")
}

// TestStepDistances_BlockedSource yields no reachable cells.
func TestStepDistances_BlockedSource(t *testing.T) {
	g, _ := NewGrid(5, 5, DefaultOptions())
	for _, d := range g.StepDistances(Point{2, 2}, wall) {
		assert.Equal(t, -1, d)
	}
	assert.Equal(t, 0, g.ReachableCount(Point{-1, 0}, nil))
}

// TestReachableCount_Enclosed counts the cells outside a closed box.
func TestReachableCount_Enclosed(t *testing.T) {
	g, _ := NewGrid(10, 10, DefaultOptions())
	box := func(p Point) bool { return p.X >= 3 && p.X <= 7 && p.Y >= 3 && p.Y <= 7 }
	assert.Equal(t, 75, g.ReachableCount(Point{0, 0}, box))
	assert.Equal(t, 100, g.ReachableCount(Point{0, 0}, nil))
}

// TestStepDistances_Conn8 checks diagonal moves shorten distances.
func TestStepDistances_Conn8(t *testing.T) {
	g, _ := NewGrid(4, 4, Options{Conn: Conn8})
	dist := g.StepDistances(Point{0, 0}, nil)
	assert.Equal(t, 3, dist[g.Index(Point{3, 3})])
}
