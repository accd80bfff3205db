package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/turfpath/geometry"
	"github.com/katalvlaran/turfpath/grid"
	"github.com/katalvlaran/turfpath/search"
)

// world bundles the inputs of a test instance.
type world struct {
	width, height int
	conn          grid.Connectivity
	enclosures    []geometry.Polygon
	turfs         []geometry.Polygon
}

// build returns the classifier and engine for w.
func (w world) build(t testing.TB, opts ...search.Option) (*geometry.Classifier, *search.Engine) {
	t.Helper()
	g, err := grid.NewGrid(w.width, w.height, grid.Options{Conn: w.conn})
	require.NoError(t, err)
	cls, err := geometry.NewClassifier(g, w.enclosures, w.turfs)
	require.NoError(t, err)
	eng, err := search.NewEngine(cls, opts...)
	require.NoError(t, err)

	return cls, eng
}

// referenceWorld is the 50×50 grid with one 20..30 square enclosure.
func referenceWorld() world {
	return world{
		width:      grid.DefaultWidth,
		height:     grid.DefaultHeight,
		enclosures: []geometry.Polygon{geometry.Rect(grid.Point{X: 20, Y: 20}, grid.Point{X: 30, Y: 30})},
	}
}

// requireValidPath checks endpoints, step shape, blocking and simplicity of a found path.
func requireValidPath(t testing.TB, cls *geometry.Classifier, res *search.Result, src, dst grid.Point) {
	t.Helper()
	require.True(t, res.Found, "%v: expected a path", res.Algorithm)
	require.NotEmpty(t, res.Path)
	require.Equal(t, src, res.Path[0], "%v: path must start at source", res.Algorithm)
	require.Equal(t, dst, res.Path[len(res.Path)-1], "%v: path must end at destination", res.Algorithm)

	seen := make(map[grid.Point]bool, len(res.Path))
	for i, p := range res.Path {
		require.False(t, cls.IsBlocked(p), "%v: blocked cell %v in path", res.Algorithm, p)
		require.False(t, seen[p], "%v: cell %v repeated", res.Algorithm, p)
		seen[p] = true
		if i > 0 {
			require.True(t, cls.Grid().IsStep(res.Path[i-1], p),
				"%v: %v → %v is not a single move", res.Algorithm, res.Path[i-1], p)
		}
	}
}

// weightedCost recomputes the turf-weighted cost of a path.
func weightedCost(cls *geometry.Classifier, path []grid.Point) float64 {
	c := 0.0
	for i := 1; i < len(path); i++ {
		step := grid.Distance(path[i-1], path[i])
		if cls.IsInTurf(path[i]) {
			step *= 1 + search.TurfPenalty
		}
		c += step
	}

	return c
}
