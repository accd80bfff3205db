package render

import (
	"github.com/katalvlaran/turfpath/geometry"
	"github.com/katalvlaran/turfpath/grid"
)

// Scene is everything drawn for one search run.
type Scene struct {
	Grid         *grid.Grid
	Enclosures   []geometry.Polygon
	Turfs        []geometry.Polygon
	Source, Dest grid.Point
	Path         []grid.Point // nil when no path was found
}

// NewScene collects the classifier's grid and polygons into a Scene.
func NewScene(cls *geometry.Classifier, src, dst grid.Point, path []grid.Point) Scene {
	return Scene{
		Grid:       cls.Grid(),
		Enclosures: cls.Enclosures(),
		Turfs:      cls.Turfs(),
		Source:     src,
		Dest:       dst,
		Path:       path,
	}
}

// Default image parameters.
const (
	DefaultCellSize = 12
	DefaultMargin   = 16
)

// ImageOptions controls raster output.
type ImageOptions struct {
	// CellSize is the pixel distance between adjacent grid points. Must be > 0.
	CellSize int
	// Margin is the blank border around the plot, in pixels.
	Margin int
}

// DefaultImageOptions returns CellSize=DefaultCellSize, Margin=DefaultMargin.
func DefaultImageOptions() ImageOptions {
	return ImageOptions{CellSize: DefaultCellSize, Margin: DefaultMargin}
}
