package render_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/turfpath/geometry"
	"github.com/katalvlaran/turfpath/grid"
	"github.com/katalvlaran/turfpath/render"
	"github.com/katalvlaran/turfpath/search"
)

// canvas records the last rune written per screen cell.
type canvas map[[2]int]rune

func (c canvas) SetContent(x, y int, r rune, _ []rune, _ tcell.Style) { c[[2]int{x, y}] = r }

func (c canvas) row(y, width int) string {
	out := make([]rune, width)
	for x := range out {
		out[x] = c[[2]int{x, y}]
	}

	return string(out)
}

// fixture is a 7×5 grid with a 3×3 block, turf in the top-right corner and a BFS path.
func fixture(t *testing.T) (*geometry.Classifier, render.Scene) {
	t.Helper()
	g, err := grid.NewGrid(7, 5, grid.DefaultOptions())
	require.NoError(t, err)
	block := geometry.Rect(grid.Point{X: 2, Y: 1}, grid.Point{X: 4, Y: 3})
	turf := geometry.Rect(grid.Point{X: 6, Y: 3}, grid.Point{X: 7, Y: 4})
	cls, err := geometry.NewClassifier(g, []geometry.Polygon{block}, []geometry.Polygon{turf})
	require.NoError(t, err)

	eng, err := search.NewEngine(cls)
	require.NoError(t, err)
	src, dst := grid.Point{X: 0, Y: 2}, grid.Point{X: 6, Y: 2}
	res, err := eng.BFS(src, dst)
	require.NoError(t, err)
	require.True(t, res.Found)

	return cls, render.NewScene(cls, src, dst, res.Path)
}

func TestTerminal(t *testing.T) {
	cls, scene := fixture(t)
	c := canvas{}
	render.Terminal(c, scene, cls)

	require.Len(t, c, 7*5)
	// screen row 0 is grid row 4
	assert.Equal(t, '~', c[[2]int{6, 0}])
	assert.Equal(t, "S", string(c[[2]int{0, 2}]))
	assert.Equal(t, "D", string(c[[2]int{6, 2}]))
	assert.Equal(t, "##", c.row(2, 7)[2:4])

	stars := 0
	for _, r := range c {
		if r == render.RunePath {
			stars++
		}
	}
	assert.Equal(t, len(scene.Path)-2, stars)
}

func TestImage(t *testing.T) {
	_, scene := fixture(t)
	opts := render.DefaultImageOptions()
	img := render.Image(scene, opts)

	b := img.Bounds()
	assert.Equal(t, 6*opts.CellSize+2*opts.Margin+1, b.Dx())
	assert.Equal(t, 4*opts.CellSize+2*opts.Margin+1, b.Dy())

	// source (0,2) sits at column 0, row Height-1-2 = 2 from the top
	x, y := opts.Margin, opts.Margin+2*opts.CellSize
	r, g, bl, _ := img.At(x, y).RGBA()
	assert.Greater(t, r>>8, uint32(180), "source disc is red")
	assert.Less(t, g>>8, uint32(80))
	assert.Less(t, bl>>8, uint32(80))

	// the top-left corner is margin background
	r, g, bl, _ = img.At(0, 0).RGBA()
	assert.Equal(t, []uint32{255, 255, 255}, []uint32{r >> 8, g >> 8, bl >> 8})
}

func TestSavePNG(t *testing.T) {
	_, scene := fixture(t)
	scene.Path = nil
	path := filepath.Join(t.TempDir(), "scene.png")
	require.NoError(t, render.SavePNG(path, scene, render.ImageOptions{}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	assert.Error(t, render.SavePNG(filepath.Join(t.TempDir(), "no", "dir.png"), scene, render.DefaultImageOptions()))
}

func TestImage_SkipsEmptyPolygons(t *testing.T) {
	_, scene := fixture(t)
	scene.Enclosures = append(scene.Enclosures, geometry.Polygon{})
	scene.Turfs = append(scene.Turfs, geometry.Polygon{})

	assert.NotPanics(t, func() { render.Image(scene, render.DefaultImageOptions()) })
}
