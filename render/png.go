package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/turfpath/geometry"
	"github.com/katalvlaran/turfpath/grid"
)

var (
	colorBackground = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorGridLine   = color.RGBA{R: 225, G: 225, B: 225, A: 255}
	colorTurf       = color.RGBA{R: 30, G: 150, B: 60, A: 255}
	colorEnclosure  = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	colorPath       = color.RGBA{R: 30, G: 90, B: 220, A: 255}
	colorSource     = color.RGBA{R: 220, G: 30, B: 30, A: 255}
	colorDest       = color.RGBA{R: 240, G: 170, B: 0, A: 255}
)

// plotter maps grid points to pixels with y growing upwards.
type plotter struct {
	dc     *gg.Context
	cell   float64
	margin float64
	height int
}

func (p plotter) xy(pt grid.Point) (float64, float64) {
	return p.margin + float64(pt.X)*p.cell, p.margin + float64(p.height-1-pt.Y)*p.cell
}

// Image draws s into a new raster.
// A non-positive CellSize falls back to DefaultCellSize.
func Image(s Scene, opts ImageOptions) image.Image {
	return draw(s, opts).Image()
}

// SavePNG draws s and writes it to path as PNG.
func SavePNG(path string, s Scene, opts ImageOptions) error {
	if err := draw(s, opts).SavePNG(path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}

	return nil
}

func draw(s Scene, opts ImageOptions) *gg.Context {
	if opts.CellSize <= 0 {
		opts.CellSize = DefaultCellSize
	}
	if opts.Margin < 0 {
		opts.Margin = 0
	}
	w, h := s.Grid.Width, s.Grid.Height
	dc := gg.NewContext((w-1)*opts.CellSize+2*opts.Margin+1, (h-1)*opts.CellSize+2*opts.Margin+1)
	p := plotter{dc: dc, cell: float64(opts.CellSize), margin: float64(opts.Margin), height: h}

	dc.SetColor(colorBackground)
	dc.Clear()

	dc.SetColor(colorGridLine)
	dc.SetLineWidth(1)
	for x := 0; x < w; x++ {
		x0, y0 := p.xy(grid.Point{X: x, Y: 0})
		x1, y1 := p.xy(grid.Point{X: x, Y: h - 1})
		dc.DrawLine(x0, y0, x1, y1)
	}
	for y := 0; y < h; y++ {
		x0, y0 := p.xy(grid.Point{X: 0, Y: y})
		x1, y1 := p.xy(grid.Point{X: w - 1, Y: y})
		dc.DrawLine(x0, y0, x1, y1)
	}
	dc.Stroke()

	p.outlines(s.Turfs, colorTurf)
	p.outlines(s.Enclosures, colorEnclosure)

	if len(s.Path) > 1 {
		dc.SetColor(colorPath)
		dc.SetLineWidth(p.cell / 4)
		dc.MoveTo(p.xy(s.Path[0]))
		for _, pt := range s.Path[1:] {
			dc.LineTo(p.xy(pt))
		}
		dc.Stroke()
	}

	radius := p.cell / 3
	p.disc(s.Source, radius, colorSource)
	p.disc(s.Dest, radius, colorDest)

	return dc
}

func (p plotter) outlines(polys []geometry.Polygon, c color.Color) {
	p.dc.SetColor(c)
	p.dc.SetLineWidth(2)
	for _, pg := range polys {
		vs := pg.Vertices()
		if len(vs) == 0 {
			continue
		}
		p.dc.MoveTo(p.xy(vs[0]))
		for _, v := range vs[1:] {
			p.dc.LineTo(p.xy(v))
		}
		p.dc.ClosePath()
		p.dc.Stroke()
	}
}

func (p plotter) disc(pt grid.Point, r float64, c color.Color) {
	x, y := p.xy(pt)
	p.dc.SetColor(c)
	p.dc.DrawCircle(x, y, r)
	p.dc.Fill()
}
