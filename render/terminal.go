package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/turfpath/geometry"
	"github.com/katalvlaran/turfpath/grid"
)

// Canvas is the drawing subset of tcell.Screen.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Cell runes used by Terminal.
const (
	RuneFree      = '.'
	RuneEnclosure = '#'
	RuneTurf      = '~'
	RunePath      = '*'
	RuneSource    = 'S'
	RuneDest      = 'D'
)

var (
	styleFree      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleEnclosure = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleTurf      = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	stylePath      = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	styleSource    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleDest      = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// Terminal draws one rune per cell of s onto c, top row first, so that
// grid row Height-1 lands on screen row 0. Cell classes come from cls.
// Precedence: source, destination, path, enclosure, turf, free.
func Terminal(c Canvas, s Scene, cls *geometry.Classifier) {
	onPath := make(map[grid.Point]bool, len(s.Path))
	for _, p := range s.Path {
		onPath[p] = true
	}

	h := s.Grid.Height
	for y := 0; y < h; y++ {
		for x := 0; x < s.Grid.Width; x++ {
			r, st := cellRune(grid.Point{X: x, Y: y}, s, cls, onPath)
			c.SetContent(x, h-1-y, r, nil, st)
		}
	}
}

func cellRune(p grid.Point, s Scene, cls *geometry.Classifier, onPath map[grid.Point]bool) (rune, tcell.Style) {
	switch {
	case p == s.Source:
		return RuneSource, styleSource
	case p == s.Dest:
		return RuneDest, styleDest
	case onPath[p]:
		return RunePath, stylePath
	case cls.IsBlocked(p):
		return RuneEnclosure, styleEnclosure
	case cls.IsInTurf(p):
		return RuneTurf, styleTurf
	}

	return RuneFree, styleFree
}
