package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/turfpath/geometry"
	"github.com/katalvlaran/turfpath/grid"
	"github.com/katalvlaran/turfpath/render"
)

var styleStatus = tcell.StyleDefault.Reverse(true)

// viewer shows one outcome at a time on a tcell screen.
type viewer struct {
	screen   tcell.Screen
	cls      *geometry.Classifier
	src, dst grid.Point
	outcomes []outcome
	cur      int
}

// view opens the terminal and runs the viewer until the user quits.
func view(cls *geometry.Classifier, src, dst grid.Point, outcomes []outcome) error {
	if len(outcomes) == 0 {
		return nil
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	v := &viewer{screen: screen, cls: cls, src: src, dst: dst, outcomes: outcomes}
	v.run()

	return nil
}

// run draws and handles events until Esc, q or Ctrl-C.
// Tab/Right and Left cycle runs.
func (v *viewer) run() {
	for {
		v.draw()
		if !v.handle(v.screen.PollEvent()) {
			return
		}
	}
}

// statusRow is the screen row of the status line, one below the grid.
func (v *viewer) statusRow() int {
	return v.cls.Grid().Height + 1
}

func (v *viewer) draw() {
	v.screen.Clear()
	o := v.outcomes[v.cur]
	render.Terminal(v.screen, render.NewScene(v.cls, v.src, v.dst, o.result.Path), v.cls)
	status := fmt.Sprintf(" %s  found=%t  cost=%g  expanded=%d   [tab] next  [q] quit ",
		o.record.Name(), o.result.Found, o.result.Cost, o.result.Expanded)
	drawText(v.screen, 0, v.statusRow(), status, styleStatus)
	v.screen.Show()
}

// handle applies ev and reports whether the viewer keeps running.
func (v *viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case nil:
		return false // screen finalized
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventKey:
		n := len(v.outcomes)
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyTab || ev.Key() == tcell.KeyRight:
			v.cur = (v.cur + 1) % n
		case ev.Key() == tcell.KeyLeft:
			v.cur = (v.cur + n - 1) % n
		}
	}

	return true
}

func drawText(c render.Canvas, x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		c.SetContent(x+i, y, r, nil, style)
	}
}
