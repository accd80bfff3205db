package main

import (
	"io"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestViewer runs the reference world through run and wires a simulation screen.
func newTestViewer(t *testing.T) *viewer {
	t.Helper()
	cfg, err := parseFlags([]string{
		"-width", "12", "-height", "8", "-src", "0,0", "-dst", "11,7",
		"-enclosures", writeWorld(t, "enc.txt", "4,2;7,2;7,5;4,5\n"),
	}, io.Discard)
	require.NoError(t, err)
	outcomes, cls, err := run(cfg, io.Discard)
	require.NoError(t, err)
	require.Len(t, outcomes, 4)

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	return &viewer{screen: screen, cls: cls, src: cfg.src, dst: cfg.dst, outcomes: outcomes}
}

// screenRow reads row y of the simulation screen as text.
func screenRow(t *testing.T, s tcell.Screen, y int) string {
	t.Helper()
	cells, w, _ := s.(tcell.SimulationScreen).GetContents()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		if rs := cells[y*w+x].Runes; len(rs) > 0 {
			sb.WriteRune(rs[0])
		} else {
			sb.WriteRune(' ')
		}
	}

	return sb.String()
}

func TestDrawText(t *testing.T) {
	v := newTestViewer(t)
	drawText(v.screen, 3, 1, "hello", styleStatus)
	v.screen.Show()

	assert.Equal(t, "hello", screenRow(t, v.screen, 1)[3:8])
}

func TestViewer_Draw(t *testing.T) {
	v := newTestViewer(t)
	v.draw()

	// grid row 7 is screen row 0; the destination sits at its right end
	assert.Equal(t, "D", screenRow(t, v.screen, 0)[11:12])
	assert.Equal(t, "S", screenRow(t, v.screen, 7)[0:1])
	assert.Contains(t, screenRow(t, v.screen, v.statusRow()), "bfs1")
}

func TestViewer_Keys(t *testing.T) {
	v := newTestViewer(t)
	tab := tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone)
	left := tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)

	assert.True(t, v.handle(tab))
	assert.Equal(t, 1, v.cur)
	assert.True(t, v.handle(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)))
	assert.Equal(t, 2, v.cur)
	assert.True(t, v.handle(left))
	assert.True(t, v.handle(left))
	assert.True(t, v.handle(left))
	assert.Equal(t, 3, v.cur, "left wraps to the last run")
	assert.True(t, v.handle(tab))
	assert.Equal(t, 0, v.cur, "tab wraps to the first run")
	assert.True(t, v.handle(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)), "other keys are ignored")

	assert.False(t, v.handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.False(t, v.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.False(t, v.handle(nil))
}

func TestViewer_Run(t *testing.T) {
	v := newTestViewer(t)
	sim := v.screen.(tcell.SimulationScreen)
	sim.InjectKey(tcell.KeyTab, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyTab, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	v.run()

	assert.Equal(t, 2, v.cur)
	assert.Contains(t, screenRow(t, v.screen, v.statusRow()), "gbfs1")
}
