package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/platformer/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapKey(t *testing.T) {
	cases := []struct {
		name string
		key  tcell.Key
		r    rune
		mod  tcell.ModMask
		want sim.Event
		ok   bool
	}{
		{"left", tcell.KeyLeft, 0, 0, sim.KeyDown(sim.KeyLeft), true},
		{"right", tcell.KeyRight, 0, 0, sim.KeyDown(sim.KeyRight), true},
		{"up_jumps", tcell.KeyUp, 0, 0, sim.KeyDown(sim.KeyJump), true},
		{"space_jumps", tcell.KeyRune, ' ', 0, sim.KeyDown(sim.KeyJump), true},
		{"pause", tcell.KeyRune, 'p', 0, sim.Event{Kind: sim.EventPause}, true},
		{"quit_q", tcell.KeyRune, 'q', 0, sim.Event{Kind: sim.EventQuit}, true},
		{"quit_escape", tcell.KeyEscape, 0, 0, sim.Event{Kind: sim.EventQuit}, true},
		{"alt_q_ignored", tcell.KeyRune, 'q', tcell.ModAlt, sim.Event{}, false},
		{"other_rune", tcell.KeyRune, 'x', 0, sim.Event{}, false},
		{"down_ignored", tcell.KeyDown, 0, 0, sim.Event{}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := mapKey(c.key, c.r, c.mod)
			assert.Equal(t, c.ok, ok)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestViewportCells(t *testing.T) {
	w := sim.NewWorld()
	v := newViewport(w, 80, 30)

	x0, y0, x1, y1 := v.cells(100, 400, 200, 20)
	assert.Equal(t, []int{10, 20, 29, 20}, []int{x0, y0, x1, y1})

	x0, y0, x1, y1 = v.cells(790, 590, 32, 32)
	assert.Equal(t, []int{79, 29, 79, 29}, []int{x0, y0, x1, y1})

	x0, _, x1, _ = v.cells(-50, 0, 32, 32)
	assert.Equal(t, 0, x0)
	assert.Equal(t, 0, x1)
}

func TestPresentDrawsWorld(t *testing.T) {
	sc := tcell.NewSimulationScreen("")
	s, err := NewWithScreen(sc, false)
	require.NoError(t, err)
	defer s.Close()
	sc.SetSize(80, 31)

	w := sim.NewWorld()
	w.Body.FacingLeft = true
	require.NoError(t, s.Present(w))

	r, _, style, _ := sc.GetContent(10, 15)
	assert.Equal(t, '<', r)
	assert.Equal(t, bodyStyle, style)

	_, _, style, _ = sc.GetContent(15, 20)
	assert.Equal(t, platformStyle, style)

	_, _, style, _ = sc.GetContent(0, 0)
	assert.Equal(t, skyStyle, style)

	r, _, _, _ = sc.GetContent(1, 30)
	assert.Equal(t, 'x', r)

	evs, err := s.PollEvents(nil)
	require.NoError(t, err)
	assert.Empty(t, evs)
}
