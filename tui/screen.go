// Package tui runs the game in a terminal. Terminals deliver their own key
// repeat, so held keys produce a stream of key-down events as they do from an
// OS window.
package tui

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/sfx"
	"github.com/milk9111/platformer/sim"
	"golang.org/x/image/colornames"
)

var (
	skyStyle      = tcell.StyleDefault.Background(rgb(colornames.Skyblue.R, colornames.Skyblue.G, colornames.Skyblue.B))
	platformStyle = tcell.StyleDefault.Background(rgb(colornames.Saddlebrown.R, colornames.Saddlebrown.G, colornames.Saddlebrown.B))
	bodyStyle     = skyStyle.Foreground(rgb(colornames.Crimson.R, colornames.Crimson.G, colornames.Crimson.B)).Bold(true)
	statusStyle   = tcell.StyleDefault.Reverse(true)
)

func rgb(r, g, b uint8) tcell.Color {
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Screen is a terminal Frontend.
type Screen struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}

	audio bool
	jumps uint64
}

// New initializes the terminal. Close must be called to restore it.
func New(withAudio bool) (*Screen, error) {
	sc, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tui: new screen: %w", err)
	}
	return NewWithScreen(sc, withAudio)
}

// NewWithScreen wraps an uninitialized tcell screen.
func NewWithScreen(sc tcell.Screen, withAudio bool) (*Screen, error) {
	if err := sc.Init(); err != nil {
		return nil, fmt.Errorf("tui: init screen: %w", err)
	}
	s := &Screen{
		screen: sc,
		events: make(chan tcell.Event, 100),
		done:   make(chan struct{}),
	}
	if withAudio {
		sr := beep.SampleRate(sfx.SampleRate)
		if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
			log.Printf("tui: audio disabled: %v", err)
		} else {
			s.audio = true
		}
	}
	go s.pump()
	return s, nil
}

func (s *Screen) pump() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.done:
			return
		}
	}
}

// Close restores the terminal and stops audio.
func (s *Screen) Close() {
	close(s.done)
	if s.audio {
		speaker.Close()
	}
	s.screen.Fini()
}

func (s *Screen) PollEvents(dst []sim.Event) ([]sim.Event, error) {
	for {
		select {
		case ev := <-s.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if e, ok := mapKey(ev.Key(), ev.Rune(), ev.Modifiers()); ok {
					dst = append(dst, e)
				}
			case *tcell.EventResize:
				s.screen.Sync()
			}
		default:
			return dst, nil
		}
	}
}

func mapKey(k tcell.Key, r rune, mod tcell.ModMask) (sim.Event, bool) {
	switch k {
	case tcell.KeyLeft:
		return sim.KeyDown(sim.KeyLeft), true
	case tcell.KeyRight:
		return sim.KeyDown(sim.KeyRight), true
	case tcell.KeyUp:
		return sim.KeyDown(sim.KeyJump), true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return sim.Event{Kind: sim.EventQuit}, true
	case tcell.KeyRune:
		if mod&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return sim.Event{}, false
		}
		switch r {
		case ' ':
			return sim.KeyDown(sim.KeyJump), true
		case 'p', 'P':
			return sim.Event{Kind: sim.EventPause}, true
		case 'q', 'Q':
			return sim.Event{Kind: sim.EventQuit}, true
		}
	}
	return sim.Event{}, false
}

// Present draws the world scaled to the terminal, with a status line at the
// bottom.
func (s *Screen) Present(w *sim.World) error {
	cols, rows := s.screen.Size()
	if cols <= 0 || rows <= 1 {
		return nil
	}
	v := newViewport(w, cols, rows-1)

	s.screen.Clear()
	for y := range v.rows {
		for x := range v.cols {
			s.screen.SetContent(x, y, ' ', nil, skyStyle)
		}
	}
	for _, p := range w.Platforms {
		x0, y0, x1, y1 := v.cells(p.X, p.Y, p.Width, p.Height)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				s.screen.SetContent(x, y, ' ', nil, platformStyle)
			}
		}
	}
	b := &w.Body
	glyph := '>'
	if b.FacingLeft {
		glyph = '<'
	}
	x0, y0, x1, y1 := v.cells(b.Pos.X, b.Pos.Y, b.Width, b.Height)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			s.screen.SetContent(x, y, glyph, nil, bodyStyle)
		}
	}

	status := fmt.Sprintf(" x=%.1f y=%.1f vx=%.2f vy=%.2f jumping=%t  arrows/space: move  p: pause  q: quit",
		b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y, b.Jumping)
	for x := range cols {
		r := ' '
		if x < len(status) {
			r = rune(status[x])
		}
		s.screen.SetContent(x, rows-1, r, nil, statusStyle)
	}
	s.screen.Show()

	if w.Jumps != s.jumps {
		s.jumps = w.Jumps
		s.playJump()
	}
	return nil
}

func (s *Screen) playJump() {
	if !s.audio {
		return
	}
	speaker.Play(sfx.JumpStreamer(beep.SampleRate(sfx.SampleRate)))
}

// viewport maps world units onto a grid of terminal cells.
type viewport struct {
	cols, rows   int
	cellW, cellH float64
}

func newViewport(w *sim.World, cols, rows int) viewport {
	return viewport{
		cols:  cols,
		rows:  rows,
		cellW: w.Width / float64(cols),
		cellH: w.Height / float64(rows),
	}
}

// cells returns the inclusive cell range covered by a rectangle, clamped to
// the grid. Every rectangle covers at least one cell so thin platforms stay
// visible.
func (v viewport) cells(x, y, width, height float64) (x0, y0, x1, y1 int) {
	clampCol := func(f float64) int { return int(common.Clamp(f, 0, float64(v.cols-1))) }
	clampRow := func(f float64) int { return int(common.Clamp(f, 0, float64(v.rows-1))) }
	x0 = clampCol(x / v.cellW)
	y0 = clampRow(y / v.cellH)
	x1 = max(x0, clampCol((x+width)/v.cellW-0.5))
	y1 = max(y0, clampRow((y+height)/v.cellH-0.5))
	return x0, y0, x1, y1
}
