package runner

import (
	"fmt"

	"github.com/milk9111/platformer/sim"
)

// EventSource produces the input for a frame without a window, e.g. a script.
type EventSource interface {
	Events(frame uint64, w *sim.World) ([]sim.Event, error)
}

// Schedule is an EventSource that replays fixed events at given frames.
type Schedule map[uint64][]sim.Event

func (s Schedule) Events(frame uint64, _ *sim.World) ([]sim.Event, error) {
	return s[frame], nil
}

// Headless is a Frontend with no window. It asks Source for events and emits
// a quit event with the input of frame MaxFrames-1, so exactly MaxFrames
// frames run (0 means no limit).
type Headless struct {
	Source    EventSource
	MaxFrames uint64
	// OnPresent, when set, observes every presented frame.
	OnPresent func(frame uint64, w *sim.World)

	world  *sim.World
	frames uint64
}

func NewHeadless(w *sim.World, src EventSource, maxFrames uint64) *Headless {
	return &Headless{Source: src, MaxFrames: maxFrames, world: w}
}

func (h *Headless) PollEvents(dst []sim.Event) ([]sim.Event, error) {
	if h.Source != nil {
		evs, err := h.Source.Events(h.frames, h.world)
		if err != nil {
			return dst, fmt.Errorf("headless: frame %d: %w", h.frames, err)
		}
		dst = append(dst, evs...)
	}
	if h.MaxFrames > 0 && h.frames+1 >= h.MaxFrames {
		dst = append(dst, sim.Event{Kind: sim.EventQuit})
	}
	return dst, nil
}

func (h *Headless) Present(w *sim.World) error {
	if h.OnPresent != nil {
		h.OnPresent(h.frames, w)
	}
	h.frames++
	return nil
}

func (h *Headless) Frames() uint64 { return h.frames }
