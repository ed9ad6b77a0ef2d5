package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/milk9111/platformer/sim"
)

type State uint8

const (
	StateRunning State = iota
	StatePaused
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// DefaultFrameDelay is the fixed end-of-frame sleep used by Run.
const DefaultFrameDelay = 16 * time.Millisecond

// Frontend is the rendering and windowing collaborator.
type Frontend interface {
	// PollEvents appends all pending events to dst.
	PollEvents(dst []sim.Event) ([]sim.Event, error)
	// Present renders the world and shows the frame.
	Present(w *sim.World) error
}

// Loop drives a world: drain input, step physics once, render, sleep.
type Loop struct {
	world   *sim.World
	state   State
	frames  uint64
	delay   time.Duration
	sleep   func(time.Duration)
	metrics *Metrics
	events  []sim.Event

	// BeforeFrame runs at the top of every iteration, before input is polled.
	BeforeFrame func(w *sim.World)
}

type Option func(*Loop)

// WithFrameDelay sets the end-of-frame sleep. Zero disables it.
func WithFrameDelay(d time.Duration) Option {
	return func(l *Loop) { l.delay = d }
}

// WithSleep replaces time.Sleep.
func WithSleep(fn func(time.Duration)) Option {
	return func(l *Loop) { l.sleep = fn }
}

func WithMetrics(m *Metrics) Option {
	return func(l *Loop) { l.metrics = m }
}

func NewLoop(w *sim.World, opts ...Option) *Loop {
	l := &Loop{
		world: w,
		state: StateRunning,
		delay: DefaultFrameDelay,
		sleep: time.Sleep,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Loop) World() *sim.World { return l.world }
func (l *Loop) State() State      { return l.state }
func (l *Loop) Frames() uint64    { return l.frames }

// SetPaused pauses or resumes physics. It has no effect once stopped.
func (l *Loop) SetPaused(paused bool) {
	if l.state == StateStopped {
		return
	}
	if paused {
		l.state = StatePaused
	} else {
		l.state = StateRunning
	}
}

// SetFrameDelay changes the end-of-frame sleep from the next frame on.
// Negative values are treated as zero.
func (l *Loop) SetFrameDelay(d time.Duration) {
	l.delay = max(d, 0)
}

// Stop moves the loop to its terminal state.
func (l *Loop) Stop() {
	l.state = StateStopped
}

// Prepare runs BeforeFrame. Run calls it at the top of every iteration;
// frontends that drive their own loop call it before polling input.
func (l *Loop) Prepare() {
	if l.BeforeFrame != nil {
		l.BeforeFrame(l.world)
	}
}

// Tick applies one frame's events and, unless paused, one physics step.
// A quit event stops the loop after the rest of the frame has been processed.
func (l *Loop) Tick(events []sim.Event) {
	if l.state == StateStopped {
		return
	}
	quit := false
	for _, ev := range events {
		switch ev.Kind {
		case sim.EventQuit:
			quit = true
		case sim.EventPause:
			l.SetPaused(l.state != StatePaused)
		default:
			if l.state == StateRunning {
				l.world.HandleInput(ev)
			}
		}
	}

	if l.state == StateRunning {
		jumps, landings := l.world.Jumps, l.world.Landings
		start := time.Now()
		l.world.Step()
		l.metrics.observeStep(time.Since(start))
		l.metrics.addJumps(l.world.Jumps - jumps)
		l.metrics.addLandings(l.world.Landings - landings)
		l.world.Animate()
	}

	l.frames++
	l.metrics.incFrames()
	if quit {
		l.state = StateStopped
	}
}

// Run iterates until a quit event arrives, ctx is cancelled or the frontend
// fails. The frontend's resources are the caller's to release.
func (l *Loop) Run(ctx context.Context, fe Frontend) error {
	for l.state != StateStopped {
		if err := ctx.Err(); err != nil {
			l.state = StateStopped
			return err
		}
		l.Prepare()

		var err error
		l.events, err = fe.PollEvents(l.events[:0])
		if err != nil {
			return fmt.Errorf("runner: poll events: %w", err)
		}
		l.Tick(l.events)

		if err := fe.Present(l.world); err != nil {
			return fmt.Errorf("runner: present frame %d: %w", l.frames, err)
		}
		if l.state != StateStopped && l.delay > 0 {
			l.sleep(l.delay)
		}
	}
	return nil
}
