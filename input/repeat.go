package input

import "github.com/milk9111/platformer/sim"

// Repeater turns per-frame "is the key held" samples into discrete key events
// the way an OS keyboard driver does: one key-down on press, repeated
// key-downs after Delay frames every Interval frames, and a key-up on release.
// Interval <= 0 disables repeats.
type Repeater struct {
	Delay    int
	Interval int

	held map[sim.Key]int
}

func NewRepeater(delay, interval int) *Repeater {
	return &Repeater{Delay: delay, Interval: interval, held: map[sim.Key]int{}}
}

// Sample records whether key is held this frame and appends the resulting
// events to dst.
func (r *Repeater) Sample(dst []sim.Event, key sim.Key, down bool) []sim.Event {
	if r.held == nil {
		r.held = map[sim.Key]int{}
	}
	n := r.held[key]
	if !down {
		if n > 0 {
			dst = append(dst, sim.KeyUp(key))
		}
		delete(r.held, key)
		return dst
	}

	r.held[key] = n + 1
	if n == 0 {
		return append(dst, sim.KeyDown(key))
	}
	if r.Interval > 0 && n >= r.Delay && (n-r.Delay)%r.Interval == 0 {
		dst = append(dst, sim.KeyDown(key))
	}
	return dst
}

// Reset forgets all held keys without emitting key-up events.
func (r *Repeater) Reset() {
	clear(r.held)
}
