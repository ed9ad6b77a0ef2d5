package sim

import "math"

type EventKind uint8

const (
	EventNone EventKind = iota
	EventKeyDown
	EventKeyUp
	EventPause
	EventQuit
)

type Key uint8

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyJump
)

var keyNames = map[Key]string{
	KeyNone:  "none",
	KeyLeft:  "left",
	KeyRight: "right",
	KeyJump:  "jump",
}

func (k Key) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	return "unknown"
}

// Event is a discrete input event from a frontend.
type Event struct {
	Kind EventKind
	Key  Key
}

func KeyDown(k Key) Event { return Event{Kind: EventKeyDown, Key: k} }
func KeyUp(k Key) Event   { return Event{Kind: EventKeyUp, Key: k} }

// HandleInput applies one event to the body. Movement accumulates velocity
// per key-down event, so key-up events are ignored.
func (w *World) HandleInput(ev Event) {
	if ev.Kind != EventKeyDown {
		return
	}
	b := &w.Body
	t := &w.Tuning

	switch ev.Key {
	case KeyLeft:
		b.Vel.X = math.Max(b.Vel.X-t.Acceleration, -t.MaxSpeed)
		b.FacingLeft = true
	case KeyRight:
		b.Vel.X = math.Min(b.Vel.X+t.Acceleration, t.MaxSpeed)
		b.FacingLeft = false
	case KeyJump:
		if b.Jumping {
			return
		}
		b.Jumping = true
		b.Vel.Y = t.JumpStrength
		w.Jumps++
	}
}
