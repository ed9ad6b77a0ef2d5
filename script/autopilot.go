// Package script drives the body from a tengo script instead of a keyboard.
//
// Each frame the script sees the globals frame, x, y, vx, vy, jumping and
// facing_left, and assigns the names of the keys to press this frame to
// keys, e.g.
//
//	keys = []
//	if frame < 120 { keys = append(keys, "right") }
//	if !jumping && x > 250 { keys = append(keys, "jump") }
//
// Valid names are left, right, jump, pause and quit.
package script

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/platformer/sim"
)

var ErrUnknownKey = errors.New("unknown key")

var keyEvents = map[string]sim.Event{
	"left":  sim.KeyDown(sim.KeyLeft),
	"right": sim.KeyDown(sim.KeyRight),
	"jump":  sim.KeyDown(sim.KeyJump),
	"pause": {Kind: sim.EventPause},
	"quit":  {Kind: sim.EventQuit},
}

// Autopilot is a compiled script. It implements runner.EventSource.
type Autopilot struct {
	name     string
	compiled *tengo.Compiled
}

func LoadFile(path string) (*Autopilot, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: load %s: %w", path, err)
	}
	return Compile(path, src)
}

func Compile(name string, src []byte) (*Autopilot, error) {
	s := tengo.NewScript(src)
	_ = s.Add("frame", 0)
	_ = s.Add("x", 0.0)
	_ = s.Add("y", 0.0)
	_ = s.Add("vx", 0.0)
	_ = s.Add("vy", 0.0)
	_ = s.Add("jumping", false)
	_ = s.Add("facing_left", false)
	_ = s.Add("keys", []any{})

	s.SetImports(stdlib.GetModuleMap("math", "fmt"))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile %s: %w", name, err)
	}
	return &Autopilot{name: name, compiled: compiled}, nil
}

// Events runs the script for one frame and returns the pressed keys as events.
func (a *Autopilot) Events(frame uint64, w *sim.World) ([]sim.Event, error) {
	b := &w.Body
	vars := []struct {
		name  string
		value any
	}{
		{"frame", int64(frame)},
		{"x", b.Pos.X},
		{"y", b.Pos.Y},
		{"vx", b.Vel.X},
		{"vy", b.Vel.Y},
		{"jumping", b.Jumping},
		{"facing_left", b.FacingLeft},
		{"keys", []any{}},
	}
	for _, v := range vars {
		if err := a.compiled.Set(v.name, v.value); err != nil {
			return nil, fmt.Errorf("script: %s: set %s: %w", a.name, v.name, err)
		}
	}
	if err := a.compiled.Run(); err != nil {
		return nil, fmt.Errorf("script: %s: run: %w", a.name, err)
	}

	keys := a.compiled.Get("keys")
	if keys.IsUndefined() {
		return nil, nil
	}
	var events []sim.Event
	for _, k := range keys.Array() {
		name, ok := k.(string)
		if !ok {
			return nil, fmt.Errorf("script: %s: %w: %v", a.name, ErrUnknownKey, k)
		}
		ev, ok := keyEvents[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("script: %s: %w: %q", a.name, ErrUnknownKey, name)
		}
		events = append(events, ev)
	}
	return events, nil
}
