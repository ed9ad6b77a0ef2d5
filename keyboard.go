package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/input"
	"github.com/milk9111/platformer/sim"
)

type keyBinding struct {
	keys    []ebiten.Key
	buttons []ebiten.StandardGamepadButton
	key     sim.Key
	// axis is the sign of the left stick direction that also triggers key.
	axis float64
}

var defaultBindings = []keyBinding{
	{
		keys:    []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
		key:     sim.KeyLeft,
		axis:    -1,
	},
	{
		keys:    []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
		key:     sim.KeyRight,
		axis:    1,
	},
	{
		keys:    []ebiten.Key{ebiten.KeySpace},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
		key:     sim.KeyJump,
	},
}

const stickDeadZone = 0.3

// Keyboard samples held keys and gamepad buttons each tick and turns them
// into key events with OS-style repeat.
type Keyboard struct {
	bindings []keyBinding
	repeater *input.Repeater
	gamepads []ebiten.GamepadID
}

func NewKeyboard(r *input.Repeater) *Keyboard {
	return &Keyboard{bindings: defaultBindings, repeater: r}
}

func (k *Keyboard) SetRepeat(delay, interval int) {
	k.repeater.Delay = delay
	k.repeater.Interval = interval
}

// Poll appends this tick's events to dst.
func (k *Keyboard) Poll(dst []sim.Event) []sim.Event {
	k.gamepads = ebiten.AppendGamepadIDs(k.gamepads[:0])
	for _, b := range k.bindings {
		dst = k.repeater.Sample(dst, b.key, k.held(b))
	}
	return dst
}

func (k *Keyboard) held(b keyBinding) bool {
	for _, key := range b.keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	for _, id := range k.gamepads {
		for _, btn := range b.buttons {
			if ebiten.IsStandardGamepadButtonPressed(id, btn) {
				return true
			}
		}
		if b.axis != 0 {
			x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
			if x*b.axis > stickDeadZone {
				return true
			}
		}
	}
	return false
}
