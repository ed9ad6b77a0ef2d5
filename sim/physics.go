package sim

import "github.com/milk9111/platformer/common"

// Step advances the world by one frame.
func (w *World) Step() {
	b := &w.Body
	t := &w.Tuning
	wasJumping := b.Jumping

	// Gravity applies even while resting; the clamps below undo it.
	b.Vel.Y += t.Gravity
	b.Vel.X = common.Approach(b.Vel.X, t.Friction)

	b.Pos = b.Pos.Add(b.Vel)

	onPlatform := false
	for i := range w.Platforms {
		p := w.Platforms[i]
		if LandsOn(b, p, t.LandingBand) {
			b.Pos.Y = p.Y - b.Height
			b.Vel.Y = 0
			b.Jumping = false
			onPlatform = true
			break
		}
	}

	if floor := w.Floor(); b.Pos.Y >= floor {
		b.Pos.Y = floor
		b.Vel.Y = 0
		b.Jumping = false
	} else if !onPlatform {
		b.Jumping = true
	}

	if wasJumping && !b.Jumping {
		w.Landings++
	}
}

// Animate advances the body's render frame: idle when still, a walk cycle when
// moving on a surface, a fixed frame while airborne.
func (w *World) Animate() {
	b := &w.Body
	a := &w.Animation

	switch {
	case b.Jumping:
		b.Frame = a.JumpFrame
		b.FrameCounter = 0
	case b.Vel.X == 0 || a.WalkCount <= 0:
		b.Frame = 0
		b.FrameCounter = 0
	default:
		ticks := max(a.TicksPerFrame, 1)
		step := b.FrameCounter / ticks
		b.Frame = a.WalkFirst + step%a.WalkCount
		b.FrameCounter++
	}
}
