package sim

import "github.com/milk9111/platformer/common"

// World is the simulation context: one body, a fixed platform list and the
// screen bounds whose bottom edge acts as the floor. Worlds share no state.
type World struct {
	Body      Body
	Platforms []Platform

	Width, Height float64

	Tuning    Tuning
	Animation AnimationTuning

	// Jumps counts applied jump impulses and Landings counts airborne to
	// grounded transitions.
	Jumps    uint64
	Landings uint64
}

// NewWorld returns a world with the body at its spawn point and the default
// platforms and tuning.
func NewWorld() *World {
	return &World{
		Body:      NewBody(common.SpawnX, common.SpawnY),
		Platforms: DefaultPlatforms(),
		Width:     common.ScreenWidth,
		Height:    common.ScreenHeight,
		Tuning:    DefaultTuning(),
		Animation: DefaultAnimationTuning(),
	}
}

// Floor is the lowest y the body's top-left corner can reach.
func (w *World) Floor() float64 {
	return w.Height - w.Body.Height
}
