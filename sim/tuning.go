package sim

// Tuning holds the physics constants. Velocities are in units per frame and
// accelerations in units per frame squared.
type Tuning struct {
	Gravity      float64
	Friction     float64
	Acceleration float64
	MaxSpeed     float64
	JumpStrength float64
	// LandingBand is how far below a platform's top edge the body's feet may
	// be and still land on it.
	LandingBand float64
}

// AnimationTuning controls how Body.Frame advances.
type AnimationTuning struct {
	TicksPerFrame int
	WalkFirst     int
	WalkCount     int
	JumpFrame     int
}

func DefaultTuning() Tuning {
	return Tuning{
		Gravity:      0.5,
		Friction:     0.1,
		Acceleration: 0.2,
		MaxSpeed:     5,
		JumpStrength: -10,
		LandingBand:  10,
	}
}

func DefaultAnimationTuning() AnimationTuning {
	return AnimationTuning{
		TicksPerFrame: 8,
		WalkFirst:     1,
		WalkCount:     2,
		JumpFrame:     3,
	}
}
