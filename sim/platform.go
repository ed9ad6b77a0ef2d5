package sim

// Platform is a static axis-aligned rectangle the body can land on.
type Platform struct {
	X, Y          float64
	Width, Height float64
}

func (p Platform) Right() float64 {
	return p.X + p.Width
}

// DefaultPlatforms returns the fixed platform list in declaration order. The
// order breaks ties when more than one platform could catch the body.
func DefaultPlatforms() []Platform {
	return []Platform{
		{X: 100, Y: 400, Width: 200, Height: 20},
		{X: 400, Y: 300, Width: 150, Height: 20},
		{X: 600, Y: 500, Width: 180, Height: 20},
	}
}
