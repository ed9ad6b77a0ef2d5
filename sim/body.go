package sim

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
)

// Body is the player character's simulation state. Pos is the top-left corner
// of a Width x Height box.
type Body struct {
	Pos cp.Vector
	Vel cp.Vector

	Width, Height float64

	// Jumping is true whenever the body is not resting on the ground or a platform.
	Jumping    bool
	FacingLeft bool

	// Frame and FrameCounter only drive rendering.
	Frame        int
	FrameCounter int
}

func NewBody(x, y float64) Body {
	return Body{
		Pos:    cp.Vector{X: x, Y: y},
		Width:  common.BodyWidth,
		Height: common.BodyHeight,
	}
}

// Bottom returns the y coordinate of the body's feet.
func (b *Body) Bottom() float64 {
	return b.Pos.Y + b.Height
}
