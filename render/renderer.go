package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/platformer/sim"
	"golang.org/x/image/colornames"
)

var (
	SkyColor      color.Color = colornames.Skyblue
	PlatformColor color.Color = colornames.Saddlebrown
	// BodyColor fills the body's box when there is no sprite sheet.
	BodyColor color.Color = colornames.Crimson
)

// Renderer draws a world: sky, platforms, then the body sprite.
type Renderer struct {
	sheet *Sheet
}

func NewRenderer(sheet *Sheet) *Renderer {
	return &Renderer{sheet: sheet}
}

func (r *Renderer) Draw(screen *ebiten.Image, w *sim.World) {
	screen.Fill(SkyColor)
	r.drawPlatforms(screen, w.Platforms)
	r.drawBody(screen, &w.Body)
}

func (r *Renderer) drawPlatforms(screen *ebiten.Image, platforms []sim.Platform) {
	for _, p := range platforms {
		vector.FillRect(screen, float32(int(p.X)), float32(int(p.Y)), float32(int(p.Width)), float32(int(p.Height)), PlatformColor, false)
	}
}

func (r *Renderer) drawBody(screen *ebiten.Image, b *sim.Body) {
	// Positions are truncated to whole pixels like an integer destination rect.
	x := float64(int(b.Pos.X))
	y := float64(int(b.Pos.Y))

	frame := r.sheet.Frame(b.Frame)
	if frame == nil {
		vector.FillRect(screen, float32(x), float32(y), float32(b.Width), float32(b.Height), BodyColor, false)
		return
	}

	fw, fh := r.sheet.Size()
	sx := b.Width / float64(fw)
	sy := b.Height / float64(fh)
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	if b.FacingLeft {
		op.GeoM.Scale(-sx, sy)
		// flipped frames extend left of the origin, shift back by the width
		op.GeoM.Translate(x+b.Width, y)
	} else {
		op.GeoM.Scale(sx, sy)
		op.GeoM.Translate(x, y)
	}
	screen.DrawImage(frame, op)
}
