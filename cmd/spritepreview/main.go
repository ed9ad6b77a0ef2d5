package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/render"
	"golang.org/x/image/colornames"
)

const previewSize = 256

type previewGame struct {
	sheet       *render.Sheet
	current     int
	tick        int
	ticksPerFrm int
	flip        bool
}

func (g *previewGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.flip = !g.flip
	}
	if g.sheet.FrameCount <= 1 {
		return nil
	}
	g.tick++
	if g.tick >= g.ticksPerFrm {
		g.tick = 0
		g.current = (g.current + 1) % g.sheet.FrameCount
	}
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Skyblue)
	frame := g.sheet.Frame(g.current)
	if frame == nil {
		return
	}
	fw, fh := g.sheet.Size()
	scale := float64(previewSize/2) / float64(max(fw, fh))
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	sx := scale
	if g.flip {
		sx = -scale
	}
	op.GeoM.Scale(sx, scale)
	ox := (previewSize - float64(fw)*scale) / 2
	oy := (previewSize - float64(fh)*scale) / 2
	if g.flip {
		ox += float64(fw) * scale
	}
	op.GeoM.Translate(ox, oy)
	screen.DrawImage(frame, op)
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return previewSize, previewSize
}

func main() {
	path := flag.String("sheet", assets.SpriteSheetPath, "sprite sheet to preview")
	frameW := flag.Int("w", 32, "frame width")
	frameH := flag.Int("h", 32, "frame height")
	count := flag.Int("n", 0, "frame count (0 = whole sheet)")
	fps := flag.Int("fps", 6, "frames per second")
	flag.Parse()

	img, err := assets.LoadImage(*path)
	if err != nil {
		log.Fatal(err)
	}
	defer img.Deallocate()

	g := &previewGame{
		sheet:       render.NewSheet(img, *frameW, *frameH, *count),
		ticksPerFrm: max(1, 60 / max(*fps, 1)),
	}
	ebiten.SetWindowSize(previewSize*2, previewSize*2)
	ebiten.SetWindowTitle("Sprite Preview")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
