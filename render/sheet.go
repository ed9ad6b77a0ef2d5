package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sheet slices a sprite sheet into equally sized frames laid out
// left-to-right, top-to-bottom.
type Sheet struct {
	Image      *ebiten.Image
	FrameW     int
	FrameH     int
	FrameCount int
	Cols       int

	frames []*ebiten.Image
}

// NewSheet creates a Sheet. frameCount <= 0 infers it from the sheet size.
func NewSheet(img *ebiten.Image, frameW, frameH, frameCount int) *Sheet {
	if img == nil || frameW <= 0 || frameH <= 0 {
		return &Sheet{}
	}
	bounds := img.Bounds()
	cols := bounds.Dx() / frameW
	rows := bounds.Dy() / frameH
	maxFrames := cols * rows
	if frameCount <= 0 || frameCount > maxFrames {
		frameCount = maxFrames
	}
	s := &Sheet{
		Image:      img,
		FrameW:     frameW,
		FrameH:     frameH,
		FrameCount: frameCount,
		Cols:       cols,
	}
	s.buildFrames()
	return s
}

func (s *Sheet) buildFrames() {
	if s.FrameCount <= 0 || s.Cols <= 0 {
		return
	}
	s.frames = make([]*ebiten.Image, s.FrameCount)
	for i := range s.FrameCount {
		s.frames[i] = s.Image.SubImage(s.frameRect(i)).(*ebiten.Image)
	}
}

func (s *Sheet) frameRect(i int) image.Rectangle {
	col := i % s.Cols
	row := i / s.Cols
	sx := col * s.FrameW
	sy := row * s.FrameH
	return image.Rect(sx, sy, sx+s.FrameW, sy+s.FrameH)
}

// Frame returns frame i, wrapping out-of-range indices. It returns nil for an
// empty sheet.
func (s *Sheet) Frame(i int) *ebiten.Image {
	if s == nil || len(s.frames) == 0 {
		return nil
	}
	i %= len(s.frames)
	if i < 0 {
		i += len(s.frames)
	}
	return s.frames[i]
}

// Size returns the frame width/height.
func (s *Sheet) Size() (int, int) { return s.FrameW, s.FrameH }
