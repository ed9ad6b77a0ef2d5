package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/platformer/common"
	"golang.org/x/image/font/basicfont"
)

var (
	menuTextColor   = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	menuShadeColor  = color.NRGBA{A: 200}
	menuButtonColor = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
)

// pauseMenu is the overlay shown while the loop is paused. Its title tracks
// the frame the game stopped on.
type pauseMenu struct {
	ui    *ebitenui.UI
	title *widget.Text
}

func newPauseMenu(onResume, onQuit func()) *pauseMenu {
	// basicfont needs no theme assets
	face := ebtext.Face(ebtext.NewGoXFace(basicfont.Face7x13))
	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	button := func(label string, onClick func()) *widget.Button {
		bg := imageui.NewNineSliceColor(menuButtonColor)
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: bg, Pressed: bg}),
			widget.ButtonOpts.Text(label, &face, &widget.ButtonTextColor{Idle: menuTextColor}),
			widget.ButtonOpts.WidgetOpts(centered),
			widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) { onClick() }),
		)
	}

	m := &pauseMenu{
		title: widget.NewText(
			widget.TextOpts.Text("Paused", &face, menuTextColor),
			widget.TextOpts.WidgetOpts(centered),
		),
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(menuShadeColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.ScreenWidth/2, common.ScreenHeight/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	panel.AddChild(m.title)
	panel.AddChild(button("Resume", onResume))
	panel.AddChild(button("Quit", onQuit))

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	m.ui = &ebitenui.UI{Container: root}
	return m
}

func (m *pauseMenu) Update(frame uint64) {
	m.title.Label = fmt.Sprintf("Paused at frame %d", frame)
	m.ui.Update()
}

func (m *pauseMenu) Draw(screen *ebiten.Image) {
	m.ui.Draw(screen)
}
