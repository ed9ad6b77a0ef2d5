package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/config"
	"github.com/milk9111/platformer/input"
	"github.com/milk9111/platformer/render"
	"github.com/milk9111/platformer/runner"
)

// runGUI opens a window and hands the loop to ebiten, which calls Update at a
// fixed tick rate independent of the display's refresh rate.
func runGUI(loop *runner.Loop, settings config.Settings, opts options, onReload func(func(config.Settings))) error {
	// The sprite sheet is loaded before the window exists, so a missing asset
	// never shows a window.
	sheetImg, err := assets.LoadImage(opts.sprites)
	if err != nil {
		return err
	}
	defer sheetImg.Deallocate()

	keyboard := NewKeyboard(input.NewRepeater(settings.Input.RepeatDelayFrames, settings.Input.RepeatIntervalFrames))
	onReload(func(s config.Settings) {
		keyboard.SetRepeat(s.Input.RepeatDelayFrames, s.Input.RepeatIntervalFrames)
		ebiten.SetTPS(s.Loop.TPS)
	})

	var sounds *Sounds
	if !opts.mute {
		sounds = NewSounds()
	}

	sheet := render.NewSheet(sheetImg, common.BodyWidth, common.BodyHeight, 0)
	game := NewGame(loop, render.NewRenderer(sheet), keyboard, sounds, opts.debug)

	ebiten.SetTPS(settings.Loop.TPS)
	ebiten.SetWindowSize(common.ScreenWidth, common.ScreenHeight)
	ebiten.SetWindowTitle("Mario")
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(game); err != nil {
		return err
	}
	log.Printf("gui: stopped after %d frames", loop.Frames())
	return nil
}
