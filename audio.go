package main

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/platformer/sfx"
)

// Sounds holds the players for the game's sound effects. A nil *Sounds is
// silent.
type Sounds struct {
	jump *audio.Player
}

func NewSounds() *Sounds {
	ctx := audio.NewContext(sfx.SampleRate)
	return &Sounds{jump: ctx.NewPlayerFromBytes(sfx.Jump(sfx.SampleRate))}
}

func (s *Sounds) PlayJump() {
	if s == nil {
		return
	}
	_ = s.jump.Rewind()
	s.jump.Play()
}
