package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/milk9111/platformer/sim"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid tuning")

type PhysicsSpec struct {
	Gravity      float64 `yaml:"gravity" toml:"gravity" json:"gravity"`
	Friction     float64 `yaml:"friction" toml:"friction" json:"friction"`
	Acceleration float64 `yaml:"acceleration" toml:"acceleration" json:"acceleration"`
	MaxSpeed     float64 `yaml:"max_speed" toml:"max_speed" json:"max_speed"`
	JumpStrength float64 `yaml:"jump_strength" toml:"jump_strength" json:"jump_strength"`
	LandingBand  float64 `yaml:"landing_band" toml:"landing_band" json:"landing_band"`
}

type InputSpec struct {
	RepeatDelayFrames    int `yaml:"repeat_delay_frames" toml:"repeat_delay_frames" json:"repeat_delay_frames"`
	RepeatIntervalFrames int `yaml:"repeat_interval_frames" toml:"repeat_interval_frames" json:"repeat_interval_frames"`
}

type LoopSpec struct {
	FrameDelayMS int `yaml:"frame_delay_ms" toml:"frame_delay_ms" json:"frame_delay_ms"`
	TPS          int `yaml:"tps" toml:"tps" json:"tps"`
}

type AnimationSpec struct {
	TicksPerFrame int `yaml:"ticks_per_frame" toml:"ticks_per_frame" json:"ticks_per_frame"`
	WalkFirst     int `yaml:"walk_first" toml:"walk_first" json:"walk_first"`
	WalkCount     int `yaml:"walk_count" toml:"walk_count" json:"walk_count"`
	JumpFrame     int `yaml:"jump_frame" toml:"jump_frame" json:"jump_frame"`
}

// Settings is the decoded tuning file.
type Settings struct {
	Physics   PhysicsSpec   `yaml:"physics" toml:"physics" json:"physics"`
	Input     InputSpec     `yaml:"input" toml:"input" json:"input"`
	Loop      LoopSpec      `yaml:"loop" toml:"loop" json:"loop"`
	Animation AnimationSpec `yaml:"animation" toml:"animation" json:"animation"`
}

// Default mirrors DefaultName and the sim package defaults.
func Default() Settings {
	t := sim.DefaultTuning()
	a := sim.DefaultAnimationTuning()
	return Settings{
		Physics: PhysicsSpec{
			Gravity:      t.Gravity,
			Friction:     t.Friction,
			Acceleration: t.Acceleration,
			MaxSpeed:     t.MaxSpeed,
			JumpStrength: t.JumpStrength,
			LandingBand:  t.LandingBand,
		},
		Input: InputSpec{
			RepeatDelayFrames:    15,
			RepeatIntervalFrames: 1,
		},
		Loop: LoopSpec{
			FrameDelayMS: 16,
			TPS:          60,
		},
		Animation: AnimationSpec{
			TicksPerFrame: a.TicksPerFrame,
			WalkFirst:     a.WalkFirst,
			WalkCount:     a.WalkCount,
			JumpFrame:     a.JumpFrame,
		},
	}
}

// LoadSettings decodes and validates a tuning file over Default, so a file
// may set only the values it changes. Files ending in .toml are TOML, all
// others YAML. An empty name loads the shipped defaults.
func LoadSettings(name string) (Settings, error) {
	s := Default()
	data, err := Load(name)
	if err != nil {
		return s, fmt.Errorf("config: load %s: %w", displayName(name), err)
	}
	if err := Decode(name, data, &s); err != nil {
		return s, fmt.Errorf("config: unmarshal %s: %w", displayName(name), err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("config: %s: %w", displayName(name), err)
	}
	return s, nil
}

// Decode unmarshals data into s using the format implied by name.
func Decode(name string, data []byte, s *Settings) error {
	if strings.EqualFold(filepath.Ext(name), ".toml") {
		_, err := toml.Decode(string(data), s)
		return err
	}
	return yaml.Unmarshal(data, s)
}

func (s Settings) Validate() error {
	var errs []error
	check := func(ok bool, field, want string) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s must be %s", ErrInvalid, field, want))
		}
	}
	p := s.Physics
	check(p.Gravity > 0, "physics.gravity", "> 0")
	check(p.Friction >= 0, "physics.friction", ">= 0")
	check(p.Acceleration > 0, "physics.acceleration", "> 0")
	check(p.MaxSpeed > 0, "physics.max_speed", "> 0")
	check(p.JumpStrength < 0, "physics.jump_strength", "< 0")
	check(p.LandingBand > 0, "physics.landing_band", "> 0")
	check(s.Input.RepeatDelayFrames >= 0, "input.repeat_delay_frames", ">= 0")
	check(s.Input.RepeatIntervalFrames >= 0, "input.repeat_interval_frames", ">= 0")
	check(s.Loop.FrameDelayMS >= 0, "loop.frame_delay_ms", ">= 0")
	check(s.Loop.TPS > 0, "loop.tps", "> 0")
	a := s.Animation
	check(a.TicksPerFrame > 0, "animation.ticks_per_frame", "> 0")
	check(a.WalkFirst >= 0, "animation.walk_first", ">= 0")
	check(a.WalkCount >= 0, "animation.walk_count", ">= 0")
	check(a.JumpFrame >= 0, "animation.jump_frame", ">= 0")
	return errors.Join(errs...)
}

func (p PhysicsSpec) Tuning() sim.Tuning {
	return sim.Tuning{
		Gravity:      p.Gravity,
		Friction:     p.Friction,
		Acceleration: p.Acceleration,
		MaxSpeed:     p.MaxSpeed,
		JumpStrength: p.JumpStrength,
		LandingBand:  p.LandingBand,
	}
}

func (a AnimationSpec) Tuning() sim.AnimationTuning {
	return sim.AnimationTuning{
		TicksPerFrame: a.TicksPerFrame,
		WalkFirst:     a.WalkFirst,
		WalkCount:     a.WalkCount,
		JumpFrame:     a.JumpFrame,
	}
}

// Apply copies the tuning into w. The body and platforms are untouched.
func (s Settings) Apply(w *sim.World) {
	w.Tuning = s.Physics.Tuning()
	w.Animation = s.Animation.Tuning()
}

func (s Settings) FrameDelay() time.Duration {
	return time.Duration(s.Loop.FrameDelayMS) * time.Millisecond
}

func displayName(name string) string {
	if name == "" {
		return DefaultName
	}
	return name
}
