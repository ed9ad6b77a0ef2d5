package sim

import (
	"math/rand"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func worldWithBody(x, y, vx, vy float64, jumping bool) *World {
	w := NewWorld()
	w.Body.Pos = cp.Vector{X: x, Y: y}
	w.Body.Vel = cp.Vector{X: vx, Y: vy}
	w.Body.Jumping = jumping
	return w
}

func TestStepRestingOnGround(t *testing.T) {
	for _, x := range []float64{0, 100, 350, 700} {
		w := worldWithBody(x, 600-32, 0, 0, false)
		w.Step()
		assert.Equal(t, 568.0, w.Body.Pos.Y)
		assert.Zero(t, w.Body.Vel.Y)
		assert.False(t, w.Body.Jumping)
	}
}

func TestStepFreeFall(t *testing.T) {
	cases := []struct {
		name   string
		x, y   float64
		vy     float64
		wantVY float64
		wantY  float64
	}{
		{"from_rest", 20, 50, 0, 0.5, 50.5},
		{"falling", 700, 100, 2, 2.5, 102.5},
		{"rising", 350, 200, -6, -5.5, 194.5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := worldWithBody(c.x, c.y, 0, c.vy, true)
			w.Step()
			assert.Equal(t, c.wantVY, w.Body.Vel.Y)
			assert.Equal(t, c.wantY, w.Body.Pos.Y)
			assert.True(t, w.Body.Jumping)
		})
	}
}

func TestStepFriction(t *testing.T) {
	cases := []struct {
		name string
		vx   float64
		want float64
	}{
		{"positive_clamps_to_zero", 0.05, 0},
		{"negative_clamps_to_zero", -0.05, 0},
		{"positive_slows", 2, 1.9},
		{"negative_slows", -2, -1.9},
		{"zero_stays_zero", 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := worldWithBody(20, 100, c.vx, 0, true)
			w.Step()
			assert.InDelta(t, c.want, w.Body.Vel.X, 1e-9)
			if c.want == 0 {
				assert.Zero(t, w.Body.Vel.X)
			}
		})
	}
}

func TestStepIntegratesHorizontalAfterFriction(t *testing.T) {
	w := worldWithBody(20, 100, 1, 0, true)
	w.Step()
	assert.InDelta(t, 20.9, w.Body.Pos.X, 1e-9)
}

func TestStepLandsOnPlatform(t *testing.T) {
	w := worldWithBody(150, 370, 0, 3, true)
	w.Step()
	assert.Equal(t, 368.0, w.Body.Pos.Y)
	assert.Zero(t, w.Body.Vel.Y)
	assert.False(t, w.Body.Jumping)
	assert.Equal(t, uint64(1), w.Landings)
}

func TestStepStaysOnPlatform(t *testing.T) {
	w := worldWithBody(150, 368, 0, 0, false)
	for range 120 {
		w.Step()
		require.Equal(t, 368.0, w.Body.Pos.Y)
		require.False(t, w.Body.Jumping)
	}
	assert.Zero(t, w.Landings)
}

func TestStepFallsThroughPlatformAboveBand(t *testing.T) {
	// Feet end the frame below the landing band.
	w := worldWithBody(150, 395, 0, 3, true)
	w.Step()
	assert.Equal(t, 398.5, w.Body.Pos.Y)
	assert.True(t, w.Body.Jumping)
}

func TestStepFirstPlatformWins(t *testing.T) {
	upper := Platform{X: 100, Y: 400, Width: 200, Height: 20}
	lower := Platform{X: 100, Y: 402, Width: 200, Height: 20}

	cases := []struct {
		name      string
		platforms []Platform
		wantY     float64
	}{
		{"upper_first", []Platform{upper, lower}, 368},
		{"lower_first", []Platform{lower, upper}, 370},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			// Feet land at 405, inside both bands.
			w := worldWithBody(150, 372.5, 0, 0, true)
			w.Platforms = c.platforms
			w.Step()
			assert.Equal(t, c.wantY, w.Body.Pos.Y)
			assert.False(t, w.Body.Jumping)
		})
	}
}

func TestStepGroundClampsAfterPlatforms(t *testing.T) {
	w := worldWithBody(20, 560, 0, 12, true)
	w.Step()
	assert.Equal(t, 568.0, w.Body.Pos.Y)
	assert.Zero(t, w.Body.Vel.Y)
	assert.False(t, w.Body.Jumping)
}

func TestStepGroundOverridesPlatformSnap(t *testing.T) {
	// Feet end at 607.5, inside the band of a platform below the floor line.
	// The platform snaps y to 573, then the floor clamp moves it to 568.
	w := worldWithBody(150, 575, 0, 0, true)
	w.Platforms = []Platform{{X: 100, Y: 605, Width: 200, Height: 20}}
	require.True(t, LandsOn(&Body{Pos: cp.Vector{X: 150, Y: 575.5}, Width: 32, Height: 32}, w.Platforms[0], 10))

	w.Step()
	assert.Equal(t, 568.0, w.Body.Pos.Y)
	assert.Zero(t, w.Body.Vel.Y)
	assert.False(t, w.Body.Jumping)
	assert.Equal(t, uint64(1), w.Landings)
}

func TestStepFromSpawn(t *testing.T) {
	w := NewWorld()
	require.Equal(t, cp.Vector{X: 100, Y: 300}, w.Body.Pos)

	w.Step()
	assert.Equal(t, 0.5, w.Body.Vel.Y)
	assert.Equal(t, 300.5, w.Body.Pos.Y)
	assert.Equal(t, 100.0, w.Body.Pos.X)
	assert.True(t, w.Body.Jumping)
}

func TestStepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	w := NewWorld()
	keys := []Key{KeyLeft, KeyRight, KeyJump, KeyNone}

	for frame := range 10000 {
		for range rng.Intn(3) {
			w.HandleInput(KeyDown(keys[rng.Intn(len(keys))]))
		}
		w.Step()

		b := w.Body
		require.LessOrEqual(t, b.Pos.Y, w.Floor(), "frame %d", frame)
		require.LessOrEqual(t, b.Vel.X, w.Tuning.MaxSpeed, "frame %d", frame)
		require.GreaterOrEqual(t, b.Vel.X, -w.Tuning.MaxSpeed, "frame %d", frame)
		if !b.Jumping {
			require.Zero(t, b.Vel.Y, "frame %d", frame)
		}
	}
}

func TestAnimate(t *testing.T) {
	w := NewWorld()
	w.Animation = AnimationTuning{TicksPerFrame: 2, WalkFirst: 1, WalkCount: 2, JumpFrame: 3}

	w.Body.Jumping = true
	w.Animate()
	assert.Equal(t, 3, w.Body.Frame)

	w.Body.Jumping = false
	w.Animate()
	assert.Equal(t, 0, w.Body.Frame)

	w.Body.Vel.X = 2
	var frames []int
	for range 6 {
		w.Animate()
		frames = append(frames, w.Body.Frame)
	}
	assert.Equal(t, []int{1, 1, 2, 2, 1, 1}, frames)
}
