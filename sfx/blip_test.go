package sfx

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlipLength(t *testing.T) {
	b := PCM(Blip(1000, 100, 100, 50*time.Millisecond, 0.5))
	assert.Len(t, b, 50*4)
	assert.Nil(t, PCM(Blip(1000, 100, 100, 0, 0.5)))
}

func TestBlipStereoAndFade(t *testing.T) {
	b := PCM(Blip(1000, 100, 100, 100*time.Millisecond, 1))
	require.Len(t, b, 400)

	sample := func(i int) (int16, int16) {
		l := int16(binary.LittleEndian.Uint16(b[i*4:]))
		r := int16(binary.LittleEndian.Uint16(b[i*4+2:]))
		return l, r
	}
	peak := func(s int16) int {
		if s < 0 {
			return -int(s)
		}
		return int(s)
	}
	for i := range 100 {
		l, r := sample(i)
		require.Equal(t, l, r, "sample %d", i)
	}
	first, _ := sample(0)
	last, _ := sample(99)
	assert.Greater(t, peak(first), peak(last))
}

func TestJumpBytesMatchStreamer(t *testing.T) {
	sr := beep.SampleRate(SampleRate)
	pcm := Jump(SampleRate)
	require.Len(t, pcm, sr.N(90*time.Millisecond)*4)

	// The terminal speaker plays the same samples the GUI player reads.
	buf := make([][2]float64, len(pcm)/4)
	n, ok := JumpStreamer(sr).Stream(buf)
	require.True(t, ok)
	require.Equal(t, len(buf), n)
	for i, smp := range buf {
		got := int16(binary.LittleEndian.Uint16(pcm[i*4:]))
		require.Equal(t, toInt16(smp[0]), got, "sample %d", i)
	}
}
