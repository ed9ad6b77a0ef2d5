// Package sfx synthesizes the short sound effects the game plays. Effects are
// beep streamers: the terminal speaker plays them directly and PCM renders
// them into the byte layout ebiten's audio players read.
package sfx

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/gopxl/beep"
)

const SampleRate = 44100

type blip struct {
	rate     float64
	from, to float64
	volume   float64
	n, pos   int
	phase    float64
}

// Blip streams a square wave sliding from freqFrom to freqTo with a linear
// fade out.
func Blip(sr beep.SampleRate, freqFrom, freqTo float64, d time.Duration, volume float64) beep.Streamer {
	return &blip{
		rate:   float64(sr),
		from:   freqFrom,
		to:     freqTo,
		volume: volume,
		n:      sr.N(d),
	}
}

func (b *blip) Stream(samples [][2]float64) (int, bool) {
	if b.pos >= b.n {
		return 0, false
	}
	i := 0
	for ; i < len(samples) && b.pos < b.n; i++ {
		t := float64(b.pos) / float64(b.n)
		b.phase += (b.from + (b.to-b.from)*t) / b.rate
		b.phase -= math.Floor(b.phase)

		v := b.volume * (1 - t)
		if b.phase >= 0.5 {
			v = -v
		}
		samples[i][0], samples[i][1] = v, v
		b.pos++
	}
	return i, true
}

func (b *blip) Err() error { return nil }

// JumpStreamer is the sound played when a jump impulse is applied.
func JumpStreamer(sr beep.SampleRate) beep.Streamer {
	return Blip(sr, 440, 880, 90*time.Millisecond, 0.25)
}

// Jump is JumpStreamer rendered with PCM.
func Jump(sampleRate int) []byte {
	return PCM(JumpStreamer(beep.SampleRate(sampleRate)))
}

// PCM drains s into 16-bit little-endian signed stereo.
func PCM(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(smp[0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(smp[1])))
		}
		if !ok {
			return out
		}
	}
}

func toInt16(v float64) int16 {
	return int16(math.Max(-1, math.Min(1, v)) * math.MaxInt16)
}
