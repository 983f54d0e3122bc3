// Package audio turns collision events into short chiptune blips.
package audio

import (
	"math"
	"time"

	"namebounce/internal/event"
)

const SampleRate = 44100

// Tone is a square-wave blip with a linear fade out.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Volume   float64
}

var tones = map[event.Kind]Tone{
	event.WallTop:   {Freq: 440, Duration: 40 * time.Millisecond, Volume: 0.12},
	event.WallLeft:  {Freq: 392, Duration: 40 * time.Millisecond, Volume: 0.12},
	event.WallRight: {Freq: 392, Duration: 40 * time.Millisecond, Volume: 0.12},
	event.Paddle:    {Freq: 523, Duration: 70 * time.Millisecond, Volume: 0.2},
	event.Pixel:     {Freq: 880, Duration: 25 * time.Millisecond, Volume: 0.08},
	event.GameOver:  {Freq: 131, Duration: 450 * time.Millisecond, Volume: 0.2},
}

// ToneFor returns the blip for k.
func ToneFor(k event.Kind) (Tone, bool) {
	t, ok := tones[k]
	return t, ok
}

// Samples returns the number of frames the tone lasts.
func (t Tone) Samples() int {
	return int(t.Duration.Seconds() * SampleRate)
}

// At returns frame i of the blip in [-Volume, Volume]. Both frontends
// render through it so they play the same waveform.
func (t Tone) At(i int) float64 {
	n := t.Samples()
	if i < 0 || i >= n {
		return 0
	}
	phase := float64(i) * t.Freq / SampleRate
	val := t.Volume
	if phase-math.Floor(phase) >= 0.5 {
		val = -val
	}
	return val * (1 - float64(i)/float64(n))
}

// PCM renders t as 16-bit little-endian stereo.
func PCM(t Tone) []byte {
	n := t.Samples()
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		v := int16(t.At(i) * 32767)
		buf[4*i] = byte(v)
		buf[4*i+1] = byte(v >> 8)
		buf[4*i+2] = byte(v)
		buf[4*i+3] = byte(v >> 8)
	}
	return buf
}

// Gate drops repeats of the same kind that arrive closer than Gap apart, so a
// burst of pixel hits in one step plays once.
type Gate struct {
	Gap  time.Duration
	Now  func() time.Time
	last map[event.Kind]time.Time
}

// Allow reports whether a blip for k may play now.
func (g *Gate) Allow(k event.Kind) bool {
	now := time.Now()
	if g.Now != nil {
		now = g.Now()
	}
	if g.last == nil {
		g.last = make(map[event.Kind]time.Time)
	}
	if prev, ok := g.last[k]; ok && now.Sub(prev) < g.Gap {
		return false
	}
	g.last[k] = now
	return true
}
