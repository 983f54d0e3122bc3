package termview

import (
	"time"

	"github.com/gopxl/beep"

	"namebounce/internal/audio"
	"namebounce/internal/event"
)

// SampleRate is the rate the speaker must be initialised with.
const SampleRate = beep.SampleRate(audio.SampleRate)

// Sound is an event sink that plays a blip per collision through play,
// normally speaker.Play.
type Sound struct {
	play func(...beep.Streamer)
	gate audio.Gate
}

func NewSound(play func(...beep.Streamer)) *Sound {
	return &Sound{
		play: play,
		gate: audio.Gate{Gap: 30 * time.Millisecond},
	}
}

func (s *Sound) Emit(e event.Event) {
	tone, ok := audio.ToneFor(e.Kind)
	if !ok || !s.gate.Allow(e.Kind) {
		return
	}
	s.play(&blip{tone: tone})
}

// blip streams a Tone frame by frame.
type blip struct {
	tone audio.Tone
	pos  int
}

func (b *blip) Stream(samples [][2]float64) (n int, ok bool) {
	end := b.tone.Samples()
	if b.pos >= end {
		return 0, false
	}
	for i := range samples {
		if b.pos >= end {
			break
		}
		v := b.tone.At(b.pos)
		samples[i][0] = v
		samples[i][1] = v
		b.pos++
		n++
	}
	return n, true
}

func (b *blip) Err() error {
	return nil
}
