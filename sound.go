package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"

	sfx "namebounce/internal/audio"
	"namebounce/internal/event"
)

// soundSink plays a pre-rendered blip for each collision event.
type soundSink struct {
	ctx   *audio.Context
	clips map[event.Kind][]byte
	gate  sfx.Gate
}

func newSoundSink(ctx *audio.Context) *soundSink {
	s := &soundSink{
		ctx:   ctx,
		clips: make(map[event.Kind][]byte),
		gate:  sfx.Gate{Gap: 30 * time.Millisecond},
	}
	for k := event.WallTop; k <= event.GameOver; k++ {
		if tone, ok := sfx.ToneFor(k); ok {
			s.clips[k] = sfx.PCM(tone)
		}
	}
	return s
}

func (s *soundSink) Emit(e event.Event) {
	clip, ok := s.clips[e.Kind]
	if !ok || !s.gate.Allow(e.Kind) {
		return
	}
	p := s.ctx.NewPlayerFromBytes(clip)
	p.Play()
}
