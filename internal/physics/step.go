// Package physics advances the ball one fixed step at a time and resolves its
// collisions with the walls, the paddle and the text particles.
package physics

import (
	"math"

	"namebounce/internal/entity"
	"namebounce/internal/event"
)

// English is the share of the speed setting a paddle edge hit adds to DX.
const English = 0.5

// World is everything a step reads and mutates.
type World struct {
	Ball   entity.Ball
	Paddle entity.Paddle
	Pixels []entity.Pixel

	Width, Height float64
}

// Result summarizes one step.
type Result struct {
	PaddleHits int
	PixelHits  int
	Missed     bool
}

// Step integrates the ball once and resolves collisions in a fixed order:
// walls, paddle, bottom edge, pixels. speed is the unscaled speed setting and
// only shapes the paddle's English. Events go to sink, which may be nil.
//
// There is no sub-stepping: a ball moving faster than a pixel is wide can
// pass through it without a hit.
func Step(w *World, speed float64, sink event.Sink) Result {
	var res Result
	b := &w.Ball

	// 1. Integrate
	b.Move()

	// 2. Walls
	if b.Top() < 0 {
		b.DY = -b.DY
		b.Y = b.Radius
		event.Emit(sink, event.Event{Kind: event.WallTop})
	}
	if b.Left() < 0 {
		b.DX = -b.DX
		b.X = b.Radius
		event.Emit(sink, event.Event{Kind: event.WallLeft})
	}
	if b.Right() > w.Width {
		b.DX = -b.DX
		b.X = w.Width - b.Radius
		event.Emit(sink, event.Event{Kind: event.WallRight})
	}

	// 3. Paddle
	if b.DY > 0 && w.Paddle.Catches(*b) {
		b.DY = -b.DY
		offset := (b.X - w.Paddle.Center()) / (w.Paddle.Width / 2)
		b.DX += offset * English * speed
		res.PaddleHits++
		event.Emit(sink, event.Event{Kind: event.Paddle})
	}

	// 4. Bottom edge
	if b.Top() > w.Height {
		res.Missed = true
		event.Emit(sink, event.Event{Kind: event.GameOver})
	}

	// 5. Pixels
	for i := range w.Pixels {
		p := &w.Pixels[i]
		if p.Hit || !p.Overlaps(b.X, b.Y, b.Radius) {
			continue
		}
		p.Hit = true
		res.PixelHits++
		event.Emit(sink, event.Event{Kind: event.Pixel, X: p.X, Y: p.Y})

		cx, cy := p.Center()
		if math.Abs(b.X-cx) > math.Abs(b.Y-cy) {
			b.DX = -b.DX
		} else {
			b.DY = -b.DY
		}
	}
	return res
}

// Remaining counts the pixels not yet hit.
func (w *World) Remaining() int {
	n := 0
	for _, p := range w.Pixels {
		if !p.Hit {
			n++
		}
	}
	return n
}
