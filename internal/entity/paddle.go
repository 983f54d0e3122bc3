package entity

// Paddle is the player's bar. Only X moves after layout.
type Paddle struct {
	X, Y          float64
	Width, Height float64
}

// Center returns the horizontal midpoint.
func (p Paddle) Center() float64 {
	return p.X + p.Width/2
}

// MoveTo centers the paddle under pointerX, clamped to [0, canvasWidth-Width].
func (p *Paddle) MoveTo(pointerX, canvasWidth float64) {
	x := pointerX - p.Width/2
	if x > canvasWidth-p.Width {
		x = canvasWidth - p.Width
	}
	if x < 0 {
		x = 0
	}
	p.X = x
}

// Catches reports whether the ball's vertical extent overlaps the paddle while
// its center lies strictly inside the paddle's horizontal span.
func (p Paddle) Catches(b Ball) bool {
	return b.Bottom() > p.Y &&
		b.Top() < p.Y+p.Height &&
		b.X > p.X &&
		b.X < p.X+p.Width
}
