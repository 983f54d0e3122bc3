package entity

// Ball is the single moving body. DX and DY are per-step velocities.
type Ball struct {
	X, Y   float64
	DX, DY float64
	Radius float64
}

// Move advances the ball by its velocity.
func (b *Ball) Move() {
	b.X += b.DX
	b.Y += b.DY
}

// Top, Bottom, Left and Right are the edges of the ball's bounding box.
func (b Ball) Top() float64    { return b.Y - b.Radius }
func (b Ball) Bottom() float64 { return b.Y + b.Radius }
func (b Ball) Left() float64   { return b.X - b.Radius }
func (b Ball) Right() float64  { return b.X + b.Radius }
