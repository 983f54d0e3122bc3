package entity

// Pixel is one destructible square block of rendered text.
// X, Y and Size are fixed at creation; only Hit changes.
type Pixel struct {
	X, Y float64
	Size float64
	Hit  bool
}

// Center returns the midpoint of the block.
func (p Pixel) Center() (float64, float64) {
	return p.X + p.Size/2, p.Y + p.Size/2
}

// Overlaps reports whether the block intersects the square of half-width r
// centered on (x, y). Touching edges do not count.
func (p Pixel) Overlaps(x, y, r float64) bool {
	return x+r > p.X &&
		x-r < p.X+p.Size &&
		y+r > p.Y &&
		y-r < p.Y+p.Size
}
