package engine

import "image/color"

// Surface is where a frame is drawn. Coordinates are canvas units.
type Surface interface {
	FillRect(x, y, w, h float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	// Text draws s with its baseline at y.
	Text(s string, x, y float64, c color.Color)
}
