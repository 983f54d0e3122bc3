package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"namebounce/internal/assets"
)

// ScoreFontSize matches the 24px bold score readout.
const ScoreFontSize = 24

// screenSurface draws engine frames with Ebiten's vector package.
type screenSurface struct {
	dst  *ebiten.Image
	face *text.GoTextFace
}

func newScreenSurface(dst *ebiten.Image) *screenSurface {
	return &screenSurface{dst: dst, face: assets.BoldFace(ScoreFontSize)}
}

func (s *screenSurface) FillRect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s *screenSurface) FillCircle(cx, cy, r float64, c color.Color) {
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(r), c, true)
}

func (s *screenSurface) Text(str string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-s.face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.dst, str, s.face, op)
}
