package glyph

import (
	"strings"

	"namebounce/internal/entity"
)

// Spacing in glyph cells.
const (
	LetterSpacing = 1
	WordSpacing   = 3
)

// FillRatio is the share of canvas width the widest line occupies.
const FillRatio = 0.8

// Layout is the result of rasterizing both lines onto a canvas.
type Layout struct {
	Pixels []entity.Pixel

	// Fit is the multiplier applied to the requested pixel sizes.
	// Zero means nothing could be laid out.
	Fit       float64
	LargeSize float64
	SmallSize float64

	Top         float64
	Line1Height float64
	Gap         float64
	Line2Height float64

	Line1Width float64
	Line2Width float64
}

// Height returns the height of the whole two-line block.
func (l Layout) Height() float64 {
	return l.Line1Height + l.Gap + l.Line2Height
}

// Rasterize lays line1 out at the large pixel size and line2 at the small one,
// scales both so the wider line spans FillRatio of canvasW, and centers the
// block on the canvas. Runes without a glyph are skipped.
func Rasterize(line1, line2 string, canvasW, canvasH, large, small float64) Layout {
	maxWidth := max(wordWidth(line1, large), lineWidth(line2, small))
	if maxWidth <= 0 || canvasW <= 0 {
		return Layout{}
	}

	fit := canvasW * FillRatio / maxWidth
	l := Layout{
		Fit:       fit,
		LargeSize: large * fit,
		SmallSize: small * fit,
	}
	l.Line1Height = Rows * l.LargeSize
	l.Gap = Rows * l.LargeSize
	l.Line2Height = Rows * l.SmallSize
	l.Top = (canvasH - l.Height()) / 2

	l.Line1Width = wordWidth(line1, l.LargeSize)
	l.Line2Width = lineWidth(line2, l.SmallSize)

	// 1. Headline
	x := (canvasW - l.Line1Width) / 2
	l.Pixels = appendWord(l.Pixels, line1, x, l.Top, l.LargeSize)

	// 2. Tagline, word by word
	y := l.Top + l.Line1Height + l.Gap
	x = (canvasW - l.Line2Width) / 2
	for i, word := range words(line2) {
		if i > 0 {
			x += WordSpacing * l.SmallSize
		}
		l.Pixels = appendWord(l.Pixels, word, x, y, l.SmallSize)
		x += wordWidth(word, l.SmallSize)
	}
	return l
}

// words splits a line on spaces. Leading and trailing words that draw
// nothing are dropped so they add no spacing.
func words(s string) []string {
	ws := strings.Split(s, " ")
	for len(ws) > 0 && wordWidth(ws[0], 1) == 0 {
		ws = ws[1:]
	}
	for len(ws) > 0 && wordWidth(ws[len(ws)-1], 1) == 0 {
		ws = ws[:len(ws)-1]
	}
	return ws
}

// wordWidth is the rendered width of s without trailing letter spacing.
func wordWidth(s string, size float64) float64 {
	var w float64
	n := 0
	for _, r := range s {
		g, ok := Lookup(r)
		if !ok {
			continue
		}
		w += float64(g.Width()+LetterSpacing) * size
		n++
	}
	if n == 0 {
		return 0
	}
	return w - LetterSpacing*size
}

// lineWidth is the rendered width of a space-separated line.
func lineWidth(s string, size float64) float64 {
	var w float64
	for i, word := range words(s) {
		w += wordWidth(word, size)
		if i > 0 {
			w += WordSpacing * size
		}
	}
	return w
}

func appendWord(dst []entity.Pixel, s string, x, y, size float64) []entity.Pixel {
	for _, r := range s {
		g, ok := Lookup(r)
		if !ok {
			continue
		}
		for row := 0; row < g.Height(); row++ {
			for col := 0; col < g.Width(); col++ {
				if g.Lit(row, col) {
					dst = append(dst, entity.Pixel{
						X:    x + float64(col)*size,
						Y:    y + float64(row)*size,
						Size: size,
					})
				}
			}
		}
		x += float64(g.Width()+LetterSpacing) * size
	}
	return dst
}
