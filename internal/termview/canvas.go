// Package termview draws engine frames into a terminal through tcell.
// Every cell shows two vertically stacked canvas units using an upper half
// block, so a cols×rows terminal is a cols×(2·rows) canvas.
package termview

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

const halfBlock = '▀'

type textCell struct {
	ch rune
	fg color.RGBA
}

// Canvas implements engine.Surface over a grid of half-block cells.
type Canvas struct {
	cols, rows int
	units      []color.RGBA
	text       map[int]textCell
}

func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows)
	return c
}

// Resize changes the grid and clears it.
func (c *Canvas) Resize(cols, rows int) {
	c.cols, c.rows = max(cols, 0), max(rows, 0)
	c.units = make([]color.RGBA, c.cols*c.rows*2)
	c.text = make(map[int]textCell)
}

// Size returns the canvas size in units.
func (c *Canvas) Size() (int, int) { return c.cols, c.rows * 2 }

// Clear drops all drawn units and text.
func (c *Canvas) Clear() {
	clear(c.units)
	clear(c.text)
}

// At returns the color of the unit at (x, y).
func (c *Canvas) At(x, y int) color.RGBA {
	w, h := c.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return color.RGBA{}
	}
	return c.units[y*w+x]
}

func (c *Canvas) set(x, y int, clr color.RGBA) {
	w, h := c.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	c.units[y*w+x] = clr
}

// FillRect paints every unit whose center lies inside the rectangle. A
// rectangle smaller than a unit still paints the unit holding its center.
func (c *Canvas) FillRect(x, y, w, h float64, clr color.Color) {
	rgba := toRGBA(clr)
	x0 := int(math.Round(x))
	y0 := int(math.Round(y))
	x1 := int(math.Round(x + w))
	y1 := int(math.Round(y + h))
	if x1 <= x0 || y1 <= y0 {
		c.set(int(math.Floor(x+w/2)), int(math.Floor(y+h/2)), rgba)
		return
	}
	for uy := max(y0, 0); uy < y1; uy++ {
		for ux := max(x0, 0); ux < x1; ux++ {
			c.set(ux, uy, rgba)
		}
	}
}

// FillCircle paints every unit whose center lies within r of (cx, cy), and
// always the unit holding the center.
func (c *Canvas) FillCircle(cx, cy, r float64, clr color.Color) {
	rgba := toRGBA(clr)
	c.set(int(math.Floor(cx)), int(math.Floor(cy)), rgba)
	for uy := int(math.Floor(cy - r)); uy <= int(math.Ceil(cy+r)); uy++ {
		for ux := int(math.Floor(cx - r)); ux <= int(math.Ceil(cx+r)); ux++ {
			dx, dy := float64(ux)+0.5-cx, float64(uy)+0.5-cy
			if dx*dx+dy*dy <= r*r {
				c.set(ux, uy, rgba)
			}
		}
	}
}

// Text writes s one rune per cell starting at the cell holding (x, y).
func (c *Canvas) Text(s string, x, y float64, clr color.Color) {
	row := min(int(y)/2, c.rows-1)
	col := int(x)
	c.writeText(col, row, s, toRGBA(clr))
}

// CenterText writes s horizontally centered on the given cell row.
func (c *Canvas) CenterText(row int, s string, clr color.Color) {
	col := (c.cols - len([]rune(s))) / 2
	c.writeText(max(col, 0), row, s, toRGBA(clr))
}

func (c *Canvas) writeText(col, row int, s string, fg color.RGBA) {
	if row < 0 || row >= c.rows {
		return
	}
	for _, ch := range s {
		if col >= c.cols {
			return
		}
		if col >= 0 {
			c.text[row*c.cols+col] = textCell{ch: ch, fg: fg}
		}
		col++
	}
}

// Flush copies the canvas to the screen. The caller shows the screen.
func (c *Canvas) Flush(screen tcell.Screen) {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			top := c.units[(2*row)*c.cols+col]
			bottom := c.units[(2*row+1)*c.cols+col]
			if t, ok := c.text[row*c.cols+col]; ok {
				style := tcell.StyleDefault.Foreground(rgb(t.fg)).Background(rgb(bottom))
				screen.SetContent(col, row, t.ch, nil, style)
				continue
			}
			style := tcell.StyleDefault.Foreground(rgb(top)).Background(rgb(bottom))
			screen.SetContent(col, row, halfBlock, nil, style)
		}
	}
}

func toRGBA(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
