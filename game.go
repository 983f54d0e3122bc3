package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"namebounce/internal/assets"
	"namebounce/internal/engine"
	"namebounce/internal/gamemode"
	"namebounce/internal/viewport"
)

var (
	ColShade     = color.RGBA{0x00, 0x00, 0x00, 0x99}
	ColShadeDark = color.RGBA{0x00, 0x00, 0x00, 0xb3}
	ColText      = color.RGBA{0xff, 0xff, 0xff, 0xff}
	ColHint      = color.RGBA{0xcc, 0xcc, 0xcc, 0xff}
)

var zoomKeys = []ebiten.Key{
	ebiten.KeyEqual,
	ebiten.KeyMinus,
	ebiten.KeyNumpadAdd,
	ebiten.KeyNumpadSubtract,
}

// Game adapts the engine to Ebiten's Update/Draw/Layout callbacks. Ebiten calls
// all three from one goroutine, which is what the engine expects.
type Game struct {
	engine *engine.Engine

	zoom viewport.Chord

	// last cursor position, to forward only real moves
	cursorX, cursorY int
}

func NewGame(e *engine.Engine) *Game {
	return &Game{engine: e, cursorX: -1, cursorY: -1}
}

// Update: Input + one physics step (60 TPS)
func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.engine.Close()
		return ebiten.Termination
	}

	// 1. Zoom chords
	down, up := g.zoom.Update(
		ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta),
		anyZoomKey(inpututil.IsKeyJustPressed),
		anyZoomKey(inpututil.IsKeyJustReleased),
	)
	if down {
		g.engine.ZoomKeyDown()
	}
	if up {
		g.engine.ZoomKeyUp()
	}

	// 2. Commands
	switch g.engine.Status().State {
	case gamemode.Idle:
		if startPressed() {
			g.engine.Start()
		}
	case gamemode.GameOver:
		if startPressed() {
			g.engine.Restart()
		} else if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyM) {
			g.engine.Menu()
		}
	}

	// 3. Pointer
	x, y := ebiten.CursorPosition()
	if x != g.cursorX || y != g.cursorY {
		g.cursorX, g.cursorY = x, y
		g.engine.PointerMove(float64(x), float64(y))
	}

	// 4. Simulation
	g.engine.Tick()
	return nil
}

func anyZoomKey(edge func(ebiten.Key) bool) bool {
	for _, k := range zoomKeys {
		if edge(k) {
			return true
		}
	}
	return false
}

func startPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// Draw: Rendering (VSync)
func (g *Game) Draw(screen *ebiten.Image) {
	g.engine.Draw(newScreenSurface(screen))

	st := g.engine.Status()
	switch st.State {
	case gamemode.Idle:
		drawOverlay(screen, ColShade, "NameBounce Game",
			"Click or press Space to start",
			"Move your mouse left/right to control the paddle.",
			"Keep the ball from falling!")
	case gamemode.GameOver:
		drawOverlay(screen, ColShadeDark, "Game Over",
			fmt.Sprintf("Final Score: %d", st.LastScore),
			"Click or press Space to restart",
			"Esc or M: back to menu")
	}
}

func drawOverlay(screen *ebiten.Image, shade color.Color, title string, lines ...string) {
	b := screen.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), shade, false)

	y := h/2 - 80
	drawCentered(screen, title, assets.BoldFace(48), w/2, y, ColText)
	y += 72
	for i, line := range lines {
		clr := ColText
		size := 24.0
		if i > 0 {
			clr, size = ColHint, 18
		}
		drawCentered(screen, line, assets.Face(size), w/2, y, clr)
		y += size * 1.6
	}
}

func drawCentered(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, s, face, op)
}

// Layout: the canvas follows the window unless a zoom gesture is in progress,
// in which case Ebiten scales the previous canvas.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.engine.Resize(outsideWidth, outsideHeight)
	if w, h := g.engine.Size(); w > 0 && h > 0 {
		return w, h
	}
	return outsideWidth, outsideHeight
}
