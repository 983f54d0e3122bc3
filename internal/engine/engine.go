// Package engine ties the rasterizer, scale manager, physics and state
// machine into one game instance driven a frame at a time by its host.
//
// An Engine is owned by a single goroutine. Hosts call its input methods and
// Tick from that goroutine, so input handled between two ticks is fully
// visible to the next one.
package engine

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"time"

	"namebounce/internal/config"
	"namebounce/internal/entity"
	"namebounce/internal/event"
	"namebounce/internal/gamemode"
	"namebounce/internal/glyph"
	"namebounce/internal/physics"
	"namebounce/internal/viewport"
)

// Base sizes in canvas units at scale 1.
const (
	LargePixel = 8
	SmallPixel = 4

	BallRadius   = LargePixel / 2
	PaddleWidth  = 10 * LargePixel
	PaddleHeight = LargePixel

	// BallStart is the ball's launch height as a share of canvas height.
	BallStart = 0.2
)

// ScoreColor is the color of the score readout.
var ScoreColor = color.RGBA{0xff, 0xff, 0xff, 0xff}

// Status is what the surrounding UI needs to pick an overlay.
type Status struct {
	State     gamemode.State
	Score     int
	LastScore int
}

type Option func(*Engine)

// WithSink attaches an event sink. Without one, events are dropped.
func WithSink(s event.Sink) Option {
	return func(e *Engine) { e.sink = s }
}

// WithClock replaces the clock used by the zoom debounce.
func WithClock(c viewport.Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithRand seeds the launch direction.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

type Engine struct {
	cfg     config.Settings
	palette config.Palette

	sink  event.Sink
	clock viewport.Clock
	rng   *rand.Rand

	view    *viewport.Manager
	machine *gamemode.Machine

	world physics.World
	built bool

	scheduled bool
	closed    bool
}

// New creates an idle engine. Nothing is laid out until the host reports a
// canvas size through Resize.
func New(cfg config.Settings, opts ...Option) *Engine {
	e := &Engine{machine: gamemode.NewMachine()}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	e.view = viewport.New(e.clock)
	e.applyConfig(cfg)
	return e
}

// SetConfig replaces the settings record and rebuilds the layout.
func (e *Engine) SetConfig(cfg config.Settings) {
	if e.closed {
		return
	}
	e.applyConfig(cfg)
	e.rebuild()
}

func (e *Engine) applyConfig(cfg config.Settings) {
	e.cfg = cfg.Normalize()
	p, err := e.cfg.Colors.Palette()
	if err != nil {
		log.Printf("[config] %v", err)
	}
	e.palette = p
}

// Config returns the normalized settings in use.
func (e *Engine) Config() config.Settings { return e.cfg }

// Resize reports the host viewport size. A rebuild follows unless the size is
// unchanged, unusable, or the report belongs to a zoom gesture.
func (e *Engine) Resize(w, h int) {
	if e.closed {
		return
	}
	if e.view.Observe(w, h) {
		e.rebuild()
	}
}

// Size returns the canvas size in use, zero before the first valid Resize.
func (e *Engine) Size() (int, int) { return e.view.Size() }

func (e *Engine) ZoomKeyDown() {
	if !e.closed {
		e.view.ZoomKeyDown()
	}
}

func (e *Engine) ZoomKeyUp() {
	if !e.closed {
		e.view.ZoomKeyUp()
	}
}

// PointerMove centers the paddle under x. It is ignored unless playing.
func (e *Engine) PointerMove(x, y float64) {
	if e.closed || !e.built || e.machine.State() != gamemode.Playing {
		return
	}
	w, _ := e.view.Size()
	e.world.Paddle.MoveTo(x, float64(w))
}

// Start begins a round from the idle menu.
func (e *Engine) Start() bool {
	if e.closed || !e.machine.Start() {
		return false
	}
	e.enterPlaying()
	return true
}

// Restart begins a new round after a game over.
func (e *Engine) Restart() bool {
	if e.closed || !e.machine.Restart() {
		return false
	}
	e.enterPlaying()
	return true
}

// Menu goes back to idle from the game-over screen.
func (e *Engine) Menu() bool {
	if e.closed || !e.machine.Menu() {
		return false
	}
	e.scheduled = false
	return true
}

func (e *Engine) enterPlaying() {
	e.rebuild()
	e.scheduled = true
}

// Tick runs one physics step if a tick is scheduled and reports whether the
// next one is. Scheduling stops as soon as the state leaves playing.
func (e *Engine) Tick() bool {
	if e.closed || !e.scheduled {
		return false
	}
	if e.machine.State() != gamemode.Playing {
		e.scheduled = false
		return false
	}
	if !e.built {
		return true
	}

	res := physics.Step(&e.world, e.cfg.BallSpeed, e.events())
	e.machine.AddScore(res.PaddleHits)
	if res.Missed {
		e.machine.Miss()
	}

	e.scheduled = e.machine.State() == gamemode.Playing
	return e.scheduled
}

// Status reports the lifecycle state and scores.
func (e *Engine) Status() Status {
	return Status{
		State:     e.machine.State(),
		Score:     e.machine.Score(),
		LastScore: e.machine.LastScore(),
	}
}

// Remaining counts the text pixels not yet destroyed.
func (e *Engine) Remaining() int { return e.world.Remaining() }

// Close stops ticking, cancels the zoom debounce and detaches the sink.
// Every later call is a no-op.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.closed = true
	e.scheduled = false
	e.view.Close()
	e.sink = nil
}

func (e *Engine) events() event.Sink {
	if e.cfg.Embedded {
		return nil
	}
	return e.sink
}

// rebuild replaces particles, ball and paddle together. Without a usable
// canvas it leaves everything as it was.
func (e *Engine) rebuild() {
	if !e.view.Valid() {
		return
	}
	cw, ch := e.view.Size()
	w, h := float64(cw), float64(ch)
	scale := e.view.Scale()
	large := LargePixel * scale
	speed := e.cfg.BallSpeed * scale

	layout := glyph.Rasterize(e.cfg.Text.Line1, e.cfg.Text.Line2, w, h, large, SmallPixel*scale)

	dx := speed
	if e.rng.Float64() <= 0.5 {
		dx = -speed
	}
	paddleW, paddleH := PaddleWidth*scale, PaddleHeight*scale

	e.world = physics.World{
		Width:  w,
		Height: h,
		Pixels: layout.Pixels,
		Ball: entity.Ball{
			X:      w / 2,
			Y:      h * BallStart,
			DX:     dx,
			DY:     speed,
			Radius: BallRadius * scale,
		},
		Paddle: entity.Paddle{
			X:      (w - paddleW) / 2,
			Y:      h - paddleH*2,
			Width:  paddleW,
			Height: paddleH,
		},
	}
	e.built = true
	log.Printf("[layout] %dx%d scale %.3f fit %.3f: %d pixels", cw, ch, scale, layout.Fit, len(layout.Pixels))
}

// Draw renders the whole canvas. A nil surface draws nothing.
func (e *Engine) Draw(s Surface) {
	if s == nil || !e.built {
		return
	}
	w, h := e.world.Width, e.world.Height

	// 1. Background
	s.FillRect(0, 0, w, h, e.palette.Background)

	// 2. Text particles
	for _, p := range e.world.Pixels {
		c := e.palette.Main
		if p.Hit {
			c = e.palette.Hit
		}
		s.FillRect(p.X, p.Y, p.Size, p.Size, c)
	}

	// 3. Ball and paddle
	b := e.world.Ball
	s.FillCircle(b.X, b.Y, b.Radius, e.palette.Ball)
	p := e.world.Paddle
	s.FillRect(p.X, p.Y, p.Width, p.Height, e.palette.Paddle)

	// 4. Score
	if !e.cfg.Embedded {
		s.Text(fmt.Sprintf("Score: %d", e.machine.Score()), 24, 40, ScoreColor)
	}
}
