// namebounce-term plays NameBounce in a terminal using half-block cells.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep/speaker"

	"namebounce/internal/applog"
	"namebounce/internal/config"
	"namebounce/internal/engine"
	"namebounce/internal/event"
	"namebounce/internal/gamemode"
	"namebounce/internal/termview"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

var (
	colText = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colHint = color.RGBA{0xaa, 0xaa, 0xaa, 0xff}
)

var (
	configPath = flag.String("config", "", "TOML settings file")
	line1      = flag.String("line1", "", "headline text")
	line2      = flag.String("line2", "", "tagline text")
	ballSpeed  = flag.Float64("speed", 0, "ball speed setting")
	mute       = flag.Bool("mute", false, "disable sound")
	logPath    = flag.String("log", "", "log file (discarded when empty)")
)

type app struct {
	screen tcell.Screen
	canvas *termview.Canvas
	engine *engine.Engine

	// button state of the previous mouse event
	buttons tcell.ButtonMask
}

func main() {
	flag.Parse()

	f, err := applog.Setup(*logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}
	if f != nil {
		defer f.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "namebounce crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	var sinks []event.Sink
	if !*mute {
		rate := termview.SampleRate
		if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
			log.Printf("[sound] disabled: %v", err)
		} else {
			defer speaker.Close()
			sinks = append(sinks, termview.NewSound(speaker.Play))
		}
	}
	sinks = append(sinks, event.LogSink{})

	a := &app{
		screen: screen,
		canvas: termview.NewCanvas(screen.Size()),
		engine: engine.New(loadSettings(),
			engine.WithSink(event.Multi(sinks...)),
			engine.WithRand(rand.New(rand.NewSource(time.Now().UnixNano()))),
		),
	}
	defer a.engine.Close()

	a.resize()
	a.run()
}

func loadSettings() config.Settings {
	settings := config.Default()
	if *configPath != "" {
		var err error
		settings, err = config.Load(*configPath)
		if err != nil {
			log.Printf("[config] %v, using defaults", err)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "line1":
			settings.Text.Line1 = *line1
		case "line2":
			settings.Text.Line2 = *line2
		case "speed":
			settings.BallSpeed = *ballSpeed
		}
	})
	if err := settings.Validate(); err != nil {
		log.Printf("[config] %v", err)
	}
	return settings
}

// run owns the engine: input events and frame ticks are handled in one select
// loop so they never interleave with a step.
func (a *app) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go a.screen.ChannelEvents(events, quit)

	for {
		select {
		case ev := <-events:
			if ev == nil || !a.handleInput(ev) {
				return
			}
		case <-ticker.C:
			a.engine.Tick()
			a.draw()
		}
	}
}

func (a *app) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
		if ev.Key() == tcell.KeyEnter || (ev.Key() == tcell.KeyRune && ev.Rune() == ' ') {
			a.startOrRestart()
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'm' {
			a.engine.Menu()
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		a.engine.PointerMove(float64(x)+0.5, float64(y*2)+1)
		if a.clicked(ev) {
			a.startOrRestart()
		}

	case *tcell.EventResize:
		a.screen.Sync()
		a.resize()
	}
	return true
}

// clicked reports whether ev presses the primary button. Motion events with
// the button already held do not count.
func (a *app) clicked(ev *tcell.EventMouse) bool {
	prev := a.buttons
	a.buttons = ev.Buttons()
	return a.buttons&tcell.Button1 != 0 && prev&tcell.Button1 == 0
}

func (a *app) startOrRestart() {
	switch a.engine.Status().State {
	case gamemode.Idle:
		a.engine.Start()
	case gamemode.GameOver:
		a.engine.Restart()
	}
}

func (a *app) resize() {
	a.canvas.Resize(a.screen.Size())
	a.engine.Resize(a.canvas.Size())
}

func (a *app) draw() {
	a.canvas.Clear()
	a.engine.Draw(a.canvas)

	_, h := a.screen.Size()
	mid := h / 2
	st := a.engine.Status()
	switch st.State {
	case gamemode.Idle:
		a.canvas.CenterText(mid-2, "NAMEBOUNCE", colText)
		a.canvas.CenterText(mid, "Space, Enter or click to start", colHint)
		a.canvas.CenterText(mid+1, "Move the mouse to steer the paddle. q quits.", colHint)
	case gamemode.GameOver:
		a.canvas.CenterText(mid-2, "GAME OVER", colText)
		a.canvas.CenterText(mid, fmt.Sprintf("Final score: %d", st.LastScore), colText)
		a.canvas.CenterText(mid+1, "Space to restart, m for menu", colHint)
	}

	a.canvas.Flush(a.screen)
	a.screen.Show()
}
