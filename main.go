package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	sfx "namebounce/internal/audio"
	"namebounce/internal/applog"
	"namebounce/internal/config"
	"namebounce/internal/engine"
	"namebounce/internal/event"
)

// Window Constants
const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "NameBounce"
)

var (
	configPath = flag.String("config", "", "TOML settings file")
	line1      = flag.String("line1", "", "headline text")
	line2      = flag.String("line2", "", "tagline text")
	ballSpeed  = flag.Float64("speed", 0, "ball speed setting")
	embedded   = flag.Bool("embed", false, "hide the score and silence the event log")
	mute       = flag.Bool("mute", false, "disable sound")
	logPath    = flag.String("log", "", "write the log to this file instead of stderr")
	seed       = flag.Int64("seed", 0, "launch direction seed (0 = time based)")
)

func main() {
	flag.Parse()

	// 1. Logging
	if *logPath != "" {
		f, err := applog.Setup(*logPath)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}

	// 2. Settings
	settings := loadSettings()
	if err := settings.Validate(); err != nil {
		log.Printf("[config] %v", err)
	}

	// 3. Engine
	var sinks []event.Sink
	if !*mute {
		sinks = append(sinks, newSoundSink(audio.NewContext(sfx.SampleRate)))
	}
	sinks = append(sinks, event.LogSink{})

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	eng := engine.New(settings,
		engine.WithSink(event.Multi(sinks...)),
		engine.WithRand(rand.New(rand.NewSource(s))),
	)

	// 4. Window Setup
	ebiten.SetWindowSize(WindowWidth, WindowHeight)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	// 5. Run Loop
	if err := ebiten.RunGame(NewGame(eng)); err != nil {
		log.Fatal(err)
	}
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
		case "embed":
			settings.Embedded = *embedded
		}
	})
	return settings
}
