// Package config holds the settings record the engine is built from and
// loads it from TOML.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"namebounce/internal/glyph"
)

// DefaultBallSpeed is the speed setting used when none is configured.
const DefaultBallSpeed = 2

var (
	ErrEmptyText = errors.New("config: both text lines are empty")
	ErrBadSpeed  = errors.New("config: ball speed must be positive")
)

type Text struct {
	Line1 string `toml:"line1"`
	Line2 string `toml:"line2"`
}

// Colors are "#rrggbb" hex strings.
type Colors struct {
	Main       string `toml:"main"`
	Hit        string `toml:"hit"`
	Ball       string `toml:"ball"`
	Paddle     string `toml:"paddle"`
	Background string `toml:"background"`
}

// Settings is the configuration record of one engine instance.
type Settings struct {
	Text      Text    `toml:"text"`
	Colors    Colors  `toml:"colors"`
	BallSpeed float64 `toml:"ball_speed"`

	// Embedded hides the score readout and silences the event stream.
	Embedded bool `toml:"embedded"`
}

func Default() Settings {
	return Settings{
		Text: Text{
			Line1: "CHAITANYA",
			Line2: "PROJECTS CONSULTANCY LIMITED",
		},
		Colors: Colors{
			Main:       "#08a281",
			Hit:        "#073779",
			Ball:       "#0ca581",
			Paddle:     "#08a281",
			Background: "#000000",
		},
		BallSpeed: DefaultBallSpeed,
	}
}

// Load reads a TOML file on top of the defaults. Keys missing from the file
// keep their default value.
func Load(path string) (Settings, error) {
	s := Default()
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, fmt.Errorf("config: %s: %w", path, err)
		}
		return s, fmt.Errorf("config: decode %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		log.Printf("[config] unknown key %q in %s", key.String(), path)
	}
	return s, nil
}

// Validate reports problems the engine would otherwise silently absorb.
func (s Settings) Validate() error {
	var errs []error
	if strings.TrimSpace(glyph.Prepare(s.Text.Line1+s.Text.Line2)) == "" {
		errs = append(errs, ErrEmptyText)
	}
	if s.BallSpeed <= 0 {
		errs = append(errs, ErrBadSpeed)
	}
	if _, err := s.Colors.Palette(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Normalize upper-cases the text, blanks runes without a glyph and replaces a
// non-positive speed with the default.
func (s Settings) Normalize() Settings {
	s.Text.Line1 = glyph.Prepare(s.Text.Line1)
	s.Text.Line2 = glyph.Prepare(s.Text.Line2)
	if s.BallSpeed <= 0 {
		s.BallSpeed = DefaultBallSpeed
	}
	return s
}

// Palette holds the parsed colors.
type Palette struct {
	Main, Hit, Ball, Paddle, Background color.RGBA
}

// Palette parses every color. Entries that fail to parse fall back to the
// default color and are reported in the returned error.
func (c Colors) Palette() (Palette, error) {
	def := Default().Colors
	var errs []error
	parse := func(name, value, fallback string) color.RGBA {
		rgba, err := parseHex(value)
		if err != nil {
			errs = append(errs, fmt.Errorf("config: color %s %q: %w", name, value, err))
			rgba, _ = parseHex(fallback)
		}
		return rgba
	}
	p := Palette{
		Main:       parse("main", c.Main, def.Main),
		Hit:        parse("hit", c.Hit, def.Hit),
		Ball:       parse("ball", c.Ball, def.Ball),
		Paddle:     parse("paddle", c.Paddle, def.Paddle),
		Background: parse("background", c.Background, def.Background),
	}
	return p, errors.Join(errs...)
}

func parseHex(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
