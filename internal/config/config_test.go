package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPalette(t *testing.T) {
	p, err := Default().Colors.Palette()
	if err != nil {
		t.Fatalf("default palette: %v", err)
	}
	if want := (color.RGBA{0x08, 0xa2, 0x81, 0xff}); p.Main != want {
		t.Errorf("Main = %v, want %v", p.Main, want)
	}
	if want := (color.RGBA{0, 0, 0, 0xff}); p.Background != want {
		t.Errorf("Background = %v, want %v", p.Background, want)
	}
	if err := Default().Validate(); err != nil {
		t.Errorf("default settings invalid: %v", err)
	}
}

func TestPaletteFallsBack(t *testing.T) {
	c := Default().Colors
	c.Ball = "not-a-color"
	c.Hit = "#ff0000"

	p, err := c.Palette()
	if err == nil {
		t.Fatal("expected an error for the bad ball color")
	}
	if want := (color.RGBA{0x0c, 0xa5, 0x81, 0xff}); p.Ball != want {
		t.Errorf("Ball = %v, want default %v", p.Ball, want)
	}
	if want := (color.RGBA{0xff, 0, 0, 0xff}); p.Hit != want {
		t.Errorf("Hit = %v, want %v", p.Hit, want)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	data := `
ball_speed = 5

[text]
line1 = "hello"

[colors]
background = "#101010"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.BallSpeed != 5 {
		t.Errorf("BallSpeed = %v, want 5", s.BallSpeed)
	}
	if s.Text.Line1 != "hello" {
		t.Errorf("Line1 = %q", s.Text.Line1)
	}
	if s.Text.Line2 != Default().Text.Line2 {
		t.Errorf("Line2 = %q, want default", s.Text.Line2)
	}
	if s.Colors.Background != "#101010" || s.Colors.Main != Default().Colors.Main {
		t.Errorf("colors = %+v", s.Colors)
	}
}

func TestLoadMissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want ErrNotExist", err)
	}
	if s != Default() {
		t.Error("missing file should still return defaults")
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("ball_speed = = 3"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected a decode error")
	}
}

func TestValidate(t *testing.T) {
	s := Default()
	s.Text = Text{Line1: "~~", Line2: ""}
	s.BallSpeed = 0
	err := s.Validate()
	if !errors.Is(err, ErrEmptyText) || !errors.Is(err, ErrBadSpeed) {
		t.Errorf("Validate() = %v", err)
	}
}

func TestNormalize(t *testing.T) {
	s := Default()
	s.Text = Text{Line1: "acme~", Line2: "big co"}
	s.BallSpeed = -1

	n := s.Normalize()
	if n.Text.Line1 != "ACME " || n.Text.Line2 != "BIG CO" {
		t.Errorf("text = %+v", n.Text)
	}
	if n.BallSpeed != DefaultBallSpeed {
		t.Errorf("BallSpeed = %v, want %v", n.BallSpeed, DefaultBallSpeed)
	}
}
