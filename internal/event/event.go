// Package event describes what happens to the ball during a simulation step.
// Events are observational: sinks receive them after the physics outcome is
// already decided and nothing they do feeds back into the step.
package event

import (
	"fmt"
	"math"
)

// Kind identifies a collision or lifecycle event.
type Kind int

const (
	WallTop Kind = iota
	WallLeft
	WallRight
	Paddle
	Pixel
	GameOver
)

var kindNames = [...]string{
	WallTop:   "wall-top",
	WallLeft:  "wall-left",
	WallRight: "wall-right",
	Paddle:    "paddle",
	Pixel:     "pixel",
	GameOver:  "game-over",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Event is one occurrence. X and Y are set only for Pixel events.
type Event struct {
	Kind Kind
	X, Y float64
}

// Message renders the event as a human-readable log line.
func (e Event) Message() string {
	switch e.Kind {
	case WallTop:
		return "Ball hit top wall"
	case WallLeft:
		return "Ball hit left wall"
	case WallRight:
		return "Ball hit right wall"
	case Paddle:
		return "Ball hit bottom paddle"
	case GameOver:
		return "Game Over: Ball missed paddle"
	case Pixel:
		return fmt.Sprintf("Ball hit pixel at position (%d, %d)", int(math.Floor(e.X)), int(math.Floor(e.Y)))
	}
	return e.Kind.String()
}
