// Package gamemode holds the idle/playing/game-over lifecycle and the score.
package gamemode

import "log"

type State int

const (
	Idle     State = iota // Waiting for the start command
	Playing               // Ball in motion
	GameOver              // Ball missed the paddle
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case GameOver:
		return "gameOver"
	}
	return "unknown"
}

var transitions = map[State][]State{
	Idle:     {Playing},
	Playing:  {GameOver},
	GameOver: {Playing, Idle},
}

// CanTransition reports whether from -> to is a legal move.
func CanTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Machine tracks the current state together with the running and last score.
// The zero value is not ready; use NewMachine.
type Machine struct {
	state     State
	score     int
	lastScore int
}

func NewMachine() *Machine {
	return &Machine{state: Idle}
}

func (m *Machine) State() State   { return m.state }
func (m *Machine) Score() int     { return m.score }
func (m *Machine) LastScore() int { return m.lastScore }

// Start leaves the idle menu.
func (m *Machine) Start() bool {
	if m.state != Idle {
		return false
	}
	return m.transition(Playing)
}

// Restart begins a new round after a game over.
func (m *Machine) Restart() bool {
	if m.state != GameOver {
		return false
	}
	return m.transition(Playing)
}

// Menu returns from the game-over screen to idle.
func (m *Machine) Menu() bool {
	if m.state != GameOver {
		return false
	}
	return m.transition(Idle)
}

// Miss ends the round.
func (m *Machine) Miss() bool {
	if m.state != Playing {
		return false
	}
	return m.transition(GameOver)
}

// AddScore adds n points. Points only count while playing.
func (m *Machine) AddScore(n int) {
	if m.state != Playing || n <= 0 {
		return
	}
	m.score += n
}

func (m *Machine) transition(to State) bool {
	from := m.state
	if !CanTransition(from, to) {
		return false
	}
	switch to {
	case Playing:
		m.score = 0
	case GameOver:
		m.lastScore = m.score
	}
	m.state = to
	log.Printf("[state] %s -> %s (score %d)", from, to, m.score)
	return true
}
