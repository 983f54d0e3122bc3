// Package viewport tracks the canvas size, derives the base scale from it and
// keeps zoom gestures from being mistaken for real resizes.
package viewport

import (
	"log"
	"time"
)

// ReferenceSize is the canvas edge at which the scale is 1.
const ReferenceSize = 1000

// ZoomDebounce is how long resize reports stay suppressed after the zoom chord
// is released.
const ZoomDebounce = 500 * time.Millisecond

// Manager is owned by a single goroutine and is not safe for concurrent use.
type Manager struct {
	clock Clock

	width, height int
	scale         float64

	// last size reported by the host, accepted or not
	seenW, seenH int

	zooming  bool
	clearAt  time.Time
	clearing bool
	closed   bool
}

// New returns a manager with no canvas yet. A nil clock means the system clock.
func New(clock Clock) *Manager {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Manager{clock: clock}
}

// Observe records a viewport size reported by the host and reports whether a
// layout rebuild is due. Repeated reports of the same size, non-positive
// sizes, and sizes reported while a zoom gesture is in progress do not
// trigger a rebuild.
func (m *Manager) Observe(w, h int) bool {
	if m.closed || w <= 0 || h <= 0 {
		return false
	}
	if w == m.seenW && h == m.seenH {
		return false
	}
	m.seenW, m.seenH = w, h

	if m.Zooming() {
		log.Printf("[zoom] ignoring resize to %dx%d", w, h)
		return false
	}

	m.width, m.height = w, h
	m.scale = float64(min(w, h)) / ReferenceSize
	return true
}

// ZoomKeyDown marks a zoom chord as held and cancels any pending release.
func (m *Manager) ZoomKeyDown() {
	if m.closed {
		return
	}
	m.zooming = true
	m.clearing = false
}

// ZoomKeyUp arms a one-shot clear of the zoom flag after ZoomDebounce.
func (m *Manager) ZoomKeyUp() {
	if m.closed || !m.zooming {
		return
	}
	m.clearing = true
	m.clearAt = m.clock.Now().Add(ZoomDebounce)
}

// Zooming reports whether resize reports are currently suppressed.
func (m *Manager) Zooming() bool {
	if m.clearing && !m.clock.Now().Before(m.clearAt) {
		m.zooming = false
		m.clearing = false
	}
	return m.zooming
}

// Close cancels the pending clear. Every later call is a no-op.
func (m *Manager) Close() {
	m.closed = true
	m.clearing = false
}

// Size returns the accepted canvas size.
func (m *Manager) Size() (int, int) { return m.width, m.height }

// Scale returns min(width, height)/ReferenceSize for the accepted size.
func (m *Manager) Scale() float64 { return m.scale }

// Valid reports whether a usable canvas size has been accepted.
func (m *Manager) Valid() bool {
	return m.width > 0 && m.height > 0
}
