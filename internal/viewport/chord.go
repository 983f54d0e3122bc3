package viewport

// Chord folds raw key state into zoom gesture edges. A gesture starts when a
// zoom key goes down with the modifier held and ends when either the zoom key
// or the modifier is released, in any order.
type Chord struct {
	held bool
}

// Update takes this frame's input: whether the modifier is down and whether a
// zoom key was just pressed or just released. It reports the gesture edges to
// forward as ZoomKeyDown and ZoomKeyUp.
func (c *Chord) Update(modifier, keyPressed, keyReleased bool) (down, up bool) {
	if !c.held {
		if modifier && keyPressed {
			c.held = true
			return true, false
		}
		return false, false
	}
	if keyReleased || !modifier {
		c.held = false
		return false, true
	}
	return false, false
}

// Held reports whether a gesture is in progress.
func (c *Chord) Held() bool { return c.held }
