package event

import "log"

// Sink receives events. Implementations must not block.
type Sink interface {
	Emit(Event)
}

// SinkFunc adapts a plain function to Sink.
type SinkFunc func(Event)

func (f SinkFunc) Emit(e Event) { f(e) }

// Emit forwards e to s, dropping it when s is nil.
func Emit(s Sink, e Event) {
	if s == nil {
		return
	}
	s.Emit(e)
}

type multi []Sink

func (m multi) Emit(e Event) {
	for _, s := range m {
		Emit(s, e)
	}
}

// Multi fans each event out to every non-nil sink. It returns nil when no
// sink is left so callers keep the drop-if-absent behaviour.
func Multi(sinks ...Sink) Sink {
	var m multi
	for _, s := range sinks {
		if s != nil {
			m = append(m, s)
		}
	}
	switch len(m) {
	case 0:
		return nil
	case 1:
		return m[0]
	}
	return m
}

// LogSink writes every event to a logger.
type LogSink struct {
	Logger *log.Logger
}

func (s LogSink) Emit(e Event) {
	if s.Logger == nil {
		log.Printf("[event] %s", e.Message())
		return
	}
	s.Logger.Printf("[event] %s", e.Message())
}

// Recorder keeps the most recent events in memory, oldest first.
type Recorder struct {
	Limit  int
	events []Event
}

func (r *Recorder) Emit(e Event) {
	r.events = append(r.events, e)
	if r.Limit > 0 && len(r.events) > r.Limit {
		r.events = append(r.events[:0], r.events[len(r.events)-r.Limit:]...)
	}
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Count returns how many recorded events have kind k.
func (r *Recorder) Count(k Kind) int {
	n := 0
	for _, e := range r.events {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// Clear drops every recorded event.
func (r *Recorder) Clear() {
	r.events = r.events[:0]
}
