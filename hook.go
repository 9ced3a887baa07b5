package stdsink

import (
	"fmt"
)

// unknownMessage is reported when a failure carries no textual payload.
const unknownMessage = "unknown location"

// Location identifies the source position a failure originated from.
// It is supplied by the host's failure machinery; the Go runtime itself
// does not expose a column for a recovered panic.
type Location struct {
	File   string
	Line   int
	Column int
}

// Event describes one unrecoverable failure. The message is a tagged
// variant: HasMessage distinguishes "no textual payload" from an empty
// string.
type Event struct {
	Message    string
	HasMessage bool

	// Location is nil when the failure's origin is unknown.
	Location *Location
}

// CaptureEvent builds an [Event] from a recovered panic value. String
// and error payloads become the event's message; any other payload
// yields an event without one. The event carries no location.
func CaptureEvent(v any) Event {
	switch m := v.(type) {
	case string:
		return Event{Message: m, HasMessage: true}
	case error:
		return Event{Message: m.Error(), HasMessage: true}
	}

	return Event{}
}

func formatEvent(ev Event) string {
	msg := unknownMessage
	if ev.HasMessage {
		msg = ev.Message
	}

	if loc := ev.Location; loc != nil {
		return fmt.Sprintf("Panicked at '%s', %s:%d:%d", msg, loc.File, loc.Line, loc.Column)
	}

	return fmt.Sprintf("Panicked at an unknown location '%s'", msg)
}

// SetPanicHook installs the failure handler, replacing any previously
// installed handler without chaining. The handler flushes both stream
// channels, formats the event as a single diagnostic line, and forwards
// it to the Trace sink.
//
// Errors inside the handler are discarded: a failure while reporting a
// failure is never raised, so the diagnostic is attempted exactly once
// and recursive failure loops cannot occur. This is the one path that
// swallows sink errors; ordinary writes and flushes propagate them.
func (s *Streams) SetPanicHook() {
	s.hook = func(ev Event) {
		// Partial output should land before the diagnostic.
		_ = s.Flush()
		_ = s.sinks.Trace(formatEvent(ev))
	}
}

// Report invokes the installed failure handler with ev. It is the entry
// point for host failure machinery that captures its own message and
// location. Without an installed handler it does nothing. Report never
// returns an error.
func (s *Streams) Report(ev Event) {
	if s.hook != nil {
		s.hook(ev)
	}
}

// ReportPanics recovers an in-flight panic, reports it as a failure
// event, and re-raises the same value. Use it deferred at the top of a
// goroutine or main:
//
//	defer streams.ReportPanics()
//
// With no panic in flight it does nothing.
func (s *Streams) ReportPanics() {
	v := recover()
	if v == nil {
		return
	}

	s.Report(CaptureEvent(v))

	panic(v)
}
