package stdsink

import (
	"errors"
	"io"
	"sync"

	"go.jacobcolvin.com/stdsink/printer"
)

// Sinks holds the three host reporting channels that redirected output
// is forwarded through. Nil members are replaced with [printer.Discard].
type Sinks struct {
	// Info receives complete standard-output lines.
	Info printer.Sink
	// Warning receives complete standard-error lines.
	Warning printer.Sink
	// Trace receives failure diagnostics from the panic hook.
	Trace printer.Sink
}

func (s Sinks) normalized() Sinks {
	if s.Info == nil {
		s.Info = printer.Discard
	}

	if s.Warning == nil {
		s.Warning = printer.Discard
	}

	if s.Trace == nil {
		s.Trace = printer.Discard
	}

	return s
}

// Streams owns a program's output redirection: one [printer.Printer]
// per channel plus the installed failure handler. It is meant to be
// constructed once by the composition root and passed to whatever code
// emits output, rather than living in ambient global state.
//
// Installation methods swap whole printers and may be called at any
// time; write access to each channel's writer follows standard-stream
// conventions (one logical writer per channel, serialized by the
// caller).
//
// Create instances with [New].
type Streams struct {
	sinks  Sinks
	stdout *printer.Printer
	stderr *printer.Printer
	hook   func(Event)
	once   sync.Once
}

// New creates a [Streams] bound to the given sinks. Both channels start
// as buffered printers; no failure handler is installed until
// [Streams.SetPanicHook] or [Streams.Hook] runs.
func New(sinks Sinks) *Streams {
	s := &Streams{sinks: sinks.normalized()}
	s.stdout = printer.New(s.sinks.Info, printer.Buffered)
	s.stderr = printer.New(s.sinks.Warning, printer.Buffered)

	return s
}

// SetStdout installs a fresh buffered printer as the standard-output
// channel, replacing the previous one.
func (s *Streams) SetStdout() {
	s.stdout = printer.New(s.sinks.Info, printer.Buffered)
}

// SetStdoutUnbuffered installs a fresh unbuffered printer as the
// standard-output channel, replacing the previous one.
func (s *Streams) SetStdoutUnbuffered() {
	s.stdout = printer.New(s.sinks.Info, printer.Unbuffered)
}

// SetStderr installs a fresh buffered printer as the standard-error
// channel, replacing the previous one.
func (s *Streams) SetStderr() {
	s.stderr = printer.New(s.sinks.Warning, printer.Buffered)
}

// SetStderrUnbuffered installs a fresh unbuffered printer as the
// standard-error channel, replacing the previous one.
func (s *Streams) SetStderrUnbuffered() {
	s.stderr = printer.New(s.sinks.Warning, printer.Unbuffered)
}

// Stdout returns the currently installed standard-output writer.
func (s *Streams) Stdout() io.Writer {
	return s.stdout
}

// Stderr returns the currently installed standard-error writer.
func (s *Streams) Stderr() io.Writer {
	return s.stderr
}

// Flush drains any partial lines buffered on either channel, typically
// at program shutdown. Errors from both channels are joined.
func (s *Streams) Flush() error {
	return errors.Join(s.stdout.Flush(), s.stderr.Flush())
}

// Hook installs buffered printers on both channels and the failure
// handler, in one call. Unlike [Streams.Init] it is not guarded:
// calling it again reinstalls everything.
func (s *Streams) Hook() {
	s.SetStdout()
	s.SetStderr()
	s.SetPanicHook()
}

// Init runs [Streams.Hook] exactly once across the lifetime of s.
// Every later call, from any goroutine, is a no-op: no channel is
// reconfigured and no handler is reinstalled. Concurrent first calls
// all return only after the one installation has completed.
func (s *Streams) Init() {
	s.once.Do(s.Hook)
}
