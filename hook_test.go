package stdsink_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/stdsink"
)

func TestReportFormatting(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		event stdsink.Event
		want  string
	}{
		"message with location": {
			event: stdsink.Event{
				Message:    "boom",
				HasMessage: true,
				Location:   &stdsink.Location{File: "x.rs", Line: 10, Column: 3},
			},
			want: "Panicked at 'boom', x.rs:10:3",
		},
		"no message no location": {
			event: stdsink.Event{},
			want:  "Panicked at an unknown location 'unknown location'",
		},
		"message without location": {
			event: stdsink.Event{Message: "boom", HasMessage: true},
			want:  "Panicked at an unknown location 'boom'",
		},
		"location without message": {
			event: stdsink.Event{
				Location: &stdsink.Location{File: "main.go", Line: 42, Column: 7},
			},
			want: "Panicked at 'unknown location', main.go:42:7",
		},
		"empty message is still a message": {
			event: stdsink.Event{HasMessage: true},
			want:  "Panicked at an unknown location ''",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			s, _, _, trace := newTestStreams()
			s.SetPanicHook()

			s.Report(tc.event)

			assert.Equal(t, []string{tc.want}, trace.recorded())
		})
	}
}

func TestReportFlushesStreamsFirst(t *testing.T) {
	t.Parallel()

	s, info, warn, trace := newTestStreams()
	s.Hook()

	_, err := s.Stdout().Write([]byte("partial out"))
	require.NoError(t, err)
	_, err = s.Stderr().Write([]byte("partial err"))
	require.NoError(t, err)

	s.Report(stdsink.Event{Message: "boom", HasMessage: true})

	assert.Equal(t, []string{"partial out"}, info.recorded())
	assert.Equal(t, []string{"partial err"}, warn.recorded())
	assert.Equal(t, []string{"Panicked at an unknown location 'boom'"}, trace.recorded())
}

func TestReportSwallowsSinkErrors(t *testing.T) {
	t.Parallel()

	s, info, _, trace := newTestStreams()
	s.Hook()

	info.err = errors.New("info down")
	trace.err = errors.New("trace down")

	_, err := s.Stdout().Write([]byte("stuck"))
	require.NoError(t, err)

	// Neither the failed stream flush nor the failed trace forward
	// escapes the handler.
	s.Report(stdsink.Event{Message: "boom", HasMessage: true})

	assert.Empty(t, trace.recorded())
}

func TestReportWithoutHookIsNoop(t *testing.T) {
	t.Parallel()

	s, _, _, trace := newTestStreams()

	s.Report(stdsink.Event{Message: "boom", HasMessage: true})

	assert.Empty(t, trace.recorded())
}

func TestCaptureEvent(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		value any
		want  stdsink.Event
	}{
		"string payload": {
			value: "boom",
			want:  stdsink.Event{Message: "boom", HasMessage: true},
		},
		"error payload": {
			value: errors.New("kaput"),
			want:  stdsink.Event{Message: "kaput", HasMessage: true},
		},
		"opaque payload": {
			value: 42,
			want:  stdsink.Event{},
		},
		"nil payload": {
			value: nil,
			want:  stdsink.Event{},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, stdsink.CaptureEvent(tc.value))
		})
	}
}

func TestReportPanicsReRaises(t *testing.T) {
	t.Parallel()

	s, _, _, trace := newTestStreams()
	s.Init()

	var recovered any

	func() {
		defer func() { recovered = recover() }()
		defer s.ReportPanics()

		panic("boom")
	}()

	assert.Equal(t, "boom", recovered)
	assert.Equal(t, []string{"Panicked at an unknown location 'boom'"}, trace.recorded())
}

func TestReportPanicsWithoutPanic(t *testing.T) {
	t.Parallel()

	s, _, _, trace := newTestStreams()
	s.Init()

	func() {
		defer s.ReportPanics()
	}()

	assert.Empty(t, trace.recorded())
}
