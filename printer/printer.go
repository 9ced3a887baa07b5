package printer

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// Sink forwards one complete, already-assembled message downstream.
//
// A Sink is invoked synchronously on the caller's goroutine and must not
// retain the string beyond the call. Returning an error tells the
// [Printer] to keep its buffer intact so the content can be re-forwarded
// by a later [Printer.Flush].
type Sink func(msg string) error

// Discard is a [Sink] that drops every message and never fails.
func Discard(string) error { return nil }

// Printer is an [io.Writer] that reassembles arbitrary byte chunks into
// complete text messages and forwards them through a [Sink].
//
// Input chunks may split lines, and even multi-byte UTF-8 sequences, at
// any offset. Each chunk is decoded lossily (invalid sequences become
// U+FFFD) and appended to an internal buffer. In [Buffered] mode the
// buffer is forwarded up to its last newline, retaining any trailing
// partial line; in [Unbuffered] mode every write forwards the whole
// accumulated buffer.
//
// A Printer is not safe for concurrent use; callers must serialize
// access to each instance, as is conventional for a single output
// stream.
//
// Create instances with [New].
type Printer struct {
	sink Sink
	buf  []byte
	mode Mode
}

// New creates a [Printer] forwarding to sink in the given mode.
// A nil sink discards all output.
func New(sink Sink, mode Mode) *Printer {
	if sink == nil {
		sink = Discard
	}

	return &Printer{
		sink: sink,
		mode: mode,
	}
}

// Mode returns the delivery mode fixed at construction.
func (p *Printer) Mode() Mode {
	return p.mode
}

// Write decodes b, appends it to the buffer, and forwards whatever the
// delivery mode allows. It always accepts the full chunk: the returned
// count is len(b) even when the sink fails, because the decoded bytes
// are appended before the forward attempt and remain buffered on error.
// After a sink error, retry by calling [Printer.Flush]; re-issuing the
// same Write would append the chunk a second time.
func (p *Printer) Write(b []byte) (int, error) {
	p.buf = appendLossy(p.buf, b)

	if p.mode == Unbuffered {
		return len(b), p.Flush()
	}

	// Forward everything up to the last newline; the trailing partial
	// line stays buffered until it completes.
	i := bytes.LastIndexByte(p.buf, '\n')
	if i < 0 {
		return len(b), nil
	}

	if err := p.sink(string(p.buf[:i])); err != nil {
		return len(b), err
	}

	n := copy(p.buf, p.buf[i+1:])
	p.buf = p.buf[:n]

	return len(b), nil
}

// Flush forwards any buffered content, including a partial trailing
// line, and empties the buffer. An empty buffer is a no-op with zero
// sink invocations. On sink error the buffer is left intact so Flush
// can be retried.
func (p *Printer) Flush() error {
	if len(p.buf) == 0 {
		return nil
	}

	if err := p.sink(string(p.buf)); err != nil {
		return err
	}

	p.buf = p.buf[:0]

	return nil
}

// appendLossy appends b to dst as UTF-8 text, substituting U+FFFD for
// invalid sequences. Decoding never fails, so malformed input is never
// an error condition for Write.
func appendLossy(dst, b []byte) []byte {
	if utf8.Valid(b) {
		return append(dst, b...)
	}

	return append(dst, strings.ToValidUTF8(string(b), string(utf8.RuneError))...)
}
