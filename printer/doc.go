// Package printer provides a line-reassembling [io.Writer] for
// environments that report output through discrete, message-oriented
// calls instead of file-descriptor streams.
//
// A [Printer] wraps a [Sink] function and an accumulation buffer. Byte
// chunks written to it may split lines and multi-byte characters at
// arbitrary offsets; the Printer decodes them lossily, reassembles
// complete lines, and forwards them downstream. [Buffered] mode emits
// up to the last newline and retains the partial remainder, bounding
// latency to at most one unflushed partial line while sparing the sink
// one invocation per byte under character-at-a-time output. [Unbuffered]
// mode forwards on every write.
//
// Typical usage binds a Printer to a host reporting function:
//
//	p := printer.New(func(msg string) error {
//	    host.ReportInfo(msg)
//	    return nil
//	}, printer.Buffered)
//
//	fmt.Fprintf(p, "progress: %d%%\n", pct)
//	defer p.Flush()
//
// No byte is ever forwarded twice or dropped: after any successful
// Write or Flush the buffer holds exactly the bytes not yet forwarded,
// and a sink failure leaves the buffer intact for a retried Flush.
package printer
