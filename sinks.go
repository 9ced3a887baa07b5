package stdsink

import (
	"io"

	"charm.land/log/v2"

	"go.jacobcolvin.com/stdsink/printer"
)

// LoggerSink returns a [printer.Sink] that forwards each message to
// logger at the given level. The sink never fails; the logger's own
// delivery is fire-and-forget.
func LoggerSink(logger *log.Logger, level log.Level) printer.Sink {
	return func(msg string) error {
		logger.Log(level, msg)

		return nil
	}
}

// LoggerSinks binds all three reporting channels to logger:
// standard output at info, standard error at warn, and failure
// diagnostics at debug.
func LoggerSinks(logger *log.Logger) Sinks {
	return Sinks{
		Info:    LoggerSink(logger, log.InfoLevel),
		Warning: LoggerSink(logger, log.WarnLevel),
		Trace:   LoggerSink(logger, log.DebugLevel),
	}
}

// WriterSink returns a [printer.Sink] that writes each message plus a
// trailing newline to w, propagating write errors back into the
// printer's retry contract.
func WriterSink(w io.Writer) printer.Sink {
	return func(msg string) error {
		_, err := io.WriteString(w, msg+"\n")

		return err
	}
}
