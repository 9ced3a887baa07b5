// Package stdsink routes a program's standard-output-like and
// standard-error-like streams, plus unrecoverable-failure reports, to
// message-oriented reporting sinks supplied by a host environment.
//
// It exists for programs that have no file-descriptor console: output
// is forwarded through discrete string-accepting calls (host logging
// surfaces, embedded runtimes, structured loggers) instead. Line
// reassembly is handled by [go.jacobcolvin.com/stdsink/printer]; this
// package binds one printer per channel, installs a failure handler,
// and guards the whole setup behind an exactly-once initializer.
//
// A [Streams] is owned by the composition root and handed to whatever
// code emits output, keeping "configure once at startup" semantics
// without ambient global slots:
//
//	streams := stdsink.New(stdsink.Sinks{
//	    Info:    hostInfo,
//	    Warning: hostWarn,
//	    Trace:   hostTrace,
//	})
//	streams.Init()
//	defer streams.Flush()
//	defer streams.ReportPanics()
//
//	fmt.Fprintln(streams.Stdout(), "hello")
//
// [LoggerSinks] adapts a [charm.land/log/v2] logger into the three
// channels, and [Config] adds per-channel delivery-mode flags with
// [github.com/spf13/pflag] and shell completion support via
// [github.com/spf13/cobra]:
//
//	cfg := stdsink.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	cfg.RegisterCompletions(rootCmd)
//
//	streams := stdsink.New(stdsink.LoggerSinks(logger))
//	err := cfg.Install(streams)
package stdsink
