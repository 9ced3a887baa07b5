// Command linesink pipes stdin through the stdsink redirection layer.
//
// Stdin is read in small chunks and written to the redirected
// standard-output channel, which reassembles complete lines and
// forwards them to a [charm.land/log/v2] logger on stderr. It is a live
// demonstration of line reassembly: chunk boundaries never show up in
// the logged output.
//
// # Usage
//
//	some-program | linesink [flags]
//
// # Flags
//
//	--chunk-size N     stdin read size in bytes (default 16)
//	--stdout-mode M    stdout delivery mode: buffered | unbuffered
//	--stderr-mode M    stderr delivery mode: buffered | unbuffered
//
// When stdout is a terminal both channels default to unbuffered, so
// character-at-a-time output appears immediately.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"charm.land/log/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"go.jacobcolvin.com/stdsink"
	"go.jacobcolvin.com/stdsink/printer"
	"go.jacobcolvin.com/stdsink/version"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := stdsink.NewConfig()
	if term.IsTerminal(int(os.Stdout.Fd())) {
		cfg.StdoutMode = string(printer.Unbuffered)
		cfg.StderrMode = string(printer.Unbuffered)
	}

	var chunkSize int

	cmd := &cobra.Command{
		Use:     "linesink",
		Short:   "Pipe stdin through the stdsink redirection layer",
		Version: version.Short(),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, cfg, chunkSize)
		},
	}

	cmd.Flags().IntVar(&chunkSize, "chunk-size", 16, "stdin read size in bytes")
	cfg.RegisterFlags(cmd.Flags())
	cobra.CheckErr(cfg.RegisterCompletions(cmd))

	return cmd
}

func run(cmd *cobra.Command, cfg *stdsink.Config, chunkSize int) error {
	if chunkSize < 1 {
		return fmt.Errorf("%w: chunk-size must be at least 1", printer.ErrInvalidArgument)
	}

	logger := log.New(cmd.ErrOrStderr())
	logger.SetLevel(log.DebugLevel)

	streams := stdsink.New(stdsink.LoggerSinks(logger))
	streams.Init()

	if err := cfg.Install(streams); err != nil {
		return err
	}

	defer streams.ReportPanics()

	buf := make([]byte, chunkSize)
	in := cmd.InOrStdin()

	for {
		n, err := in.Read(buf)
		if n > 0 {
			if _, werr := streams.Stdout().Write(buf[:n]); werr != nil {
				return fmt.Errorf("forwarding stdin: %w", werr)
			}
		}

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	}

	if err := streams.Flush(); err != nil {
		return fmt.Errorf("flushing streams: %w", err)
	}

	return nil
}
