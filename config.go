package stdsink

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"go.jacobcolvin.com/stdsink/printer"
)

// Flags holds CLI flag names for stream configuration, allowing callers
// to customize flag names while keeping sensible defaults via
// [NewConfig].
type Flags struct {
	StdoutMode string
	StderrMode string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		StdoutMode: string(printer.Buffered),
		StderrMode: string(printer.Buffered),
		Flags:      f,
	}
}

// Config holds CLI flag values selecting the delivery mode per channel.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.Install] to apply the parsed
// modes to a [Streams].
type Config struct {
	StdoutMode string
	StderrMode string
	Flags      Flags
}

// NewConfig returns a new [Config] with both channels buffered.
// Use [Config.RegisterFlags] to add CLI flags, or set values directly.
func NewConfig() *Config {
	f := Flags{
		StdoutMode: "stdout-mode",
		StderrMode: "stderr-mode",
	}

	return f.NewConfig()
}

// RegisterFlags adds stream mode flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.StdoutMode, c.Flags.StdoutMode, c.StdoutMode,
		fmt.Sprintf("stdout delivery mode, one of: %s", printer.GetAllModeStrings()))
	flags.StringVar(&c.StderrMode, c.Flags.StderrMode, c.StderrMode,
		fmt.Sprintf("stderr delivery mode, one of: %s", printer.GetAllModeStrings()))
}

// RegisterCompletions registers shell completions for stream flags on
// cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.StdoutMode,
		cobra.FixedCompletions(printer.GetAllModeStrings(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.StdoutMode, err)
	}

	err = cmd.RegisterFlagCompletionFunc(c.Flags.StderrMode,
		cobra.FixedCompletions(printer.GetAllModeStrings(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.StderrMode, err)
	}

	return nil
}

// Install applies the configured delivery modes to s, installing a
// fresh printer per channel. The failure hook is not touched; install
// it separately with [Streams.SetPanicHook] or [Streams.Hook].
func (c *Config) Install(s *Streams) error {
	stdoutMode, err := printer.ParseMode(c.StdoutMode)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", printer.ErrInvalidArgument, c.StdoutMode, err)
	}

	stderrMode, err := printer.ParseMode(c.StderrMode)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", printer.ErrInvalidArgument, c.StderrMode, err)
	}

	if stdoutMode == printer.Unbuffered {
		s.SetStdoutUnbuffered()
	} else {
		s.SetStdout()
	}

	if stderrMode == printer.Unbuffered {
		s.SetStderrUnbuffered()
	} else {
		s.SetStderr()
	}

	return nil
}
