package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

// StatusUsage is returned for command-line errors.
const StatusUsage = 2

// BuildInfo describes the binary.
type BuildInfo struct {
	Version   string
	BuildDate string
}

// Banner is the one-line version string shown at startup.
func (b BuildInfo) Banner() string {
	return "kzsh-" + b.Version
}

// Streams are the standard streams the shell runs on.
type Streams struct {
	In  *os.File
	Out io.Writer
	Err io.Writer
}

// StdStreams returns the process's standard streams.
func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// Options hold the root command's flags.
type Options struct {
	Command    string
	SingleShot bool
	ConfigPath string
	NoRC       bool
	LogFile    string
}

// NewRootCommand creates the kzsh command. The shell's exit status is
// stored in status.
func NewRootCommand(info BuildInfo, streams Streams, status *int) *cobra.Command {
	var opts Options

	rootCmd := &cobra.Command{
		Use:   "kzsh",
		Short: "kzsh is a small interactive command shell.",
		Long: `kzsh reads command lines from the terminal, expands aliases, runs
built-in commands and launches external programs.`,
		Version:       info.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.SingleShot = cmd.Flags().Changed("command")
			*status = runShell(cmd.Context(), info, streams, opts)
			return nil
		},
	}
	rootCmd.SetVersionTemplate(info.Banner() + "\nbuild date: " + info.BuildDate +
		"\ntarget: " + runtime.GOOS + "/" + runtime.GOARCH + "\n")
	rootCmd.SetIn(streams.In)
	rootCmd.SetOut(streams.Out)
	rootCmd.SetErr(streams.Err)

	rootCmd.Flags().StringVarP(&opts.Command, "command", "c", "", "evaluate one command line and exit with its status")
	rootCmd.Flags().BoolVar(&opts.NoRC, "norc", false, "do not read the rc file")
	rootCmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default $KZSH_CONFIG or $HOME/.config/kzsh/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.LogFile, "log", "", "write debug logs to this file")

	rootCmd.AddCommand(NewAliasesCommand(streams, &opts))
	rootCmd.AddCommand(NewHistoryCommand(streams, &opts))

	return rootCmd
}

// Execute runs the command line args and returns the process exit status.
func Execute(ctx context.Context, info BuildInfo, streams Streams, args []string) int {
	status := 0
	rootCmd := NewRootCommand(info, streams, &status)
	rootCmd.SetArgs(args)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		rootCmd.PrintErrln("Error:", err)
		var exitErr *exitStatusError
		if errors.As(err, &exitErr) {
			return exitErr.status
		}
		return StatusUsage
	}
	return status
}

// exitStatusError carries a specific status out of a subcommand.
type exitStatusError struct {
	status int
	err    error
}

func (e *exitStatusError) Error() string { return e.err.Error() }
func (e *exitStatusError) Unwrap() error { return e.err }
