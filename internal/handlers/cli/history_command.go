package cli

import (
	"errors"
	"fmt"

	"github.com/AntonioJCosta/kzsh/internal/adapters/osenv"
	entry "github.com/AntonioJCosta/kzsh/internal/core/domain/history"
	"github.com/AntonioJCosta/kzsh/internal/fsutil"
	"github.com/AntonioJCosta/kzsh/internal/repositories/history"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

const defaultHistoryLimit = 20

// NewHistoryCommand creates the 'history' subcommand.
func NewHistoryCommand(streams Streams, opts *Options) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show saved command history.",
		Long:  `Prints the newest lines of the history database named by history_file in the config file.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHistoryCmd(streams, opts, limit)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", defaultHistoryLimit, "Number of lines to show.")
	return cmd
}

func runHistoryCmd(streams Streams, opts *Options, limit int) error {
	env := osenv.NewOSEnvironment()
	cfg, err := strictConfig(afero.NewOsFs(), configPath(opts.ConfigPath, env))
	if err != nil {
		return err
	}
	if cfg.HistoryFile == "" {
		fmt.Fprintln(streams.Out, "History is not saved: history_file is not set in the config file.")
		return nil
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	store, err := history.OpenStore(fsutil.ExpandHome(cfg.HistoryFile, env.Getenv("HOME")), historyLockTimeout)
	if err != nil {
		if errors.Is(err, history.ErrStoreLocked) {
			return &exitStatusError{status: 1, err: fmt.Errorf("%w; close the running session first", err)}
		}
		return &exitStatusError{status: 1, err: err}
	}
	defer store.Close()

	lines, err := store.Recent(limit)
	if err != nil {
		return &exitStatusError{status: 1, err: err}
	}
	for i, line := range lines {
		fmt.Fprintln(streams.Out, entry.Entry{Index: i + 1, Line: line})
	}
	return nil
}
