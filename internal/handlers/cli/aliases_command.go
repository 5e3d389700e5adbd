package cli

import (
	"fmt"

	"github.com/AntonioJCosta/kzsh/internal/adapters/osenv"
	"github.com/AntonioJCosta/kzsh/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// NewAliasesCommand creates the 'aliases' subcommand.
func NewAliasesCommand(streams Streams, opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "aliases",
		Short: "List the predefined aliases from the config file.",
		Long: `Displays the aliases listed under "aliases:" in the config file. They are
defined in every new session before the rc file is read.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAliasesCmd(streams, opts)
		},
	}
}

func runAliasesCmd(streams Streams, opts *Options) error {
	path := configPath(opts.ConfigPath, osenv.NewOSEnvironment())
	cfg, err := strictConfig(afero.NewOsFs(), path)
	if err != nil {
		return err
	}
	palette := ui.NewPalette(ui.ColorEnabled(cfg.Color, fdOf(streams.Out)))

	if len(cfg.Aliases) == 0 {
		fmt.Fprintf(streams.Out, "No predefined aliases in %s.\n", path)
		return nil
	}

	fmt.Fprintln(streams.Out, palette.Header(fmt.Sprintf("Predefined aliases (%s):", path)))
	table := tablewriter.NewWriter(streams.Out)
	table.SetHeader([]string{"Alias Name", "Expansion"})
	table.SetBorder(true)
	table.SetAutoFormatHeaders(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})
	for _, a := range cfg.Aliases {
		table.Append([]string{a.Name, a.Expansion})
	}
	table.Render()

	if len(cfg.Aliases) > cfg.AliasCapacity {
		fmt.Fprintln(streams.Out, palette.Warning(fmt.Sprintf(
			"Only the first %d fit in the alias table (alias_capacity).", cfg.AliasCapacity)))
	}
	return nil
}
