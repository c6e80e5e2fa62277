package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	oo = &base.OutputOptions{}
)

// New assembles the farmcal root command.
func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "farmcal",
		Short: base.Wrap80("Farm-activity planning calendar on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

// AddCommands registers every subcommand on the root.
func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addGet(topLevel)
	addAdd(topLevel)
	addDelete(topLevel)
	addImport(topLevel)
	addExport(topLevel)
	addVersion(topLevel)
}
