package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "profeia",
		Short: base.Wrap80("The teaching agenda and assistant on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addAdd(topLevel)
	addGet(topLevel)
	addEdit(topLevel)
	addDelete(topLevel)
	addCalendar(topLevel)
	addRemind(topLevel)
	addExport(topLevel)
	addConfig(topLevel)
	addChat(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
}
