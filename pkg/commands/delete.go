package commands

import (
	"context"

	"github.com/spf13/cobra"

	"profeia.dev/profeia/pkg/commands/options"
	del "profeia.dev/profeia/pkg/runner/delete"
	"profeia.dev/profeia/pkg/store"
)

func addDelete(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	po := &options.OutputOptions{}
	yes := false

	cmd := &cobra.Command{
		Use:     "delete",
		Aliases: []string{"rm"},
		Short:   "remove an activity",
		Example: `
profeia delete --id 1741597200000
profeia delete --id 1741597200000 --yes
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := del.Delete{
				Persistence: p,
				ID:          io.ID,
				Confirmed:   yes,
				In:          cmd.InOrStdin(),
				Out:         cmd.OutOrStdout(),
			}
			err = s.Do(context.Background())
			return po.HandleError(err)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt.")
	options.AddIDArgs(cmd, io)
	options.AddOutputArg(cmd, po)

	topLevel.AddCommand(cmd)
}
