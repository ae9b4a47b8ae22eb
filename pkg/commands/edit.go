package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"profeia.dev/profeia/pkg/commands/options"
	"profeia.dev/profeia/pkg/runner/edit"
	"profeia.dev/profeia/pkg/store"
)

func addEdit(topLevel *cobra.Command) {
	wo := &options.WhenOptions{}
	io := &options.IDOptions{}
	po := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "edit [activity]",
		Short: "update an existing activity",
		Example: `
profeia edit --id 1741597200000 --at="10:30"
profeia edit Entrega de notas --id 1741597200000
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			date, err := wo.GetDate()
			if err != nil {
				return err
			}
			s := edit.Edit{
				Persistence: p,
				ID:          io.ID,
				Date:        date,
				At:          wo.At,
				Activity:    strings.Join(args, " "),
			}
			err = s.Do(context.Background())
			return po.HandleError(err)
		},
	}

	options.AddWhenArgs(cmd, wo)
	options.AddIDArgs(cmd, io)
	options.AddOutputArg(cmd, po)

	topLevel.AddCommand(cmd)
}
