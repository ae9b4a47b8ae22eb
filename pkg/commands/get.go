package commands

import (
	"context"

	"github.com/spf13/cobra"

	"profeia.dev/profeia/pkg/commands/options"
	"profeia.dev/profeia/pkg/runner/get"
	"profeia.dev/profeia/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}
	io := &options.IDOptions{}
	po := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "list upcoming activities",
		Example: `
profeia get
profeia get --window 2d
profeia get --all --show-id
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := get.Get{
				Persistence: p,
				All:         wo.All,
				Window:      wo.Window,
				ShowID:      io.ShowID,
			}
			err = s.Do(context.Background())
			return po.HandleError(err)
		},
	}

	options.AddWindowArgs(cmd, wo)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, po)

	topLevel.AddCommand(cmd)
}
