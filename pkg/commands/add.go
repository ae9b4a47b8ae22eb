package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"profeia.dev/profeia/pkg/commands/options"
	"profeia.dev/profeia/pkg/runner/add"
	"profeia.dev/profeia/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	wo := &options.WhenOptions{}
	po := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "add <activity>",
		Short: "schedule a new activity",
		Example: `
profeia add Corregir exámenes --date="2026-3-10" --at="09:00"
profeia add Reunión de padres --date="3/21"
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			date, err := wo.GetDate()
			if err != nil {
				return err
			}
			s := add.Add{
				Persistence: p,
				Date:        date,
				At:          wo.At,
				Activity:    strings.Join(args, " "),
			}
			err = s.Do(context.Background())
			return po.HandleError(err)
		},
	}

	options.AddWhenArgs(cmd, wo)
	options.AddOutputArg(cmd, po)

	topLevel.AddCommand(cmd)
}
