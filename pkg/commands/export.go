package commands

import (
	"context"

	"github.com/spf13/cobra"

	"profeia.dev/profeia/pkg/commands/options"
	"profeia.dev/profeia/pkg/runner/export"
	"profeia.dev/profeia/pkg/store"
)

func addExport(topLevel *cobra.Command) {
	po := &options.OutputOptions{}
	output := ""

	cmd := &cobra.Command{
		Use:   "export",
		Short: "export the agenda as iCalendar",
		Example: `
profeia export > agenda.ics
profeia export --output agenda.ics
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := export.Export{
				Persistence: p,
				Output:      output,
			}
			err = s.Do(context.Background())
			return po.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", `Target file; "-" or empty writes to stdout.`)
	options.AddOutputArg(cmd, po)

	topLevel.AddCommand(cmd)
}
