package commands

import (
	"context"

	"github.com/spf13/cobra"

	"profeia.dev/profeia/pkg/commands/options"
	"profeia.dev/profeia/pkg/runner/calendar"
	"profeia.dev/profeia/pkg/store"
)

func addCalendar(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	po := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "print a month of the agenda",
		Example: `
profeia calendar
profeia cal --month="2026-03"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := calendar.Calendar{
				Persistence: p,
				Month:       mo.Month,
			}
			err = s.Do(context.Background())
			return po.HandleError(err)
		},
	}

	options.AddMonthArgs(cmd, mo)
	options.AddOutputArg(cmd, po)

	topLevel.AddCommand(cmd)
}
