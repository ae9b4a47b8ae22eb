package commands

import (
	"github.com/spf13/cobra"

	"profeia.dev/profeia/pkg/commands/options"
	"profeia.dev/profeia/pkg/reminder"
	"profeia.dev/profeia/pkg/runner/remind"
	"profeia.dev/profeia/pkg/speech"
	"profeia.dev/profeia/pkg/store"
)

func addRemind(topLevel *cobra.Command) {
	po := &options.OutputOptions{}
	printOnly := false

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "run the spoken reminder daemon",
		Long: `Scan the agenda once a minute and speak each due activity exactly once.
Runs until interrupted.`,
		Example: `
profeia remind
profeia remind --print
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			var speaker reminder.Speaker
			if printOnly {
				speaker = speech.NewPrint()
			} else {
				speaker = speech.NewExec()
			}
			s := remind.Remind{
				Persistence: p,
				Speaker:     speaker,
			}
			err = s.Do(cmd.Context())
			return po.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&printOnly, "print", false, "Print utterances instead of speaking them.")
	options.AddOutputArg(cmd, po)

	topLevel.AddCommand(cmd)
}
