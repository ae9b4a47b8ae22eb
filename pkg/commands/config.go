package commands

import (
	"context"

	"github.com/spf13/cobra"

	"profeia.dev/profeia/pkg/commands/options"
	"profeia.dev/profeia/pkg/runner/configure"
	"profeia.dev/profeia/pkg/store"
)

func addConfig(topLevel *cobra.Command) {
	pro := &options.ProfileOptions{}
	po := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "config",
		Short: "set or show the teacher profile",
		Long: `The profile grounds every assistant session: who you are, the subject
you teach, the educational level and the grade.`,
		Example: `
profeia config --name="Ana" --subject="Matemática" --level="Nivel Secundario" --grade="3er Año"
profeia config --show
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := configure.Configure{
				Persistence: p,
				Name:        pro.Name,
				Subject:     pro.Subject,
				Level:       pro.Level,
				Grade:       pro.Grade,
				Show:        pro.Show,
			}
			err = s.Do(context.Background())
			return po.HandleError(err)
		},
	}

	options.AddProfileArgs(cmd, pro)
	options.AddOutputArg(cmd, po)

	topLevel.AddCommand(cmd)
}
