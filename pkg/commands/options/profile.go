package options

import (
	"strings"

	"github.com/spf13/cobra"

	"profeia.dev/profeia/pkg/profile"
)

// ProfileOptions
type ProfileOptions struct {
	Name    string
	Subject string
	Level   string
	Grade   string
	Show    bool
}

func AddProfileArgs(cmd *cobra.Command, o *ProfileOptions) {
	cmd.Flags().StringVar(&o.Name, "name", "", "Teacher name.")
	cmd.Flags().StringVar(&o.Subject, "subject", "", "Subject taught, example: Matemática.")
	cmd.Flags().StringVar(&o.Level, "level", "",
		"Educational level, one of: "+strings.Join(levelNames(), ", ")+".")
	cmd.Flags().StringVar(&o.Grade, "grade", "", "Grade or year within the level.")
	cmd.Flags().BoolVar(&o.Show, "show", false, "Print the stored profile and exit.")
}

func levelNames() []string {
	levels := profile.Levels()
	names := make([]string, 0, len(levels))
	for _, l := range levels {
		names = append(names, string(l))
	}
	return names
}
