package options

import (
	"github.com/spf13/cobra"

	"profeia.dev/profeia/pkg/timeutil"
)

// WindowOptions
type WindowOptions struct {
	All    bool
	Window string
}

func AddWindowArgs(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().BoolVarP(&o.All, "all", "a", false,
		"List every activity, past and future.")
	cmd.Flags().StringVarP(&o.Window, "window", "w", timeutil.DefaultWindow,
		"How far ahead to look, example: 2d, 1w, 36h.")
}
