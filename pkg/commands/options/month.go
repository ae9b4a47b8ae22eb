package options

import (
	"github.com/spf13/cobra"
)

// MonthOptions
type MonthOptions struct {
	Month string
}

func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().StringVarP(&o.Month, "month", "m", "",
		`Month to show, example: --month="2026-03". Defaults to the current month.`)
}
