package options

import (
	"time"

	"github.com/spf13/cobra"

	"profeia.dev/profeia/pkg/event"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// WhenOptions
type WhenOptions struct {
	DateString string
	At         string
}

func AddWhenArgs(cmd *cobra.Command, o *WhenOptions) {
	cmd.Flags().StringVar(&o.DateString, "date", "",
		`Day of the activity, example: --date="2026-3-10" or --date="3/10".`)
	cmd.Flags().StringVar(&o.At, "at", "",
		`Time of the activity, example: --at="09:30".`)
}

// GetDate resolves the date flag to canonical YYYY-MM-DD form. An empty
// flag returns "" so callers can fall back to today.
func (o *WhenOptions) GetDate() (string, error) {
	if o.DateString == "" {
		return "", nil
	}
	t, err := time.Parse(layoutISO, o.DateString)
	if err != nil {
		// Let the year be the same.
		t, err = time.Parse(layoutISOShort, o.DateString)
		if err != nil {
			return "", err
		}
		t = t.AddDate(time.Now().Year(), 0, 0)
		// I am gonna assume if you said 1/3 on 12/5, you meant next year, not 11 months ago.
		if t.Before(time.Now()) {
			t = t.AddDate(1, 0, 0)
		}
	}
	return t.Format(event.LayoutDate), nil
}
