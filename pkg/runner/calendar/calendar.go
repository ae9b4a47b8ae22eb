package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	"profeia.dev/profeia/pkg/event"
	"profeia.dev/profeia/pkg/grid"
	"profeia.dev/profeia/pkg/printers"
	"profeia.dev/profeia/pkg/store"
)

// Calendar prints one month of the agenda as a grid plus the day's
// activities.
type Calendar struct {
	Persistence store.Persistence

	// Month is "YYYY-MM"; empty means the current month.
	Month string

	Now func() time.Time
}

func (c *Calendar) Do(ctx context.Context) error {
	if c.Persistence == nil {
		return errors.New("calendar: persistence required")
	}
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}

	year, month, err := c.resolveMonth(now())
	if err != nil {
		return err
	}

	events := c.Persistence.List()
	cells := grid.Build(year, month, events)

	opts := grid.Options{
		ShowHeader:  true,
		HeaderStyle: lipgloss.NewStyle().Bold(true),
		EventStyle:  lipgloss.NewStyle().Bold(true).Underline(true),
		TodayStyle:  lipgloss.NewStyle().Reverse(true),
		Today:       now().Format(event.LayoutDate),
	}

	pp := printers.PrettyPrint{}
	pp.Title(grid.Title(year, month))
	fmt.Println(grid.Render(cells, opts))
	pp.NewLine()

	monthPrefix := fmt.Sprintf("%04d-%02d-", year, month)
	monthEvents := make([]*event.Event, 0)
	for _, e := range events {
		if len(e.Date) >= len(monthPrefix) && e.Date[:len(monthPrefix)] == monthPrefix {
			monthEvents = append(monthEvents, e)
		}
	}
	pp.Agenda(monthEvents...)
	return nil
}

func (c *Calendar) resolveMonth(now time.Time) (int, time.Month, error) {
	if c.Month == "" {
		return now.Year(), now.Month(), nil
	}
	parsed, err := time.ParseInLocation("2006-01", c.Month, time.Local)
	if err != nil {
		return 0, 0, fmt.Errorf("calendar: bad month %q, want YYYY-MM: %w", c.Month, err)
	}
	return parsed.Year(), parsed.Month(), nil
}
