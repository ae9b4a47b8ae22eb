// Package grid derives the month view of the agenda: a Sunday-first
// sequence of day cells with each day's events attached. The grid is
// computed from the event list on demand and never persisted.
package grid

import (
	"time"

	"profeia.dev/profeia/pkg/event"
)

// Cell is one slot in the month grid. Leading cells before the 1st are
// empty padding so day 1 lands on its weekday column.
type Cell struct {
	Empty  bool
	Day    int
	Date   string
	Events []*event.Event
}

// Build maps (year, month, events) to the month's cells. Output depends
// only on the inputs: leading empties for Sunday-first alignment, then
// one cell per day carrying that day's events sorted by time.
func Build(year int, month time.Month, events []*event.Event) []Cell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	days := DaysIn(year, month)

	byDate := make(map[string][]*event.Event)
	for _, e := range events {
		if e == nil {
			continue
		}
		byDate[e.Date] = append(byDate[e.Date], e)
	}

	offset := int(first.Weekday()) // Sunday == 0
	cells := make([]Cell, 0, offset+days)
	for i := 0; i < offset; i++ {
		cells = append(cells, Cell{Empty: true})
	}
	for day := 1; day <= days; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.Local).Format(event.LayoutDate)
		dayEvents := byDate[date]
		event.Sort(dayEvents)
		cells = append(cells, Cell{
			Day:    day,
			Date:   date,
			Events: dayEvents,
		})
	}
	return cells
}

// DaysIn returns the number of days in the month, leap years included.
func DaysIn(year int, month time.Month) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	return first.AddDate(0, 1, -1).Day()
}
