// Package event defines the calendar event type shared by the agenda
// store, the month grid, and the reminder scheduler.
package event

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	// LayoutDate is the wire format for event dates.
	LayoutDate = "2006-01-02"
	// LayoutTime is the wire format for event times, minute resolution.
	LayoutTime = "15:04"
	// DefaultTime pre-fills the editor when scheduling a new activity.
	DefaultTime = "09:00"
)

var (
	// ErrNoDate is returned when an event is missing its date.
	ErrNoDate = errors.New("event: date required")
	// ErrNoActivity is returned when the activity is empty after trimming.
	ErrNoActivity = errors.New("event: activity required")
)

// Event is a single scheduled activity. Date and Time are local
// wall-clock values with no zone component.
type Event struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Activity string `json:"activity"`
}

// New builds an unsaved event. The ID is minted at save time.
func New(date, at, activity string) *Event {
	return &Event{
		Date:     date,
		Time:     at,
		Activity: strings.TrimSpace(activity),
	}
}

// MintID derives an event identifier from the given instant.
// Millisecond precision is unique enough for a single-user agenda.
func MintID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}

// Validate checks the fields required for an event to be saved.
func (e *Event) Validate() error {
	if strings.TrimSpace(e.Date) == "" {
		return ErrNoDate
	}
	if _, err := time.ParseInLocation(LayoutDate, e.Date, time.Local); err != nil {
		return fmt.Errorf("event: bad date %q: %w", e.Date, err)
	}
	if _, err := time.ParseInLocation(LayoutTime, e.Time, time.Local); err != nil {
		return fmt.Errorf("event: bad time %q: %w", e.Time, err)
	}
	if strings.TrimSpace(e.Activity) == "" {
		return ErrNoActivity
	}
	return nil
}

// When combines Date and Time into a local time.Time.
func (e *Event) When() (time.Time, error) {
	return time.ParseInLocation(LayoutDate+" "+LayoutTime, e.Date+" "+e.Time, time.Local)
}

// Occurs reports whether the event's date and time match the given
// instant truncated to the minute.
func (e *Event) Occurs(now time.Time) bool {
	return e.Date == now.Format(LayoutDate) && e.Time == now.Format(LayoutTime)
}

// Clone returns a copy so editors can mutate without aliasing the store.
func (e *Event) Clone() *Event {
	c := *e
	return &c
}

// Sort orders events ascending by (date, time), then by ID for a
// stable tiebreak. HH:MM and YYYY-MM-DD are fixed width, so the
// lexicographic comparison matches chronological order.
func Sort(events []*Event) {
	sort.SliceStable(events, func(i, j int) bool {
		left, right := events[i], events[j]
		if left.Date != right.Date {
			return left.Date < right.Date
		}
		if left.Time != right.Time {
			return left.Time < right.Time
		}
		return left.ID < right.ID
	})
}

// Sorted reports whether the slice already satisfies the canonical
// (date, time) ordering.
func Sorted(events []*Event) bool {
	return sort.SliceIsSorted(events, func(i, j int) bool {
		left, right := events[i], events[j]
		if left.Date != right.Date {
			return left.Date < right.Date
		}
		return left.Time < right.Time
	})
}

func (e *Event) String() string {
	return fmt.Sprintf("%s %s  %s", e.Date, e.Time, e.Activity)
}
