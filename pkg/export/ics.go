// Package export writes the agenda as an iCalendar document so events
// can be imported into any standard calendar application.
package export

import (
	"fmt"
	"io"
	"time"

	ics "github.com/arran4/golang-ical"

	"profeia.dev/profeia/pkg/event"
)

// DefaultDuration is assumed for events, which carry no end time.
const DefaultDuration = time.Hour

// BuildCalendar converts events into a VCALENDAR. Events that fail to
// parse are skipped rather than aborting the export.
func BuildCalendar(events []*event.Event) (*ics.Calendar, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//profeia//agenda//ES")

	for _, e := range events {
		start, err := e.When()
		if err != nil {
			continue
		}
		ve := cal.AddEvent(fmt.Sprintf("%s@profeia", e.ID))
		ve.SetSummary(e.Activity)
		ve.SetStartAt(start)
		ve.SetEndAt(start.Add(DefaultDuration))
		ve.SetDtStampTime(time.Now())
	}
	return cal, nil
}

// Write serializes the agenda to w in iCalendar format.
func Write(w io.Writer, events []*event.Event) error {
	cal, err := BuildCalendar(events)
	if err != nil {
		return err
	}
	return cal.SerializeTo(w)
}
