package add

import (
	"context"
	"errors"
	"time"

	"profeia.dev/profeia/pkg/editor"
	"profeia.dev/profeia/pkg/event"
	"profeia.dev/profeia/pkg/printers"
	"profeia.dev/profeia/pkg/store"
)

// Add schedules a new activity on the agenda.
type Add struct {
	Persistence store.Persistence

	Date     string
	At       string
	Activity string

	Now func() time.Time
}

func (a *Add) Do(ctx context.Context) error {
	if a.Persistence == nil {
		return errors.New("add: persistence required")
	}

	ed := editor.New(a.Persistence)
	if a.Now != nil {
		ed.Now = a.Now
	}

	date := a.Date
	if date == "" {
		date = time.Now().Format(event.LayoutDate)
	}
	ed.OpenCreate(date)
	if a.At != "" {
		ed.SetTime(a.At)
	}
	ed.SetActivity(a.Activity)

	saved, err := ed.Save()
	if err != nil {
		return err
	}
	if !saved {
		return errors.New("add: a date and a non-empty activity are required")
	}

	pp := printers.PrettyPrint{}
	pp.Title(date)
	day := make([]*event.Event, 0)
	for _, e := range a.Persistence.List() {
		if e.Date == date {
			day = append(day, e)
		}
	}
	pp.Agenda(day...)
	return nil
}
