package get

import (
	"context"
	"errors"
	"time"

	"profeia.dev/profeia/pkg/event"
	"profeia.dev/profeia/pkg/printers"
	"profeia.dev/profeia/pkg/store"
	"profeia.dev/profeia/pkg/timeutil"
)

// Get lists agenda activities, optionally only the upcoming window.
type Get struct {
	Persistence store.Persistence

	All    bool
	Window string
	ShowID bool

	Now func() time.Time
}

func (g *Get) Do(ctx context.Context) error {
	if g.Persistence == nil {
		return errors.New("get: persistence required")
	}
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}

	events := g.Persistence.List()
	pp := printers.PrettyPrint{ShowID: g.ShowID}

	if g.All {
		pp.TitleWithCount("Agenda", len(events))
		pp.Agenda(events...)
		return nil
	}

	window, err := timeutil.ParseWindow(g.Window)
	if err != nil {
		return err
	}
	from := now()
	until := from.Add(window)

	upcoming := make([]*event.Event, 0, len(events))
	for _, e := range events {
		when, err := e.When()
		if err != nil {
			continue
		}
		if when.Before(from) || when.After(until) {
			continue
		}
		upcoming = append(upcoming, e)
	}

	pp.TitleWithCount("Próximas Actividades ("+timeutil.FormatWindow(window)+")", len(upcoming))
	pp.Agenda(upcoming...)
	return nil
}
