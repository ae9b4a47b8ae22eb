package edit

import (
	"context"
	"errors"
	"fmt"

	"profeia.dev/profeia/pkg/editor"
	"profeia.dev/profeia/pkg/printers"
	"profeia.dev/profeia/pkg/store"
)

// Edit updates an existing activity in place, keeping its id.
type Edit struct {
	Persistence store.Persistence

	ID       string
	Date     string
	At       string
	Activity string
}

func (e *Edit) Do(ctx context.Context) error {
	if e.Persistence == nil {
		return errors.New("edit: persistence required")
	}
	if e.ID == "" {
		return errors.New("edit: an event id is required")
	}

	ed := editor.New(e.Persistence)
	if !ed.OpenEdit(e.ID) {
		return fmt.Errorf("edit: no event with id %q", e.ID)
	}
	// Only the provided fields change; the rest stay pre-filled.
	if e.Date != "" {
		ed.SetDate(e.Date)
	}
	if e.At != "" {
		ed.SetTime(e.At)
	}
	if e.Activity != "" {
		ed.SetActivity(e.Activity)
	}

	saved, err := ed.Save()
	if err != nil {
		return err
	}
	if !saved {
		return errors.New("edit: resulting event is invalid")
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.Title("Actividad actualizada")
	for _, ev := range e.Persistence.List() {
		if ev.ID == e.ID {
			pp.Event(ev)
		}
	}
	return nil
}
