package delete

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"profeia.dev/profeia/pkg/editor"
	"profeia.dev/profeia/pkg/store"
)

// Delete removes an activity after an explicit confirmation.
type Delete struct {
	Persistence store.Persistence

	ID string
	// Confirmed skips the interactive prompt (--yes).
	Confirmed bool

	In  io.Reader
	Out io.Writer
}

func (d *Delete) Do(ctx context.Context) error {
	if d.Persistence == nil {
		return errors.New("delete: persistence required")
	}
	if d.ID == "" {
		return errors.New("delete: an event id is required")
	}
	in := d.In
	if in == nil {
		in = os.Stdin
	}
	out := d.Out
	if out == nil {
		out = os.Stdout
	}

	activity := ""
	for _, e := range d.Persistence.List() {
		if e.ID == d.ID {
			activity = e.Activity
			break
		}
	}

	ed := editor.New(d.Persistence)
	ed.RequestDelete(d.ID)

	if !d.Confirmed {
		if activity == "" {
			fmt.Fprintf(out, "No hay actividad con id %q.\n", d.ID)
			ed.CancelDelete()
			return nil
		}
		fmt.Fprintf(out, "¿Estás seguro que quieres eliminar la actividad %q? [y/N] ", activity)
		answer, _ := bufio.NewReader(in).ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" && answer != "s" && answer != "si" {
			ed.CancelDelete()
			fmt.Fprintln(out, "Cancelado.")
			return nil
		}
	}

	if err := ed.ConfirmDelete(); err != nil {
		return err
	}
	if activity != "" {
		fmt.Fprintf(out, "Eliminada: %s\n", activity)
	}
	return nil
}
