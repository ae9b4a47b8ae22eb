// Package editor implements the modal create/edit/delete workflow for
// a single calendar event. The editor is UI-agnostic: the presentation
// layer issues distinct commands (open, set fields, save, request and
// confirm delete) and the editor routes all mutations through the
// store, keeping the (date, time) ordering invariant intact.
package editor

import (
	"strings"
	"time"

	"profeia.dev/profeia/pkg/event"
	"profeia.dev/profeia/pkg/store"
)

// Editor drives one modal editing session at a time. All mutation is
// serialized through it, so the store needs no concurrent-writer model.
type Editor struct {
	Persistence store.Persistence

	// Now mints ids for new events; tests inject a fixed clock.
	Now func() time.Time

	open      bool
	editingID string // "" when creating

	date     string
	at       string
	activity string

	pendingDelete string
}

// New returns an editor bound to the given store.
func New(p store.Persistence) *Editor {
	return &Editor{Persistence: p, Now: time.Now}
}

// IsOpen reports whether a modal session is active.
func (ed *Editor) IsOpen() bool { return ed.open }

// Editing returns the id of the event being edited, or "" for create.
func (ed *Editor) Editing() string { return ed.editingID }

// Date returns the date the open session targets.
func (ed *Editor) Date() string { return ed.date }

// Time returns the session's time field.
func (ed *Editor) Time() string { return ed.at }

// Activity returns the session's activity field.
func (ed *Editor) Activity() string { return ed.activity }

// OpenCreate starts a create session for the given day, pre-filling
// the default time and an empty activity.
func (ed *Editor) OpenCreate(date string) {
	ed.open = true
	ed.editingID = ""
	ed.date = date
	ed.at = event.DefaultTime
	ed.activity = ""
}

// OpenEdit starts an edit session pre-filled from the stored event.
// It reports false when the id is unknown.
func (ed *Editor) OpenEdit(id string) bool {
	for _, e := range ed.Persistence.List() {
		if e.ID == id {
			ed.open = true
			ed.editingID = e.ID
			ed.date = e.Date
			ed.at = e.Time
			ed.activity = e.Activity
			return true
		}
	}
	return false
}

// SetDate updates the session's target day.
func (ed *Editor) SetDate(date string) { ed.date = date }

// SetTime updates the session's time field.
func (ed *Editor) SetTime(at string) { ed.at = at }

// SetActivity updates the session's activity field.
func (ed *Editor) SetActivity(activity string) { ed.activity = activity }

// Save commits the session. An empty trimmed activity or a missing
// date is a silent no-op: the form stays open, nothing is persisted,
// and no error reaches the user. On success the session closes.
func (ed *Editor) Save() (bool, error) {
	if !ed.open {
		return false, nil
	}
	candidate := event.New(ed.date, ed.at, ed.activity)
	if err := candidate.Validate(); err != nil {
		return false, nil
	}

	events := ed.Persistence.List()
	if ed.editingID == "" {
		candidate.ID = event.MintID(ed.Now())
		events = append(events, candidate)
	} else {
		for i, e := range events {
			if e.ID == ed.editingID {
				candidate.ID = e.ID
				events[i] = candidate
				break
			}
		}
	}
	if err := ed.Persistence.ReplaceAll(events); err != nil {
		return false, err
	}
	ed.Close()
	return true, nil
}

// Close abandons the session without saving.
func (ed *Editor) Close() {
	ed.open = false
	ed.editingID = ""
	ed.date = ""
	ed.at = ""
	ed.activity = ""
	ed.pendingDelete = ""
}

// RequestDelete stages a delete for confirmation. Delete and edit are
// distinct commands so a delete affordance never opens the editor.
func (ed *Editor) RequestDelete(id string) {
	ed.pendingDelete = id
}

// PendingDelete returns the id staged for deletion, or "".
func (ed *Editor) PendingDelete() string { return ed.pendingDelete }

// CancelDelete drops the staged delete.
func (ed *Editor) CancelDelete() { ed.pendingDelete = "" }

// ConfirmDelete removes the staged event and persists. Deleting an
// unknown id is a no-op beyond the idempotent write. If the deleted
// event was open in the editor, the session closes too.
func (ed *Editor) ConfirmDelete() error {
	id := ed.pendingDelete
	ed.pendingDelete = ""
	if id == "" {
		return nil
	}

	events := ed.Persistence.List()
	kept := events[:0]
	for _, e := range events {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if err := ed.Persistence.ReplaceAll(kept); err != nil {
		return err
	}
	if ed.open && ed.editingID == id {
		ed.Close()
	}
	return nil
}

// TrimmedActivity is what Save would persist for the current input.
func (ed *Editor) TrimmedActivity() string {
	return strings.TrimSpace(ed.activity)
}
