package editor

import (
	"testing"
	"time"

	"profeia.dev/profeia/pkg/event"
	"profeia.dev/profeia/pkg/store"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newEditor(t *testing.T) (*Editor, store.Persistence) {
	t.Helper()
	p := store.New(store.NewMemKV())
	ed := New(p)
	ed.Now = fixedClock(time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC))
	return ed, p
}

func TestCreateDefaults(t *testing.T) {
	ed, _ := newEditor(t)
	ed.OpenCreate("2025-03-10")
	if ed.Time() != "09:00" {
		t.Fatalf("expected default time 09:00, got %q", ed.Time())
	}
	if ed.Activity() != "" {
		t.Fatalf("expected empty activity, got %q", ed.Activity())
	}
}

func TestSaveCreatePersistsSorted(t *testing.T) {
	ed, p := newEditor(t)

	ed.OpenCreate("2025-03-11")
	ed.SetTime("08:00")
	ed.SetActivity("Reunión")
	if saved, err := ed.Save(); err != nil || !saved {
		t.Fatalf("save failed: saved=%v err=%v", saved, err)
	}

	ed.Now = fixedClock(time.Date(2025, time.March, 1, 12, 1, 0, 0, time.UTC))
	ed.OpenCreate("2025-03-10")
	ed.SetActivity("Corregir exámenes")
	if saved, err := ed.Save(); err != nil || !saved {
		t.Fatalf("save failed: saved=%v err=%v", saved, err)
	}

	got := p.List()
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}
	if got[0].Date != "2025-03-10" || got[1].Date != "2025-03-11" {
		t.Fatalf("store not sorted by date: %s, %s", got[0].Date, got[1].Date)
	}
	if got[0].ID == got[1].ID {
		t.Fatalf("ids must be unique")
	}
	if ed.IsOpen() {
		t.Fatalf("editor should close after save")
	}
}

func TestSaveWhitespaceActivityIsNoOp(t *testing.T) {
	ed, p := newEditor(t)
	kv := p.Raw().(*store.MemKV)
	writesBefore := kv.Writes

	ed.OpenCreate("2025-03-10")
	ed.SetActivity("   ")
	saved, err := ed.Save()
	if err != nil {
		t.Fatal(err)
	}
	if saved {
		t.Fatalf("whitespace-only activity must not save")
	}
	if !ed.IsOpen() {
		t.Fatalf("form should stay open for correction")
	}
	if len(p.List()) != 0 {
		t.Fatalf("store must be unchanged")
	}
	if kv.Writes != writesBefore {
		t.Fatalf("no persistence write expected, got %d new writes", kv.Writes-writesBefore)
	}
}

func TestSaveWithoutDateIsNoOp(t *testing.T) {
	ed, p := newEditor(t)
	ed.OpenCreate("")
	ed.SetActivity("algo")
	if saved, _ := ed.Save(); saved {
		t.Fatalf("save without a date must be a no-op")
	}
	if len(p.List()) != 0 {
		t.Fatalf("store must be unchanged")
	}
}

func TestEditTimeOnlyResorts(t *testing.T) {
	ed, p := newEditor(t)
	seed := []*event.Event{
		{ID: "1", Date: "2025-03-10", Time: "09:00", Activity: "primero"},
		{ID: "2", Date: "2025-03-10", Time: "10:00", Activity: "segundo"},
	}
	if err := p.ReplaceAll(seed); err != nil {
		t.Fatal(err)
	}

	if !ed.OpenEdit("1") {
		t.Fatalf("expected to find event 1")
	}
	ed.SetTime("11:00")
	if saved, err := ed.Save(); err != nil || !saved {
		t.Fatalf("save failed: saved=%v err=%v", saved, err)
	}

	got := p.List()
	if got[0].ID != "2" || got[1].ID != "1" {
		t.Fatalf("expected re-sort after time edit, got %s, %s", got[0].ID, got[1].ID)
	}
	if got[1].Activity != "primero" {
		t.Fatalf("activity should survive a time-only edit")
	}
}

func TestOpenEditUnknownID(t *testing.T) {
	ed, _ := newEditor(t)
	if ed.OpenEdit("nope") {
		t.Fatalf("unknown id must not open the editor")
	}
	if ed.IsOpen() {
		t.Fatalf("editor must stay closed")
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	ed, p := newEditor(t)
	if err := p.ReplaceAll([]*event.Event{{ID: "1", Date: "2025-03-10", Time: "09:00", Activity: "a"}}); err != nil {
		t.Fatal(err)
	}

	ed.RequestDelete("1")
	if len(p.List()) != 1 {
		t.Fatalf("nothing may be removed before confirmation")
	}
	ed.CancelDelete()
	if err := ed.ConfirmDelete(); err != nil {
		t.Fatal(err)
	}
	if len(p.List()) != 1 {
		t.Fatalf("cancelled delete must keep the event")
	}

	ed.RequestDelete("1")
	if err := ed.ConfirmDelete(); err != nil {
		t.Fatal(err)
	}
	if len(p.List()) != 0 {
		t.Fatalf("confirmed delete must remove the event")
	}
}

func TestDeleteNonexistentIsNoOp(t *testing.T) {
	ed, p := newEditor(t)
	if err := p.ReplaceAll([]*event.Event{{ID: "1", Date: "2025-03-10", Time: "09:00", Activity: "a"}}); err != nil {
		t.Fatal(err)
	}
	ed.RequestDelete("ghost")
	if err := ed.ConfirmDelete(); err != nil {
		t.Fatal(err)
	}
	if len(p.List()) != 1 {
		t.Fatalf("collection must be unchanged")
	}
}

func TestDeleteFromOpenEditorCloses(t *testing.T) {
	ed, p := newEditor(t)
	if err := p.ReplaceAll([]*event.Event{{ID: "1", Date: "2025-03-10", Time: "09:00", Activity: "a"}}); err != nil {
		t.Fatal(err)
	}
	ed.OpenEdit("1")
	ed.RequestDelete("1")
	if err := ed.ConfirmDelete(); err != nil {
		t.Fatal(err)
	}
	if ed.IsOpen() {
		t.Fatalf("deleting the edited event must close the editor")
	}
}
