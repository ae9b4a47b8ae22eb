package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"profeia.dev/profeia/pkg/event"
	"profeia.dev/profeia/pkg/store"
)

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

type recordingSpeaker struct {
	utterances []string
	locales    []string
}

func (s *recordingSpeaker) Speak(utterance, locale string) {
	s.utterances = append(s.utterances, utterance)
	s.locales = append(s.locales, locale)
}

func at(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02 15:04", value, time.Local)
	if err != nil {
		t.Fatalf("bad test time %q: %v", value, err)
	}
	return parsed
}

func seeded(t *testing.T, events ...*event.Event) store.Persistence {
	t.Helper()
	p := store.New(store.NewMemKV())
	if err := p.ReplaceAll(events); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	return p
}

func key(s string) tea.KeyPressMsg {
	r := []rune(s)[0]
	return tea.KeyPressMsg{Text: s, Code: r}
}

func TestViewShowsMonthGridAndDayAgenda(t *testing.T) {
	clock := &fixedClock{now: at(t, "2025-03-10 08:00")}
	p := seeded(t,
		&event.Event{ID: "1", Date: "2025-03-10", Time: "09:00", Activity: "Corregir exámenes"},
		&event.Event{ID: "2", Date: "2025-03-10", Time: "11:00", Activity: "Tutoría"},
	)

	m := New(p, nil, clock)
	view := stripANSI(m.View())

	if !strings.Contains(view, "Marzo 2025") {
		t.Fatalf("expected month title; view=%q", view)
	}
	if !strings.Contains(view, "Su Mo Tu We Th Fr Sa") {
		t.Fatalf("expected weekday header; view=%q", view)
	}
	if !strings.Contains(view, "09:00  Corregir exámenes") {
		t.Fatalf("expected day agenda entry; view=%q", view)
	}
	if !strings.Contains(view, "11:00  Tutoría") {
		t.Fatalf("expected second agenda entry; view=%q", view)
	}
}

func TestCreateFlowSavesActivity(t *testing.T) {
	clock := &fixedClock{now: at(t, "2025-03-10 08:00")}
	p := seeded(t)

	m := New(p, nil, clock)
	m.handleKey(key("a"))
	if m.mode != modeEdit {
		t.Fatalf("expected edit mode after 'a'")
	}
	if got := m.timeInput.Value(); got != "09:00" {
		t.Fatalf("expected default time pre-filled, got %q", got)
	}
	if got := m.dateInput.Value(); got != "2025-03-10" {
		t.Fatalf("expected selected day pre-filled, got %q", got)
	}

	m.activityInput.SetValue("Reunión de padres")
	m.handleKey(tea.KeyPressMsg{Code: tea.KeyEnter})

	if m.mode != modeBrowse {
		t.Fatalf("expected modal to close after save")
	}
	events := p.List()
	if len(events) != 1 {
		t.Fatalf("expected 1 saved event, got %d", len(events))
	}
	if events[0].Activity != "Reunión de padres" || events[0].Time != "09:00" {
		t.Fatalf("unexpected saved event: %+v", events[0])
	}
}

func TestBlankActivityKeepsModalOpen(t *testing.T) {
	clock := &fixedClock{now: at(t, "2025-03-10 08:00")}
	p := seeded(t)
	kv := p.Raw().(*store.MemKV)

	m := New(p, nil, clock)
	m.handleKey(key("a"))
	writes := kv.Writes

	m.activityInput.SetValue("   ")
	m.handleKey(tea.KeyPressMsg{Code: tea.KeyEnter})

	if m.mode != modeEdit {
		t.Fatalf("expected modal to stay open on blank activity")
	}
	if kv.Writes != writes {
		t.Fatalf("expected no persistence writes, got %d new", kv.Writes-writes)
	}
}

func TestEditFlowKeepsID(t *testing.T) {
	clock := &fixedClock{now: at(t, "2025-03-10 08:00")}
	p := seeded(t,
		&event.Event{ID: "keep-me", Date: "2025-03-10", Time: "09:00", Activity: "Clase"},
	)

	m := New(p, nil, clock)
	m.handleKey(key("e"))
	if m.mode != modeEdit {
		t.Fatalf("expected edit mode after 'e'")
	}
	if got := m.activityInput.Value(); got != "Clase" {
		t.Fatalf("expected form pre-filled from event, got %q", got)
	}

	m.timeInput.SetValue("14:30")
	m.handleKey(tea.KeyPressMsg{Code: tea.KeyEnter})

	events := p.List()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].ID != "keep-me" || events[0].Time != "14:30" {
		t.Fatalf("expected same id with new time, got %+v", events[0])
	}
}

func TestDeleteNeedsConfirmation(t *testing.T) {
	clock := &fixedClock{now: at(t, "2025-03-10 08:00")}
	p := seeded(t,
		&event.Event{ID: "1", Date: "2025-03-10", Time: "09:00", Activity: "Acto escolar"},
	)

	m := New(p, nil, clock)
	m.handleKey(key("d"))
	if m.mode != modeConfirmDelete {
		t.Fatalf("expected delete confirmation mode")
	}
	view := stripANSI(m.View())
	if !strings.Contains(view, "¿Eliminar \"Acto escolar\"? [y/n]") {
		t.Fatalf("expected confirmation prompt; view=%q", view)
	}

	m.handleKey(key("n"))
	if len(p.List()) != 1 {
		t.Fatalf("expected event to survive a declined delete")
	}

	m.handleKey(key("d"))
	m.handleKey(key("y"))
	if len(p.List()) != 0 {
		t.Fatalf("expected event removed after confirmation")
	}
}

func TestEscDiscardsWithoutSaving(t *testing.T) {
	clock := &fixedClock{now: at(t, "2025-03-10 08:00")}
	p := seeded(t)

	m := New(p, nil, clock)
	m.handleKey(key("a"))
	m.activityInput.SetValue("borrador")
	m.handleKey(tea.KeyPressMsg{Code: tea.KeyEscape})

	if m.mode != modeBrowse {
		t.Fatalf("expected browse mode after esc")
	}
	if len(p.List()) != 0 {
		t.Fatalf("expected nothing persisted after discard")
	}
}

func TestTickSpeaksDueReminderOnce(t *testing.T) {
	clock := &fixedClock{now: at(t, "2025-03-10 09:00")}
	speaker := &recordingSpeaker{}
	p := seeded(t,
		&event.Event{ID: "1", Date: "2025-03-10", Time: "09:00", Activity: "Corregir exámenes"},
	)

	m := New(p, speaker, clock)
	m.Update(tickMsg(clock.now))
	m.Update(tickMsg(clock.now))

	if len(speaker.utterances) != 1 {
		t.Fatalf("expected exactly one utterance, got %d", len(speaker.utterances))
	}
	if speaker.utterances[0] != "Recordatorio: Corregir exámenes" {
		t.Fatalf("unexpected utterance %q", speaker.utterances[0])
	}
	if speaker.locales[0] != "es-AR" {
		t.Fatalf("unexpected locale %q", speaker.locales[0])
	}
}

func TestMonthNavigationPersistsLastView(t *testing.T) {
	clock := &fixedClock{now: at(t, "2025-03-10 08:00")}
	p := seeded(t)

	m := New(p, nil, clock)
	m.handleKey(key("n"))
	if m.month != time.April || m.year != 2025 {
		t.Fatalf("expected April 2025, got %v %d", m.month, m.year)
	}
	if got := p.LastView(); got != "2025-04" {
		t.Fatalf("expected last view persisted, got %q", got)
	}

	restored := New(p, nil, clock)
	if restored.month != time.April || restored.selected != 1 {
		t.Fatalf("expected restored view April day 1, got %v day %d", restored.month, restored.selected)
	}
}

func TestSelectionClampsAtMonthEdges(t *testing.T) {
	clock := &fixedClock{now: at(t, "2025-02-27 08:00")}
	p := seeded(t)

	m := New(p, nil, clock)
	m.handleKey(key("j")) // 27 + 7 clamps to 28
	if m.selected != 28 {
		t.Fatalf("expected clamp to 28, got %d", m.selected)
	}
	m.selected = 1
	m.handleKey(key("k"))
	if m.selected != 1 {
		t.Fatalf("expected clamp to 1, got %d", m.selected)
	}
}
