package reminder

import (
	"testing"
	"time"

	"profeia.dev/profeia/pkg/event"
	"profeia.dev/profeia/pkg/store"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

type fakeSpeaker struct {
	spoken  []string
	locales []string
}

func (s *fakeSpeaker) Speak(utterance, locale string) {
	s.spoken = append(s.spoken, utterance)
	s.locales = append(s.locales, locale)
}

func TestFiresOnceAtMatchingMinute(t *testing.T) {
	p := store.New(store.NewMemKV())
	if err := p.ReplaceAll([]*event.Event{
		{ID: "1", Date: "2025-03-10", Time: "09:00", Activity: "Corregir exámenes"},
	}); err != nil {
		t.Fatal(err)
	}

	clock := &fakeClock{now: time.Date(2025, time.March, 10, 8, 59, 0, 0, time.Local)}
	speaker := &fakeSpeaker{}
	s := NewScheduler(p, clock, speaker)

	if fired := s.Check(); fired != 0 {
		t.Fatalf("nothing should fire at 08:59, fired %d", fired)
	}

	clock.now = time.Date(2025, time.March, 10, 9, 0, 10, 0, time.Local)
	if fired := s.Check(); fired != 1 {
		t.Fatalf("expected one reminder at 09:00, fired %d", fired)
	}
	if len(speaker.spoken) != 1 || speaker.spoken[0] != "Recordatorio: Corregir exámenes" {
		t.Fatalf("unexpected utterances: %v", speaker.spoken)
	}
	if speaker.locales[0] != "es-AR" {
		t.Fatalf("expected es-AR locale, got %s", speaker.locales[0])
	}
	if !s.HasFired("1") {
		t.Fatalf("fired set should contain the event id")
	}

	// Second tick, next minute: no clock match, nothing further.
	clock.now = time.Date(2025, time.March, 10, 9, 1, 0, 0, time.Local)
	if fired := s.Check(); fired != 0 {
		t.Fatalf("expected silence at 09:01, fired %d", fired)
	}
	if len(speaker.spoken) != 1 {
		t.Fatalf("expected exactly one utterance, got %d", len(speaker.spoken))
	}
}

func TestDoubleCheckSameMinuteIsIdempotent(t *testing.T) {
	p := store.New(store.NewMemKV())
	if err := p.ReplaceAll([]*event.Event{
		{ID: "1", Date: "2025-03-10", Time: "09:00", Activity: "a"},
	}); err != nil {
		t.Fatal(err)
	}
	clock := &fakeClock{now: time.Date(2025, time.March, 10, 9, 0, 0, 0, time.Local)}
	speaker := &fakeSpeaker{}
	s := NewScheduler(p, clock, speaker)

	s.Check()
	s.Check()
	if len(speaker.spoken) != 1 {
		t.Fatalf("fired-set dedupe failed: %d utterances", len(speaker.spoken))
	}
}

func TestMultipleEventsSameMinute(t *testing.T) {
	p := store.New(store.NewMemKV())
	if err := p.ReplaceAll([]*event.Event{
		{ID: "1", Date: "2025-03-10", Time: "09:00", Activity: "a"},
		{ID: "2", Date: "2025-03-10", Time: "09:00", Activity: "b"},
		{ID: "3", Date: "2025-03-10", Time: "09:30", Activity: "c"},
	}); err != nil {
		t.Fatal(err)
	}
	clock := &fakeClock{now: time.Date(2025, time.March, 10, 9, 0, 0, 0, time.Local)}
	speaker := &fakeSpeaker{}
	s := NewScheduler(p, clock, speaker)

	if fired := s.Check(); fired != 2 {
		t.Fatalf("expected both 09:00 events to fire, fired %d", fired)
	}
	if s.HasFired("3") {
		t.Fatalf("09:30 event must not fire at 09:00")
	}
}

func TestStartStop(t *testing.T) {
	p := store.New(store.NewMemKV())
	s := NewScheduler(p, nil, &fakeSpeaker{})
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	// Start is idempotent.
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	s.Stop()
	s.Stop()
}
