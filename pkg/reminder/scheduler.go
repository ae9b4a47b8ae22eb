// Package reminder fires a one-shot spoken notification for each
// agenda event whose date and time match the wall clock. Matching is
// at minute granularity: an event is eligible only during the single
// check whose truncated-to-minute clock equals its timestamp, and a
// process that is not running at that minute misses the reminder.
package reminder

import (
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"profeia.dev/profeia/pkg/event"
)

// Locale is the speech locale for reminder utterances.
const Locale = "es-AR"

// Clock supplies wall-clock time so tests can run synthetic minutes.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the real local time.
func SystemClock() Clock { return systemClock{} }

// Speaker is the spoken-notification sink. Speak is fire-and-forget:
// no return value, no failure channel.
type Speaker interface {
	Speak(utterance, locale string)
}

// Lister is the read-only slice of the store the scheduler needs.
type Lister interface {
	List() []*event.Event
}

// Utterance builds the spoken phrase for an event.
func Utterance(e *event.Event) string {
	return "Recordatorio: " + e.Activity
}

// Scheduler scans the agenda once per minute and speaks each due
// event's activity exactly once per process lifetime. It never
// mutates the store; it reads whatever snapshot List returns, which
// may be one mutation stale. Acceptable at minute precision.
type Scheduler struct {
	store   Lister
	clock   Clock
	speaker Speaker

	mu    sync.Mutex
	fired map[string]struct{}
	cron  *cron.Cron
}

// NewScheduler wires a scheduler; a nil clock means the system clock.
func NewScheduler(store Lister, clock Clock, speaker Speaker) *Scheduler {
	if clock == nil {
		clock = SystemClock()
	}
	return &Scheduler{
		store:   store,
		clock:   clock,
		speaker: speaker,
		fired:   make(map[string]struct{}),
	}
}

// Check runs one tick: every event matching the clock's current minute
// and not yet in the fired set is spoken and marked. Returns how many
// reminders fired. Emission is idempotent per id, so re-running within
// the same minute produces no duplicates.
func (s *Scheduler) Check() int {
	now := s.clock.Now()
	fired := 0
	for _, e := range s.store.List() {
		if !e.Occurs(now) {
			continue
		}
		s.mu.Lock()
		_, done := s.fired[e.ID]
		if !done {
			s.fired[e.ID] = struct{}{}
		}
		s.mu.Unlock()
		if done {
			continue
		}
		s.speaker.Speak(Utterance(e), Locale)
		fired++
	}
	return fired
}

// HasFired reports whether the event already triggered this run.
func (s *Scheduler) HasFired(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.fired[id]
	return ok
}

// Start begins the once-per-minute check loop. The fired set is not
// persisted; a restart forgets it.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cron != nil {
		return nil
	}
	c := cron.New(cron.WithLocation(time.Local))
	if _, err := c.AddFunc("* * * * *", func() { s.Check() }); err != nil {
		return err
	}
	c.Start()
	s.cron = c
	return nil
}

// Stop cancels the loop. A check in flight completes; there is no
// partial state to roll back since firing is idempotent per id.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	c := s.cron
	s.cron = nil
	s.mu.Unlock()
	if c != nil {
		<-c.Stop().Done()
	}
}
