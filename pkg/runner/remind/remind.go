package remind

import (
	"context"
	"errors"
	"os"

	"github.com/rs/zerolog"

	"profeia.dev/profeia/pkg/reminder"
	"profeia.dev/profeia/pkg/store"
)

// Remind runs the reminder daemon: a once-per-minute agenda scan that
// speaks each due activity exactly once, until the context is
// cancelled.
type Remind struct {
	Persistence store.Persistence
	Speaker     reminder.Speaker
	Clock       reminder.Clock

	Log *zerolog.Logger
}

func (r *Remind) Do(ctx context.Context) error {
	if r.Persistence == nil {
		return errors.New("remind: persistence required")
	}
	if r.Speaker == nil {
		return errors.New("remind: speaker required")
	}
	var log zerolog.Logger
	if r.Log != nil {
		log = *r.Log
	} else {
		log = zerolog.New(os.Stderr).With().Timestamp().Str("component", "remind").Logger()
	}

	s := reminder.NewScheduler(r.Persistence, r.Clock, r.Speaker)
	if err := s.Start(); err != nil {
		return err
	}
	defer s.Stop()
	log.Info().Msg("reminder daemon started")

	// Pick up agenda changes written by other processes so the next
	// tick scans fresh data.
	changes, err := r.Persistence.Watch(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("agenda watch unavailable; serving the startup snapshot")
		<-ctx.Done()
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("reminder daemon stopping")
			return nil
		case _, ok := <-changes:
			if !ok {
				<-ctx.Done()
				return nil
			}
			r.Persistence.Reload()
			log.Debug().Int("events", len(r.Persistence.List())).Msg("agenda reloaded")
		}
	}
}
