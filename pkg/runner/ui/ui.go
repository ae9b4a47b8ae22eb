package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea/v2"

	"profeia.dev/profeia/pkg/reminder"
	"profeia.dev/profeia/pkg/speech"
	"profeia.dev/profeia/pkg/store"
	"profeia.dev/profeia/pkg/tui"
)

// UI opens the interactive calendar.
type UI struct {
	Persistence store.Persistence

	// Speaker voices reminders while the calendar is open; nil
	// autodetects a local speech binary.
	Speaker reminder.Speaker
}

func (u *UI) Do(ctx context.Context) error {
	if u.Persistence == nil {
		return errors.New("ui: persistence required")
	}
	speaker := u.Speaker
	if speaker == nil {
		speaker = speech.NewExec()
	}

	m := tui.New(u.Persistence, speaker, nil)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
