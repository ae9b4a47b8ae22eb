// Package tui implements the interactive calendar: a month grid with a
// modal editor for creating, editing and deleting activities, plus a
// once-per-minute reminder check while the screen is open.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"profeia.dev/profeia/pkg/editor"
	"profeia.dev/profeia/pkg/event"
	"profeia.dev/profeia/pkg/grid"
	"profeia.dev/profeia/pkg/reminder"
	"profeia.dev/profeia/pkg/store"
)

const layoutMonth = "2006-01"

type mode int

const (
	modeBrowse mode = iota
	modeEdit
	modeConfirmDelete
)

type focusField int

const (
	fieldDate focusField = iota
	fieldTime
	fieldActivity
)

type tickMsg time.Time

type watchEventMsg struct{ change store.Change }

type watchStoppedMsg struct{}

// Model is the root Bubble Tea model for the calendar screen.
type Model struct {
	persistence store.Persistence
	editor      *editor.Editor
	scheduler   *reminder.Scheduler
	clock       reminder.Clock

	year     int
	month    time.Month
	selected int // day of month, 1-based
	eventIdx int // cursor within the selected day's activities

	mode  mode
	focus focusField

	dateInput     textinput.Model
	timeInput     textinput.Model
	activityInput textinput.Model

	width  int
	height int
	status string

	watchCh     <-chan store.Change
	watchCancel context.CancelFunc
}

// New builds the calendar model. The last viewed month is restored from
// persistence; a nil clock means the system clock.
func New(p store.Persistence, speaker reminder.Speaker, clock reminder.Clock) *Model {
	if clock == nil {
		clock = reminder.SystemClock()
	}

	dateInput := textinput.New()
	dateInput.Placeholder = event.LayoutDate
	dateInput.Prompt = ""
	dateInput.CharLimit = len(event.LayoutDate)

	timeInput := textinput.New()
	timeInput.Placeholder = event.LayoutTime
	timeInput.Prompt = ""
	timeInput.CharLimit = len(event.LayoutTime)

	activityInput := textinput.New()
	activityInput.Placeholder = "Describe la actividad…"
	activityInput.Prompt = ""

	m := &Model{
		persistence:   p,
		editor:        editor.New(p),
		clock:         clock,
		dateInput:     dateInput,
		timeInput:     timeInput,
		activityInput: activityInput,
	}
	if speaker != nil {
		m.scheduler = reminder.NewScheduler(p, clock, speaker)
	}

	now := clock.Now()
	m.year, m.month = now.Year(), now.Month()
	m.selected = now.Day()
	if p != nil {
		if last, err := time.Parse(layoutMonth, p.LastView()); err == nil {
			m.year, m.month = last.Year(), last.Month()
			if m.year != now.Year() || m.month != now.Month() {
				m.selected = 1
			}
		}
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.nextTick(), m.startWatch())
}

// Update processes Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.activityInput.SetWidth(max(20, min(60, m.width-12)))
		return m, nil
	case tickMsg:
		if m.scheduler != nil {
			if n := m.scheduler.Check(); n > 0 {
				m.status = "Recordatorio hablado"
			}
		}
		return m, m.nextTick()
	case watchEventMsg:
		m.persistence.Reload()
		m.clampSelection()
		return m, m.waitForWatch()
	case watchStoppedMsg:
		return m, nil
	case tea.KeyPressMsg:
		return m, m.handleKey(msg)
	}

	if m.mode == modeEdit {
		return m, m.routeInput(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch m.mode {
	case modeConfirmDelete:
		return m.handleConfirmKey(msg)
	case modeEdit:
		return m.handleEditKey(msg)
	}
	return m.handleBrowseKey(msg)
}

func (m *Model) handleBrowseKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.stopWatch()
		return tea.Quit
	case "left", "h":
		m.moveSelection(-1)
	case "right", "l":
		m.moveSelection(1)
	case "up", "k":
		m.moveSelection(-7)
	case "down", "j":
		m.moveSelection(7)
	case "n", "pgdown":
		m.setMonth(m.monthStart().AddDate(0, 1, 0))
	case "p", "pgup":
		m.setMonth(m.monthStart().AddDate(0, -1, 0))
	case "t":
		now := m.clock.Now()
		m.setMonth(now)
		m.selected = now.Day()
	case "tab":
		if events := m.dayEvents(); len(events) > 0 {
			m.eventIdx = (m.eventIdx + 1) % len(events)
		}
	case "a", "enter":
		m.openCreate()
	case "e":
		m.openEdit()
	case "d":
		if e := m.currentEvent(); e != nil {
			m.editor.RequestDelete(e.ID)
			m.mode = modeConfirmDelete
		}
	}
	return nil
}

func (m *Model) handleConfirmKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "y", "s", "enter":
		if err := m.editor.ConfirmDelete(); err != nil {
			m.status = "ERR: " + err.Error()
		} else {
			m.status = "Actividad eliminada"
		}
	default:
		m.editor.CancelDelete()
		m.status = ""
	}
	m.mode = modeBrowse
	m.clampSelection()
	return nil
}

func (m *Model) handleEditKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.editor.Close()
		m.mode = modeBrowse
		m.status = ""
		return nil
	case "tab":
		m.advanceFocus(1)
		return m.syncInputFocus()
	case "shift+tab":
		m.advanceFocus(-1)
		return m.syncInputFocus()
	case "enter":
		m.editor.SetDate(strings.TrimSpace(m.dateInput.Value()))
		m.editor.SetTime(strings.TrimSpace(m.timeInput.Value()))
		m.editor.SetActivity(m.activityInput.Value())
		saved, err := m.editor.Save()
		if err != nil {
			m.status = "ERR: " + err.Error()
			return nil
		}
		if !saved {
			// invalid form, stay in the modal
			return nil
		}
		m.mode = modeBrowse
		m.status = "Actividad guardada"
		m.followDate(m.dateInput.Value())
		return nil
	}
	return m.routeInput(msg)
}

func (m *Model) routeInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case fieldDate:
		m.dateInput, cmd = m.dateInput.Update(msg)
	case fieldTime:
		m.timeInput, cmd = m.timeInput.Update(msg)
	case fieldActivity:
		m.activityInput, cmd = m.activityInput.Update(msg)
	}
	return cmd
}

func (m *Model) openCreate() {
	m.editor.OpenCreate(m.selectedDate())
	m.loadForm()
	m.focus = fieldActivity
	m.mode = modeEdit
	m.status = ""
	m.syncInputFocus()
}

func (m *Model) openEdit() {
	e := m.currentEvent()
	if e == nil {
		return
	}
	if !m.editor.OpenEdit(e.ID) {
		return
	}
	m.loadForm()
	m.focus = fieldActivity
	m.mode = modeEdit
	m.status = ""
	m.syncInputFocus()
}

func (m *Model) loadForm() {
	m.dateInput.SetValue(m.editor.Date())
	m.timeInput.SetValue(m.editor.Time())
	m.activityInput.SetValue(m.editor.Activity())
	m.activityInput.CursorEnd()
}

func (m *Model) advanceFocus(delta int) {
	fields := []focusField{fieldDate, fieldTime, fieldActivity}
	current := int(m.focus)
	m.focus = fields[(current+len(fields)+delta)%len(fields)]
}

func (m *Model) syncInputFocus() tea.Cmd {
	m.dateInput.Blur()
	m.timeInput.Blur()
	m.activityInput.Blur()
	switch m.focus {
	case fieldDate:
		return m.dateInput.Focus()
	case fieldTime:
		return m.timeInput.Focus()
	}
	return m.activityInput.Focus()
}

func (m *Model) monthStart() time.Time {
	return time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.Local)
}

func (m *Model) setMonth(t time.Time) {
	m.year, m.month = t.Year(), t.Month()
	m.selected = 1
	m.eventIdx = 0
	now := m.clock.Now()
	if m.year == now.Year() && m.month == now.Month() {
		m.selected = now.Day()
	}
	if m.persistence != nil {
		_ = m.persistence.SetLastView(m.monthStart().Format(layoutMonth))
	}
}

func (m *Model) moveSelection(delta int) {
	next := m.selected + delta
	last := grid.DaysIn(m.year, m.month)
	if next < 1 {
		next = 1
	}
	if next > last {
		next = last
	}
	if next != m.selected {
		m.selected = next
		m.eventIdx = 0
	}
}

// followDate moves the view to the month and day of a just-saved
// activity, so the grid shows what was edited.
func (m *Model) followDate(date string) {
	t, err := time.ParseInLocation(event.LayoutDate, date, time.Local)
	if err != nil {
		return
	}
	if t.Year() != m.year || t.Month() != m.month {
		m.setMonth(t)
	}
	m.selected = t.Day()
	m.clampSelection()
}

func (m *Model) clampSelection() {
	if last := grid.DaysIn(m.year, m.month); m.selected > last {
		m.selected = last
	}
	if events := m.dayEvents(); m.eventIdx >= len(events) {
		m.eventIdx = 0
	}
}

func (m *Model) selectedDate() string {
	return fmt.Sprintf("%04d-%02d-%02d", m.year, m.month, m.selected)
}

func (m *Model) dayEvents() []*event.Event {
	if m.persistence == nil {
		return nil
	}
	date := m.selectedDate()
	day := make([]*event.Event, 0)
	for _, e := range m.persistence.List() {
		if e.Date == date {
			day = append(day, e)
		}
	}
	event.Sort(day)
	return day
}

func (m *Model) currentEvent() *event.Event {
	events := m.dayEvents()
	if len(events) == 0 {
		return nil
	}
	if m.eventIdx >= len(events) {
		return events[0]
	}
	return events[m.eventIdx]
}

func (m *Model) nextTick() tea.Cmd {
	now := m.clock.Now()
	boundary := now.Truncate(time.Minute).Add(time.Minute)
	return tea.Tick(boundary.Sub(now), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) startWatch() tea.Cmd {
	if m.persistence == nil {
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	ch, err := m.persistence.Watch(ctx)
	if err != nil {
		cancel()
		return nil
	}
	m.watchCh = ch
	m.watchCancel = cancel
	return m.waitForWatch()
}

func (m *Model) waitForWatch() tea.Cmd {
	ch := m.watchCh
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		change, ok := <-ch
		if !ok {
			return watchStoppedMsg{}
		}
		return watchEventMsg{change: change}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
		m.watchCh = nil
	}
}
