package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"profeia.dev/profeia/pkg/event"
	"profeia.dev/profeia/pkg/grid"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true)
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	eventStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	todayStyle  = lipgloss.NewStyle().Underline(true)
	selStyle    = lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	faintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(11)
	modalStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("212")).
			Padding(1, 2)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
)

const browseHelp = "←→↑↓ día · p/n mes · t hoy · enter/a nueva · tab elegir · e editar · d eliminar · q salir"
const editHelp = "tab campo · enter guardar · esc cancelar"

// View renders the calendar screen.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(grid.Title(m.year, m.month)))
	b.WriteString("\n\n")

	cells := grid.Build(m.year, m.month, m.allEvents())
	b.WriteString(grid.Render(cells, grid.Options{
		ShowHeader:    true,
		HeaderStyle:   headerStyle,
		EmptyStyle:    emptyStyle,
		EventStyle:    eventStyle,
		TodayStyle:    todayStyle,
		SelectedStyle: selStyle,
		Today:         m.clock.Now().Format(event.LayoutDate),
		Selected:      m.selectedDate(),
	}))
	b.WriteString("\n\n")

	switch m.mode {
	case modeEdit:
		b.WriteString(m.viewModal())
	case modeConfirmDelete:
		b.WriteString(m.viewAgenda())
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.confirmLine(m.editor.PendingDelete())))
	default:
		b.WriteString(m.viewAgenda())
		b.WriteString("\n")
		if m.status != "" {
			b.WriteString(statusStyle.Render(m.status))
			b.WriteString("\n")
		}
		b.WriteString(faintStyle.Render(browseHelp))
	}

	return b.String()
}

func (m *Model) confirmLine(id string) string {
	for _, e := range m.persistence.List() {
		if e.ID == id {
			return fmt.Sprintf("¿Eliminar %q? [y/n]", e.Activity)
		}
	}
	return "¿Eliminar la actividad? [y/n]"
}

func (m *Model) viewAgenda() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.selectedDate()))
	b.WriteString("\n")

	events := m.dayEvents()
	if len(events) == 0 {
		b.WriteString(faintStyle.Render("sin actividades"))
		b.WriteString("\n")
		return b.String()
	}
	for i, e := range events {
		marker := "  "
		line := fmt.Sprintf("%s  %s", e.Time, e.Activity)
		if i == m.eventIdx {
			marker = cursorStyle.Render("→ ")
			line = cursorStyle.Render(line)
		}
		b.WriteString(marker)
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) viewModal() string {
	title := "Nueva actividad"
	if m.editor.Editing() != "" {
		title = "Editar actividad"
	}

	rows := []string{
		titleStyle.Render(title),
		"",
		labelStyle.Render("Fecha") + m.dateInput.View(),
		labelStyle.Render("Hora") + m.timeInput.View(),
		labelStyle.Render("Actividad") + m.activityInput.View(),
		"",
		faintStyle.Render(editHelp),
	}
	return modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m *Model) allEvents() []*event.Event {
	if m.persistence == nil {
		return nil
	}
	return m.persistence.List()
}
