package grid

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
)

// Options controls the styling of the rendered month.
type Options struct {
	HeaderStyle   lipgloss.Style
	EmptyStyle    lipgloss.Style
	EventStyle    lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	ShowHeader    bool
	Today         string // YYYY-MM-DD, optional
	Selected      string // YYYY-MM-DD, optional
}

// Render produces a multi-line month string from the cells returned by
// Build, seven columns per row.
func Render(cells []Cell, opts Options) string {
	if len(cells) == 0 {
		return ""
	}

	var lines []string
	if opts.ShowHeader {
		lines = append(lines, opts.HeaderStyle.Render("Su Mo Tu We Th Fr Sa"))
	}

	rows := (len(cells) + 6) / 7
	for row := 0; row < rows; row++ {
		var rendered []string
		for col := 0; col < 7; col++ {
			idx := row*7 + col
			if idx >= len(cells) || cells[idx].Empty {
				rendered = append(rendered, opts.EmptyStyle.Render("  "))
				continue
			}
			rendered = append(rendered, renderCell(cells[idx], opts))
		}
		lines = append(lines, strings.TrimRight(strings.Join(rendered, " "), " "))
	}

	return strings.Join(lines, "\n")
}

// Title renders the "Marzo 2025" style heading for a month.
func Title(year int, month time.Month) string {
	name := monthNames[month]
	return fmt.Sprintf("%s %d", name, year)
}

func renderCell(c Cell, opts Options) string {
	label := fmt.Sprintf("%2d", c.Day)

	style := opts.EmptyStyle
	if len(c.Events) > 0 {
		style = opts.EventStyle
	}
	if opts.Today != "" && c.Date == opts.Today {
		style = style.Inherit(opts.TodayStyle)
	}
	if opts.Selected != "" && c.Date == opts.Selected {
		style = style.Inherit(opts.SelectedStyle)
	}
	return style.Render(label)
}

// Month headings in the application's locale.
var monthNames = map[time.Month]string{
	time.January:   "Enero",
	time.February:  "Febrero",
	time.March:     "Marzo",
	time.April:     "Abril",
	time.May:       "Mayo",
	time.June:      "Junio",
	time.July:      "Julio",
	time.August:    "Agosto",
	time.September: "Septiembre",
	time.October:   "Octubre",
	time.November:  "Noviembre",
	time.December:  "Diciembre",
}
