package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"profeia.dev/profeia/pkg/event"
)

// PrettyPrint renders agenda output for the terminal.
type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("1741597200000  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

// Title prints a bold underlined heading.
func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

// TitleWithCount prints a heading with a faint activity count.
func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" actividad")
	default:
		_, _ = c.Println(" actividades")
	}
}

// Agenda prints events as a date/time/activity table.
func (pp *PrettyPrint) Agenda(events ...*event.Event) {
	if len(events) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" sin actividades\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	if pp.ShowID {
		tbl.AddRow(bold("ID"), bold("Fecha"), bold("Hora"), bold("Actividad"))
	} else {
		tbl.AddRow(bold("Fecha"), bold("Hora"), bold("Actividad"))
	}
	for _, e := range events {
		if pp.ShowID {
			tbl.AddRow(e.ID, e.Date, e.Time, e.Activity)
		} else {
			tbl.AddRow(e.Date, e.Time, e.Activity)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Event prints a single event line, faint id first when enabled.
func (pp *PrettyPrint) Event(e *event.Event) {
	if pp.ShowID {
		f := color.New(color.Faint)
		_, _ = f.Printf("%s  ", e.ID)
	}
	fmt.Println(e.String())
}

func bold(s string) string {
	return color.New(color.Bold).Sprint(s)
}
