package grid

import (
	"strings"
	"testing"
	"time"

	"profeia.dev/profeia/pkg/event"
)

func TestBuildLeapFebruary(t *testing.T) {
	cells := Build(2024, time.February, nil)

	// Feb 1, 2024 is a Thursday: four leading empties under a
	// Sunday-first layout, then 29 day cells.
	leading := 0
	for _, c := range cells {
		if !c.Empty {
			break
		}
		leading++
	}
	if leading != 4 {
		t.Fatalf("expected 4 leading empty cells, got %d", leading)
	}
	if got := len(cells) - leading; got != 29 {
		t.Fatalf("expected 29 day cells, got %d", got)
	}
	if cells[len(cells)-1].Date != "2024-02-29" {
		t.Fatalf("expected last cell 2024-02-29, got %s", cells[len(cells)-1].Date)
	}
}

func TestBuildNonLeapFebruary(t *testing.T) {
	cells := Build(2025, time.February, nil)
	days := 0
	for _, c := range cells {
		if !c.Empty {
			days++
		}
	}
	if days != 28 {
		t.Fatalf("expected 28 day cells, got %d", days)
	}
}

func TestBuildAttachesEventsSortedByTime(t *testing.T) {
	events := []*event.Event{
		{ID: "2", Date: "2025-03-10", Time: "15:30", Activity: "tarde"},
		{ID: "1", Date: "2025-03-10", Time: "09:00", Activity: "mañana"},
		{ID: "3", Date: "2025-03-11", Time: "08:00", Activity: "otro día"},
	}
	cells := Build(2025, time.March, events)

	var day10 *Cell
	for i := range cells {
		if cells[i].Date == "2025-03-10" {
			day10 = &cells[i]
			break
		}
	}
	if day10 == nil {
		t.Fatalf("day 10 missing from grid")
	}
	if len(day10.Events) != 2 {
		t.Fatalf("expected 2 events on day 10, got %d", len(day10.Events))
	}
	if day10.Events[0].Time != "09:00" || day10.Events[1].Time != "15:30" {
		t.Fatalf("events not time-ordered: %s, %s", day10.Events[0].Time, day10.Events[1].Time)
	}
}

func TestBuildDeterministic(t *testing.T) {
	events := []*event.Event{{ID: "1", Date: "2025-03-10", Time: "09:00", Activity: "a"}}
	a := Build(2025, time.March, events)
	b := Build(2025, time.March, events)
	if len(a) != len(b) {
		t.Fatalf("non-deterministic cell count: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Date != b[i].Date || a[i].Day != b[i].Day || a[i].Empty != b[i].Empty {
			t.Fatalf("cell %d differs between builds", i)
		}
	}
}

func TestRenderMarksEventDays(t *testing.T) {
	events := []*event.Event{{ID: "1", Date: "2024-02-29", Time: "09:00", Activity: "a"}}
	cells := Build(2024, time.February, events)
	out := Render(cells, Options{ShowHeader: true})
	if !strings.Contains(out, "Su Mo Tu We Th Fr Sa") {
		t.Fatalf("missing header: %q", out)
	}
	if !strings.Contains(out, "29") {
		t.Fatalf("missing day 29: %q", out)
	}
}
