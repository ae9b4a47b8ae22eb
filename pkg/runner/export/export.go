package export

import (
	"context"
	"errors"
	"fmt"
	"os"

	"profeia.dev/profeia/pkg/export"
	"profeia.dev/profeia/pkg/store"
)

// Export writes the agenda as an iCalendar file.
type Export struct {
	Persistence store.Persistence

	// Output is the target path; "-" or empty writes to stdout.
	Output string
}

func (e *Export) Do(ctx context.Context) error {
	if e.Persistence == nil {
		return errors.New("export: persistence required")
	}

	events := e.Persistence.List()
	if e.Output == "" || e.Output == "-" {
		return export.Write(os.Stdout, events)
	}

	f, err := os.Create(e.Output)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", e.Output, err)
	}
	defer f.Close()

	if err := export.Write(f, events); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Exportadas %d actividades a %s\n", len(events), e.Output)
	return nil
}
