// Package store persists the agenda to a durable key-value database.
// The whole event collection lives under a single key and is rewritten
// on every mutation, so the durable copy always matches memory,
// including the empty collection after the last delete.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"profeia.dev/profeia/pkg/event"
)

const (
	eventsKey   = "events"
	lastViewKey = "last-view"
)

// Persistence is the agenda contract consumed by the editor, the grid,
// and the reminder scheduler.
type Persistence interface {
	List() []*event.Event
	ReplaceAll(events []*event.Event) error
	Reload()
	LastView() string
	SetLastView(view string) error
	Watch(ctx context.Context) (<-chan Change, error)
	Raw() KV
}

// Load opens the configured database and reads the agenda once.
// Corrupt or missing data resets to an empty collection; load never
// fails on bad content, only on config resolution.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	basePath := cfg.BasePath()
	p := &persistence{kv: NewDiskKV(basePath), basePath: basePath}
	p.load()
	return p, nil
}

// New builds a Persistence over an injected KV port. Tests use this
// with MemKV to avoid touching the filesystem.
func New(kv KV) Persistence {
	p := &persistence{kv: kv}
	p.load()
	return p
}

type persistence struct {
	kv       KV
	basePath string

	// mu guards events: the remind daemon reloads on watch events
	// while the cron scheduler lists on its own goroutine, and the
	// MCP HTTP transport serves tool calls concurrently.
	mu     sync.RWMutex
	events []*event.Event
}

func (p *persistence) load() {
	loaded := []*event.Event{}
	if val, ok := p.kv.Get(eventsKey); ok {
		var events []*event.Event
		if err := json.Unmarshal(val, &events); err != nil {
			// Corrupt record: reset to empty and overwrite so the next
			// load starts clean.
			fmt.Fprintf(os.Stderr, "store: resetting corrupt agenda: %s\n", err)
			if werr := p.writeEvents(nil); werr != nil {
				fmt.Fprintf(os.Stderr, "store: clear agenda: %s\n", werr)
			}
		} else {
			for _, e := range events {
				if e != nil {
					loaded = append(loaded, e)
				}
			}
			event.Sort(loaded)
		}
	}

	p.mu.Lock()
	p.events = loaded
	p.mu.Unlock()
}

// List returns the events ascending by (date, time). Callers get a
// fresh slice; the backing events are shared, so edit through copies.
func (p *persistence) List() []*event.Event {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]*event.Event, len(p.events))
	copy(out, p.events)
	return out
}

// ReplaceAll swaps in the new collection, restores the canonical
// ordering, and persists synchronously.
func (p *persistence) ReplaceAll(events []*event.Event) error {
	kept := make([]*event.Event, 0, len(events))
	for _, e := range events {
		if e != nil {
			kept = append(kept, e)
		}
	}
	event.Sort(kept)
	if err := p.writeEvents(kept); err != nil {
		return err
	}
	p.mu.Lock()
	p.events = kept
	p.mu.Unlock()
	return nil
}

func (p *persistence) writeEvents(events []*event.Event) error {
	if events == nil {
		events = []*event.Event{}
	}
	data, err := json.Marshal(events)
	if err != nil {
		return err
	}
	if err := p.kv.Set(eventsKey, data); err != nil {
		return fmt.Errorf("store: write agenda: %w", err)
	}
	return nil
}

// Reload re-reads the durable copy, discarding the in-memory view.
// Watch consumers call this when another process mutates the agenda.
func (p *persistence) Reload() {
	p.load()
}

// LastView returns the view name to restore on startup, or "".
func (p *persistence) LastView() string {
	val, ok := p.kv.Get(lastViewKey)
	if !ok {
		return ""
	}
	return strings.TrimSpace(string(val))
}

func (p *persistence) SetLastView(view string) error {
	return p.kv.Set(lastViewKey, []byte(view))
}

func (p *persistence) Raw() KV {
	return p.kv
}
