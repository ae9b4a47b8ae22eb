package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Change is emitted by Persistence.Watch when the durable agenda is
// modified outside this process, e.g. by the CLI while the TUI runs.
type Change struct {
	Key string
}

// Watch streams change notifications until ctx is cancelled. Callers
// should reload on receipt; bursts of writes are coalesced so one
// mutation produces one notification. The channel closes when ctx is
// done or the watcher fails.
func (p *persistence) Watch(ctx context.Context) (<-chan Change, error) {
	if p.basePath == "" {
		return nil, errors.New("store: watch requires a file-backed agenda")
	}
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(p.basePath); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", p.basePath, err)
	}

	changes := make(chan Change, 16)

	go func() {
		defer close(changes)
		defer func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		}()

		send := func(c Change) {
			select {
			case changes <- c:
			default:
				// Drop when the consumer lags; it reloads the full
				// collection anyway on the next notification.
			}
		}

		throttle := newChangeThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				throttle.Enqueue(Change{}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				throttle.Enqueue(Change{Key: filepath.Base(evt.Name)}, send)
			}
		}
	}()

	return changes, nil
}

// changeThrottle coalesces rapid notifications so a consumer redraws
// once per burst of filesystem activity instead of once per write.
type changeThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[string]struct{}
	delay   time.Duration
}

func newChangeThrottle(delay time.Duration) *changeThrottle {
	return &changeThrottle{
		delay:   delay,
		pending: make(map[string]struct{}),
	}
}

func (t *changeThrottle) Enqueue(c Change, send func(Change)) {
	t.mu.Lock()
	t.pending[c.Key] = struct{}{}
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *changeThrottle) flush(send func(Change)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[string]struct{})
	t.timer = nil
	t.mu.Unlock()

	for key := range pending {
		send(Change{Key: key})
	}
}

func (t *changeThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
