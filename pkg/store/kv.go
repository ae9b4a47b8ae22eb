package store

import (
	"sync"

	"github.com/peterbourgon/diskv/v3"
)

// KV is the storage port the agenda persists through. Implementations
// are synchronous; Get reports absence rather than erroring.
type KV interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
}

// flat keeps every record in the base directory; the agenda only has a
// handful of keys.
func flat(string) []string { return []string{} }

type diskvKV struct {
	d *diskv.Diskv
}

// NewDiskKV opens a diskv-backed KV rooted at basePath.
func NewDiskKV(basePath string) KV {
	return &diskvKV{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    flat,
		CacheSizeMax: 1024 * 1024, // 1MB
	})}
}

func (k *diskvKV) Get(key string) ([]byte, bool) {
	val, err := k.d.Read(key)
	if err != nil {
		return nil, false
	}
	return val, true
}

func (k *diskvKV) Set(key string, value []byte) error {
	return k.d.Write(key, value)
}

// MemKV is an in-memory KV for tests.
type MemKV struct {
	mu   sync.Mutex
	data map[string][]byte
	// Writes counts Set calls so tests can assert persistence behavior.
	Writes int
}

// NewMemKV returns an empty in-memory KV.
func NewMemKV() *MemKV {
	return &MemKV{data: map[string][]byte{}}
}

func (m *MemKV) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.data[key]
	return val, ok
}

func (m *MemKV) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	m.Writes++
	return nil
}
