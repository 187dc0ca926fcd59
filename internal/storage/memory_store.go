package storage

import (
	"maps"
	"readtrack/internal/storage/interfaces"
	"sync"
)

// MemoryStore is the in-process key-value medium. Every write bumps the
// revision so the scheduler can skip saves when nothing changed.
type MemoryStore struct {
	mu       sync.RWMutex
	data     map[string]string
	revision uint64
}

func (m *MemoryStore) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok
}

func (m *MemoryStore) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	m.revision++
}

func (m *MemoryStore) Remove(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.data[key]; !ok {
		return
	}
	delete(m.data, key)
	m.revision++
}

func (m *MemoryStore) Snapshot() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return maps.Clone(m.data)
}

// Restore replaces the whole content, as when loading a snapshot file.
func (m *MemoryStore) Restore(entries map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string]string, len(entries))
	maps.Copy(m.data, entries)
	m.revision++
}

func (m *MemoryStore) Revision() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.revision
}

func NewMemoryStore() interfaces.KeyValueStore {
	return &MemoryStore{data: make(map[string]string)}
}
