package store

import (
	"context"
	"encoding/json"
	"slices"
	"strings"
	"sync"

	"github.com/jeremy-dai/hi-time-sub000/models"
)

// MemoryCache is an in-process [LocalCache] and [SessionStore]. It backs
// tests and clients started with the "memory" cache DSN.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]models.CacheEntry
	session *models.Session
}

// NewMemoryCache returns an empty MemoryCache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]models.CacheEntry)}
}

func (m *MemoryCache) Read(_ context.Context, key string) (models.CacheEntry, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.entries[key]
	if !ok || !json.Valid(entry.Value) {
		return models.CacheEntry{}, false, nil
	}
	entry.Value = slices.Clone(entry.Value)
	return entry, true, nil
}

func (m *MemoryCache) Write(_ context.Context, key string, entry models.CacheEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry.Value = slices.Clone(entry.Value)
	m.entries[key] = entry
	return nil
}

func (m *MemoryCache) Clear(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key)
	return nil
}

func (m *MemoryCache) Keys(_ context.Context, prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0)
	for k := range m.entries {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys, nil
}

// WriteRaw stores value verbatim, bypassing validation. Tests use it to
// simulate a corrupted slot.
func (m *MemoryCache) WriteRaw(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = models.CacheEntry{Value: value}
}

func (m *MemoryCache) LoadSession(_ context.Context) (models.Session, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.session == nil {
		return models.Session{}, false, nil
	}
	return *m.session, true, nil
}

func (m *MemoryCache) SaveSession(_ context.Context, session models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.session = &session
	return nil
}

func (m *MemoryCache) ClearSession(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.session = nil
	return nil
}
