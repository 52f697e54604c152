package storage

import (
	"errors"
	"sync"
)

// ErrUnavailable is returned by a Memory store that has been switched off.
var ErrUnavailable = errors.New("storage: unavailable")

// Memory is a map-backed key-value store. The scoreboard runs on it when the
// database cannot be opened, so nothing outlives the process.
type Memory struct {
	mu          sync.RWMutex
	data        map[string]string
	unavailable bool
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

// SetUnavailable makes every subsequent call fail with ErrUnavailable.
func (m *Memory) SetUnavailable(off bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.unavailable = off
}

// Get returns the value stored under key.
func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.unavailable {
		return "", false, ErrUnavailable
	}
	v, ok := m.data[key]
	return v, ok, nil
}

// Set overwrites the value under key.
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.unavailable {
		return ErrUnavailable
	}
	m.data[key] = value
	return nil
}

// Delete removes key.
func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.unavailable {
		return ErrUnavailable
	}
	delete(m.data, key)
	return nil
}

// Close is a no-op so Memory can stand in for Store.
func (m *Memory) Close() error {
	return nil
}
