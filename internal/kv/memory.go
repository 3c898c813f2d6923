// ABOUTME: In-memory Store implementation for tests.
// ABOUTME: Supports fault injection for exercising failure paths.
package kv

import (
	"errors"
	"sync"
)

var errInjected = errors.New("injected storage failure")

// Memory is a map-backed Store. The zero value is not usable; call NewMemory.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte

	// FailReads and FailWrites make operations return Err (or a stock
	// injected error) for testing degraded-storage behavior.
	FailReads  bool
	FailWrites bool
	Err        error
}

func (m *Memory) failErr() error {
	if m.Err != nil {
		return m.Err
	}
	return errInjected
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.FailReads {
		return nil, m.failErr()
	}
	val, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *Memory) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return m.failErr()
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	m.data[key] = stored
	return nil
}

func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return m.failErr()
	}
	delete(m.data, key)
	return nil
}

func (m *Memory) Close() error { return nil }

// Len reports the number of stored keys.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
