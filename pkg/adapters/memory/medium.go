// Package memory implements an in-process storage medium, used by tests
// and as the fallback when persistent storage is disabled.
package memory

import (
	"errors"
	"sync"
)

// ErrDisabled is returned by every operation when the medium is disabled,
// modelling a host with storage blocked entirely.
var ErrDisabled = errors.New("storage disabled")

// ErrQuotaExceeded is returned by Write when the byte budget would be
// exceeded.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// Medium is a map-backed medium. The zero value is usable.
type Medium struct {
	mu       sync.Mutex
	values   map[string]string
	Disabled bool
	MaxBytes int64 // 0 means unlimited
}

// New creates an empty memory medium.
func New() *Medium {
	return &Medium{values: make(map[string]string)}
}

// Read returns the stored value for key.
func (m *Medium) Read(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Disabled {
		return "", false, ErrDisabled
	}
	v, ok := m.values[key]
	return v, ok, nil
}

// Write stores value under key, enforcing the byte budget across all keys.
func (m *Medium) Write(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Disabled {
		return ErrDisabled
	}
	if m.values == nil {
		m.values = make(map[string]string)
	}
	if m.MaxBytes > 0 {
		var used int64
		for k, v := range m.values {
			if k == key {
				continue
			}
			used += int64(len(v))
		}
		if used+int64(len(value)) > m.MaxBytes {
			return ErrQuotaExceeded
		}
	}
	m.values[key] = value
	return nil
}

// Delete removes key. Absent keys are not an error.
func (m *Medium) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Disabled {
		return ErrDisabled
	}
	delete(m.values, key)
	return nil
}

// Len returns the number of stored keys.
func (m *Medium) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.values)
}

// ComponentType implements introspection.Component.
func (m *Medium) ComponentType() string {
	return "memory-medium"
}
