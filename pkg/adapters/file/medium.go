// Package file implements a filesystem-backed storage medium: one file per
// namespaced key under a single directory. It is the moral equivalent of a
// browser's localStorage (synchronous, string-only, quota-limited) and it
// reports quota and availability failures as plain errors for the kv layer
// to absorb.
package file

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ErrQuotaExceeded is returned by Write when the medium byte budget would
// be exceeded.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// Config holds the configuration for the file medium.
type Config struct {
	Dir      string
	MaxBytes int64 // 0 means unlimited
	Logger   *slog.Logger
}

// Medium stores each key as a file named after the key.
type Medium struct {
	dir      string
	maxBytes int64
	logger   *slog.Logger
}

// New creates a file medium rooted at cfg.Dir, creating the directory if
// needed. A directory that cannot be created surfaces as an error from
// every operation, which the kv layer's availability probe detects.
func New(cfg Config) *Medium {
	return &Medium{
		dir:      cfg.Dir,
		maxBytes: cfg.MaxBytes,
		logger:   cfg.Logger,
	}
}

// Dir returns the backing directory.
func (m *Medium) Dir() string { return m.dir }

func (m *Medium) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, "/\\") {
		return "", fmt.Errorf("invalid storage key: %q", key)
	}
	return filepath.Join(m.dir, key), nil
}

// Read returns the stored value for key.
func (m *Medium) Read(key string) (string, bool, error) {
	path, err := m.path(key)
	if err != nil {
		return "", false, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(data), true, nil
}

// Write stores value under key atomically. The quota covers the sum of all
// stored values, mirroring a browser storage budget.
func (m *Medium) Write(key, value string) error {
	path, err := m.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(m.dir, 0755); err != nil {
		return fmt.Errorf("medium directory unavailable: %w", err)
	}

	if m.maxBytes > 0 {
		used, err := m.usedBytes(key)
		if err != nil {
			return err
		}
		if used+int64(len(value)) > m.maxBytes {
			return fmt.Errorf("%w: %d+%d > %d bytes", ErrQuotaExceeded, used, len(value), m.maxBytes)
		}
	}

	if m.logger != nil {
		m.logger.Debug("writing key", "key", key, "bytes", len(value))
	}
	return writeFileAtomic(path, []byte(value), 0644)
}

// Delete removes key. Absent keys are not an error.
func (m *Medium) Delete(key string) error {
	path, err := m.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// usedBytes sums the sizes of all stored values except the one being
// replaced.
func (m *Medium) usedBytes(excludeKey string) (int64, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	var total int64
	for _, e := range entries {
		if e.IsDir() || e.Name() == excludeKey {
			continue
		}
		if strings.HasPrefix(e.Name(), tempFilePrefix) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		total += info.Size()
	}
	return total, nil
}

// Keys lists all stored keys.
func (m *Medium) Keys() ([]string, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), tempFilePrefix) {
			continue
		}
		keys = append(keys, e.Name())
	}
	return keys, nil
}
