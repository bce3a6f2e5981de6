// Package kv wraps a synchronous, string-only storage medium behind
// soft-failure accessors: callers always receive a usable value or a
// boolean, never an error. A note-taking app must degrade (lose
// persistence) rather than crash.
package kv

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/Vintermom/my-music-notes/pkg/core"
)

// DefaultPrefix namespaces every key this app persists.
const DefaultPrefix = "mymusicnotes_"

const probeKey = "__probe__"

// Medium is the raw storage a Store wraps. Implementations are synchronous
// and string-only; they may be quota-limited or unavailable entirely, and
// report that through errors. The Store absorbs those errors.
type Medium interface {
	// Read returns the value for key and whether it was present.
	Read(key string) (value string, present bool, err error)

	// Write stores value under key. Quota exhaustion is an error.
	Write(key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}

// Config holds the configuration for a Store.
type Config struct {
	Medium Medium
	Prefix string
	Logger *slog.Logger
	Now    func() time.Time
}

// Store is the safe accessor layer over a Medium. All failures are soft:
// missing or undecodable values yield the caller's default, failed writes
// yield false.
type Store struct {
	medium Medium
	prefix string
	logger *slog.Logger
	now    func() time.Time

	probeOnce sync.Once
	available bool
}

// NewStore creates a Store over the given medium.
func NewStore(cfg Config) *Store {
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Store{
		medium: cfg.Medium,
		prefix: prefix,
		logger: cfg.Logger,
		now:    now,
	}
}

// Available probes the medium once per Store lifetime and short-circuits
// every later call. A medium that cannot complete a write/delete round trip
// is treated as disabled.
func (s *Store) Available() bool {
	s.probeOnce.Do(func() {
		key := s.prefix + probeKey
		if err := s.medium.Write(key, "1"); err != nil {
			if s.logger != nil {
				s.logger.Warn("storage medium unavailable", "error", err)
			}
			return
		}
		_ = s.medium.Delete(key)
		s.available = true
	})
	return s.available
}

// GetRaw reads the raw stored string for a key, bypassing decoding.
// Used for corruption checks and backups.
func (s *Store) GetRaw(key string) (string, bool) {
	if !s.Available() {
		return "", false
	}
	value, present, err := s.medium.Read(s.prefix + key)
	if err != nil || !present {
		return "", false
	}
	return value, true
}

// SetRaw writes a raw string under a key.
func (s *Store) SetRaw(key, value string) bool {
	if !s.Available() {
		return false
	}
	if err := s.medium.Write(s.prefix+key, value); err != nil {
		if s.logger != nil {
			s.logger.Warn("storage write failed", "key", key, "error", err)
		}
		return false
	}
	return true
}

// Remove deletes a key. Returns false only if the medium itself failed.
func (s *Store) Remove(key string) bool {
	if !s.Available() {
		return false
	}
	if err := s.medium.Delete(s.prefix + key); err != nil {
		if s.logger != nil {
			s.logger.Warn("storage delete failed", "key", key, "error", err)
		}
		return false
	}
	return true
}

// Corrupted reports whether the raw bytes under key fail to parse as JSON.
func (s *Store) Corrupted(key string) bool {
	raw, present := s.GetRaw(key)
	return core.IsCorruptJSON(raw, present)
}

// Get reads and decodes a key, returning def when the key is missing, the
// medium is unavailable, or the stored bytes are corrupt. Corruption is a
// warning-level signal only.
func Get[T any](s *Store, key string, def T) T {
	raw, present := s.GetRaw(key)
	if !present {
		return def
	}
	var out T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		if s.logger != nil {
			s.logger.Warn("corrupted value, using default", "key", key, "error", err)
		}
		return def
	}
	return out
}

// Set serializes and writes a value. Returns false on write failure without
// throwing; callers must treat the in-memory value as not committed then.
func Set[T any](s *Store, key string, value T) bool {
	data, err := json.Marshal(value)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("value not serializable", "key", key, "error", err)
		}
		return false
	}
	return s.SetRaw(key, string(data))
}
