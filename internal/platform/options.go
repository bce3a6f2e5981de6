package platform

import (
	"log/slog"
	"time"

	"github.com/Vintermom/my-music-notes/pkg/kv"
)

// options holds the internal configuration for the app.
type options struct {
	medium         kv.Medium
	prefix         string
	logger         *slog.Logger
	now            func() time.Time
	pinLimit       int
	dailyImports   int
	importMaxBytes int64
	storeQuota     int64
	forceTemp      bool
}

// Option defines a functional option for configuring the app.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		prefix: kv.DefaultPrefix,
		now:    time.Now,
	}
}

// WithMedium injects a custom storage medium (e.g. memory, mock).
// If provided, the default file medium is skipped.
func WithMedium(m kv.Medium) Option {
	return func(o *options) {
		o.medium = m
	}
}

// WithPrefix overrides the key namespace prefix.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithLogger sets the logger for all components.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock injects a time source, for deterministic timestamps in tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithPinLimit overrides the maximum number of pinned notes.
func WithPinLimit(limit int) Option {
	return func(o *options) {
		o.pinLimit = limit
	}
}

// WithDailyImportLimit overrides the per-day import quota.
func WithDailyImportLimit(limit int) Option {
	return func(o *options) {
		o.dailyImports = limit
	}
}

// WithImportMaxBytes overrides the import file size ceiling.
func WithImportMaxBytes(n int64) Option {
	return func(o *options) {
		o.importMaxBytes = n
	}
}

// WithStoreQuota caps the total bytes the file medium may hold, modelling
// a host storage budget. Zero means unlimited.
func WithStoreQuota(n int64) Option {
	return func(o *options) {
		o.storeQuota = n
	}
}

// WithForceTemp forces the store into a temporary directory (useful for
// demos and tests).
func WithForceTemp(force bool) Option {
	return func(o *options) {
		o.forceTemp = force
	}
}
