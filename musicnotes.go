package musicnotes

import (
	"log/slog"
	"time"

	"github.com/Vintermom/my-music-notes/internal/platform"
	"github.com/Vintermom/my-music-notes/pkg/kv"
)

// --- Types ---

// App bundles the persistence core: note repository, settings repository
// and import pipeline over one shared store.
type App = platform.App

// --- Configuration ---

// Option defines a functional option for configuring the app.
type Option = platform.Option

// WithMedium injects a custom storage medium (e.g. memory, mock).
func WithMedium(m kv.Medium) Option {
	return platform.WithMedium(m)
}

// WithPrefix overrides the key namespace prefix.
func WithPrefix(prefix string) Option {
	return platform.WithPrefix(prefix)
}

// WithLogger sets the logger for all components.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithClock injects a time source, for deterministic timestamps in tests.
func WithClock(now func() time.Time) Option {
	return platform.WithClock(now)
}

// WithPinLimit overrides the maximum number of pinned notes.
func WithPinLimit(limit int) Option {
	return platform.WithPinLimit(limit)
}

// WithDailyImportLimit overrides the per-day import quota.
func WithDailyImportLimit(limit int) Option {
	return platform.WithDailyImportLimit(limit)
}

// WithImportMaxBytes overrides the import file size ceiling.
func WithImportMaxBytes(n int64) Option {
	return platform.WithImportMaxBytes(n)
}

// WithStoreQuota caps the total bytes the file medium may hold.
func WithStoreQuota(n int64) Option {
	return platform.WithStoreQuota(n)
}

// WithForceTemp forces the store into a temporary directory.
func WithForceTemp(force bool) Option {
	return platform.WithForceTemp(force)
}

// --- Factory ---

// New creates the app rooted at the given store directory.
func New(dir string, opts ...Option) (*App, error) {
	return platform.New(dir, opts...)
}

// --- Safety & Utils ---

// ResolveStoreDir determines the actual directory for the store based on
// safety rules.
func ResolveStoreDir(userPath string, forceTemp bool) string {
	return platform.ResolveStoreDir(userPath, forceTemp)
}

// IsDevRun checks if the current process is running via `go run` or `go test`.
func IsDevRun() bool {
	return platform.IsDevRun()
}
