package platform

import (
	"context"
	"fmt"

	"github.com/Vintermom/my-music-notes/pkg/adapters/file"
	"github.com/Vintermom/my-music-notes/pkg/core"
	"github.com/Vintermom/my-music-notes/pkg/importer"
	"github.com/Vintermom/my-music-notes/pkg/kv"
	"github.com/Vintermom/my-music-notes/pkg/notes"
)

// Watchable is implemented by mediums that can emit a key change feed.
type Watchable interface {
	Watch(ctx context.Context, pattern string) (<-chan core.Event, error)
}

// App bundles the persistence core: note repository, settings repository
// and import pipeline, all sharing one kv store.
type App struct {
	Notes    *notes.Repository
	Settings *notes.SettingsRepository
	Importer *importer.Importer

	store  *kv.Store
	medium kv.Medium
}

// New wires the app over a file medium rooted at dir, or over an injected
// medium.
func New(dir string, opts ...Option) (*App, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	medium := o.medium
	if medium == nil {
		medium = file.New(file.Config{
			Dir:      ResolveStoreDir(dir, o.forceTemp),
			MaxBytes: o.storeQuota,
			Logger:   o.logger,
		})
	}

	store := kv.NewStore(kv.Config{
		Medium: medium,
		Prefix: o.prefix,
		Logger: o.logger,
		Now:    o.now,
	})

	repo := notes.NewRepository(notes.Config{
		Store:    store,
		Logger:   o.logger,
		Now:      o.now,
		PinLimit: o.pinLimit,
	})

	return &App{
		Notes:    repo,
		Settings: notes.NewSettingsRepository(store, o.logger),
		Importer: importer.New(importer.Config{
			Repo:       repo,
			Logger:     o.logger,
			Now:        o.now,
			DailyLimit: o.dailyImports,
			MaxBytes:   o.importMaxBytes,
		}),
		store:  store,
		medium: medium,
	}, nil
}

// Store exposes the kv store for diagnostics.
func (a *App) Store() *kv.Store { return a.store }

// Watch emits a change event for every storage key matching pattern, if
// the medium supports observation. Consumers re-read through the
// repositories; the feed carries no payloads.
func (a *App) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	w, ok := a.medium.(Watchable)
	if !ok {
		return nil, fmt.Errorf("storage medium does not support watching")
	}
	return w.Watch(ctx, pattern)
}
