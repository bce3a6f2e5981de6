// Package importer ingests externally authored JSON into the note store
// under capacity and validation constraints. It is the only multi-step
// writer in the system, so it is also the only place that performs the
// backup-before-write / restore-on-failure dance.
package importer

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Vintermom/my-music-notes/pkg/core"
	"github.com/Vintermom/my-music-notes/pkg/notes"
)

// Config holds the configuration for an Importer.
type Config struct {
	Repo       *notes.Repository
	Logger     *slog.Logger
	Now        func() time.Time
	DailyLimit int   // 0 means core.DefaultDailyImports
	MaxBytes   int64 // 0 means core.DefaultImportMaxBytes
}

// Importer runs one import attempt at a time:
// file gates -> shape sniffing -> per-note validation -> quota -> backup ->
// create -> record.
type Importer struct {
	repo     *notes.Repository
	logger   *slog.Logger
	maxBytes int64
	quota    *quota
}

// New creates an Importer bound to a note repository.
func New(cfg Config) *Importer {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	limit := cfg.DailyLimit
	if limit == 0 {
		limit = core.DefaultDailyImports
	}
	maxBytes := cfg.MaxBytes
	if maxBytes == 0 {
		maxBytes = core.DefaultImportMaxBytes
	}
	return &Importer{
		repo:     cfg.Repo,
		logger:   cfg.Logger,
		maxBytes: maxBytes,
		quota:    &quota{store: cfg.Repo.Store(), limit: limit, now: now},
	}
}

// Remaining returns how many notes may still be imported today.
func (im *Importer) Remaining() int {
	return im.quota.Remaining()
}

// Result reports one import attempt. Skipped > 0 with a nil error is a
// partial success: the quota ran out before the whole bundle was created.
type Result struct {
	Imported []core.Note
	Total    int // valid notes found in the file
	Skipped  int // valid notes not created because of the quota
}

// ImportFile rejects the file on extension or size before any bytes are
// read, then delegates to Import.
func (im *Importer) ImportFile(path string) (Result, error) {
	if !strings.EqualFold(filepath.Ext(path), ".json") {
		return Result{}, fmt.Errorf("%w: extension must be .json", core.ErrInvalidFile)
	}
	info, err := os.Stat(path)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", core.ErrInvalidFile, err)
	}
	if info.Size() > im.maxBytes {
		return Result{}, fmt.Errorf("%w: %d bytes exceeds the %d byte ceiling", core.ErrInvalidFile, info.Size(), im.maxBytes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", core.ErrInvalidFile, err)
	}
	return im.Import(data)
}

// Import ingests one uploaded payload. Exactly one shape is selected by
// sniffing, in order: bundle {notes: [...]}, wrapped {note: {...}}, bare
// note object. Invalid bundle elements are dropped silently; zero valid
// notes is a hard failure. When the daily quota covers only part of a
// bundle, the earliest notes are created and the rest reported as skipped.
func (im *Importer) Import(data []byte) (result Result, err error) {
	if im.quota.Remaining() == 0 {
		return Result{}, core.ErrImportLimit
	}

	candidates, err := sniffShapes(data)
	if err != nil {
		return Result{}, err
	}

	valid := make([]core.Partial, 0, len(candidates))
	for _, c := range candidates {
		if p := core.ValidateImportedNote(c); p != nil {
			valid = append(valid, *p)
		}
	}
	if len(valid) == 0 {
		return Result{}, core.ErrNoImportableNotes
	}

	toCreate := im.quota.Remaining()
	if toCreate > len(valid) {
		toCreate = len(valid)
	}

	// Everything past this point mutates the collection; snapshot first and
	// never leave it partially written. A collection that did not exist
	// before the import rolls back by removing the key again.
	hadNotes, ok := im.repo.CreateNotesBackup()
	if !ok {
		return Result{}, fmt.Errorf("import failed: %w", core.ErrWriteFailed)
	}
	rollback := func() {
		if hadNotes {
			im.repo.RestoreNotesBackup()
		} else {
			im.repo.Store().Remove(notes.NotesKey)
		}
	}
	defer func() {
		if r := recover(); r != nil {
			rollback()
			if im.logger != nil {
				im.logger.Warn("import panicked, storage restored", "panic", r)
			}
			result = Result{}
			err = fmt.Errorf("import failed")
		}
	}()

	created := make([]core.Note, 0, toCreate)
	for _, p := range valid[:toCreate] {
		note, createErr := im.repo.CreateNote(p)
		if createErr != nil {
			rollback()
			if im.logger != nil {
				im.logger.Warn("import aborted, storage restored", "created", len(created), "error", createErr)
			}
			return Result{}, fmt.Errorf("import failed: %w", createErr)
		}
		created = append(created, note)
	}

	im.quota.Record(len(created))

	if im.logger != nil {
		im.logger.Debug("import finished", "created", len(created), "total", len(valid))
	}
	return Result{
		Imported: created,
		Total:    len(valid),
		Skipped:  len(valid) - len(created),
	}, nil
}

// sniffShapes picks exactly one payload shape per file.
func sniffShapes(data []byte) ([]any, error) {
	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: not valid JSON", core.ErrNoImportableNotes)
	}

	m, ok := payload.(map[string]any)
	if !ok {
		return nil, core.ErrNoImportableNotes
	}

	if bundle, ok := m["notes"].([]any); ok {
		return bundle, nil
	}
	if wrapped, ok := m["note"].(map[string]any); ok {
		return []any{wrapped}, nil
	}
	// Legacy direct form: the object is the note.
	return []any{m}, nil
}
