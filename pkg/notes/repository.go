// Package notes implements the note and settings repositories on top of
// the kv store. Every write is a whole-collection replace: read the full
// collection, mutate in memory, write it back. Callers must not assume
// row-level writes.
package notes

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Vintermom/my-music-notes/pkg/core"
	"github.com/Vintermom/my-music-notes/pkg/kv"
)

// NotesKey is the logical key the note collection lives under.
const NotesKey = "notes"

// Config holds the configuration for a Repository.
type Config struct {
	Store    *kv.Store
	Logger   *slog.Logger
	Now      func() time.Time
	PinLimit int // 0 means core.DefaultPinLimit
	NewID    func(now time.Time) string
}

// Repository owns the note collection: schema-version tagging, id
// generation, timestamps, and the pin-count invariant.
type Repository struct {
	store    *kv.Store
	logger   *slog.Logger
	now      func() time.Time
	pinLimit int
	newID    func(now time.Time) string
}

// NewRepository creates a note repository over the given store.
func NewRepository(cfg Config) *Repository {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	pinLimit := cfg.PinLimit
	if pinLimit == 0 {
		pinLimit = core.DefaultPinLimit
	}
	newID := cfg.NewID
	if newID == nil {
		newID = generateID
	}
	return &Repository{
		store:    cfg.Store,
		logger:   cfg.Logger,
		now:      now,
		pinLimit: pinLimit,
		newID:    newID,
	}
}

// generateID builds an id unique within the process lifetime and
// collision-resistant across processes. Cryptographic strength is not
// required; a time component plus a random suffix is sufficient.
func generateID(now time.Time) string {
	return fmt.Sprintf("note_%d_%s", now.UnixMilli(), uuid.NewString()[:8])
}

// Store exposes the underlying kv store, for the import pipeline's backup
// discipline.
func (r *Repository) Store() *kv.Store { return r.store }

// GetAllNotes reads the collection, resolving the storage envelope once at
// this boundary and running the collection validator. Corrupted raw bytes
// yield an empty collection, never an error.
func (r *Repository) GetAllNotes() []core.Note {
	raw, present := r.store.GetRaw(NotesKey)
	if core.IsCorruptJSON(raw, present) {
		if r.logger != nil {
			r.logger.Warn("notes storage corrupted, starting from empty collection")
		}
		return []core.Note{}
	}
	if !present {
		return []core.Note{}
	}

	env := resolveEnvelope([]byte(raw))
	return core.ValidateNotesArray(env.items)
}

// saveAll persists the full collection under the current schema version.
func (r *Repository) saveAll(notes []core.Note) bool {
	return kv.Set(r.store, NotesKey, storagePayload{
		Version: core.StorageSchemaVersion,
		Notes:   notes,
	})
}

// GetNoteByID returns the note with the given id, or core.ErrNotFound.
func (r *Repository) GetNoteByID(id string) (core.Note, error) {
	for _, n := range r.GetAllNotes() {
		if n.ID == id {
			return n, nil
		}
	}
	return core.Note{}, core.ErrNotFound
}

func applyPartial(n *core.Note, p core.Partial) {
	if p.Title != nil {
		n.Title = core.Truncate(*p.Title, core.LimitTitle)
	}
	if p.Composer != nil {
		n.Composer = core.Truncate(*p.Composer, core.LimitComposer)
	}
	if p.Lyrics != nil {
		n.Lyrics = core.Truncate(*p.Lyrics, core.LimitLyrics)
	}
	if p.Style != nil {
		n.Style = core.Truncate(*p.Style, core.LimitStyle)
	}
	if p.ExtraInfo != nil {
		n.ExtraInfo = core.Truncate(*p.ExtraInfo, core.LimitExtraInfo)
	}
	if p.Tags != nil {
		n.Tags = core.SanitizeTagList(p.Tags)
	}
	if p.Color != nil {
		n.Color = core.SanitizeColor(*p.Color)
	}
	if p.IsPinned != nil {
		n.IsPinned = *p.IsPinned
	}
}

// CreateNote sanitizes the supplied fields, assigns a fresh id, stamps both
// timestamps and appends to the collection. Returns core.ErrWriteFailed
// when the medium rejected the write; nothing was committed then.
func (r *Repository) CreateNote(p core.Partial) (core.Note, error) {
	now := r.now()

	note := core.DefaultNote()
	applyPartial(&note, p)
	note.ID = r.newID(now)
	note.CreatedAt = now.UnixMilli()
	note.UpdatedAt = note.CreatedAt
	note.Timeline = []core.TimelineEntry{}

	all := append(r.GetAllNotes(), note)
	if !r.saveAll(all) {
		return core.Note{}, core.ErrWriteFailed
	}
	return note, nil
}

// UpdateNote merges sanitized fields onto the stored record, re-stamps
// updatedAt and revalidates the merged result. A failed revalidation
// rejects the update and leaves the stored record untouched.
func (r *Repository) UpdateNote(id string, p core.Partial) (core.Note, error) {
	all := r.GetAllNotes()
	idx := -1
	for i, n := range all {
		if n.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return core.Note{}, core.ErrNotFound
	}

	merged := all[idx]
	applyPartial(&merged, p)

	// updatedAt never regresses below createdAt
	updated := r.now().UnixMilli()
	if updated < merged.CreatedAt {
		updated = merged.CreatedAt
	}
	merged.UpdatedAt = updated
	merged.Timeline = all[idx].Timeline

	validated, ok := core.SanitizeNote(merged)
	if !ok {
		return core.Note{}, core.ErrValidation
	}

	all[idx] = validated
	if !r.saveAll(all) {
		return core.Note{}, core.ErrWriteFailed
	}
	return validated, nil
}

// DeleteNote removes a note by id. Returns core.ErrNotFound when nothing
// was removed.
func (r *Repository) DeleteNote(id string) error {
	all := r.GetAllNotes()
	filtered := make([]core.Note, 0, len(all))
	for _, n := range all {
		if n.ID != id {
			filtered = append(filtered, n)
		}
	}
	if len(filtered) == len(all) {
		return core.ErrNotFound
	}
	if !r.saveAll(filtered) {
		return core.ErrWriteFailed
	}
	return nil
}

// DuplicateNote clones a note under a new identity with fresh timestamps,
// an appended title suffix, pinning forced off and an empty timeline.
func (r *Repository) DuplicateNote(id string) (core.Note, error) {
	original, err := r.GetNoteByID(id)
	if err != nil {
		return core.Note{}, err
	}

	now := r.now()
	dup := original
	dup.ID = r.newID(now)
	if original.Title != "" {
		dup.Title = core.Truncate(original.Title+" (copy)", core.LimitTitle)
	}
	dup.IsPinned = false
	dup.CreatedAt = now.UnixMilli()
	dup.UpdatedAt = dup.CreatedAt
	dup.Timeline = []core.TimelineEntry{}
	dup.Tags = append([]string(nil), original.Tags...)

	all := append(r.GetAllNotes(), dup)
	if !r.saveAll(all) {
		return core.Note{}, core.ErrWriteFailed
	}
	return dup, nil
}

// PinNote toggles a note's pin. Pinning past the limit fails with
// core.ErrPinLimit and leaves the collection unchanged; unpinning always
// succeeds.
func (r *Repository) PinNote(id string) (core.Note, error) {
	all := r.GetAllNotes()

	pinned := 0
	var target *core.Note
	for i := range all {
		if all[i].IsPinned {
			pinned++
		}
		if all[i].ID == id {
			target = &all[i]
		}
	}
	if target == nil {
		return core.Note{}, core.ErrNotFound
	}
	if !target.IsPinned && pinned >= r.pinLimit {
		return core.Note{}, core.ErrPinLimit
	}

	return r.UpdateNote(id, core.Partial{IsPinned: core.BoolPtr(!target.IsPinned)})
}

// PinnedCount returns the number of pinned notes.
func (r *Repository) PinnedCount() int {
	count := 0
	for _, n := range r.GetAllNotes() {
		if n.IsPinned {
			count++
		}
	}
	return count
}

// NoteIDs returns the set of all note ids, for duplicate detection.
func (r *Repository) NoteIDs() map[string]struct{} {
	all := r.GetAllNotes()
	ids := make(map[string]struct{}, len(all))
	for _, n := range all {
		ids[n.ID] = struct{}{}
	}
	return ids
}

// CreateNotesBackup snapshots the notes key before a destructive operation,
// reporting whether a collection existed to snapshot.
func (r *Repository) CreateNotesBackup() (existed, ok bool) {
	return r.store.CreateBackup(NotesKey)
}

// RestoreNotesBackup rolls the notes key back to the last snapshot.
func (r *Repository) RestoreNotesBackup() bool {
	return r.store.RestoreFromBackup(NotesKey)
}
