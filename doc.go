// Package musicnotes is the composition root for the my-music-notes
// persistence core.
//
// It connects the domain layer (note model, validation, sanitization) with
// the infrastructure adapters (key-value store over a storage medium) and
// the import pipeline.
//
// Philosophy:
//
// The app is local-first: a single synchronous consumer over an unreliable,
// quota-limited, string-only storage medium. The core degrades instead of
// crashing (a missing or corrupted value reads as its default, a rejected
// write reports a soft failure), because losing persistence must never take
// the user's open notes down with it.
//
// Features:
//
//   - **Soft-failure kv store**: safe get/set/remove over any Medium, with
//     a per-process availability probe and byte-level corruption detection.
//   - **Schema-versioned envelopes**: every persisted collection carries a
//     version tag; the legacy bare-array shape stays read-compatible.
//   - **Sanitizing validation**: internal data is clamped, never rejected;
//     import data is narrowed, never trusted.
//   - **Backup/rollback imports**: the only multi-step writer snapshots the
//     collection first and restores it on any failure.
//   - **Default adapter (file)**: one file per key with atomic writes; any
//     kv.Medium can be injected instead.
//
// Usage:
//
//	app, err := musicnotes.New("~/.musicnotes",
//		musicnotes.WithLogger(logger),
//	)
//
//	note, err := app.Notes.CreateNote(core.Partial{
//		Title: core.StringPtr("Midnight Waltz"),
//	})
package musicnotes
