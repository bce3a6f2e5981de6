package notes

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/Vintermom/my-music-notes/pkg/core"
)

// ExportedNote is the single-note export file shape.
type ExportedNote struct {
	StorageVersion int       `json:"storageVersion"`
	ExportedAt     string    `json:"exportedAt"`
	Note           core.Note `json:"note"`
}

// ExportNoteAsJSON serializes a note wrapped with the schema version and an
// ISO-8601 export timestamp.
func (r *Repository) ExportNoteAsJSON(n core.Note) ([]byte, error) {
	return json.MarshalIndent(ExportedNote{
		StorageVersion: core.StorageSchemaVersion,
		ExportedAt:     r.now().UTC().Format(time.RFC3339),
		Note:           n,
	}, "", "  ")
}

var (
	invalidFilenameChars = regexp.MustCompile(`[/\\?%*:|"<>]`)
	whitespaceRuns       = regexp.MustCompile(`\s+`)
)

// ExportFilename derives a filesystem-safe name from the note title,
// preserving Unicode. Spaces collapse to underscores and invalid characters
// are stripped; a title that sanitizes to nothing falls back to an id-based
// name.
func ExportFilename(n core.Note, now time.Time) string {
	dateStr := now.UTC().Format("2006-01-02")

	title := strings.TrimSpace(n.Title)
	if title != "" {
		safe := whitespaceRuns.ReplaceAllString(title, "_")
		safe = invalidFilenameChars.ReplaceAllString(safe, "")
		safe = core.Truncate(safe, core.ExportFilenameMaxRunes)
		if safe != "" {
			return fmt.Sprintf("%s_%s.json", safe, dateStr)
		}
	}

	shortID := n.ID
	if len(shortID) > 8 {
		shortID = shortID[:8]
	}
	return fmt.Sprintf("note_%s_%s.json", dateStr, shortID)
}

// ExportNoteToFile writes the export JSON into dir and returns the full
// path. This is the download analog; the file is independent of the store
// medium.
func (r *Repository) ExportNoteToFile(n core.Note, dir string) (string, error) {
	data, err := r.ExportNoteAsJSON(n)
	if err != nil {
		return "", fmt.Errorf("failed to serialize note: %w", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(dir, ExportFilename(n, r.now()))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}
	return path, nil
}
