package notes_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vintermom/my-music-notes/pkg/core"
	"github.com/Vintermom/my-music-notes/pkg/notes"
)

func TestExportFilename(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		title string
		want  string
	}{
		{"Plain Title", "My Song", "My_Song_2026-03-14.json"},
		{"Unicode Preserved", "Café Ängel", "Café_Ängel_2026-03-14.json"},
		{"Invalid Chars Stripped", `a/b\c:d?e*f"g`, "abcdefg_2026-03-14.json"},
		{"Whitespace Runs Collapse", "a   b\t\tc", "a_b_c_2026-03-14.json"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			n := core.Note{ID: "note_12345678_abc", Title: c.title}
			assert.Equal(t, c.want, notes.ExportFilename(n, now))
		})
	}

	t.Run("Empty Title Falls Back To ID", func(t *testing.T) {
		n := core.Note{ID: "note_12345678_abc", Title: "   "}
		assert.Equal(t, "note_2026-03-14_note_123.json", notes.ExportFilename(n, now))
	})

	t.Run("Title Of Only Invalid Chars Falls Back", func(t *testing.T) {
		n := core.Note{ID: "note_12345678_abc", Title: `???///`}
		assert.Equal(t, "note_2026-03-14_note_123.json", notes.ExportFilename(n, now))
	})

	t.Run("Long Title Is Capped", func(t *testing.T) {
		n := core.Note{ID: "x", Title: strings.Repeat("t", 300)}
		got := notes.ExportFilename(n, now)
		assert.Len(t, got, core.ExportFilenameMaxRunes+len("_2026-03-14.json"))
	})
}

func TestExportNoteAsJSON(t *testing.T) {
	f := newFixture(t)
	created, err := f.repo.CreateNote(core.Partial{
		Title:    core.StringPtr("Exported"),
		Composer: core.StringPtr("C"),
	})
	require.NoError(t, err)

	data, err := f.repo.ExportNoteAsJSON(created)
	require.NoError(t, err)

	var exported notes.ExportedNote
	require.NoError(t, json.Unmarshal(data, &exported))

	assert.Equal(t, core.StorageSchemaVersion, exported.StorageVersion)
	assert.Equal(t, created, exported.Note)

	_, err = time.Parse(time.RFC3339, exported.ExportedAt)
	assert.NoError(t, err, "exportedAt must be ISO-8601")
}

func TestExportNoteToFile(t *testing.T) {
	f := newFixture(t)
	created, err := f.repo.CreateNote(core.Partial{Title: core.StringPtr("On Disk")})
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "exports")
	path, err := f.repo.ExportNoteToFile(created, dir)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var exported notes.ExportedNote
	require.NoError(t, json.Unmarshal(data, &exported))
	assert.Equal(t, created.ID, exported.Note.ID)
}
