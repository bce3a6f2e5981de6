package musicnotes_test

import (
	"fmt"
	"log"
	"os"

	musicnotes "github.com/Vintermom/my-music-notes"
	"github.com/Vintermom/my-music-notes/pkg/adapters/memory"
	"github.com/Vintermom/my-music-notes/pkg/core"
	"github.com/Vintermom/my-music-notes/pkg/notes"
)

// Example_basic demonstrates creating the app over a store directory,
// saving a note and reading it back.
func Example_basic() {
	tmpDir, err := os.MkdirTemp("", "musicnotes-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	app, err := musicnotes.New(tmpDir)
	if err != nil {
		log.Fatal(err)
	}

	note, err := app.Notes.CreateNote(core.Partial{
		Title:    core.StringPtr("Midnight Waltz"),
		Composer: core.StringPtr("A. Gopher"),
		Tags:     []string{"waltz", "draft"},
	})
	if err != nil {
		log.Fatal(err)
	}

	found, err := app.Notes.GetNoteByID(note.ID)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Found note: %s by %s\n", found.Title, found.Composer)
	// Output:
	// Found note: Midnight Waltz by A. Gopher
}

// Example_sorting demonstrates the in-memory medium and the query helpers,
// useful for tests and ephemeral sessions.
func Example_sorting() {
	app, err := musicnotes.New("", musicnotes.WithMedium(memory.New()))
	if err != nil {
		log.Fatal(err)
	}

	for _, title := range []string{"Cadenza", "aria", "Bolero"} {
		if _, err := app.Notes.CreateNote(core.Partial{Title: core.StringPtr(title)}); err != nil {
			log.Fatal(err)
		}
	}

	sorted := notes.SortNotes(app.Notes.GetAllNotes(), core.SortTitleAsc)
	for _, n := range sorted {
		fmt.Println(n.Title)
	}
	// Output:
	// aria
	// Bolero
	// Cadenza
}
