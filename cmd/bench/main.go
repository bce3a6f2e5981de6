package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	musicnotes "github.com/Vintermom/my-music-notes"
	"github.com/Vintermom/my-music-notes/pkg/core"
	"github.com/Vintermom/my-music-notes/pkg/notes"
)

// Measures the whole-collection read/write model: every create rewrites the
// full notes value, so cost grows with collection size. This tool shows
// where that model starts to hurt.
func main() {
	count := flag.Int("count", 1000, "Number of notes to generate")
	keep := flag.Bool("keep", false, "Keep the benchmark store after running")
	flag.Parse()

	benchDir, err := os.MkdirTemp("", "musicnotes_bench_")
	if err != nil {
		panic(err)
	}
	defer func() {
		if !*keep {
			os.RemoveAll(benchDir)
		} else {
			fmt.Printf("Keeping bench dir: %s\n", benchDir)
		}
	}()

	app, err := musicnotes.New(benchDir)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Generating %d notes in %s...\n", *count, benchDir)
	startGen := time.Now()
	var lastID string
	for i := 0; i < *count; i++ {
		n, err := app.Notes.CreateNote(core.Partial{
			Title:    core.StringPtr(fmt.Sprintf("Benchmark Note %d", i)),
			Composer: core.StringPtr("bench"),
			Tags:     []string{"benchmark"},
		})
		if err != nil {
			panic(err)
		}
		lastID = n.ID
	}
	genDuration := time.Since(startGen)
	fmt.Printf("Generation took: %v (%v per create)\n", genDuration, genDuration/time.Duration(*count))

	// Full read: parse + validate + dedup the whole collection.
	fmt.Println("Running GetAllNotes (Run 1 - Cold)...")
	startList := time.Now()
	all := app.Notes.GetAllNotes()
	duration := time.Since(startList)
	fmt.Printf("Run 1 Result: %v (Items: %d)\n", duration, len(all))

	// Re-instantiate to simulate a new CLI command run against the same
	// store directory.
	app2, err := musicnotes.New(benchDir)
	if err != nil {
		panic(err)
	}
	fmt.Println("Running GetAllNotes (Run 2 - Fresh Instance)...")
	startList2 := time.Now()
	all2 := app2.Notes.GetAllNotes()
	duration2 := time.Since(startList2)
	fmt.Printf("Run 2 Result: %v (Items: %d)\n", duration2, len(all2))

	// Point lookup still pays for a full collection read.
	startGet := time.Now()
	if _, err := app2.Notes.GetNoteByID(lastID); err != nil {
		panic(err)
	}
	getDuration := time.Since(startGet)

	// Search and sort over the full collection.
	startQuery := time.Now()
	matched := notes.SearchNotes(notes.SortNotes(all2, core.SortTitleAsc), "benchmark note 9")
	queryDuration := time.Since(startQuery)

	fmt.Printf("--------------------------------------------------\n")
	fmt.Printf("Benchmark Result (%d notes):\n", *count)
	fmt.Printf("  Create (total): %v\n", genDuration)
	fmt.Printf("  Read all:       %v\n", duration)
	fmt.Printf("  Read all again: %v\n", duration2)
	fmt.Printf("  Get by id:      %v\n", getDuration)
	fmt.Printf("  Sort + search:  %v (matched %d)\n", queryDuration, len(matched))
	fmt.Printf("--------------------------------------------------\n")
}
