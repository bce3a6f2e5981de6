package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Vintermom/my-music-notes/pkg/core"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import notes from a JSON file",
	Long: `Import reads a .json file containing a bundle ({"notes": [...]}), a single
wrapped note ({"note": {...}}) or a bare note object, and creates new notes
from it. Imported notes always get fresh ids and timestamps. The free tier
allows 2 imports per day; the store is snapshotted before writing and
restored if anything fails.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp()
		if err != nil {
			fatal("Failed to open store", err)
		}

		result, err := app.Importer.ImportFile(args[0])
		switch {
		case errors.Is(err, core.ErrImportLimit):
			fmt.Fprintln(os.Stderr, "Daily import limit reached, try again tomorrow")
			os.Exit(1)
		case errors.Is(err, core.ErrInvalidFile):
			fmt.Fprintf(os.Stderr, "Rejected file: %v\n", err)
			os.Exit(1)
		case err != nil:
			fatal("Import failed", err)
		}

		if result.Skipped > 0 {
			fmt.Printf("Imported %d of %d notes (%d skipped: daily limit)\n",
				len(result.Imported), result.Total, result.Skipped)
		} else {
			fmt.Printf("Imported %d notes\n", len(result.Imported))
		}
		for _, n := range result.Imported {
			fmt.Printf("  %s\n", n.ID)
		}
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
