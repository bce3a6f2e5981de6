package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var duplicateCmd = &cobra.Command{
	Use:   "duplicate [id]",
	Short: "Duplicate a note",
	Long:  `Duplicate clones a note under a new identity with fresh timestamps. The copy is never pinned.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp()
		if err != nil {
			fatal("Failed to open store", err)
		}

		dup, err := app.Notes.DuplicateNote(args[0])
		if err != nil {
			fatal("Failed to duplicate note", err)
		}

		fmt.Printf("Note duplicated: %s -> %s\n", args[0], dup.ID)
	},
}

func init() {
	rootCmd.AddCommand(duplicateCmd)
}
