package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Vintermom/my-music-notes/pkg/core"
)

var pinCmd = &cobra.Command{
	Use:   "pin [id]",
	Short: "Toggle a note's pin",
	Long:  `Pin toggles whether a note is pinned. At most 6 notes may be pinned at a time.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp()
		if err != nil {
			fatal("Failed to open store", err)
		}

		note, err := app.Notes.PinNote(args[0])
		if errors.Is(err, core.ErrPinLimit) {
			fmt.Fprintf(os.Stderr, "Pin limit reached: unpin another note first (%d pinned)\n", app.Notes.PinnedCount())
			os.Exit(1)
		}
		if err != nil {
			fatal("Failed to pin note", err)
		}

		if note.IsPinned {
			fmt.Printf("Note pinned: %s\n", note.ID)
		} else {
			fmt.Printf("Note unpinned: %s\n", note.ID)
		}
	},
}

func init() {
	rootCmd.AddCommand(pinCmd)
}
