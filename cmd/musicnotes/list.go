package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Vintermom/my-music-notes/pkg/core"
	"github.com/Vintermom/my-music-notes/pkg/notes"
)

var (
	listJSON  bool
	listSort  string
	listQuery string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp()
		if err != nil {
			fatal("Failed to open store", err)
		}

		all := app.Notes.GetAllNotes()
		all = notes.SearchNotes(all, listQuery)

		sortOption := app.Settings.GetSettings().DefaultSort
		if listSort != "" {
			sortOption = core.SortOption(listSort)
		}
		all = notes.SortNotes(all, sortOption)

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(all); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		for _, n := range all {
			pin := " "
			if n.IsPinned {
				pin = "*"
			}
			title := n.Title
			if title == "" {
				title = "(untitled)"
			}
			fmt.Printf("%s %s  %s\n", pin, n.ID, title)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&listSort, "sort", "", "Sort order (updatedDesc, createdDesc, titleAsc)")
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "Filter notes by substring match")
}
