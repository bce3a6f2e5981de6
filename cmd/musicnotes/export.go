package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportDir string

var exportCmd = &cobra.Command{
	Use:   "export [id]",
	Short: "Export a note as JSON",
	Long:  `Export writes a note to a standalone JSON file that can be re-imported later.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp()
		if err != nil {
			fatal("Failed to open store", err)
		}

		note, err := app.Notes.GetNoteByID(args[0])
		if err != nil {
			fatal("Failed to read note", err)
		}

		dir := exportDir
		if dir == "" {
			dir = resolveExportDir()
		}

		path, err := app.Notes.ExportNoteToFile(note, dir)
		if err != nil {
			fatal("Failed to export note", err)
		}

		fmt.Printf("Note exported: %s\n", path)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportDir, "out", "o", "", "Output directory (defaults to config file or CWD)")
}
