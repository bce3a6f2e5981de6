package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Vintermom/my-music-notes/pkg/core"
)

var (
	editTitle     string
	editComposer  string
	editLyrics    string
	editStyle     string
	editExtraInfo string
	editTags      []string
	editColor     string
)

var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Update a note",
	Long:  `Update the given fields of a note. Unspecified fields are left untouched.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp()
		if err != nil {
			fatal("Failed to open store", err)
		}

		var p core.Partial
		if cmd.Flags().Changed("title") {
			p.Title = core.StringPtr(editTitle)
		}
		if cmd.Flags().Changed("composer") {
			p.Composer = core.StringPtr(editComposer)
		}
		if cmd.Flags().Changed("lyrics") {
			p.Lyrics = core.StringPtr(editLyrics)
		}
		if cmd.Flags().Changed("style") {
			p.Style = core.StringPtr(editStyle)
		}
		if cmd.Flags().Changed("info") {
			p.ExtraInfo = core.StringPtr(editExtraInfo)
		}
		if cmd.Flags().Changed("tag") {
			p.Tags = editTags
		}
		if cmd.Flags().Changed("color") {
			p.Color = core.ColorPtr(core.NoteColor(editColor))
		}

		note, err := app.Notes.UpdateNote(args[0], p)
		if err != nil {
			fatal("Failed to update note", err)
		}

		fmt.Printf("Note updated: %s\n", note.ID)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVar(&editTitle, "title", "", "Note title")
	editCmd.Flags().StringVar(&editComposer, "composer", "", "Composer")
	editCmd.Flags().StringVar(&editLyrics, "lyrics", "", "Lyrics")
	editCmd.Flags().StringVar(&editStyle, "style", "", "Style description")
	editCmd.Flags().StringVar(&editExtraInfo, "info", "", "Extra info")
	editCmd.Flags().StringSliceVar(&editTags, "tag", nil, "Tags (repeatable, replaces all)")
	editCmd.Flags().StringVar(&editColor, "color", "", "Card color")
}
