package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Vintermom/my-music-notes/pkg/core"
)

var (
	createTitle     string
	createComposer  string
	createLyrics    string
	createStyle     string
	createExtraInfo string
	createTags      []string
	createColor     string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a note",
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp()
		if err != nil {
			fatal("Failed to open store", err)
		}

		p := core.Partial{Tags: createTags}
		if cmd.Flags().Changed("title") {
			p.Title = core.StringPtr(createTitle)
		}
		if cmd.Flags().Changed("composer") {
			p.Composer = core.StringPtr(createComposer)
		}
		if cmd.Flags().Changed("lyrics") {
			p.Lyrics = core.StringPtr(createLyrics)
		}
		if cmd.Flags().Changed("style") {
			p.Style = core.StringPtr(createStyle)
		}
		if cmd.Flags().Changed("info") {
			p.ExtraInfo = core.StringPtr(createExtraInfo)
		}
		if cmd.Flags().Changed("color") {
			p.Color = core.ColorPtr(core.NoteColor(createColor))
		}

		note, err := app.Notes.CreateNote(p)
		if err != nil {
			fatal("Failed to create note", err)
		}

		fmt.Printf("Note created: %s\n", note.ID)
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().StringVar(&createTitle, "title", "", "Note title")
	createCmd.Flags().StringVar(&createComposer, "composer", "", "Composer")
	createCmd.Flags().StringVar(&createLyrics, "lyrics", "", "Lyrics")
	createCmd.Flags().StringVar(&createStyle, "style", "", "Style description")
	createCmd.Flags().StringVar(&createExtraInfo, "info", "", "Extra info")
	createCmd.Flags().StringSliceVar(&createTags, "tag", nil, "Tags (repeatable)")
	createCmd.Flags().StringVar(&createColor, "color", "", "Card color")
}
