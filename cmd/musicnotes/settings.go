package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Vintermom/my-music-notes/pkg/core"
	"github.com/Vintermom/my-music-notes/pkg/notes"
)

var (
	settingsTheme string
	settingsSort  string
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change settings",
	Long:  `Without flags, settings prints the current record. With flags, it updates the given fields.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp()
		if err != nil {
			fatal("Failed to open store", err)
		}

		if !cmd.Flags().Changed("theme") && !cmd.Flags().Changed("sort") {
			s := app.Settings.GetSettings()
			fmt.Printf("theme: %s\ndefaultSort: %s\n", s.Theme, s.DefaultSort)
			return
		}

		var patch notes.SettingsPatch
		if cmd.Flags().Changed("theme") {
			t := core.ThemeOption(settingsTheme)
			patch.Theme = &t
		}
		if cmd.Flags().Changed("sort") {
			s := core.SortOption(settingsSort)
			patch.DefaultSort = &s
		}

		updated := app.Settings.UpdateSettings(patch)
		fmt.Printf("theme: %s\ndefaultSort: %s\n", updated.Theme, updated.DefaultSort)
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.Flags().StringVar(&settingsTheme, "theme", "", "Theme (system, theme-n, theme-a, theme-c, theme-d)")
	settingsCmd.Flags().StringVar(&settingsSort, "sort", "", "Default sort (updatedDesc, createdDesc, titleAsc)")
}
