package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	musicnotes "github.com/Vintermom/my-music-notes"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of musicnotes",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("musicnotes version %s\n", strings.TrimSpace(musicnotes.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
