package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Vintermom/my-music-notes/pkg/kv"
)

var watchPattern string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the store for external changes",
	Long: `Watch prints a line for every key an external writer touches. There is no
cross-process locking (the last writer wins), so this is how a second
consumer learns it should re-read.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp()
		if err != nil {
			fatal("Failed to open store", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		events, err := app.Watch(ctx, watchPattern)
		if err != nil {
			fatal("Failed to start watching", err)
		}

		for event := range events {
			fmt.Println(event)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchPattern, "pattern", kv.DefaultPrefix+"*", "Key pattern to watch")
}
