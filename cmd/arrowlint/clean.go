package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"arrowlint/internal/cache"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Drop the result cache",
	Args:  cobra.NoArgs,
	RunE:  runClean,
}

func runClean(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}
	dir, err := cacheDir(cfg)
	if err != nil {
		return fmt.Errorf("failed to locate cache: %w", err)
	}
	store, err := cache.Open(cache.Options{Entries: 1, Disk: true, Dir: dir})
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	if err := store.Clear(); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	if !quiet(cmd) {
		fmt.Fprintf(cmd.OutOrStdout(), "cleared %s\n", store.Dir())
	}
	return nil
}
