package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"arrowlint/internal/cache"
	"arrowlint/internal/config"
)

// loadConfig resolves the configuration for a command: config file (from
// --config or discovered from the first path), then environment, then
// command flags.
func loadConfig(cmd *cobra.Command, paths []string) (*config.Config, error) {
	explicit, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	start := "."
	if len(paths) > 0 && paths[0] != stdinPath {
		start = paths[0]
	}

	cfg, err := config.Load(explicit, start)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	if err := applyFlagOverrides(cmd, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) error {
	root := cmd.Root().PersistentFlags()
	if root.Changed("max-diagnostics") {
		n, err := root.GetInt("max-diagnostics")
		if err != nil {
			return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
		}
		cfg.Lint.MaxDiagnostics = n
	}
	if noCache, err := root.GetBool("no-cache"); err == nil && noCache {
		cfg.Cache.Enabled = false
	}

	flags := cmd.Flags()
	if flags.Lookup("severity") != nil && flags.Changed("severity") {
		v, err := flags.GetString("severity")
		if err != nil {
			return fmt.Errorf("failed to get severity flag: %w", err)
		}
		cfg.Lint.Severity = v
	}
	if flags.Lookup("tab-width") != nil && flags.Changed("tab-width") {
		v, err := flags.GetInt("tab-width")
		if err != nil {
			return fmt.Errorf("failed to get tab-width flag: %w", err)
		}
		cfg.Lint.TabWidth = v
	}
	if flags.Lookup("jobs") != nil && flags.Changed("jobs") {
		v, err := flags.GetInt("jobs")
		if err != nil {
			return fmt.Errorf("failed to get jobs flag: %w", err)
		}
		cfg.Run.Jobs = v
	}
	return nil
}

// openCache opens the result cache, or returns nil when caching is off.
// A disk cache that cannot be opened degrades to memory only.
func openCache(cmd *cobra.Command, cfg *config.Config) *cache.Store {
	if !cfg.Cache.Enabled {
		return nil
	}
	opts := cache.Options{Entries: cfg.Cache.Entries, Disk: true, Dir: cfg.Cache.Dir}
	store, err := cache.Open(opts)
	if err == nil {
		return store
	}
	if !quiet(cmd) {
		fmt.Fprintf(cmd.ErrOrStderr(), "arrowlint: disk cache disabled: %v\n", err)
	}
	opts.Disk = false
	store, err = cache.Open(opts)
	if err != nil {
		return nil
	}
	return store
}

func cacheDir(cfg *config.Config) (string, error) {
	if cfg.Cache.Dir != "" {
		return filepath.Clean(cfg.Cache.Dir), nil
	}
	return cache.DefaultDir()
}

func quiet(cmd *cobra.Command) bool {
	q, err := cmd.Root().PersistentFlags().GetBool("quiet")
	return err == nil && q
}

func useColor(cmd *cobra.Command, f *os.File) (bool, error) {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}
	switch colorFlag {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto", "":
		return isTerminal(f), nil
	default:
		return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", colorFlag)
	}
}
