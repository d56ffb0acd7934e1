// Package config loads .arrowlint.toml and applies environment overrides.
package config

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bmatcuk/doublestar"

	"arrowlint/internal/diag"
)

// Config is the whole .arrowlint.toml file.
type Config struct {
	Lint  LintConfig  `toml:"lint"`
	Fix   FixConfig   `toml:"fix"`
	Cache CacheConfig `toml:"cache"`
	Run   RunConfig   `toml:"run"`

	// Path is the file the config was read from, empty for defaults.
	Path string `toml:"-"`
	// Root anchors relative exclude patterns.
	Root string `toml:"-"`
}

type LintConfig struct {
	Severity       string   `toml:"severity"`
	TabWidth       int      `toml:"tab_width"`
	Extensions     []string `toml:"extensions"`
	Exclude        []string `toml:"exclude"`
	MaxDiagnostics int      `toml:"max_diagnostics"`
	DisabledRules  []string `toml:"disabled_rules"`
}

type FixConfig struct {
	MaxPasses int `toml:"max_passes"`
}

type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
	Entries int    `toml:"entries"`
}

type RunConfig struct {
	Jobs int `toml:"jobs"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Lint: LintConfig{
			Severity:       "error",
			TabWidth:       4,
			Extensions:     []string{"php", "inc"},
			Exclude:        []string{"vendor/**"},
			MaxDiagnostics: 100,
		},
		Fix:   FixConfig{MaxPasses: 50},
		Cache: CacheConfig{Enabled: true, Entries: 1024},
	}
}

// Validate checks value ranges and exclude patterns.
func (c *Config) Validate() error {
	var errs []error
	if _, err := diag.ParseSeverity(c.Lint.Severity); err != nil {
		errs = append(errs, fmt.Errorf("lint.severity: %w", err))
	}
	if c.Lint.TabWidth < 0 {
		errs = append(errs, fmt.Errorf("lint.tab_width: must be >= 0, got %d", c.Lint.TabWidth))
	}
	if c.Lint.MaxDiagnostics < 0 {
		errs = append(errs, fmt.Errorf("lint.max_diagnostics: must be >= 0, got %d", c.Lint.MaxDiagnostics))
	}
	for _, p := range c.Lint.Exclude {
		if _, err := doublestar.Match(p, "a/b"); err != nil {
			errs = append(errs, fmt.Errorf("lint.exclude %q: %w", p, err))
		}
	}
	if c.Fix.MaxPasses < 1 {
		errs = append(errs, fmt.Errorf("fix.max_passes: must be >= 1, got %d", c.Fix.MaxPasses))
	}
	if c.Cache.Entries < 1 {
		errs = append(errs, fmt.Errorf("cache.entries: must be >= 1, got %d", c.Cache.Entries))
	}
	if c.Run.Jobs < 0 {
		errs = append(errs, fmt.Errorf("run.jobs: must be >= 0, got %d", c.Run.Jobs))
	}
	return errors.Join(errs...)
}

// SeverityLevel is the parsed lint.severity, error when it does not parse.
func (c *Config) SeverityLevel() diag.Severity {
	sev, err := diag.ParseSeverity(c.Lint.Severity)
	if err != nil {
		return diag.SevError
	}
	return sev
}

// HasExtension reports whether path has one of the linted extensions.
func (c *Config) HasExtension(path string) bool {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return false
	}
	for _, want := range c.Lint.Extensions {
		if strings.EqualFold(strings.TrimPrefix(want, "."), ext) {
			return true
		}
	}
	return false
}

// Excluded reports whether rel, a slash separated path relative to Root,
// matches an exclude pattern. Directories are also tried with a trailing
// slash so "vendor/**" prunes "vendor" itself.
func (c *Config) Excluded(rel string, dir bool) bool {
	rel = filepath.ToSlash(rel)
	for _, p := range c.Lint.Exclude {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
		if dir {
			if ok, _ := doublestar.Match(p, rel+"/"); ok {
				return true
			}
		}
	}
	return false
}

// RuleDisabled reports whether the sniff code is listed in disabled_rules.
func (c *Config) RuleDisabled(code string) bool {
	return slices.Contains(c.Lint.DisabledRules, code)
}

// Fingerprint identifies the settings that change lint results. Cached
// results are only valid for the same fingerprint.
func (c *Config) Fingerprint() string {
	key := struct {
		Severity       string   `toml:"severity"`
		TabWidth       int      `toml:"tab_width"`
		MaxDiagnostics int      `toml:"max_diagnostics"`
		DisabledRules  []string `toml:"disabled_rules"`
	}{
		Severity:       c.Lint.Severity,
		TabWidth:       c.Lint.TabWidth,
		MaxDiagnostics: c.Lint.MaxDiagnostics,
		DisabledRules:  slices.Sorted(slices.Values(c.Lint.DisabledRules)),
	}
	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(key); err != nil {
		return ""
	}
	sum := sha256.Sum256([]byte(sb.String()))
	return hex.EncodeToString(sum[:8])
}
