package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const header = `# arrowlint configuration.
#
# lint.severity     error or warning for misaligned arrows
# lint.tab_width    tab stop used for columns; 0 counts a tab as one column
# lint.exclude      doublestar patterns relative to this file
# fix.max_passes    upper bound for fixer passes over one file
# cache.dir         empty means the user cache directory
# run.jobs          parallel files; 0 uses GOMAXPROCS

`

// Render encodes cfg as a commented TOML document.
func Render(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(header)
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteDefault writes the default config into dir and returns its path.
// An existing file is only replaced with force.
func WriteDefault(dir string, force bool) (string, error) {
	path := filepath.Join(dir, FileNames[0])
	if !force {
		if _, err := os.Stat(path); err == nil {
			return path, fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return path, fmt.Errorf("failed to stat %q: %w", path, err)
		}
	}
	data, err := Render(Default())
	if err != nil {
		return path, err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return path, fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
