package driver

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"arrowlint/internal/config"
)

var skipDirs = map[string]struct{}{
	".git": {},
	".hg":  {},
	".svn": {},
}

// CollectFiles expands paths into a sorted, duplicate-free list of files to
// lint. Directories are walked and filtered by lint.extensions and
// lint.exclude; files named explicitly are always kept.
func CollectFiles(paths []string, cfg *config.Config) ([]string, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	seen := make(map[string]struct{})
	var out []string
	keep := func(p string) {
		p = filepath.Clean(p)
		if _, dup := seen[p]; dup {
			return
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}

	var errs []error
	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if !info.IsDir() {
			keep(root)
			continue
		}
		err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if p != root {
				if _, skip := skipDirs[d.Name()]; skip && d.IsDir() {
					return filepath.SkipDir
				}
				if cfg.Excluded(relTo(cfg.Root, p), d.IsDir()) {
					if d.IsDir() {
						return filepath.SkipDir
					}
					return nil
				}
			}
			if d.IsDir() || !d.Type().IsRegular() {
				return nil
			}
			if cfg.HasExtension(p) {
				keep(p)
			}
			return nil
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("walk %s: %w", root, err))
		}
	}
	slices.Sort(out)
	return out, errors.Join(errs...)
}

// relTo returns p relative to root with forward slashes, as exclude
// patterns expect.
func relTo(root, p string) string {
	if root == "" {
		return filepath.ToSlash(p)
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return filepath.ToSlash(p)
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return filepath.ToSlash(p)
	}
	return filepath.ToSlash(rel)
}
