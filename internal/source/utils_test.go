package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRelativePathOutsideBaseFallsBackToAbsolute(t *testing.T) {
	tmp := t.TempDir()
	baseDir := filepath.Join(tmp, "base")
	otherDir := filepath.Join(tmp, "other")
	for _, d := range []string{baseDir, otherDir} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", d, err)
		}
	}

	target := filepath.Join(otherDir, "file.php")
	got, err := RelativePath(target, baseDir)
	if err != nil {
		t.Fatalf("RelativePath returned error: %v", err)
	}
	if want := normalizePath(target); got != want {
		t.Fatalf("expected absolute fallback %q, got %q", want, got)
	}
}

func TestRelativePathInsideBaseStaysRelative(t *testing.T) {
	baseDir := t.TempDir()
	target := filepath.Join(baseDir, "nested", "file.php")

	got, err := RelativePath(target, baseDir)
	if err != nil {
		t.Fatalf("RelativePath returned error: %v", err)
	}
	if want := "nested/file.php"; got != want {
		t.Fatalf("expected relative path %q, got %q", want, got)
	}
}

func TestFormatPathModes(t *testing.T) {
	f := &File{Path: "src/app/Config.php"}
	if got := f.FormatPath("basename", ""); got != "Config.php" {
		t.Errorf("basename = %q", got)
	}
	if got := f.FormatPath("auto", ""); got != f.Path {
		t.Errorf("auto = %q", got)
	}
	if got := f.FormatPath("", ""); got != f.Path {
		t.Errorf("default = %q", got)
	}
	abs := f.FormatPath("absolute", "")
	if !filepath.IsAbs(filepath.FromSlash(abs)) {
		t.Errorf("absolute = %q", abs)
	}
}
