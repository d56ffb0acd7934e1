package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"arrowlint/internal/diag"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.SeverityLevel() != diag.SevError {
		t.Errorf("default severity = %v", cfg.SeverityLevel())
	}
}

func TestLoadPartialFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".arrowlint.toml")
	writeFile(t, path, "[lint]\nseverity = \"warning\"\n\n[fix]\nmax_passes = 7\n")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SeverityLevel() != diag.SevWarning || cfg.Fix.MaxPasses != 7 {
		t.Errorf("decoded values lost: %+v", cfg)
	}
	if cfg.Lint.TabWidth != 4 || !cfg.Cache.Enabled || len(cfg.Lint.Extensions) != 2 {
		t.Errorf("defaults not kept: %+v", cfg)
	}
	if cfg.Root != dir {
		t.Errorf("root = %q, want %q", cfg.Root, dir)
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		name    string
		content string
		want    string
	}{
		{"syntax", "[lint\n", "failed to parse TOML"},
		{"unknown key", "[lint]\ncolour = true\n", "unknown keys: lint.colour"},
		{"bad severity", "[lint]\nseverity = \"fatal\"\n", "lint.severity"},
		{"bad passes", "[fix]\nmax_passes = 0\n", "fix.max_passes"},
		{"bad pattern", "[lint]\nexclude = [\"[\"]\n", "lint.exclude"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "_")+".toml")
			writeFile(t, path, tc.content)
			_, err := LoadFile(path)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("err = %v, want %q", err, tc.want)
			}
		})
	}

	_, err := LoadFile(filepath.Join(dir, "missing.toml"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("missing file: %v", err)
	}
}

func TestDiscoveryWalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "arrowlint.toml"), "[lint]\ntab_width = 2\n")
	deep := filepath.Join(root, "src", "app", "models")
	if err := os.MkdirAll(deep, 0o755); err != nil {
		t.Fatal(err)
	}

	path, ok, err := Find(deep)
	if err != nil || !ok || path != filepath.Join(root, "arrowlint.toml") {
		t.Fatalf("Find = %q %v %v", path, ok, err)
	}
	cfg, err := Load("", deep)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Lint.TabWidth != 2 || cfg.Root != root {
		t.Errorf("tab width %d root %q", cfg.Lint.TabWidth, cfg.Root)
	}

	// the dotted name wins inside one directory
	writeFile(t, filepath.Join(root, ".arrowlint.toml"), "[lint]\ntab_width = 8\n")
	cfg, err = Load("", deep)
	if err != nil || cfg.Lint.TabWidth != 8 {
		t.Fatalf("tab width %d err %v", cfg.Lint.TabWidth, err)
	}
}

func TestLoadWithoutFile(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load("", dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Path != "" || cfg.Root != dir {
		t.Errorf("path %q root %q", cfg.Path, cfg.Root)
	}
	if _, err := Load(filepath.Join(dir, "nope.toml"), dir); !errors.Is(err, ErrNotFound) {
		t.Errorf("explicit missing config: %v", err)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvSeverity: "Warning",
		EnvTabWidth: "8",
		EnvCacheDir: "/tmp/al",
		EnvJobs:     "3",
		EnvNoCache:  "true",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
	cfg := Default()
	if err := cfg.ApplyEnv(lookup); err != nil {
		t.Fatal(err)
	}
	if cfg.SeverityLevel() != diag.SevWarning || cfg.Lint.TabWidth != 8 ||
		cfg.Cache.Dir != "/tmp/al" || cfg.Run.Jobs != 3 || cfg.Cache.Enabled {
		t.Errorf("env not applied: %+v", cfg)
	}

	env = map[string]string{EnvTabWidth: "wide"}
	if err := Default().ApplyEnv(lookup); err == nil {
		t.Error("bad tab width accepted")
	}
	env = map[string]string{EnvJobs: "-1"}
	if err := Default().ApplyEnv(lookup); err == nil {
		t.Error("negative jobs accepted")
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	writeFile(t, path, EnvJobs+"=5\n")
	t.Setenv(EnvJobs, "")
	os.Unsetenv(EnvJobs)

	LoadDotEnv(path)
	cfg := Default()
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		t.Fatal(err)
	}
	if cfg.Run.Jobs != 5 {
		t.Errorf("jobs = %d, want 5", cfg.Run.Jobs)
	}
}

func TestMatchers(t *testing.T) {
	cfg := Default()
	cfg.Lint.Exclude = []string{"vendor/**", "**/*.tpl.php"}

	excluded := []struct {
		rel  string
		dir  bool
		want bool
	}{
		{"vendor", true, true},
		{"vendor/pkg/a.php", false, true},
		{"src/vendor.php", false, false},
		{"src/views/home.tpl.php", false, true},
		{"src", true, false},
	}
	for _, tc := range excluded {
		if got := cfg.Excluded(tc.rel, tc.dir); got != tc.want {
			t.Errorf("Excluded(%q, %v) = %v", tc.rel, tc.dir, got)
		}
	}

	for path, want := range map[string]bool{
		"a.php": true, "b.INC": true, "c.phtml": false, "Makefile": false,
	} {
		if got := cfg.HasExtension(path); got != want {
			t.Errorf("HasExtension(%q) = %v", path, got)
		}
	}

	cfg.Lint.DisabledRules = []string{"Generic.Arrays.ArrowAlignment"}
	if !cfg.RuleDisabled("Generic.Arrays.ArrowAlignment") || cfg.RuleDisabled("Other") {
		t.Error("RuleDisabled")
	}
}

func TestFingerprint(t *testing.T) {
	a, b := Default(), Default()
	if a.Fingerprint() == "" || a.Fingerprint() != b.Fingerprint() {
		t.Fatal("equal configs differ")
	}
	b.Run.Jobs = 9
	b.Lint.Exclude = nil
	if a.Fingerprint() != b.Fingerprint() {
		t.Error("settings that do not affect results changed the fingerprint")
	}
	b.Lint.TabWidth = 2
	if a.Fingerprint() == b.Fingerprint() {
		t.Error("tab width not part of the fingerprint")
	}
}

func TestWriteDefault(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteDefault(dir, false)
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("written config does not load: %v", err)
	}
	if cfg.Fix.MaxPasses != Default().Fix.MaxPasses {
		t.Errorf("round trip lost max_passes: %+v", cfg.Fix)
	}
	if _, err := WriteDefault(dir, false); err == nil {
		t.Error("existing file overwritten without force")
	}
	if _, err := WriteDefault(dir, true); err != nil {
		t.Errorf("force: %v", err)
	}
}
