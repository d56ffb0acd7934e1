package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"arrowlint/internal/diagfmt"
	"arrowlint/internal/driver"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] [paths...]",
	Short: "Align array arrows in place",
	Long: `Fix rewrites the whitespace around misaligned double arrows. Files are
replaced through a temporary file, keeping their mode. With - the fixed
source is read from stdin and written to stdout.`,
	RunE: runFix,
}

func init() {
	fixCmd.Flags().Bool("diff", false, "print a unified diff instead of writing files")
	fixCmd.Flags().String("format", "pretty", "format of remaining violations (pretty|short|json|sarif)")
	fixCmd.Flags().Int("tab-width", 4, "tab stop width for columns; overrides lint.tab_width")
	fixCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	fixCmd.Flags().Bool("warnings-as-errors", false, "exit non-zero when warnings remain")
	fixCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
	fixCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
}

// runFix fixes the given paths. It exits 1 when violations remain after
// fixing, or with --diff when there are changes to show.
func runFix(cmd *cobra.Command, args []string) error {
	showDiff, err := cmd.Flags().GetBool("diff")
	if err != nil {
		return fmt.Errorf("failed to get diff flag: %w", err)
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if err := checkFormat(format); err != nil {
		return err
	}
	warningsAsErrors, err := cmd.Flags().GetBool("warnings-as-errors")
	if err != nil {
		return fmt.Errorf("failed to get warnings-as-errors flag: %w", err)
	}
	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}
	cfg, err := loadConfig(cmd, paths)
	if err != nil {
		return err
	}
	opts := driver.Options{Config: cfg, Cache: openCache(cmd, cfg)}
	stdin := len(paths) == 1 && paths[0] == stdinPath

	report, runErr := runPaths(cmd, paths, driver.ModeFix, opts, mode, format, "fixing")
	if report == nil {
		return runErr
	}
	sum := driver.Summarize(report.Results)
	out := cmd.OutOrStdout()

	pending := false
	switch {
	case showDiff:
		if pending, err = printDiffs(out, report); err != nil {
			return err
		}
	case stdin:
		r := report.Results[0]
		content := r.Original
		if r.Changed() {
			content = r.Fixed
		}
		if _, err := out.Write(content); err != nil {
			return fmt.Errorf("failed to write stdout: %w", err)
		}
	default:
		written, err := driver.WriteFixes(report)
		if err != nil {
			return err
		}
		if !quiet(cmd) {
			for _, p := range written {
				fmt.Fprintf(cmd.ErrOrStderr(), "fixed %s\n", p)
			}
		}
	}

	// remaining violations go to stderr when stdout carries the source or a diff
	diagOut := cmd.ErrOrStderr()
	if !stdin && !showDiff {
		diagOut = out
	}
	color, err := colorFor(cmd)
	if err != nil {
		return err
	}
	pathMode := diagfmt.PathModeRelative
	if fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}
	if err := renderDiagnostics(diagOut, report, renderOptions{
		format:   format,
		color:    color && diagOut == out,
		pathMode: pathMode,
		tabWidth: cfg.Lint.TabWidth,
		args:     args,
	}); err != nil {
		return fmt.Errorf("failed to format diagnostics: %w", err)
	}

	if err := printTimings(cmd, report); err != nil {
		return err
	}
	if !quiet(cmd) && format == "pretty" {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s changed, %s applied; %s, %s remain\n",
			plural(sum.Fixed, "file"), plural(sum.Fixes, "fix"), plural(sum.Errors, "error"), plural(sum.Warnings, "warning"))
	}
	if runErr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "arrowlint: %v\n", runErr)
		return exitWith(ExitError)
	}
	code := violationExit(sum, warningsAsErrors)
	if code == ExitOK && pending {
		code = ExitViolations
	}
	return exitWith(code)
}
