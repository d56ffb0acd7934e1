package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"arrowlint/internal/diagfmt"
	"arrowlint/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:     "check [flags] [paths...]",
	Aliases: []string{"diag"},
	Short:   "Report misaligned array arrows",
	Long: `Check PHP files and directories for double arrows that are not aligned
within their array literal. Directories are walked for lint.extensions,
skipping lint.exclude. Use - to read from stdin.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|short|json|sarif)")
	checkCmd.Flags().String("severity", "", "severity of violations (error|warning); overrides lint.severity")
	checkCmd.Flags().Int("tab-width", 4, "tab stop width for columns; overrides lint.tab_width")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	checkCmd.Flags().Bool("warnings-as-errors", false, "exit non-zero on warnings")
	checkCmd.Flags().Bool("no-warnings", false, "ignore warnings")
	checkCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	checkCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
	checkCmd.Flags().Bool("diff", false, "print the changes fix would make")
	checkCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
}

// runCheck lints the given paths and prints the diagnostics in the chosen
// format. It exits 1 when errors remain (or warnings, with
// --warnings-as-errors) and 2 when a file could not be read.
func runCheck(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if err := checkFormat(format); err != nil {
		return err
	}
	noWarnings, err := cmd.Flags().GetBool("no-warnings")
	if err != nil {
		return fmt.Errorf("failed to get no-warnings flag: %w", err)
	}
	warningsAsErrors, err := cmd.Flags().GetBool("warnings-as-errors")
	if err != nil {
		return fmt.Errorf("failed to get warnings-as-errors flag: %w", err)
	}
	if noWarnings && warningsAsErrors {
		return fmt.Errorf("no-warnings and warnings-as-errors flags cannot be used together")
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	showDiff, err := cmd.Flags().GetBool("diff")
	if err != nil {
		return fmt.Errorf("failed to get diff flag: %w", err)
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

	report, runErr := runPaths(cmd, paths, driver.ModeCheck, opts, mode, format, "checking")
	if report == nil {
		return runErr
	}
	if noWarnings {
		dropWarnings(report)
	}

	color, err := colorFor(cmd)
	if err != nil {
		return err
	}
	pathMode := diagfmt.PathModeRelative
	if fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}
	out := cmd.OutOrStdout()
	if err := renderDiagnostics(out, report, renderOptions{
		format:    format,
		color:     color,
		pathMode:  pathMode,
		withNotes: withNotes,
		tabWidth:  cfg.Lint.TabWidth,
		args:      args,
	}); err != nil {
		return fmt.Errorf("failed to format diagnostics: %w", err)
	}

	if showDiff {
		fixed, _ := runPaths(cmd, paths, driver.ModeFix, opts, uiModeOff, format, "")
		if fixed != nil {
			if _, err := printDiffs(out, fixed); err != nil {
				return err
			}
		}
	}

	if err := printTimings(cmd, report); err != nil {
		return err
	}
	sum := driver.Summarize(report.Results)
	if format == "pretty" && !quiet(cmd) {
		printCheckSummary(cmd, sum)
	}
	if runErr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "arrowlint: %v\n", runErr)
		return exitWith(ExitError)
	}
	return exitWith(violationExit(sum, warningsAsErrors))
}

// runPaths runs the driver over paths, or over stdin for "-".
func runPaths(cmd *cobra.Command, paths []string, mode driver.Mode, opts driver.Options, ui uiMode, format, title string) (*driver.Report, error) {
	if len(paths) == 1 && paths[0] == stdinPath {
		data, err := readStdin(cmd)
		if err != nil {
			return nil, err
		}
		return driver.RunSource(cmd.Context(), "<stdin>", data, mode, opts), nil
	}
	if format == "pretty" && !quiet(cmd) && shouldUseTUI(ui, stdoutFile(cmd)) {
		return runWithUI(cmd.Context(), title, paths, mode, opts)
	}
	return driver.Run(cmd.Context(), paths, mode, opts)
}

func printCheckSummary(cmd *cobra.Command, sum driver.Summary) {
	w := cmd.ErrOrStderr()
	switch {
	case sum.Errors == 0 && sum.Warnings == 0:
		fmt.Fprintf(w, "%s checked, no misaligned arrows\n", plural(sum.Files, "file"))
	default:
		fmt.Fprintf(w, "%s checked: %s, %s (%d fixable with arrowlint fix)\n",
			plural(sum.Files, "file"), plural(sum.Errors, "error"), plural(sum.Warnings, "warning"), sum.Fixable)
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", word)
	}
	if strings.HasSuffix(word, "x") {
		return fmt.Sprintf("%d %ses", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
