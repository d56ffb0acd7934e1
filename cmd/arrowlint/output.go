package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"arrowlint/internal/diag"
	"arrowlint/internal/diagfmt"
	"arrowlint/internal/diff"
	"arrowlint/internal/driver"
	"arrowlint/internal/observ"
	"arrowlint/internal/version"
)

const stdinPath = "-"

type renderOptions struct {
	format    string
	color     bool
	pathMode  diagfmt.PathMode
	withNotes bool
	tabWidth  int
	args      []string
}

func checkFormat(format string) error {
	switch format {
	case "pretty", "short", "json", "sarif":
		return nil
	default:
		return fmt.Errorf("unknown format: %s (expected pretty|short|json|sarif)", format)
	}
}

func renderDiagnostics(w io.Writer, report *driver.Report, ro renderOptions) error {
	bag := report.Diagnostics()
	fs := report.FileSet
	switch ro.format {
	case "pretty":
		diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
			Color:     ro.color,
			Context:   1,
			PathMode:  ro.pathMode,
			TabWidth:  ro.tabWidth,
			ShowNotes: ro.withNotes,
			ShowRule:  true,
		})
		return nil
	case "short":
		return diagfmt.Short(w, bag, fs, ro.withNotes)
	case "json":
		return diagfmt.JSON(w, bag, fs, diagfmt.JSONOpts{
			PathMode:     ro.pathMode,
			IncludeNotes: ro.withNotes,
		})
	case "sarif":
		return diagfmt.Sarif(w, bag, fs, diagfmt.SarifRunMeta{
			ToolName:       "arrowlint",
			ToolVersion:    version.Version,
			InvocationArgs: ro.args,
		})
	default:
		return checkFormat(ro.format)
	}
}

// printDiffs writes a unified diff for every changed result and reports
// whether there was any.
func printDiffs(w io.Writer, report *driver.Report) (bool, error) {
	changed := false
	for i := range report.Results {
		r := &report.Results[i]
		if !r.Changed() {
			continue
		}
		changed = true
		if _, err := io.WriteString(w, diff.Unified(r.Path, r.Original, r.Fixed)); err != nil {
			return changed, err
		}
	}
	return changed, nil
}

// dropWarnings removes warnings from every result (--no-warnings).
func dropWarnings(report *driver.Report) {
	for i := range report.Results {
		if bag := report.Results[i].Bag; bag != nil {
			bag.Filter(func(d diag.Diagnostic) bool { return d.Severity != diag.SevWarning })
		}
	}
}

// violationExit computes the exit code of a finished run.
func violationExit(sum driver.Summary, warningsAsErrors bool) int {
	switch {
	case sum.Failed > 0:
		return ExitError
	case sum.Errors > 0, warningsAsErrors && sum.Warnings > 0:
		return ExitViolations
	default:
		return ExitOK
	}
}

func printTimings(cmd *cobra.Command, report *driver.Report) error {
	show, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	if !show {
		return nil
	}
	var total observ.Report
	for i := range report.Results {
		total.Add(report.Results[i].Timing)
	}
	_, err = fmt.Fprint(cmd.ErrOrStderr(), total.Summary())
	return err
}

func readStdin(cmd *cobra.Command) ([]byte, error) {
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return data, nil
}

func stdoutFile(cmd *cobra.Command) *os.File {
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		return f
	}
	return nil
}

func colorFor(cmd *cobra.Command) (bool, error) {
	f := stdoutFile(cmd)
	if f == nil {
		// captured output, only an explicit --color on colors it
		colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
		if err != nil {
			return false, fmt.Errorf("failed to get color flag: %w", err)
		}
		return colorFlag == "on", nil
	}
	return useColor(cmd, f)
}
