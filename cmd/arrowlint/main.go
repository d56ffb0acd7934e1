package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"arrowlint/internal/config"
	"arrowlint/internal/version"

	_ "arrowlint/internal/sniff/arrays"
)

var rootCmd = &cobra.Command{
	Use:   "arrowlint",
	Short: "Align => operators in multi-line PHP array literals",
	Long: `arrowlint checks that the double arrows of multi-line PHP array literals
line up within each indentation group, and rewrites the whitespace around
them when asked to fix.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		config.LoadDotEnv()
		if err := setupProfiling(cmd); err != nil {
			return err
		}
		return setupTracing(cmd)
	},
}

// main registers the subcommands and persistent flags, runs the root
// command and exits with the code derived from its error.
func main() {
	rootCmd.Version = version.Version
	os.Exit(execute(rootCmd))
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 0, "maximum number of diagnostics per file (0 = lint.max_diagnostics)")
	rootCmd.PersistentFlags().String("config", "", "config file (default: nearest .arrowlint.toml)")
	rootCmd.PersistentFlags().Bool("no-cache", false, "disable the result cache")
	rootCmd.PersistentFlags().String("trace", "", "trace output file (- for stderr)")
	rootCmd.PersistentFlags().String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	rootCmd.PersistentFlags().String("trace-format", "auto", "trace format (auto|text|ndjson)")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write a CPU profile to file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write a heap profile to file on exit")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write a Go runtime trace to file")
}

func execute(cmd *cobra.Command) int {
	err := cmd.Execute()
	closeTracing(cmd)
	stopProfiling(cmd)
	return exitCodeFor(err, cmd.ErrOrStderr())
}

// isTerminal reports whether f is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // file descriptors fit in int
}
