package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"arrowlint/internal/diagfmt"
	"arrowlint/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.php",
	Short: "Dump the tokens of a PHP file",
	Long:  `Tokenize prints the token stream the sniffs see: kind, text, line, display column, width and bracket links`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Int("tab-width", 4, "tab stop width for columns; overrides lint.tab_width")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	var result *driver.TokenizeResult
	if filePath == stdinPath {
		data, err := readStdin(cmd)
		if err != nil {
			return err
		}
		result = driver.TokenizeSource("<stdin>", data, cfg)
	} else {
		result, err = driver.Tokenize(filePath, cfg)
		if err != nil {
			return fmt.Errorf("tokenization failed: %w", err)
		}
	}

	// lexical problems go to stderr
	if result.Bag.Len() > 0 {
		if err := diagfmt.Short(cmd.ErrOrStderr(), result.Bag, result.FileSet, false); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(out, result.Tokens)
	case "json":
		return diagfmt.FormatTokensJSON(out, result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
