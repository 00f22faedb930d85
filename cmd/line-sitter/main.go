// Command line-sitter reformats Lisp-family source files to a configured
// line-length limit.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hugoduncan/line-sitter/internal/config"
	"github.com/hugoduncan/line-sitter/internal/format"
	"github.com/hugoduncan/line-sitter/internal/report"
	"github.com/hugoduncan/line-sitter/internal/walk"
	"github.com/spf13/cobra"
)

func main() {
	var (
		checkMode  bool
		writeMode  bool
		configPath string
		lineLength int
		noColor    bool
		debug      bool
		useColor   bool
	)

	rootCmd := &cobra.Command{
		Use:           "line-sitter [paths...]",
		Short:         "Reformat Lisp-family source to a line-length limit",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if debug {
				slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
			}
			useColor = report.ShouldUseColor(noColor)

			if checkMode && writeMode {
				return fmt.Errorf("--check and --write are mutually exclusive")
			}

			cfg, err := resolveConfig(configPath, lineLength)
			if err != nil {
				return exitError{code: 2, err: err}
			}

			roots := args
			if len(roots) == 0 {
				roots = []string{"."}
			}
			files, err := walk.Files(roots, nil)
			if err != nil {
				return exitError{code: 2, err: err}
			}
			if debug {
				label := report.Colorize("Debug info:", report.ColorCyan, useColor)
				fmt.Fprintf(os.Stderr, "%s line_length=%d files=%d\n", label, cfg.LineLength, len(files))
			}

			switch {
			case checkMode:
				return runCheck(cmd.OutOrStdout(), files, cfg, useColor)
			case writeMode:
				return runWrite(files, cfg)
			default:
				return runStdout(cmd.OutOrStdout(), files, cfg, useColor)
			}
		},
	}

	rootCmd.Flags().BoolVar(&checkMode, "check", false, "report violations; exit 1 if any remain")
	rootCmd.Flags().BoolVar(&writeMode, "write", false, "reformat files in place")
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to config file (default: .line-sitter.yaml)")
	rootCmd.Flags().IntVar(&lineLength, "line-length", 0, "override line_length from the loaded config")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")

	exitCode := 0
	if err := rootCmd.Execute(); err != nil {
		if ee, ok := err.(exitError); ok {
			if ee.code != 1 {
				// code 1 means check mode already reported the
				// violations it found; anything else is a fresh error.
				report.Error(os.Stderr, "", ee.err, useColor)
			}
			exitCode = ee.code
		} else {
			fmt.Fprintln(os.Stderr, err)
			exitCode = 2
		}
	}
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

// exitError carries an explicit exit code through cobra's error path
// (spec.md §6: exit codes 0/1/2 are the engine's semantics, the CLI
// wires them).
type exitError struct {
	code int
	err  error
}

func (e exitError) Error() string { return e.err.Error() }
func (e exitError) Unwrap() error { return e.err }

func resolveConfig(path string, lineLengthOverride int) (format.Config, error) {
	if path == "" {
		if _, err := os.Stat(".line-sitter.yaml"); err == nil {
			path = ".line-sitter.yaml"
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return format.Config{}, err
	}
	if lineLengthOverride > 0 {
		cfg.LineLength = lineLengthOverride
	}
	return cfg, nil
}
