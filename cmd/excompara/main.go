// Package main provides the CLI entry point for excompara.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/prodsec/excompara/pkg/excompara"
	"github.com/prodsec/excompara/pkg/excompara/config"
	"github.com/prodsec/excompara/pkg/excompara/report"
	"github.com/prodsec/excompara/pkg/ui"
)

var (
	outputPath string
	configPath string
	noColor    bool
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "excompara [old_file] [new_file]",
		Short: "Compare two vulnerability report workbooks",
		Long: `excompara compares two point-in-time vulnerability report workbooks and
generates an analysis report with fixed CVEs, newly added CVEs, and the
per-severity count delta between the two.`,
		Args: cobra.ExactArgs(2),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Report file path (default: analysis_report.xlsx)")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Optional YAML settings file")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	ui.SetNoColor(noColor)

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	fmt.Println(ui.Banner())

	opts := excompara.DefaultOptions()
	if configPath != "" {
		var err error
		opts, err = config.Load(configPath, opts)
		if err != nil {
			return err
		}
	}
	if outputPath != "" {
		opts.OutputPath = outputPath
	}

	a, err := excompara.New(opts).Compare(args[0], args[1])
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}

	ui.Statf("Distinct CVEs: old %d, new %d", a.Stats.OldDistinct, a.Stats.NewDistinct)
	ui.Statf("Percentage Increment in Newly Introduced CVEs: %.2f%%", a.Stats.Percentage)

	if err := report.Write(a, opts.OutputPath); err != nil {
		if errors.Is(err, excompara.ErrOutputLocked) {
			// Recoverable: the operator has the report open somewhere.
			ui.Errorf("Permission denied. Please close %s and try again.", opts.OutputPath)
			return nil
		}
		return fmt.Errorf("writing report: %w", err)
	}

	ui.Successf("Analysis report generated successfully: %s", opts.OutputPath)
	return nil
}
