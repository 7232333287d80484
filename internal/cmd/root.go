// Package cmd wires the command line to the walk and report pipeline.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"treeaudit/internal/config"
	"treeaudit/internal/logging"
	"treeaudit/internal/pathfilter"
	"treeaudit/internal/progress"
	"treeaudit/internal/report"
	"treeaudit/internal/walker"
)

// Version is injected at build time via -ldflags.
var Version = "dev"

// ErrPartial marks a run that produced a report but recorded traversal or
// checksum errors along the way.
var ErrPartial = errors.New("completed with errors")

type rootFlags struct {
	extensions string
	output     string
	format     string
	checksums  bool
	workers    int
	configPath string
	quiet      bool
	noColor    bool
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "treeaudit <root>",
		Short: "Generate a status-tracked audit report of a directory tree",
		Long: `Treeaudit walks a root directory and writes an ordered, indented listing
of every directory and file beneath it as a row-structured report, with a
per-row triage status so large trees can be audited without hand-building
a spreadsheet.

An exclusion list named ` + pathfilter.ExclusionFileName + ` directly under the root
(one path per line, trailing slash for whole directories) removes paths
from the listing; an optional extension allow-list restricts which files
appear, pruning directories left with nothing to show.`,
		Version: Version,
		Args:    cobra.ExactArgs(1),
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.extensions, "ext", "e", "", "comma-separated extension allow-list (e.g. ts,go,md); empty includes all files")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "report file path (default: timestamped name in the working directory)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "report format: xlsx or text")
	cmd.Flags().BoolVar(&flags.checksums, "checksums", false, "add a per-file checksum column")
	cmd.Flags().IntVarP(&flags.workers, "workers", "w", runtime.NumCPU()*2, "checksum worker goroutines")
	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "treeaudit.yaml", "config file path")
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "only log warnings and errors")
	cmd.Flags().BoolVar(&flags.noColor, "no-color", false, "disable colored output")

	return cmd
}

func run(root string, flags *rootFlags) error {
	if flags.noColor {
		color.NoColor = true
	}

	level := "info"
	if flags.quiet {
		level = "warn"
	}
	logger := logging.NewConsoleLogger(os.Stderr, level)

	cfg, err := config.LoadConfig(flags.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if flags.format != "" {
		cfg.Format = flags.format
	}
	if flags.output != "" {
		cfg.Output = flags.output
	}
	if flags.checksums {
		cfg.Checksums = true
	}
	if err := config.ValidateFormat(cfg.Format); err != nil {
		return err
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	logger.Infof("scanning directory: %s", absRoot)

	result, err := walker.Walk(absRoot, walker.Options{
		Exclusions:    pathfilter.LoadExclusions(absRoot, logger),
		Extensions:    pathfilter.ParseExtensions(flags.extensions),
		InitialStatus: cfg.StatusLabels[0],
		Logger:        logger,
	})
	if err != nil {
		return err
	}

	logger.Infof("collected %d entries (%d files)", len(result.Entries), result.FileCount())

	if cfg.Checksums {
		var bar *progress.Bar
		if !flags.quiet {
			bar = progress.New(int64(result.FileCount()), os.Stdout)
		}
		walker.AttachChecksums(absRoot, result, flags.workers, bar, logger)
		bar.Finish()
	}

	outputPath := cfg.Output
	if outputPath == "" {
		outputPath = defaultOutputName(cfg.Format)
	}

	if err := writeReport(outputPath, result, cfg); err != nil {
		return err
	}

	logger.Infof("report written: %s", outputPath)

	if len(result.Errors) > 0 {
		logger.Warnf("%d paths could not be fully processed", len(result.Errors))
		return ErrPartial
	}
	return nil
}

func defaultOutputName(format string) string {
	ext := "xlsx"
	if format == config.FormatText {
		ext = "txt"
	}
	return fmt.Sprintf("audit_%s.%s", time.Now().Format("20060102_150405"), ext)
}

func writeReport(path string, result *walker.Result, cfg *config.Config) error {
	if cfg.Format == config.FormatText {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create report file: %w", err)
		}
		defer f.Close()

		return report.WriteTree(f, result.Entries)
	}

	return report.WriteWorkbook(path, result.Entries, report.WorkbookOptions{
		StatusLabels: cfg.StatusLabels,
		Checksums:    cfg.Checksums,
	})
}

// Execute runs the root command and maps the outcome to an exit code:
// 0 success, 1 fatal error, 2 report written but some paths failed.
func Execute() int {
	err := NewRootCommand().Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrPartial):
		return 2
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
}
