// Package main provides the CLI entry point for xlsx2sql.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/xlsx2sql-go/pkg/xlsx2sql"
	"github.com/ukaji3/xlsx2sql-go/pkg/xlsx2sql/generator"
	"github.com/ukaji3/xlsx2sql-go/pkg/xlsx2sql/input"
	"github.com/ukaji3/xlsx2sql-go/pkg/xlsx2sql/output"
)

var (
	cfgFile  string
	filePath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "xlsx2sql [input.xlsx]",
		Short: "Convert xlsx files to SQL INSERT statements",
		Long: `xlsx2sql converts spreadsheet workbooks into SQL INSERT statement text.

Each sheet becomes one INSERT statement: the sheet name is the table name,
the first row supplies the column names, and every following row becomes a
value tuple. With no input file given, workbooks in the current directory
are offered for interactive selection.`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVarP(&filePath, "file", "f", "", "Input XLSX file path (alternative to the positional argument)")
	rootCmd.Flags().StringP("output", "o", "", "Output SQL file path (default: input filename with .sql extension, \"-\" for stdout)")
	rootCmd.Flags().String("on-sheet-error", "", "How to handle a structurally broken sheet: abort or skip")
	rootCmd.Flags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "Config file (default: ./xlsx2sql.yaml)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	setupLogging(cfg.Verbose)

	mode := generator.SheetErrorMode(cfg.OnSheetError)
	switch mode {
	case generator.SheetErrorAbort, generator.SheetErrorSkip:
	default:
		return fmt.Errorf("invalid on-sheet-error mode: %s (must be abort or skip)", cfg.OnSheetError)
	}

	inputPath := filePath
	if len(args) == 1 {
		inputPath = args[0]
	}
	if inputPath == "" {
		inputPath, err = selectInputFile(".")
		if err != nil {
			return err
		}
	}

	if err := input.ValidateFile(inputPath); err != nil {
		return err
	}

	slog.Debug("converting workbook", "path", inputPath, "on_sheet_error", mode)

	result, err := xlsx2sql.Convert(inputPath, xlsx2sql.Options{OnSheetError: mode})
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	for _, s := range result.Skipped {
		slog.Warn("skipped sheet", "sheet", s.Name, "reason", s.Err)
	}

	var dest output.Destination
	switch cfg.Output {
	case "-":
		dest = output.StdoutDestination()
	case "":
		dest = output.FileDestination(output.DefaultSQLPath(inputPath))
	default:
		dest = output.FileDestination(cfg.Output)
	}

	if err := output.Write(result.SQL, dest); err != nil {
		return err
	}

	slog.Debug("wrote SQL", "statements", len(result.Statements), "path", dest.Path)
	return nil
}

// setupLogging installs the process logger. The library packages never log;
// this only affects CLI-level diagnostics on stderr.
func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

// selectInputFile picks a workbook from dir when none was given on the
// command line. A single candidate is used directly; several open an
// interactive picker.
func selectInputFile(dir string) (string, error) {
	files, err := input.FindWorkbooks(dir)
	if err != nil {
		return "", err
	}

	switch len(files) {
	case 0:
		return "", errors.New("no Excel files (.xlsx/.xlsm/.xls) found in current directory")
	case 1:
		fmt.Printf("Found Excel file: %s\n", files[0])
		return files[0], nil
	default:
		return pickWorkbook(files)
	}
}
