package xlsx2sql

import (
	"github.com/ukaji3/xlsx2sql-go/pkg/xlsx2sql/generator"
	"github.com/ukaji3/xlsx2sql-go/pkg/xlsx2sql/models"
	"github.com/ukaji3/xlsx2sql-go/pkg/xlsx2sql/parser"
)

// Result is the outcome of one conversion run.
type Result struct {
	// SQL is the rendered statement text, statements in workbook sheet
	// order separated by a blank line.
	SQL string
	// Statements holds the built statements in the same order.
	Statements []models.SqlStatement
	// Skipped lists sheets dropped in skip mode, with their causes.
	Skipped []generator.SkippedSheet
}

// Convert decodes the workbook at path and renders its SQL INSERT text.
func Convert(path string, opts Options) (*Result, error) {
	wb, err := parser.Decode(path)
	if err != nil {
		return nil, err
	}
	return ConvertWorkbook(wb, opts)
}

// ConvertWorkbook renders SQL INSERT text for an already decoded workbook.
func ConvertWorkbook(wb *models.WorkbookData, opts Options) (*Result, error) {
	mode := opts.OnSheetError
	if mode == "" {
		mode = generator.SheetErrorAbort
	}

	statements, skipped, err := generator.Build(wb, mode)
	if err != nil {
		return nil, err
	}

	return &Result{
		SQL:        generator.FormatStatements(statements),
		Statements: statements,
		Skipped:    skipped,
	}, nil
}
