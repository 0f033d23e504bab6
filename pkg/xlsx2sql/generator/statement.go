package generator

import (
	"errors"
	"fmt"

	"github.com/ukaji3/xlsx2sql-go/pkg/xlsx2sql/models"
)

// ErrNoData indicates that no sheet produced any insertable rows.
var ErrNoData = errors.New("no data to generate SQL from")

// SheetErrorMode selects how Build reacts to a structurally broken sheet
// (no rows, or a blank header row).
type SheetErrorMode string

const (
	// SheetErrorAbort fails the whole conversion on the first broken sheet.
	SheetErrorAbort SheetErrorMode = "abort"
	// SheetErrorSkip drops broken sheets and reports them as skipped.
	SheetErrorSkip SheetErrorMode = "skip"
)

// SheetError wraps a structural error with the sheet it came from.
type SheetError struct {
	Sheet string
	Err   error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q: %v", e.Sheet, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// SkippedSheet records a sheet dropped in SheetErrorSkip mode.
type SkippedSheet struct {
	Name string
	Err  error
}

// Build turns a workbook into one SqlStatement per sheet that has data rows,
// in workbook order. Sheets with headers but no data rows are silently
// omitted. A structural sheet error aborts the conversion in
// SheetErrorAbort mode, or records the sheet as skipped in SheetErrorSkip
// mode. When no sheet yields a statement, Build fails with ErrNoData.
func Build(wb *models.WorkbookData, mode SheetErrorMode) ([]models.SqlStatement, []SkippedSheet, error) {
	var statements []models.SqlStatement
	var skipped []SkippedSheet

	for i := range wb.Sheets {
		sheet := &wb.Sheets[i]

		columns, err := sheet.Columns()
		if err != nil {
			if mode == SheetErrorSkip {
				skipped = append(skipped, SkippedSheet{Name: sheet.Name, Err: err})
				continue
			}
			return nil, nil, &SheetError{Sheet: sheet.Name, Err: err}
		}
		if len(columns) == 0 {
			continue
		}

		var values [][]models.SqlValue
		for _, row := range sheet.DataRows() {
			rowValues := make([]models.SqlValue, len(row))
			for j, cell := range row {
				rowValues[j] = models.CoerceCell(cell)
			}
			values = append(values, rowValues)
		}

		if len(values) == 0 {
			continue
		}

		statements = append(statements, models.SqlStatement{
			TableName: sheet.Name,
			Columns:   columns,
			Values:    values,
		})
	}

	if len(statements) == 0 {
		return nil, skipped, ErrNoData
	}
	return statements, skipped, nil
}
