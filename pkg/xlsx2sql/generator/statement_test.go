package generator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/xlsx2sql-go/pkg/xlsx2sql/models"
)

func sheetWithData(name string, headers []string, rows ...[]models.RawCell) models.SheetData {
	header := make([]models.RawCell, len(headers))
	for i, h := range headers {
		header[i] = models.TextCell(h)
	}
	return models.SheetData{Name: name, Rows: append([][]models.RawCell{header}, rows...)}
}

func TestBuild(t *testing.T) {
	wb := &models.WorkbookData{
		BookName: "test.xlsx",
		Sheets: []models.SheetData{
			sheetWithData("people", []string{"id", "name"},
				[]models.RawCell{models.IntegerCell(1), models.TextCell("Ann")},
				[]models.RawCell{models.IntegerCell(2), models.TextCell("Bea")},
			),
		},
	}

	statements, skipped, err := Build(wb, SheetErrorAbort)
	require.NoError(t, err)
	assert.Empty(t, skipped)
	require.Len(t, statements, 1)

	stmt := statements[0]
	assert.Equal(t, "people", stmt.TableName)
	assert.Equal(t, []string{"id", "name"}, stmt.Columns)
	require.Len(t, stmt.Values, 2)
	assert.Equal(t, models.TextValue("Ann"), stmt.Values[0][1])
	assert.Equal(t, models.IntegerValue(2), stmt.Values[1][0])
}

// Every built row has exactly as many values as there are columns.
func TestBuildRowLengthInvariant(t *testing.T) {
	wb := &models.WorkbookData{
		Sheets: []models.SheetData{
			sheetWithData("wide", []string{"a", "b", "c"},
				[]models.RawCell{models.IntegerCell(1), models.EmptyCell(), models.BoolCell(true)},
				[]models.RawCell{models.ErrorCell(), models.NumberCell(2.5), models.TextCell("x")},
			),
		},
	}

	statements, _, err := Build(wb, SheetErrorAbort)
	require.NoError(t, err)

	for _, stmt := range statements {
		for _, row := range stmt.Values {
			assert.Len(t, row, len(stmt.Columns))
		}
	}
}

func TestBuildMultiSheetOrdering(t *testing.T) {
	wb := &models.WorkbookData{
		Sheets: []models.SheetData{
			sheetWithData("first", []string{"a"}, []models.RawCell{models.IntegerCell(1)}),
			sheetWithData("second", []string{"b"}, []models.RawCell{models.IntegerCell(2)}),
			sheetWithData("third", []string{"c"}, []models.RawCell{models.IntegerCell(3)}),
		},
	}

	statements, _, err := Build(wb, SheetErrorAbort)
	require.NoError(t, err)
	require.Len(t, statements, 3)
	assert.Equal(t, "first", statements[0].TableName)
	assert.Equal(t, "second", statements[1].TableName)
	assert.Equal(t, "third", statements[2].TableName)
}

// Sheets with headers but zero data rows contribute no statement and no
// error.
func TestBuildOmitsHeaderOnlySheets(t *testing.T) {
	wb := &models.WorkbookData{
		Sheets: []models.SheetData{
			sheetWithData("empty", []string{"id"}),
			sheetWithData("full", []string{"id"}, []models.RawCell{models.IntegerCell(1)}),
		},
	}

	statements, _, err := Build(wb, SheetErrorAbort)
	require.NoError(t, err)
	require.Len(t, statements, 1)
	assert.Equal(t, "full", statements[0].TableName)
}

func TestBuildNoData(t *testing.T) {
	wb := &models.WorkbookData{
		Sheets: []models.SheetData{
			sheetWithData("a", []string{"id"}),
			sheetWithData("b", []string{"id"}),
		},
	}

	_, _, err := Build(wb, SheetErrorAbort)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestBuildAbortsOnBrokenSheet(t *testing.T) {
	wb := &models.WorkbookData{
		Sheets: []models.SheetData{
			sheetWithData("good", []string{"id"}, []models.RawCell{models.IntegerCell(1)}),
			{Name: "blank", Rows: [][]models.RawCell{
				{models.EmptyCell()},
				{models.IntegerCell(1)},
			}},
		},
	}

	_, _, err := Build(wb, SheetErrorAbort)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrMissingHeaders)

	var sheetErr *SheetError
	require.ErrorAs(t, err, &sheetErr)
	assert.Equal(t, "blank", sheetErr.Sheet)
}

func TestBuildSkipsBrokenSheet(t *testing.T) {
	wb := &models.WorkbookData{
		Sheets: []models.SheetData{
			{Name: "empty"},
			sheetWithData("good", []string{"id"}, []models.RawCell{models.IntegerCell(1)}),
		},
	}

	statements, skipped, err := Build(wb, SheetErrorSkip)
	require.NoError(t, err)
	require.Len(t, statements, 1)
	assert.Equal(t, "good", statements[0].TableName)

	require.Len(t, skipped, 1)
	assert.Equal(t, "empty", skipped[0].Name)
	assert.ErrorIs(t, skipped[0].Err, models.ErrEmptySheet)
}

func TestBuildSkipModeStillNoData(t *testing.T) {
	wb := &models.WorkbookData{
		Sheets: []models.SheetData{{Name: "empty"}},
	}

	_, skipped, err := Build(wb, SheetErrorSkip)
	assert.ErrorIs(t, err, ErrNoData)
	assert.Len(t, skipped, 1)
}

func TestSheetErrorUnwrap(t *testing.T) {
	inner := errors.New("cause")
	err := &SheetError{Sheet: "s", Err: inner}
	assert.Equal(t, `sheet "s": cause`, err.Error())
	assert.ErrorIs(t, err, inner)
}
