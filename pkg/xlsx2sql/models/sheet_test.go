package models

import (
	"errors"
	"reflect"
	"testing"
)

func TestColumns(t *testing.T) {
	sheet := &SheetData{
		Name: "mixed",
		Rows: [][]RawCell{
			{TextCell("id"), EmptyCell(), IntegerCell(7), BoolCell(true)},
			{IntegerCell(1), TextCell("x"), TextCell("y"), TextCell("z")},
		},
	}

	columns, err := sheet.Columns()
	if err != nil {
		t.Fatalf("Columns() failed: %v", err)
	}

	expected := []string{"id", "", "7", "true"}
	if !reflect.DeepEqual(columns, expected) {
		t.Errorf("Columns() = %v, expected %v", columns, expected)
	}
}

func TestColumnsEmptySheet(t *testing.T) {
	sheet := &SheetData{Name: "empty"}

	_, err := sheet.Columns()
	if !errors.Is(err, ErrEmptySheet) {
		t.Errorf("Columns() error = %v, expected ErrEmptySheet", err)
	}
}

func TestColumnsMissingHeaders(t *testing.T) {
	// A blank first row is missing headers even when data rows below are
	// non-empty.
	sheet := &SheetData{
		Name: "blank",
		Rows: [][]RawCell{
			{EmptyCell(), TextCell("   "), TextCell("")},
			{IntegerCell(1), IntegerCell(2), IntegerCell(3)},
		},
	}

	_, err := sheet.Columns()
	if !errors.Is(err, ErrMissingHeaders) {
		t.Errorf("Columns() error = %v, expected ErrMissingHeaders", err)
	}
}

func TestDataRows(t *testing.T) {
	header := []RawCell{TextCell("id")}
	row1 := []RawCell{IntegerCell(1)}
	row2 := []RawCell{IntegerCell(2)}

	sheet := &SheetData{Name: "people", Rows: [][]RawCell{header, row1, row2}}

	rows := sheet.DataRows()
	if len(rows) != 2 {
		t.Fatalf("DataRows() returned %d rows, expected 2", len(rows))
	}
	if rows[0][0].Integer != 1 || rows[1][0].Integer != 2 {
		t.Errorf("DataRows() order = %v, expected original grid order", rows)
	}

	// Iterating again yields the same rows.
	again := sheet.DataRows()
	if !reflect.DeepEqual(rows, again) {
		t.Errorf("DataRows() is not restartable: %v vs %v", rows, again)
	}
}

func TestDataRowsShortGrid(t *testing.T) {
	headerOnly := &SheetData{Name: "h", Rows: [][]RawCell{{TextCell("id")}}}
	if rows := headerOnly.DataRows(); len(rows) != 0 {
		t.Errorf("DataRows() on header-only grid = %v, expected none", rows)
	}

	empty := &SheetData{Name: "e"}
	if rows := empty.DataRows(); len(rows) != 0 {
		t.Errorf("DataRows() on empty grid = %v, expected none", rows)
	}
}
