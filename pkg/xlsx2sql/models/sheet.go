package models

import (
	"errors"
	"strings"
)

// ErrEmptySheet indicates a sheet grid with no rows at all.
var ErrEmptySheet = errors.New("sheet has no data")

// ErrMissingHeaders indicates a sheet whose first row is entirely blank.
var ErrMissingHeaders = errors.New("missing column headers")

// SheetData is a single named grid of raw cells. The decoder pads every row
// to the same width, so the grid is rectangular.
type SheetData struct {
	// Name is the sheet name, used verbatim as the target table name.
	Name string
	// Rows is the cell grid, header row first.
	Rows [][]RawCell
}

// Columns derives column names from the first grid row. Text cells contribute
// their value verbatim, empty cells an empty string, and any other cell kind
// its natural textual representation. Header detection is positional: the
// first row is the only candidate, there is no structural marker to check.
func (s *SheetData) Columns() ([]string, error) {
	if len(s.Rows) == 0 {
		return nil, ErrEmptySheet
	}

	columns := make([]string, len(s.Rows[0]))
	blank := true
	for i, cell := range s.Rows[0] {
		columns[i] = cell.String()
		if strings.TrimSpace(columns[i]) != "" {
			blank = false
		}
	}
	if blank {
		return nil, ErrMissingHeaders
	}
	return columns, nil
}

// DataRows returns every row below the header row, in grid order. A grid with
// fewer than two rows has no data rows.
func (s *SheetData) DataRows() [][]RawCell {
	if len(s.Rows) < 2 {
		return nil
	}
	return s.Rows[1:]
}
