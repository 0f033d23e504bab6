// Package parser decodes workbooks into the typed cell model using excelize.
package parser

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/ukaji3/xlsx2sql-go/pkg/xlsx2sql/models"
	"github.com/xuri/excelize/v2"
)

// Decode opens the workbook at path and decodes every sheet.
func Decode(path string) (*models.WorkbookData, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return DecodeFile(f, filepath.Base(path))
}

// DecodeFile decodes all sheets of an open workbook in workbook order.
// A sheet whose rows cannot be read is skipped silently.
func DecodeFile(f *excelize.File, bookName string) (*models.WorkbookData, error) {
	var sheets []models.SheetData
	for _, name := range f.GetSheetList() {
		grid, err := decodeSheet(f, name)
		if err != nil {
			continue
		}
		sheets = append(sheets, models.SheetData{Name: name, Rows: grid})
	}
	return &models.WorkbookData{BookName: bookName, Sheets: sheets}, nil
}

// decodeSheet reads the sheet grid and pads every row to the width of the
// widest row, so downstream code sees a rectangular grid.
func decodeSheet(f *excelize.File, sheet string) ([][]models.RawCell, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	grid := make([][]models.RawCell, len(rows))
	for ri, row := range rows {
		cells := make([]models.RawCell, width)
		for ci := 0; ci < width; ci++ {
			if ci < len(row) && row[ci] != "" {
				cells[ci] = decodeCell(f, sheet, ci+1, ri+1, row[ci])
			} else {
				cells[ci] = models.EmptyCell()
			}
		}
		grid[ri] = cells
	}
	return grid, nil
}

// decodeCell tags one non-blank cell with its kind. The formatted value from
// GetRows serves as text; typed kinds re-read the raw stored value.
func decodeCell(f *excelize.File, sheet string, col, row int, formatted string) models.RawCell {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return models.TextCell(formatted)
	}

	cellType, err := f.GetCellType(sheet, name)
	if err != nil {
		return models.TextCell(formatted)
	}

	switch cellType {
	case excelize.CellTypeBool:
		return models.BoolCell(strings.EqualFold(formatted, "TRUE"))
	case excelize.CellTypeError:
		return models.ErrorCell()
	case excelize.CellTypeDate:
		// The rarely used t="d" cell type stores an ISO 8601 string.
		if raw := rawValue(f, sheet, name, formatted); raw != "" {
			return models.DateTimeISOCell(raw)
		}
		return classifyString(formatted)
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		raw := rawValue(f, sheet, name, formatted)
		if serial, err := strconv.ParseFloat(raw, 64); err == nil {
			if dateStyled(f, sheet, name) {
				return models.DateTimeCell(serial)
			}
			return numberCell(raw, serial)
		}
		return classifyString(raw)
	default:
		return classifyString(formatted)
	}
}

// rawValue reads the unformatted stored value, falling back to the formatted
// one when the raw read fails.
func rawValue(f *excelize.File, sheet, cell, formatted string) string {
	raw, err := f.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
	if err != nil || raw == "" {
		return formatted
	}
	return raw
}

// numberCell keeps whole numbers integral: integers parse first, everything
// else stays a float.
func numberCell(raw string, serial float64) models.RawCell {
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return models.IntegerCell(i)
	}
	return models.NumberCell(serial)
}

// Built-in number format IDs that render as dates or times.
var builtinDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true, 20: true,
	21: true, 22: true, 27: true, 28: true, 29: true, 30: true, 31: true,
	32: true, 33: true, 34: true, 35: true, 36: true, 45: true, 46: true,
	47: true, 50: true, 51: true, 52: true, 53: true, 54: true, 55: true,
	56: true, 57: true, 58: true,
}

// dateStyled reports whether the cell carries a date or time number format.
func dateStyled(f *excelize.File, sheet, cell string) bool {
	styleID, err := f.GetCellStyle(sheet, cell)
	if err != nil || styleID == 0 {
		return false
	}
	style, err := f.GetStyle(styleID)
	if err != nil || style == nil {
		return false
	}
	if style.CustomNumFmt != nil {
		return containsDateTokens(*style.CustomNumFmt)
	}
	return builtinDateFormats[style.NumFmt]
}

// containsDateTokens reports whether a custom number format code contains
// date or time placeholders, ignoring quoted literals and bracketed
// sections like [Red] or [$-409].
func containsDateTokens(code string) bool {
	var b strings.Builder
	inQuote, inBracket := false, false
	for _, r := range code {
		switch {
		case inQuote:
			if r == '"' {
				inQuote = false
			}
		case inBracket:
			if r == ']' {
				inBracket = false
			}
		case r == '"':
			inQuote = true
		case r == '[':
			inBracket = true
		default:
			b.WriteRune(r)
		}
	}
	return strings.ContainsAny(strings.ToLower(b.String()), "ymdhs")
}

var (
	isoDateTimePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}([T ]\d{2}:\d{2}(:\d{2}(\.\d+)?)?(Z|[+-]\d{2}:\d{2})?)?$`)
	isoDurationPattern = regexp.MustCompile(`^-?P(\d+(\.\d+)?[YMWD])+(T(\d+(\.\d+)?[HMS])+)?$|^-?PT(\d+(\.\d+)?[HMS])+$`)
)

// classifyString tags ISO 8601 datetime and duration strings; anything else
// stays plain text.
func classifyString(s string) models.RawCell {
	if isoDateTimePattern.MatchString(s) {
		return models.DateTimeISOCell(s)
	}
	if isoDurationPattern.MatchString(s) {
		return models.DurationISOCell(s)
	}
	return models.TextCell(s)
}
