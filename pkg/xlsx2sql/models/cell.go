// Package models defines the data model for workbook-to-SQL conversion.
package models

import "strconv"

// CellKind identifies the kind of a raw spreadsheet cell.
//
// The set is closed: consumers switch exhaustively over these constants, so
// adding a cell kind is a compile-visible change everywhere it is handled.
type CellKind int

const (
	// CellEmpty is a cell with no value.
	CellEmpty CellKind = iota
	// CellText is a plain text cell.
	CellText
	// CellNumber is a floating-point numeric cell.
	CellNumber
	// CellInteger is an integral numeric cell.
	CellInteger
	// CellBool is a boolean cell.
	CellBool
	// CellDateTime is a datetime encoded as a spreadsheet serial value.
	CellDateTime
	// CellDateTimeISO is a datetime given as an ISO 8601 string.
	CellDateTimeISO
	// CellDurationISO is a duration given as an ISO 8601 string.
	CellDurationISO
	// CellError is an error marker such as #DIV/0!.
	CellError
)

// RawCell is one weakly-typed spreadsheet cell as produced by the decoder.
// Exactly one value field is meaningful, selected by Kind.
type RawCell struct {
	Kind    CellKind
	Text    string  // CellText, CellDateTimeISO, CellDurationISO
	Number  float64 // CellNumber, and the serial value for CellDateTime
	Integer int64   // CellInteger
	Bool    bool    // CellBool
}

// EmptyCell returns a cell with no value.
func EmptyCell() RawCell { return RawCell{Kind: CellEmpty} }

// TextCell returns a plain text cell.
func TextCell(s string) RawCell { return RawCell{Kind: CellText, Text: s} }

// NumberCell returns a floating-point cell.
func NumberCell(f float64) RawCell { return RawCell{Kind: CellNumber, Number: f} }

// IntegerCell returns an integral cell.
func IntegerCell(i int64) RawCell { return RawCell{Kind: CellInteger, Integer: i} }

// BoolCell returns a boolean cell.
func BoolCell(b bool) RawCell { return RawCell{Kind: CellBool, Bool: b} }

// DateTimeCell returns a datetime cell holding a spreadsheet serial value.
func DateTimeCell(serial float64) RawCell {
	return RawCell{Kind: CellDateTime, Number: serial}
}

// DateTimeISOCell returns a datetime cell holding an ISO 8601 string.
func DateTimeISOCell(s string) RawCell { return RawCell{Kind: CellDateTimeISO, Text: s} }

// DurationISOCell returns a duration cell holding an ISO 8601 string.
func DurationISOCell(s string) RawCell { return RawCell{Kind: CellDurationISO, Text: s} }

// ErrorCell returns an error-marker cell.
func ErrorCell() RawCell { return RawCell{Kind: CellError} }

// String returns the natural textual representation of the cell. It is used
// when a non-text cell appears in a header row.
func (c RawCell) String() string {
	switch c.Kind {
	case CellEmpty:
		return ""
	case CellText, CellDateTimeISO, CellDurationISO:
		return c.Text
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case CellInteger:
		return strconv.FormatInt(c.Integer, 10)
	case CellBool:
		return strconv.FormatBool(c.Bool)
	case CellDateTime:
		if s, ok := decodeSerial(c.Number); ok {
			return s
		}
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case CellError:
		return "#ERROR!"
	}
	return ""
}
