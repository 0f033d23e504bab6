package models

import (
	"math"
	"time"
)

// ValueKind identifies the active variant of a SqlValue.
type ValueKind int

const (
	// ValueNull is the SQL NULL value.
	ValueNull ValueKind = iota
	// ValueText is a string value.
	ValueText
	// ValueNumber is a floating-point value.
	ValueNumber
	// ValueInteger is an integral value.
	ValueInteger
	// ValueBoolean is a boolean value.
	ValueBoolean
	// ValueDateTime is an already-formatted datetime string.
	ValueDateTime
)

// SqlValue is one typed SQL literal value ready for rendering. Exactly one
// value field is meaningful, selected by Kind. A ValueDateTime always holds
// either a "YYYY-MM-DD HH:MM:SS" string produced by the serial decoder or the
// verbatim string of an ISO-tagged source cell.
type SqlValue struct {
	Kind    ValueKind
	Text    string // ValueText, ValueDateTime
	Number  float64
	Integer int64
	Bool    bool
}

// NullValue returns the SQL NULL value.
func NullValue() SqlValue { return SqlValue{Kind: ValueNull} }

// TextValue returns a string value.
func TextValue(s string) SqlValue { return SqlValue{Kind: ValueText, Text: s} }

// NumberValue returns a floating-point value.
func NumberValue(f float64) SqlValue { return SqlValue{Kind: ValueNumber, Number: f} }

// IntegerValue returns an integral value.
func IntegerValue(i int64) SqlValue { return SqlValue{Kind: ValueInteger, Integer: i} }

// BooleanValue returns a boolean value.
func BooleanValue(b bool) SqlValue { return SqlValue{Kind: ValueBoolean, Bool: b} }

// DateTimeValue returns a datetime value holding an already-formatted string.
func DateTimeValue(s string) SqlValue { return SqlValue{Kind: ValueDateTime, Text: s} }

// SqlStatement is one table-insert unit prior to text rendering. Every value
// row has exactly len(Columns) elements; a mismatch is a programming error in
// the builder, not a runtime condition.
type SqlStatement struct {
	TableName string
	Columns   []string
	Values    [][]SqlValue
}

// serialEpoch is the conventional spreadsheet date base. Day 0 is 1899-12-30,
// which already absorbs the historical 1900 leap-year bug.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// Serial day offsets that keep the decoded date within year 1 to 9999.
const (
	serialMin = -693593
	serialMax = 2958465
)

// CoerceCell maps one raw spreadsheet cell to its SQL value. It is total over
// the cell kinds: error markers degrade to NULL and an undecodable datetime
// serial degrades to its plain numeric value, so a single bad cell never
// aborts a conversion.
func CoerceCell(cell RawCell) SqlValue {
	switch cell.Kind {
	case CellEmpty:
		return NullValue()
	case CellText:
		return TextValue(cell.Text)
	case CellNumber:
		return NumberValue(cell.Number)
	case CellInteger:
		return IntegerValue(cell.Integer)
	case CellBool:
		return BooleanValue(cell.Bool)
	case CellDateTime:
		if s, ok := decodeSerial(cell.Number); ok {
			return DateTimeValue(s)
		}
		return NumberValue(cell.Number)
	case CellDateTimeISO:
		return DateTimeValue(cell.Text)
	case CellDurationISO:
		return TextValue(cell.Text)
	case CellError:
		return NullValue()
	}
	return NullValue()
}

// decodeSerial converts a spreadsheet serial day count into a
// "YYYY-MM-DD HH:MM:SS" string. The integer part is a day offset from the
// epoch; the fraction is the time of day as a share of 86400 seconds.
func decodeSerial(serial float64) (string, bool) {
	if math.IsNaN(serial) || math.IsInf(serial, 0) || serial < serialMin || serial > serialMax+1 {
		return "", false
	}

	days := math.Floor(serial)
	seconds := int(math.Round((serial - days) * 86400))

	t := serialEpoch.AddDate(0, 0, int(days)).Add(time.Duration(seconds) * time.Second)
	if t.Year() < 1 || t.Year() > 9999 {
		return "", false
	}
	return t.Format("2006-01-02 15:04:05"), true
}
