// Package generator builds SQL INSERT statements from decoded workbook data
// and renders them as literal SQL text.
package generator

import (
	"strconv"
	"strings"

	"github.com/ukaji3/xlsx2sql-go/pkg/xlsx2sql/models"
)

// FormatIdentifier wraps an identifier in backticks. Embedded backticks are
// not doubled; a sheet or column name containing a backtick produces
// malformed SQL.
func FormatIdentifier(name string) string {
	return "`" + name + "`"
}

// EscapeString doubles every single quote, the standard SQL string-literal
// escape. This is the sole injection defense for text literals.
func EscapeString(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// FormatStringLiteral returns s as a single-quoted, escaped SQL literal.
func FormatStringLiteral(s string) string {
	return "'" + EscapeString(s) + "'"
}

// FormatValue renders one SqlValue as SQL literal text. It is total over the
// value kinds. Datetime strings are quoted verbatim without escaping: they
// come from the serial decoder or an ISO-tagged source cell, not from
// free-form text.
func FormatValue(v models.SqlValue) string {
	switch v.Kind {
	case models.ValueNull:
		return "NULL"
	case models.ValueText:
		return FormatStringLiteral(v.Text)
	case models.ValueNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case models.ValueInteger:
		return strconv.FormatInt(v.Integer, 10)
	case models.ValueBoolean:
		if v.Bool {
			return "1"
		}
		return "0"
	case models.ValueDateTime:
		return "'" + v.Text + "'"
	}
	return "NULL"
}

// FormatStatement renders one statement as INSERT text. Columns are
// comma-space joined, row tuples comma joined and separated by newlines, and
// the statement ends with a semicolon.
func FormatStatement(stmt models.SqlStatement) string {
	cols := make([]string, len(stmt.Columns))
	for i, col := range stmt.Columns {
		cols[i] = FormatIdentifier(col)
	}

	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(FormatIdentifier(stmt.TableName))
	b.WriteString(" (")
	b.WriteString(strings.Join(cols, ", "))
	b.WriteString(") VALUES\n")
	for i, row := range stmt.Values {
		if i > 0 {
			b.WriteString(",\n")
		}
		b.WriteByte('(')
		for j, v := range row {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(FormatValue(v))
		}
		b.WriteByte(')')
	}
	b.WriteByte(';')
	return b.String()
}

// FormatStatements concatenates rendered statements in order with a blank
// line between statements and a single trailing newline.
func FormatStatements(stmts []models.SqlStatement) string {
	var b strings.Builder
	for i, stmt := range stmts {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(FormatStatement(stmt))
		b.WriteByte('\n')
	}
	return b.String()
}
