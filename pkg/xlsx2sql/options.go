// Package xlsx2sql converts spreadsheet workbooks into SQL INSERT statement
// text.
package xlsx2sql

import "github.com/ukaji3/xlsx2sql-go/pkg/xlsx2sql/generator"

// Options configures a conversion run.
type Options struct {
	// OnSheetError selects whether a structurally broken sheet aborts the
	// whole conversion (generator.SheetErrorAbort) or is dropped and
	// reported (generator.SheetErrorSkip). Empty means abort.
	OnSheetError generator.SheetErrorMode
}

// DefaultOptions returns the default conversion options: whole-or-nothing
// sheet handling.
func DefaultOptions() Options {
	return Options{OnSheetError: generator.SheetErrorAbort}
}
