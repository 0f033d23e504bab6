package xlsx2sql

import (
	"github.com/ukaji3/xlsx2sql-go/pkg/xlsx2sql/generator"
	"github.com/ukaji3/xlsx2sql-go/pkg/xlsx2sql/models"
)

// Conversion errors, re-exported so callers of Convert can match them with
// errors.Is without importing the subpackages that raise them.
var (
	// ErrEmptySheet indicates a sheet grid with no rows at all.
	ErrEmptySheet = models.ErrEmptySheet
	// ErrMissingHeaders indicates a sheet whose first row is entirely blank.
	ErrMissingHeaders = models.ErrMissingHeaders
	// ErrNoData indicates that no sheet produced any insertable rows.
	ErrNoData = generator.ErrNoData
)

// SheetError identifies the sheet a structural error came from.
type SheetError = generator.SheetError
