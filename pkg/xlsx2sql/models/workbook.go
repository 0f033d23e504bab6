package models

// WorkbookData is the decoded contents of one workbook.
type WorkbookData struct {
	// BookName is the workbook file name (no path).
	BookName string
	// Sheets holds the decoded sheets in workbook order.
	Sheets []SheetData
}
