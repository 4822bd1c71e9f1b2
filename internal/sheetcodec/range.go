package sheetcodec

import "fmt"

// ColumnLetter converts a 1-based column number to its spreadsheet letter:
// 1 -> A, 26 -> Z, 27 -> AA, 53 -> BA. Repeated base-26 division with
// 1-based digits.
func ColumnLetter(n int) string {
	letters := ""
	for n > 0 {
		n--
		letters = string(rune('A'+n%26)) + letters
		n /= 26
	}
	return letters
}

// RowRange builds the A1 span for one full-width data row, e.g.
// RowRange("Visitors", 5, 6) -> "Visitors!A5:F5".
func RowRange(sheet string, row, width int) string {
	return fmt.Sprintf("%s!A%d:%s%d", sheet, row, ColumnLetter(width), row)
}

// HeaderRange addresses the header row of a sheet, e.g. "Visitors!1:1".
func HeaderRange(sheet string) string {
	return sheet + "!1:1"
}
