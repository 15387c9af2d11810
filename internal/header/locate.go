package header

import (
	"strings"

	"github.com/pmla-casebook/internal/sheet"
)

// DefaultWindow is how many leading rows of a sheet are scanned for the
// header. Matches the preview depth the workbook source is asked for.
const DefaultWindow = 15

// Strong signals identify a header row outright: the case-number column label
// in the spellings the sheets actually use.
var strongSignals = []string{"ecir no", "ecir_no", "case no"}

// Locate scans up to window leading rows and returns the index of the most
// likely header row.
//
// A row whose concatenated cell text contains a strong signal wins
// immediately. A row pairing a serial-number label with a date or name label
// is only a fallback, taken when the whole window holds nothing strong. That
// priority must not be reversed: many sheets carry a "Sl. No." banner row
// above the real header. With no candidate at all the first row is assumed to
// be the header.
func Locate(rows []sheet.Row, window int) int {
	fallback := -1
	for i, row := range rows {
		if i >= window {
			break
		}
		rowStr := joinCells(row)
		for _, sig := range strongSignals {
			if strings.Contains(rowStr, sig) {
				return i
			}
		}
		if fallback == -1 && strings.Contains(rowStr, "sl. no") &&
			(strings.Contains(rowStr, "date") || strings.Contains(rowStr, "name")) {
			fallback = i
		}
	}
	if fallback != -1 {
		return fallback
	}
	return 0
}

// joinCells builds the lowercase concatenation of a row's non-missing cells.
func joinCells(row sheet.Row) string {
	var parts []string
	for _, cell := range row {
		if cell != "" {
			parts = append(parts, cell)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}
