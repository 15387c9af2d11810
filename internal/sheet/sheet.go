package sheet

// Row is one spreadsheet row as scalar cell values. The empty string is the
// missing-value marker: blank cells and cells past the ragged right edge of a
// row both read as "".
type Row []string

// Cell returns the value at idx, or "" when the row is too short.
func (r Row) Cell(idx int) string {
	if idx < 0 || idx >= len(r) {
		return ""
	}
	return r[idx]
}

// Source yields workbook sheets as ordered rows of cells. Sheet order is the
// workbook's own order and must be stable across calls: the consolidation run
// depends on it.
type Source interface {
	// SheetNames returns the sheet names in workbook order.
	SheetNames() ([]string, error)

	// Preview returns up to n leading rows of the named sheet, with no
	// header assumption.
	Preview(name string, n int) ([]Row, error)

	// Rows returns the header row at headerIdx followed by the data rows
	// below it.
	Rows(name string, headerIdx int) (header Row, data []Row, err error)
}
