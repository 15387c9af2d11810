package sheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExcelSource reads sheets from an .xlsx workbook via excelize.
type ExcelSource struct {
	file *excelize.File
}

// OpenExcel opens a workbook. A workbook that cannot be opened is the one
// fatal condition in ingestion, so the error is returned unchanged for the
// caller to surface.
func OpenExcel(path string) (*ExcelSource, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &ExcelSource{file: f}, nil
}

// Close releases the underlying workbook.
func (s *ExcelSource) Close() error {
	return s.file.Close()
}

// SheetNames returns sheet names in workbook order.
func (s *ExcelSource) SheetNames() ([]string, error) {
	return s.file.GetSheetList(), nil
}

// Preview returns up to n leading rows of the named sheet.
func (s *ExcelSource) Preview(name string, n int) ([]Row, error) {
	rows, err := s.readAll(name)
	if err != nil {
		return nil, err
	}
	if len(rows) > n {
		rows = rows[:n]
	}
	return rows, nil
}

// Rows returns the header row at headerIdx and the data rows below it.
func (s *ExcelSource) Rows(name string, headerIdx int) (Row, []Row, error) {
	rows, err := s.readAll(name)
	if err != nil {
		return nil, nil, err
	}
	if headerIdx >= len(rows) {
		return nil, nil, fmt.Errorf("header row %d past end of sheet %q (%d rows)", headerIdx, name, len(rows))
	}
	return rows[headerIdx], rows[headerIdx+1:], nil
}

func (s *ExcelSource) readAll(name string) ([]Row, error) {
	raw, err := s.file.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", name, err)
	}
	rows := make([]Row, len(raw))
	for i, r := range raw {
		rows[i] = Row(r)
	}
	return rows, nil
}
