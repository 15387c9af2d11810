package sheet

import "fmt"

// MemorySheet is one in-memory sheet for a MemorySource.
type MemorySheet struct {
	Name string
	Rows []Row
}

// MemorySource serves sheets from memory. Used by tests and fixtures; it
// implements the same contract as ExcelSource.
type MemorySource struct {
	Sheets []MemorySheet
}

// SheetNames returns sheet names in declaration order.
func (s *MemorySource) SheetNames() ([]string, error) {
	names := make([]string, len(s.Sheets))
	for i, sh := range s.Sheets {
		names[i] = sh.Name
	}
	return names, nil
}

// Preview returns up to n leading rows of the named sheet.
func (s *MemorySource) Preview(name string, n int) ([]Row, error) {
	sh, err := s.find(name)
	if err != nil {
		return nil, err
	}
	rows := sh.Rows
	if len(rows) > n {
		rows = rows[:n]
	}
	return rows, nil
}

// Rows returns the header row at headerIdx and the data rows below it.
func (s *MemorySource) Rows(name string, headerIdx int) (Row, []Row, error) {
	sh, err := s.find(name)
	if err != nil {
		return nil, nil, err
	}
	if headerIdx >= len(sh.Rows) {
		return nil, nil, fmt.Errorf("header row %d past end of sheet %q (%d rows)", headerIdx, name, len(sh.Rows))
	}
	return sh.Rows[headerIdx], sh.Rows[headerIdx+1:], nil
}

func (s *MemorySource) find(name string) (*MemorySheet, error) {
	for i := range s.Sheets {
		if s.Sheets[i].Name == name {
			return &s.Sheets[i], nil
		}
	}
	return nil, fmt.Errorf("no such sheet: %q", name)
}
