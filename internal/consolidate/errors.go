package consolidate

import "fmt"

// MissingIdentifierColumnError reports a sheet with no resolvable case-number
// column. The sheet contributes nothing; the run continues.
type MissingIdentifierColumnError struct {
	Sheet  string
	Labels []string
}

func (e *MissingIdentifierColumnError) Error() string {
	preview := e.Labels
	if len(preview) > 3 {
		preview = preview[:3]
	}
	return fmt.Sprintf("no ECIR/Case No column in sheet %q (columns: %v...)", e.Sheet, preview)
}

// SheetError records a non-fatal failure while processing one sheet.
type SheetError struct {
	Sheet string
	Err   error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q: %v", e.Sheet, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}
