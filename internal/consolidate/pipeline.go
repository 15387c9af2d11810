package consolidate

import (
	"fmt"
	"log"

	"github.com/pmla-casebook/internal/classify"
	"github.com/pmla-casebook/internal/columns"
	"github.com/pmla-casebook/internal/debug"
	"github.com/pmla-casebook/internal/extract"
	"github.com/pmla-casebook/internal/header"
	"github.com/pmla-casebook/internal/normalize"
	"github.com/pmla-casebook/internal/registry"
	"github.com/pmla-casebook/internal/sheet"
)

// Pipeline consolidates every sheet of a workbook into one registry. Sheets
// are processed strictly in workbook order and rows in sheet order: both the
// header locator's first-match rule and the registration date's
// first-write-wins rule depend on that ordering.
type Pipeline struct {
	source sheet.Source
	window int
}

// Report summarizes a run for diagnostics and tests.
type Report struct {
	SheetsProcessed int
	SheetsSkipped   []string
	RowsSkipped     int
	Failures        []*SheetError
}

// NewPipeline creates a pipeline over a sheet source.
func NewPipeline(source sheet.Source) *Pipeline {
	return &Pipeline{source: source, window: header.DefaultWindow}
}

// Run processes every sheet and returns the populated registry. Per-sheet
// failures are reported, never fatal: the data is messy by nature and a
// best-effort consolidated view beats an all-or-nothing failure. The only
// error returned is a source that cannot list its sheets at all.
func (p *Pipeline) Run(localDebug bool) (*registry.Registry, *Report, error) {
	defer debug.DebugTiming(localDebug, "consolidation run")()

	names, err := p.source.SheetNames()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list sheets: %w", err)
	}

	reg := registry.New()
	report := &Report{}

	for _, name := range names {
		if err := p.processSheet(localDebug, reg, report, name); err != nil {
			sheetErr := &SheetError{Sheet: name, Err: err}
			report.Failures = append(report.Failures, sheetErr)
			log.Printf("  > Error processing %s: %v", name, err)
			continue
		}
	}

	debug.DebugOutput(localDebug, "consolidated %d cases from %d sheets (%d skipped, %d rows dropped)",
		reg.Len(), report.SheetsProcessed, len(report.SheetsSkipped), report.RowsSkipped)

	return reg, report, nil
}

// processSheet consolidates one sheet into the registry. Any panic while
// processing abandons this sheet only.
func (p *Pipeline) processSheet(localDebug bool, reg *registry.Registry, report *Report, name string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sheet processing failure: %v", r)
		}
	}()

	preview, err := p.source.Preview(name, p.window)
	if err != nil {
		return err
	}
	headerIdx := header.Locate(preview, p.window)
	debug.DebugSheet(localDebug, name, "header row at index %d", headerIdx)

	headerRow, data, err := p.source.Rows(name, headerIdx)
	if err != nil {
		return err
	}

	labels := make([]string, len(headerRow))
	for i, cell := range headerRow {
		labels[i] = normalize.Label(cell)
	}

	idLabel, ok := columns.ResolveAny(labels, columns.Identifier)
	if !ok {
		report.SheetsSkipped = append(report.SheetsSkipped, name)
		log.Printf("  > Skipping %s: %v", name, &MissingIdentifierColumnError{Sheet: name, Labels: labels})
		return nil
	}
	idIdx := labelIndex(labels, idLabel)

	category := classify.Sheet(name)
	debug.DebugSheet(localDebug, name, "category %s, key column %q", category, idLabel)

	// The registration-date column only exists on case-list style sheets;
	// first-write-wins in the registry sorts out which sheet supplies it.
	regDateLabel, _ := columns.ResolveAny(labels, columns.RegistrationDate)

	for _, raw := range data {
		p.processRow(reg, report, name, category, labels, idIdx, regDateLabel, raw)
	}

	report.SheetsProcessed++
	return nil
}

// processRow consolidates one data row. A row that panics during value access
// is dropped; the rest of the sheet goes on.
func (p *Pipeline) processRow(reg *registry.Registry, report *Report, name string,
	category classify.Category, labels []string, idIdx int, regDateLabel string, raw sheet.Row) {

	defer func() {
		if r := recover(); r != nil {
			report.RowsSkipped++
		}
	}()

	key, ok := normalize.Key(raw.Cell(idIdx))
	if !ok {
		return
	}

	rec := reg.GetOrCreate(key)

	row, order := rowValues(labels, raw, idIdx)

	if regDateLabel != "" {
		if d, ok := normalize.Date(row[regDateLabel]); ok {
			reg.SetDateIfAbsent(key, d)
		}
	}

	if fact := extract.FromRow(category, row, order, name); fact != nil {
		reg.AppendFact(key, fact)
	}

	for _, person := range extract.Persons(row, order) {
		rec.AddPerson(person)
	}
}

// rowValues maps a positional row onto its header labels, dropping missing
// values and the identifier column. order preserves sheet column order for
// the fuzzy lookups downstream.
func rowValues(labels []string, raw sheet.Row, idIdx int) (map[string]string, []string) {
	row := make(map[string]string, len(labels))
	var order []string
	for i, label := range labels {
		if i == idIdx || label == "" {
			continue
		}
		value := raw.Cell(i)
		if value == "" {
			continue
		}
		if _, seen := row[label]; seen {
			continue
		}
		row[label] = value
		order = append(order, label)
	}
	return row, order
}

func labelIndex(labels []string, label string) int {
	for i, l := range labels {
		if l == label {
			return i
		}
	}
	return -1
}
