package extract

import (
	"github.com/pmla-casebook/internal/classify"
	"github.com/pmla-casebook/internal/columns"
	"github.com/pmla-casebook/internal/registry"
)

// FromRow builds the category-specific fact for one data row. The row is the
// label→value mapping of the row's non-missing cells (identifier column
// excluded); order lists those labels in sheet column order, which is the
// order fuzzy lookups resolve in. Returns nil when the category carries no
// structured fact.
func FromRow(category classify.Category, row map[string]string, order []string, sheetName string) registry.Fact {
	switch category {
	case classify.Search:
		fact := registry.SearchFact{Sheet: sheetName}
		if label, ok := columns.Resolve(order, columns.Date); ok {
			fact.Date = row[label]
		}
		if label, ok := columns.ResolveAny(order, columns.Location); ok {
			fact.Location = row[label]
		}
		return fact

	case classify.Arrest:
		fact := registry.ArrestFact{Sheet: sheetName}
		if label, ok := columns.Resolve(order, columns.Name); ok {
			fact.Name = row[label]
		}
		if label, ok := columns.Resolve(order, columns.Date); ok {
			fact.Date = row[label]
		}
		return fact

	case classify.Attachment:
		return registry.AttachmentFact{Fields: copyRow(row), Sheet: sheetName}

	case classify.Prosecution:
		return registry.ProsecutionFact{Fields: copyRow(row), Sheet: sheetName}

	default:
		return nil
	}
}

// Persons returns the person names found in a row: the value of every column
// whose label looks like a name column but not an officer column. This scan
// runs for every row of every sheet, whatever the category; even an
// unclassified sheet can tie people to a case.
func Persons(row map[string]string, order []string) []string {
	var names []string
	for _, label := range order {
		if columns.PersonName.Matches(label) {
			if v := row[label]; v != "" {
				names = append(names, v)
			}
		}
	}
	return names
}

// copyRow detaches the fact's field bag from the pipeline's working map.
func copyRow(row map[string]string) map[string]string {
	fields := make(map[string]string, len(row))
	for k, v := range row {
		fields[k] = v
	}
	return fields
}
