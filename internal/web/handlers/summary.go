package handlers

import (
	"net/http"
	"sort"
	"strings"

	"github.com/pmla-casebook/internal/normalize"
	"github.com/pmla-casebook/internal/registry"
)

// SummaryHandler serves aggregate statistics over the whole snapshot.
type SummaryHandler struct {
	Cases registry.Snapshot
}

// Summary is the dashboard's headline numbers.
type Summary struct {
	TotalCases      int            `json:"total_cases"`
	TotalSearches   int            `json:"total_searches"`
	TotalArrests    int            `json:"total_arrests"`
	TotalPAOs       int            `json:"total_paos"`
	TotalPCs        int            `json:"total_pcs"`
	TotalPersons    int            `json:"total_persons"`
	AttachmentValue float64        `json:"attachment_value"`
	CasesByYear     map[string]int `json:"cases_by_year"`
}

// GetSummary computes snapshot-wide totals. The attachment value is a
// best-effort sum over opaque attachment fields whose label mentions a value
// or amount; unparseable cells count as zero.
func (h *SummaryHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary := Summary{CasesByYear: make(map[string]int)}

	persons := make(map[string]struct{})
	for _, c := range h.Cases {
		summary.TotalCases++
		summary.TotalSearches += len(c.Searches)
		summary.TotalArrests += len(c.Arrests)
		summary.TotalPAOs += len(c.PAOs)
		summary.TotalPCs += len(c.PCs)

		for _, p := range c.PersonsInvolved {
			persons[p] = struct{}{}
		}

		if c.ECIRDate != nil && len(*c.ECIRDate) >= 4 {
			summary.CasesByYear[(*c.ECIRDate)[:4]]++
		}

		for _, pao := range c.PAOs {
			summary.AttachmentValue += attachmentValue(pao.Fields)
		}
	}
	summary.TotalPersons = len(persons)

	writeJSON(w, summary)
}

// attachmentValue pulls the first monetary-looking field out of an opaque
// attachment fact. Labels are scanned in sorted order so repeated runs agree
// on which field wins when several qualify.
func attachmentValue(fields map[string]string) float64 {
	labels := make([]string, 0, len(fields))
	for label := range fields {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		lower := strings.ToLower(label)
		if !strings.Contains(lower, "value") && !strings.Contains(lower, "amount") {
			continue
		}
		if v, ok := normalize.Currency(fields[label]); ok {
			return v
		}
	}
	return 0
}
