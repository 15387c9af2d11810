package handlers

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/pmla-casebook/internal/registry"
)

// CasesHandler serves the consolidated case records.
type CasesHandler struct {
	Cases registry.Snapshot
}

// CaseSummary is the list-view shape: identity plus fact counts, no payloads.
type CaseSummary struct {
	ECIRNo       string  `json:"ecir_no"`
	ECIRDate     *string `json:"ecir_date"`
	Status       string  `json:"status"`
	Persons      int     `json:"persons"`
	Searches     int     `json:"searches"`
	Arrests      int     `json:"arrests"`
	Attachments  int     `json:"attachments"`
	Prosecutions int     `json:"prosecutions"`
}

// ListCases returns case summaries ordered by identifier.
func (h *CasesHandler) ListCases(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit := parseIntParam(query.Get("limit"), 50)
	if limit > 500 {
		limit = 500
	}
	offset := parseIntParam(query.Get("offset"), 0)

	summaries := h.summaries()
	total := len(summaries)

	if offset > len(summaries) {
		offset = len(summaries)
	}
	summaries = summaries[offset:]
	if len(summaries) > limit {
		summaries = summaries[:limit]
	}

	writeJSON(w, map[string]interface{}{
		"total": total,
		"cases": summaries,
	})
}

// GetCase returns one full case record by identifier.
func (h *CasesHandler) GetCase(w http.ResponseWriter, r *http.Request) {
	ecir := mux.Vars(r)["ecir"]

	c, ok := h.Cases[ecir]
	if !ok {
		http.Error(w, "Case not found", http.StatusNotFound)
		return
	}
	writeJSON(w, c)
}

// SearchCases returns full records whose identifier or persons contain the
// query, case-insensitively.
func (h *CasesHandler) SearchCases(w http.ResponseWriter, r *http.Request) {
	term := strings.ToLower(r.URL.Query().Get("q"))
	if term == "" {
		http.Error(w, "Search term required", http.StatusBadRequest)
		return
	}

	var results []registry.CaseJSON
	for ecir, c := range h.Cases {
		if strings.Contains(strings.ToLower(ecir), term) || personMatch(c, term) {
			results = append(results, c)
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].ECIRNo < results[j].ECIRNo
	})
	if results == nil {
		results = []registry.CaseJSON{}
	}

	writeJSON(w, map[string]interface{}{
		"count":   len(results),
		"results": results,
	})
}

func (h *CasesHandler) summaries() []CaseSummary {
	summaries := make([]CaseSummary, 0, len(h.Cases))
	for _, c := range h.Cases {
		summaries = append(summaries, CaseSummary{
			ECIRNo:       c.ECIRNo,
			ECIRDate:     c.ECIRDate,
			Status:       c.Status,
			Persons:      len(c.PersonsInvolved),
			Searches:     len(c.Searches),
			Arrests:      len(c.Arrests),
			Attachments:  len(c.PAOs),
			Prosecutions: len(c.PCs),
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].ECIRNo < summaries[j].ECIRNo
	})
	return summaries
}

func personMatch(c registry.CaseJSON, term string) bool {
	for _, person := range c.PersonsInvolved {
		if strings.Contains(strings.ToLower(person), term) {
			return true
		}
	}
	return false
}

func parseIntParam(s string, defaultValue int) int {
	if s == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return defaultValue
	}
	return v
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Encoding error", http.StatusInternalServerError)
	}
}
