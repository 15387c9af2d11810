package registry

// CaseJSON is the serialized shape of one consolidated case. These field
// names are the contract the dashboard and explorer consume; they must stay
// stable across pipeline versions.
type CaseJSON struct {
	ECIRNo          string       `json:"ecir_no"`
	ECIRDate        *string      `json:"ecir_date"`
	Status          string       `json:"status"`
	ZonalOffice     *string      `json:"zonal_office"`
	PersonsInvolved []string     `json:"persons_involved"`
	Searches        []SearchFact `json:"searches"`
	Arrests         []ArrestFact `json:"arrests"`
	PAOs            []OpaqueFact `json:"paos"`
	PCs             []OpaqueFact `json:"pcs"`
}

// Snapshot is the serializable mapping from case identifier to record.
type Snapshot map[string]CaseJSON

// isoDateLayout matches the original export format: local date-time, no zone.
const isoDateLayout = "2006-01-02T15:04:05"

// Snapshot converts the registry into its serializable form. Fact sequences
// are copied, never aliased, and empty sequences serialize as [] rather than
// null so consumers can range without nil checks.
func (r *Registry) Snapshot() Snapshot {
	snap := make(Snapshot, len(r.cases))
	for key, rec := range r.cases {
		c := CaseJSON{
			ECIRNo:          rec.ECIRNo,
			Status:          rec.Status,
			PersonsInvolved: rec.Persons(),
			Searches:        append([]SearchFact{}, rec.Searches...),
			Arrests:         append([]ArrestFact{}, rec.Arrests...),
			PAOs:            append([]OpaqueFact{}, rec.PAOs...),
			PCs:             append([]OpaqueFact{}, rec.PCs...),
		}
		if rec.ECIRDate != nil {
			iso := rec.ECIRDate.Format(isoDateLayout)
			c.ECIRDate = &iso
		}
		if rec.ZonalOffice != "" {
			zo := rec.ZonalOffice
			c.ZonalOffice = &zo
		}
		snap[key] = c
	}
	return snap
}
