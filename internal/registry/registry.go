package registry

import "time"

// Registry maps canonical case keys to consolidated records. One registry is
// built per consolidation run; it is explicitly owned and passed around, not
// process-global state. Not safe for concurrent mutation: the run that owns a
// registry is the single writer.
type Registry struct {
	cases map[string]*CaseRecord
	order []string
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{cases: make(map[string]*CaseRecord)}
}

// GetOrCreate returns the record for key, creating it on first sight. A case
// is created lazily by whichever sheet first yields its identifier; no sheet
// is privileged as the originator.
func (r *Registry) GetOrCreate(key string) *CaseRecord {
	if rec, ok := r.cases[key]; ok {
		return rec
	}
	rec := newCaseRecord(key)
	r.cases[key] = rec
	r.order = append(r.order, key)
	return rec
}

// Get returns the record for key if present.
func (r *Registry) Get(key string) (*CaseRecord, bool) {
	rec, ok := r.cases[key]
	return rec, ok
}

// Len returns the number of cases.
func (r *Registry) Len() int {
	return len(r.cases)
}

// Keys returns case keys in creation order.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.order))
	copy(keys, r.order)
	return keys
}

// SetDateIfAbsent fixes the case registration date. First write wins: a later
// sheet supplying a different date does not overwrite it. No-op for an
// unknown key.
func (r *Registry) SetDateIfAbsent(key string, date time.Time) {
	rec, ok := r.cases[key]
	if !ok || rec.ECIRDate != nil {
		return
	}
	d := date
	rec.ECIRDate = &d
}

// AppendFact appends a fact to the record's sequence for its kind. No-op for
// an unknown key or a nil fact.
func (r *Registry) AppendFact(key string, fact Fact) {
	rec, ok := r.cases[key]
	if !ok || fact == nil {
		return
	}
	fact.appendTo(rec)
}
