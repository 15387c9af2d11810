package registry

import (
	"sort"
	"time"
)

// SearchFact records one search conducted under a case. Dates stay as the raw
// cell text: event dates are display data, not join keys.
type SearchFact struct {
	Date     string `json:"date"`
	Location string `json:"location"`
	Sheet    string `json:"sheet"`
}

// ArrestFact records one arrest under a case.
type ArrestFact struct {
	Name  string `json:"name"`
	Date  string `json:"date"`
	Sheet string `json:"sheet"`
}

// OpaqueFact carries categories not yet broken into named fields (provisional
// attachment orders, prosecution complaints) as a raw label→value bag.
// Imposing structure the sheets do not reliably support would just invent
// data; the bag keeps everything for later extraction.
type OpaqueFact struct {
	Fields map[string]string `json:"data"`
	Sheet  string            `json:"sheet"`
}

// Fact is one extracted observation attributable to a case. Appending a fact
// routes it to the right sequence on the record; facts are never mutated or
// removed once appended.
type Fact interface {
	appendTo(*CaseRecord)
}

func (f SearchFact) appendTo(c *CaseRecord) {
	c.Searches = append(c.Searches, f)
}

// An arrest also contributes its subject to the case's person set.
func (f ArrestFact) appendTo(c *CaseRecord) {
	c.Arrests = append(c.Arrests, f)
	if f.Name != "" {
		c.AddPerson(f.Name)
	}
}

// AttachmentFact marks an opaque fact as a provisional attachment order.
type AttachmentFact OpaqueFact

func (f AttachmentFact) appendTo(c *CaseRecord) {
	c.PAOs = append(c.PAOs, OpaqueFact(f))
}

// ProsecutionFact marks an opaque fact as a prosecution complaint.
type ProsecutionFact OpaqueFact

func (f ProsecutionFact) appendTo(c *CaseRecord) {
	c.PCs = append(c.PCs, OpaqueFact(f))
}

// CaseRecord is the consolidated aggregate for one ECIR. Fact sequences are
// append-only in processing order; only the person set and the first-write
// registration date mutate in place.
type CaseRecord struct {
	ECIRNo      string
	ECIRDate    *time.Time
	Status      string
	ZonalOffice string

	persons map[string]struct{}

	Searches []SearchFact
	Arrests  []ArrestFact
	PAOs     []OpaqueFact
	PCs      []OpaqueFact
}

func newCaseRecord(ecirNo string) *CaseRecord {
	return &CaseRecord{
		ECIRNo:  ecirNo,
		Status:  "Unknown",
		persons: make(map[string]struct{}),
	}
}

// AddPerson adds a name to the case's person set. The set only grows;
// duplicates are absorbed.
func (c *CaseRecord) AddPerson(name string) {
	if name == "" {
		return
	}
	c.persons[name] = struct{}{}
}

// Persons returns the person set sorted, so serialized output is stable
// across runs even though insertion order is not meaningful.
func (c *CaseRecord) Persons() []string {
	names := make([]string, 0, len(c.persons))
	for name := range c.persons {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
