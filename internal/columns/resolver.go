package columns

import "strings"

// Rule is one fuzzy column lookup: a label matches when its lowercased form
// contains every required substring and none of the excluded ones. Keeping
// the lookups declarative keeps them testable in isolation instead of
// scattering string checks through the extractors.
type Rule struct {
	Required []string
	Excluded []string
}

// Matches reports whether the label satisfies the rule.
func (r Rule) Matches(label string) bool {
	lower := strings.ToLower(label)
	for _, req := range r.Required {
		if !strings.Contains(lower, req) {
			return false
		}
	}
	for _, ex := range r.Excluded {
		if strings.Contains(lower, ex) {
			return false
		}
	}
	return true
}

// Resolve returns the first label matching the rule. Labels are tried in
// their sheet column order, so ties break by column position.
func Resolve(labels []string, rule Rule) (string, bool) {
	for _, label := range labels {
		if rule.Matches(label) {
			return label, true
		}
	}
	return "", false
}

// ResolveAny returns the first label matching any of the rules. The rules are
// OR-composed alternatives of one lookup, so resolution still walks the sheet
// column order and ties break by column position, same as Resolve.
func ResolveAny(labels []string, rules []Rule) (string, bool) {
	for _, label := range labels {
		for _, rule := range rules {
			if rule.Matches(label) {
				return label, true
			}
		}
	}
	return "", false
}

// Identifier finds the case-number column: an ECIR number or a plain case
// number, either way qualified with "no".
var Identifier = []Rule{
	{Required: []string{"ecir", "no"}},
	{Required: []string{"case", "no"}},
}

// RegistrationDate finds the column carrying the case registration date, as
// opposed to an event date.
var RegistrationDate = []Rule{
	{Required: []string{"date", "ecir"}},
	{Required: []string{"date", "case"}},
}

// Location finds where a search happened.
var Location = []Rule{
	{Required: []string{"address"}},
	{Required: []string{"place"}},
}

// Date finds any date column.
var Date = Rule{Required: []string{"date"}}

// Name finds any person-name column.
var Name = Rule{Required: []string{"name"}}

// PersonName finds columns naming case persons, skipping labels like
// "Investigating Officer Name" that name ED staff rather than persons
// involved in the case.
var PersonName = Rule{Required: []string{"name"}, Excluded: []string{"officer"}}
