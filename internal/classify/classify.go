package classify

import "strings"

// Category is the semantic kind of a sheet, decided from its name.
type Category int

const (
	Other Category = iota
	Search
	Arrest
	Attachment
	Prosecution
)

// String returns the category name used in diagnostics and exports.
func (c Category) String() string {
	switch c {
	case Search:
		return "search"
	case Arrest:
		return "arrest"
	case Attachment:
		return "attachment"
	case Prosecution:
		return "prosecution"
	default:
		return "other"
	}
}

// Keyword sets tested in fixed priority order: the first set with a hit wins,
// so a sheet named "PAO and Arrest Summary" classifies as arrest, not
// attachment. "pao" is a provisional attachment order; "pc" a prosecution
// complaint.
var rules = []struct {
	category Category
	keywords []string
}{
	{Search, []string{"search"}},
	{Arrest, []string{"arrest"}},
	{Attachment, []string{"pao", "attach"}},
	{Prosecution, []string{"pc", "complaint"}},
}

// Sheet maps a sheet name to its category. An unrecognized name is Other,
// which still contributes person names but no structured fact.
func Sheet(name string) Category {
	lower := strings.ToLower(name)
	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return Other
}
