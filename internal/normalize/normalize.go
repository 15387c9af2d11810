package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Key canonicalizes a raw case-identifier cell into a join key. The key is
// used for exact joins across sheets, so normalization is minimal: trim
// whitespace, nothing else. No case-folding, no punctuation stripping.
// The second return is false for a missing or blank cell.
func Key(val string) (string, bool) {
	key := strings.TrimSpace(val)
	if key == "" {
		return "", false
	}
	return key, true
}

var reSpaces = regexp.MustCompile(`  +`)

// Label cleans a header cell into a usable column label: trims, folds
// embedded newlines into spaces and collapses doubled spaces. Spreadsheet
// headers routinely wrap across lines inside one cell.
func Label(s string) string {
	label := strings.TrimSpace(s)
	label = strings.ReplaceAll(label, "\n", " ")
	return reSpaces.ReplaceAllString(label, " ")
}

// Date layouts seen across the source sheets, tried in order. Indian
// government spreadsheets mix DD/MM/YYYY and DD.MM.YYYY freely; ISO shows up
// in cells that were typed rather than date-formatted.
var dateLayouts = []string{
	"02/01/2006",
	"02/01/06",
	"02-01-2006",
	"02.01.2006",
	"2006-01-02",
	"2006-01-02T15:04:05",
	"02/01/2006 15:04:05",
	"1/2/06 15:04",
}

// Date coerces a cell value to a date. Best effort: an unparseable value is
// reported as absent, never as an error.
func Date(val string) (time.Time, bool) {
	trimmed := strings.TrimSpace(val)
	if trimmed == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Currency coerces a cell value holding an amount (possibly with thousands
// separators) to a float. Returns false for blank or non-numeric values.
func Currency(val string) (float64, bool) {
	trimmed := strings.TrimSpace(val)
	if trimmed == "" {
		return 0, false
	}
	trimmed = strings.ReplaceAll(trimmed, ",", "")
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
