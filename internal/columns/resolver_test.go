package columns

import "testing"

func TestRuleMatches(t *testing.T) {
	tests := []struct {
		name  string
		rule  Rule
		label string
		want  bool
	}{
		{"single required", Rule{Required: []string{"date"}}, "Date of Arrest", true},
		{"case insensitive", Rule{Required: []string{"date"}}, "DATE", true},
		{"all required must hit", Rule{Required: []string{"ecir", "no"}}, "ECIR Number", true},
		{"one required missing", Rule{Required: []string{"ecir", "no"}}, "ECIR Date", false},
		{"excluded blocks", PersonName, "Investigating Officer Name", false},
		{"excluded absent", PersonName, "Name of Accused", true},
		{"empty label", Rule{Required: []string{"date"}}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rule.Matches(tt.label)
			if got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.label, got, tt.want)
			}
		})
	}
}

func TestResolveColumnOrderWins(t *testing.T) {
	labels := []string{"Remarks", "Date of Search", "Date of Seizure"}

	got, ok := Resolve(labels, Date)
	if !ok {
		t.Fatal("Resolve() found no match")
	}
	if got != "Date of Search" {
		t.Errorf("Resolve() = %q, want first date column %q", got, "Date of Search")
	}
}

func TestResolveNoMatch(t *testing.T) {
	if label, ok := Resolve([]string{"Sl. No.", "Remarks"}, Date); ok {
		t.Errorf("Resolve() = %q, want no match", label)
	}
}

func TestResolveAnyIdentifier(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		want   string
		wantOK bool
	}{
		{"ecir column", []string{"Sl. No.", "ECIR No.", "Date"}, "ECIR No.", true},
		{"case column", []string{"Sl. No.", "Case No", "Date"}, "Case No", true},
		{"column order beats rule order", []string{"Case No", "ECIR No"}, "Case No", true},
		{"column order with gap", []string{"Case No", "Remarks", "ECIR No"}, "Case No", true},
		{"neither", []string{"Sl. No.", "File No"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveAny(tt.labels, Identifier)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ResolveAny() = %q, %v, want %q, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestResolveAnyLocation(t *testing.T) {
	labels := []string{"Name", "Place of Search", "Address of Premises"}

	got, ok := ResolveAny(labels, Location)
	if !ok {
		t.Fatal("ResolveAny() found no match")
	}
	// Both location columns match; the earlier one wins.
	if got != "Place of Search" {
		t.Errorf("ResolveAny() = %q, want %q", got, "Place of Search")
	}
}
