package classify

import "testing"

func TestSheet(t *testing.T) {
	tests := []struct {
		name      string
		sheetName string
		want      Category
	}{
		{"search list", "List of Search Cases", Search},
		{"arrest register", "Arrest Register", Arrest},
		{"pao details", "PAO Details", Attachment},
		{"attachment spelling", "Attachment Orders 2021", Attachment},
		{"prosecution complaint", "PC Filed", Prosecution},
		{"complaint spelling", "Complaint Register", Prosecution},
		{"unmatched name", "Random Sheet", Other},
		{"empty name", "", Other},
		{"case insensitive", "ARREST summary", Arrest},
		// Priority order: earlier keyword sets win on names matching several.
		{"arrest beats pao", "PAO and Arrest Summary", Arrest},
		{"search beats arrest", "Searches before arrest", Search},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sheet(tt.sheetName)
			if got != tt.want {
				t.Errorf("Sheet(%q) = %s, want %s", tt.sheetName, got, tt.want)
			}
		})
	}
}

func TestCategoryString(t *testing.T) {
	tests := []struct {
		category Category
		want     string
	}{
		{Search, "search"},
		{Arrest, "arrest"},
		{Attachment, "attachment"},
		{Prosecution, "prosecution"},
		{Other, "other"},
	}

	for _, tt := range tests {
		if got := tt.category.String(); got != tt.want {
			t.Errorf("Category(%d).String() = %q, want %q", tt.category, got, tt.want)
		}
	}
}
