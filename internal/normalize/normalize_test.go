package normalize

import (
	"testing"
	"time"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{"surrounding whitespace trimmed", " ABC/123 ", "ABC/123", true},
		{"already clean", "ECIR/01/HQ/2020", "ECIR/01/HQ/2020", true},
		{"empty is no key", "", "", false},
		{"whitespace only is no key", "   ", "", false},
		{"no case folding", "ecir/01", "ecir/01", true},
		{"inner punctuation kept", "ECIR-01.HQ", "ECIR-01.HQ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Key(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Key(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trimmed", "  ECIR No  ", "ECIR No"},
		{"newline folded", "Date of\nArrest", "Date of Arrest"},
		{"doubled spaces collapsed", "Name  of  Accused", "Name of Accused"},
		{"newline then doubled space", "Total value\n of PAOs", "Total value of PAOs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Label(tt.input); got != tt.want {
				t.Errorf("Label(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   time.Time
		wantOK bool
	}{
		{"uk slashes", "15/03/2021", time.Date(2021, 3, 15, 0, 0, 0, 0, time.UTC), true},
		{"dots", "15.03.2021", time.Date(2021, 3, 15, 0, 0, 0, 0, time.UTC), true},
		{"iso", "2021-03-15", time.Date(2021, 3, 15, 0, 0, 0, 0, time.UTC), true},
		{"iso datetime", "2021-03-15T00:00:00", time.Date(2021, 3, 15, 0, 0, 0, 0, time.UTC), true},
		{"padded", " 15/03/2021 ", time.Date(2021, 3, 15, 0, 0, 0, 0, time.UTC), true},
		{"blank", "", time.Time{}, false},
		{"free text", "pending", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Date(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("Date(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("Date(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCurrency(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   float64
		wantOK bool
	}{
		{"plain", "123.45", 123.45, true},
		{"thousands separators", "1,23,456.78", 123456.78, true},
		{"integer", "500", 500, true},
		{"blank", "", 0, false},
		{"text", "approx 5 Cr", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Currency(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Currency(%q) = %v, %v; want %v, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
