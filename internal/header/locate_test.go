package header

import (
	"testing"

	"github.com/pmla-casebook/internal/sheet"
)

func TestLocate(t *testing.T) {
	tests := []struct {
		name   string
		rows   []sheet.Row
		window int
		want   int
	}{
		{
			name: "strong signal on first row",
			rows: []sheet.Row{
				{"Sl. No.", "ECIR No", "Date of ECIR"},
				{"1", "ECIR/01/HQ/2020", "01/02/2020"},
			},
			window: DefaultWindow,
			want:   0,
		},
		{
			name: "strong signal below banner rows",
			rows: []sheet.Row{
				{"Directorate of Enforcement"},
				{"List of cases for the quarter"},
				{"Sl. No.", "ECIR No", "Name of Accused"},
			},
			window: DefaultWindow,
			want:   2,
		},
		{
			name: "case number spelling",
			rows: []sheet.Row{
				{""},
				{"S.No", "Case No", "Details"},
			},
			window: DefaultWindow,
			want:   1,
		},
		{
			name: "underscore spelling",
			rows: []sheet.Row{
				{"ecir_no", "status"},
			},
			window: DefaultWindow,
			want:   0,
		},
		{
			name: "strong beats earlier weak row",
			rows: []sheet.Row{
				{"Sl. No.", "Date of report"},
				{"Sl. No.", "ECIR No", "Date"},
			},
			window: DefaultWindow,
			want:   1,
		},
		{
			name: "weak pair is the fallback",
			rows: []sheet.Row{
				{"Summary of actions"},
				{"Sl. No.", "Name of person", "Remarks"},
				{"1", "A", "x"},
			},
			window: DefaultWindow,
			want:   1,
		},
		{
			name: "serial number alone is not enough",
			rows: []sheet.Row{
				{"Sl. No.", "Remarks"},
				{"1", "x"},
			},
			window: DefaultWindow,
			want:   0,
		},
		{
			name: "no signal defaults to first row",
			rows: []sheet.Row{
				{"alpha", "beta"},
				{"1", "2"},
			},
			window: DefaultWindow,
			want:   0,
		},
		{
			name: "mixed case strong signal",
			rows: []sheet.Row{
				{"heading"},
				{"SL. NO.", "ECIR NO", "DATE"},
			},
			window: DefaultWindow,
			want:   1,
		},
		{
			name: "missing cells skipped when joining",
			rows: []sheet.Row{
				{"", "", ""},
				{"", "ECIR", "No"},
			},
			window: DefaultWindow,
			want:   1,
		},
		{
			name: "strong signal outside window is not seen",
			rows: []sheet.Row{
				{"banner"},
				{"another banner"},
				{"Sl. No.", "ECIR No"},
			},
			window: 2,
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Locate(tt.rows, tt.window)
			if got != tt.want {
				t.Errorf("Locate() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLocateEmptySheet(t *testing.T) {
	if got := Locate(nil, DefaultWindow); got != 0 {
		t.Errorf("Locate(nil) = %d, want 0", got)
	}
}
