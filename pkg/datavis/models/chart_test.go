package models

import (
	"math"
	"testing"
)

func TestParseChartKind(t *testing.T) {
	tests := []struct {
		input    string
		expected ChartKind
		ok       bool
	}{
		{"Line Plot", KindLine, true},
		{"line", KindLine, true},
		{"Bar Plot", KindBar, true},
		{"column", KindBar, true},
		{"Scatter Plot", KindScatter, true},
		{"scatter", KindScatter, true},
		{"Histogram", KindHistogram, true},
		{" box plot ", KindBox, true},
		{"Pie Chart", KindPie, true},
		{"", "", true},
		{"area", "", false},
		{"pieChart", "", false},
		{"xyScatter", "", false},
	}

	for _, tt := range tests {
		result, ok := ParseChartKind(tt.input)
		if result != tt.expected || ok != tt.ok {
			t.Errorf("ParseChartKind(%q) = (%q, %v), expected (%q, %v)",
				tt.input, result, ok, tt.expected, tt.ok)
		}
	}
}

func TestChartKindRoles(t *testing.T) {
	tests := []struct {
		kind      ChartKind
		label     string
		requiresX bool
	}{
		{KindLine, "Line Plot", true},
		{KindBar, "Bar Plot", true},
		{KindScatter, "Scatter Plot", true},
		{KindHistogram, "Histogram", false},
		{KindBox, "Box Plot", true},
		{KindPie, "Pie Chart", false},
	}

	for _, tt := range tests {
		if got := tt.kind.Label(); got != tt.label {
			t.Errorf("%q.Label() = %q, expected %q", tt.kind, got, tt.label)
		}
		if got := tt.kind.RequiresX(); got != tt.requiresX {
			t.Errorf("%q.RequiresX() = %v, expected %v", tt.kind, got, tt.requiresX)
		}
		if !tt.kind.Valid() {
			t.Errorf("%q.Valid() = false", tt.kind)
		}
	}

	if ChartKind("").Valid() {
		t.Error("empty kind should not be valid")
	}
}

func TestLabelsParseBack(t *testing.T) {
	for _, k := range ChartKinds {
		got, ok := ParseChartKind(k.Label())
		if !ok || got != k {
			t.Errorf("ParseChartKind(%q) = (%q, %v), expected %q", k.Label(), got, ok, k)
		}
	}
}

func TestDataset(t *testing.T) {
	ds := &Dataset{
		Columns: []*Column{
			{Name: "n", Type: ColumnNumeric, Values: []string{"1", ""}, Numbers: []float64{1, math.NaN()}},
			{Name: "s", Type: ColumnText, Values: []string{"a", "b"}},
		},
	}

	if ds.RowCount() != 2 {
		t.Errorf("Expected 2 rows, got %d", ds.RowCount())
	}
	if _, ok := ds.Column("missing"); ok {
		t.Error("Expected missing column lookup to fail")
	}
	if row := ds.Row(1); row[0] != "" || row[1] != "b" {
		t.Errorf("Unexpected row %q", row)
	}

	n, _ := ds.Column("n")
	if got := n.PresentNumbers(); len(got) != 1 || got[0] != 1 {
		t.Errorf("Expected [1], got %v", got)
	}

	s, _ := ds.Column("s")
	cat := s.Categorical()
	if cat.Type != ColumnCategorical || s.Type != ColumnText {
		t.Errorf("Categorical view changed the source column")
	}

	var empty *Dataset
	if empty.RowCount() != 0 {
		t.Error("Expected nil dataset to have no rows")
	}
}
