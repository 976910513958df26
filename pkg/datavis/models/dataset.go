// Package models defines data structures for loaded tables and rendered charts.
package models

import "math"

// ColumnType is the semantic type inferred for a column at load time.
type ColumnType string

const (
	// ColumnNumeric holds values that all parse as numbers.
	ColumnNumeric ColumnType = "numeric"
	// ColumnText holds free text values.
	ColumnText ColumnType = "text"
	// ColumnCategorical holds values tallied by distinct value.
	ColumnCategorical ColumnType = "categorical"
)

// Column is a named, typed sequence of cell values.
type Column struct {
	// Name is the header name of the column.
	Name string `json:"name"`
	// Type is the inferred semantic type.
	Type ColumnType `json:"type"`
	// Values holds the raw cell text in row order. Empty strings are missing values.
	Values []string `json:"values"`
	// Numbers holds parsed values for numeric columns (NaN for missing cells).
	Numbers []float64 `json:"numbers,omitempty"`
}

// Len returns the number of cells in the column.
func (c *Column) Len() int {
	return len(c.Values)
}

// IsNumeric reports whether the column was inferred as numeric.
func (c *Column) IsNumeric() bool {
	return c.Type == ColumnNumeric
}

// PresentNumbers returns the non-missing numeric values in row order.
func (c *Column) PresentNumbers() []float64 {
	out := make([]float64, 0, len(c.Numbers))
	for _, v := range c.Numbers {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// Categorical returns a view of the column typed as categorical.
// The cell slices are shared, not copied. Numbers stays set for a
// numeric source so categories can be grouped by value.
func (c *Column) Categorical() *Column {
	return &Column{
		Name:    c.Name,
		Type:    ColumnCategorical,
		Values:  c.Values,
		Numbers: c.Numbers,
	}
}

// Dataset is an in-memory, column-oriented table. All columns have the same length.
type Dataset struct {
	// Name is the source file name (no path).
	Name string `json:"name"`
	// Columns holds the columns in file order.
	Columns []*Column `json:"columns"`
}

// RowCount returns the number of data rows.
func (d *Dataset) RowCount() int {
	if d == nil || len(d.Columns) == 0 {
		return 0
	}
	return d.Columns[0].Len()
}

// Column looks up a column by name.
func (d *Dataset) Column(name string) (*Column, bool) {
	if d == nil {
		return nil, false
	}
	for _, c := range d.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// Row returns the raw cell values of row i in column order.
func (d *Dataset) Row(i int) []string {
	row := make([]string, len(d.Columns))
	for j, c := range d.Columns {
		row[j] = c.Values[i]
	}
	return row
}
