package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/datavis-go/pkg/datavis/models"
)

// BuildDataset turns a header row and data rows into a typed dataset.
// Short rows are padded with missing values; rows longer than the header are rejected.
func BuildDataset(name string, header []string, rows [][]string) (*models.Dataset, error) {
	if len(header) == 0 {
		return nil, ErrNoHeader
	}

	names := columnNames(header)
	columns := make([]*models.Column, len(names))
	for i, n := range names {
		columns[i] = &models.Column{
			Name:   n,
			Values: make([]string, len(rows)),
		}
	}

	for rowIdx, row := range rows {
		if len(row) > len(names) {
			return nil, fmt.Errorf("row %d has %d fields, header has %d", rowIdx+2, len(row), len(names))
		}
		for colIdx, cell := range row {
			columns[colIdx].Values[rowIdx] = cell
		}
	}

	for _, c := range columns {
		inferColumn(c)
	}

	return &models.Dataset{
		Name:    name,
		Columns: columns,
	}, nil
}

// columnNames makes header names unique and non-empty.
// A blank header becomes "Unnamed: <index>" and repeats get a ".N" suffix.
func columnNames(header []string) []string {
	names := make([]string, len(header))
	used := make(map[string]bool, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("Unnamed: %d", i)
		}
		name := h
		for n := 1; used[name]; n++ {
			name = fmt.Sprintf("%s.%d", h, n)
		}
		used[name] = true
		names[i] = name
	}
	return names
}

// inferColumn sets the column type and parsed numbers.
// A column is numeric when it has at least one value and every
// non-empty cell parses as a number.
func inferColumn(c *models.Column) {
	numbers := make([]float64, len(c.Values))
	present := 0
	for i, v := range c.Values {
		if strings.TrimSpace(v) == "" {
			numbers[i] = math.NaN()
			continue
		}
		f, ok := parseNumber(v)
		if !ok {
			c.Type = models.ColumnText
			return
		}
		numbers[i] = f
		present++
	}
	if present == 0 {
		c.Type = models.ColumnText
		return
	}
	c.Type = models.ColumnNumeric
	c.Numbers = numbers
}

// parseNumber attempts to parse a cell as a number.
// Integers are tried first so large whole values keep their exact form where possible.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return float64(i), true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f, true
	}
	return 0, false
}
