// Package output serialises artifacts and renders dataset previews.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ukaji3/datavis-go/pkg/datavis/models"
)

// ToJSON serialises an artifact.
func ToJSON(a *models.Artifact, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(a, "", "  ")
	}
	return json.Marshal(a)
}

// WritePreview renders the header and up to limit rows of ds as a text table.
// A non-positive limit prints every row.
func WritePreview(w io.Writer, ds *models.Dataset, limit int) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, len(ds.Columns))
	for i, c := range ds.Columns {
		header[i] = c.Name
	}
	t.AppendHeader(header)

	rows := ds.RowCount()
	shown := rows
	if limit > 0 && limit < rows {
		shown = limit
	}
	for i := 0; i < shown; i++ {
		cells := ds.Row(i)
		row := make(table.Row, len(cells))
		for j, v := range cells {
			row[j] = v
		}
		t.AppendRow(row)
	}

	t.Render()
	if shown < rows {
		_, _ = fmt.Fprintf(w, "(%d of %d rows)\n", shown, rows)
	} else {
		_, _ = fmt.Fprintf(w, "(%d rows)\n", rows)
	}
}

// WriteColumns lists column names with their inferred types.
func WriteColumns(w io.Writer, ds *models.Dataset) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "column", "type"})
	for i, c := range ds.Columns {
		t.AppendRow(table.Row{i + 1, c.Name, c.Type})
	}
	t.Render()
}
