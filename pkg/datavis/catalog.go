package datavis

import "github.com/ukaji3/datavis-go/pkg/datavis/models"

// Columns returns the selectable column names of ds in file order.
// A nil dataset has no columns.
func Columns(ds *models.Dataset) []string {
	if ds == nil {
		return nil
	}
	names := make([]string, len(ds.Columns))
	for i, c := range ds.Columns {
		names[i] = c.Name
	}
	return names
}
