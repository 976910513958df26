package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/datavis-go/pkg/datavis/models"
)

func testDataset() *models.Dataset {
	return &models.Dataset{
		Name: "t.csv",
		Columns: []*models.Column{
			{Name: "age", Type: models.ColumnNumeric, Values: []string{"31", "27", "45"}, Numbers: []float64{31, 27, 45}},
			{Name: "city", Type: models.ColumnText, Values: []string{"Oslo", "Bergen", "Tromsø"}},
		},
	}
}

func TestWritePreview(t *testing.T) {
	var buf bytes.Buffer
	WritePreview(&buf, testDataset(), 0)

	out := buf.String()
	assert.Contains(t, out, "AGE")
	assert.Contains(t, out, "Tromsø")
	assert.Contains(t, out, "(3 rows)")
}

func TestWritePreviewLimit(t *testing.T) {
	var buf bytes.Buffer
	WritePreview(&buf, testDataset(), 2)

	out := buf.String()
	assert.Contains(t, out, "Bergen")
	assert.NotContains(t, out, "Tromsø")
	assert.Contains(t, out, "(2 of 3 rows)")
}

func TestWriteColumns(t *testing.T) {
	var buf bytes.Buffer
	WriteColumns(&buf, testDataset())

	out := buf.String()
	assert.Contains(t, out, "age")
	assert.Contains(t, out, "numeric")
	assert.Contains(t, out, "text")
}

func TestToJSON(t *testing.T) {
	a := &models.Artifact{
		ID:     "abc",
		Kind:   models.KindPie,
		Title:  "Pie Chart of status vs None",
		YLabel: "status",
		Slices: []models.Slice{{Label: "A", Count: 2, Fraction: 2.0 / 3}},
		Source: testDataset(),
	}

	data, err := ToJSON(a, true)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "pie", decoded["kind"])
	assert.Equal(t, "Pie Chart of status vs None", decoded["title"])
	assert.NotContains(t, decoded, "Source")
	assert.NotContains(t, decoded, "points")
}
