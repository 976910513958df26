package parser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/datavis-go/pkg/datavis/models"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"data.csv", FormatCSV, false},
		{"DATA.CSV", FormatCSV, false},
		{"/tmp/book.xlsx", FormatXLSX, false},
		{"report.pdf", "", true},
		{"noext", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCSV(t *testing.T) {
	data := []byte("age,city\n31,Oslo\n\n27,Bergen\n")

	ds, err := Parse(data, "people.csv", FormatCSV)
	require.NoError(t, err)

	assert.Equal(t, "people.csv", ds.Name)
	assert.Equal(t, 2, ds.RowCount())
	require.Len(t, ds.Columns, 2)
	assert.Equal(t, "age", ds.Columns[0].Name)
	assert.Equal(t, "city", ds.Columns[1].Name)
	assert.Equal(t, models.ColumnNumeric, ds.Columns[0].Type)
	assert.Equal(t, models.ColumnText, ds.Columns[1].Type)
}

func TestParseCSVLatin1(t *testing.T) {
	// "café" with é encoded as a single Latin-1 byte
	data := []byte("name,n\ncaf\xe9,1\n")

	ds, err := Parse(data, "latin.csv", FormatCSV)
	require.NoError(t, err)

	col, ok := ds.Column("name")
	require.True(t, ok)
	assert.Equal(t, "café", col.Values[0])
}

func TestParseCSVKeepsUTF8(t *testing.T) {
	data := []byte("\xef\xbb\xbfname\nZürich\n")

	ds, err := Parse(data, "utf8.csv", FormatCSV)
	require.NoError(t, err)

	col, ok := ds.Column("name")
	require.True(t, ok)
	assert.Equal(t, "Zürich", col.Values[0])
}

func TestParseCSVEmpty(t *testing.T) {
	_, err := Parse(nil, "empty.csv", FormatCSV)
	assert.ErrorIs(t, err, ErrNoHeader)
}

func TestParseCSVHeaderOnly(t *testing.T) {
	ds, err := Parse([]byte("a,b\n"), "h.csv", FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, 0, ds.RowCount())
	assert.Len(t, ds.Columns, 2)
}

func TestParseUnknownFormat(t *testing.T) {
	_, err := Parse([]byte("a"), "x", Format("ods"))
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestParseXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	// Table starts at B2 to exercise bounds detection
	f.SetCellValue(sheetName, "B2", "status")
	f.SetCellValue(sheetName, "C2", "amount")
	f.SetCellValue(sheetName, "B3", "A")
	f.SetCellValue(sheetName, "C3", 100)
	f.SetCellValue(sheetName, "B4", "A")
	f.SetCellValue(sheetName, "C4", 200.5)
	f.SetCellValue(sheetName, "B5", "B")
	f.SetCellValue(sheetName, "C5", 3)

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.SaveAs(tmpFile))

	data, err := os.ReadFile(tmpFile)
	require.NoError(t, err)

	ds, err := Parse(data, "test.xlsx", FormatXLSX)
	require.NoError(t, err)

	assert.Equal(t, 3, ds.RowCount())
	require.Len(t, ds.Columns, 2)
	assert.Equal(t, "status", ds.Columns[0].Name)
	assert.Equal(t, "amount", ds.Columns[1].Name)
	assert.Equal(t, models.ColumnText, ds.Columns[0].Type)
	assert.Equal(t, models.ColumnNumeric, ds.Columns[1].Type)
	assert.Equal(t, []float64{100, 200.5, 3}, ds.Columns[1].Numbers)
}

func TestParseXLSXCorrupt(t *testing.T) {
	_, err := Parse([]byte("not a zip"), "bad.xlsx", FormatXLSX)
	assert.Error(t, err)
}

func TestFindDataBounds(t *testing.T) {
	rows := [][]string{
		{},
		{"", "x", "y"},
		{"", "1"},
	}
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	assert.Equal(t, []int{1, 2, 1, 2}, []int{minRow, maxRow, minCol, maxCol})

	minRow, _, _, _ = findDataBounds(nil)
	assert.Equal(t, -1, minRow)
}
