package datavis

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ukaji3/datavis-go/pkg/datavis/models"
	"github.com/ukaji3/datavis-go/pkg/datavis/parser"
)

// mustDataset parses CSV text into a dataset.
func mustDataset(t *testing.T, csv string) *models.Dataset {
	t.Helper()
	ds, err := parser.Parse([]byte(csv), "test.csv", parser.FormatCSV)
	require.NoError(t, err)
	return ds
}

const peopleCSV = `age,city,height,status
31,Oslo,180.5,A
27,Bergen,165,A
45,Oslo,172,B
`
