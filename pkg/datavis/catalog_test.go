package datavis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumns(t *testing.T) {
	ds := mustDataset(t, "b,a,c\n1,2,3\n")
	assert.Equal(t, []string{"b", "a", "c"}, Columns(ds))
	assert.Nil(t, Columns(nil))
}
