// Package parser reads CSV and XLSX files into datasets.
package parser

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ukaji3/datavis-go/pkg/datavis/models"
)

// Format identifies the encoding of an input file.
type Format string

const (
	// FormatCSV is comma-separated values with a header row.
	FormatCSV Format = "csv"
	// FormatXLSX is an Office Open XML workbook; only the first sheet is read.
	FormatXLSX Format = "xlsx"
)

// ErrNoHeader indicates the input has no header row.
var ErrNoHeader = errors.New("no header row")

// ErrUnsupportedFormat indicates the format hint is not recognised.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return FormatCSV, nil
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Parse decodes file bytes into a dataset named name.
func Parse(data []byte, name string, format Format) (*models.Dataset, error) {
	var (
		header []string
		rows   [][]string
		err    error
	)

	switch format {
	case FormatCSV:
		header, rows, err = ReadCSV(data)
	case FormatXLSX:
		header, rows, err = ReadXLSX(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}

	return BuildDataset(name, header, rows)
}

// isBlankRow reports whether every cell in row is empty.
func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
