package parser

import (
	"bytes"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX parses workbook bytes and returns the first sheet as header and rows.
// The table is taken from the bounding box of non-empty cells, so leading
// blank rows and columns are ignored. Raw cell values are read so number
// formats do not hide numeric data.
func ReadXLSX(data []byte) ([]string, [][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, ErrNoHeader
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, nil, err
	}

	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return nil, nil, ErrNoHeader
	}

	header := cropRow(rows[minRow], minCol, maxCol)
	var body [][]string
	for rowIdx := minRow + 1; rowIdx <= maxRow; rowIdx++ {
		row := cropRow(rows[rowIdx], minCol, maxCol)
		if isBlankRow(row) {
			continue
		}
		body = append(body, row)
	}

	return header, body, nil
}

// findDataBounds finds the bounding box of non-empty cells.
// All bounds are -1 when the sheet is empty.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}

// cropRow returns row[minCol:maxCol+1], padding with empty cells when the row is short.
func cropRow(row []string, minCol, maxCol int) []string {
	out := make([]string, maxCol-minCol+1)
	for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
		out[colIdx-minCol] = row[colIdx]
	}
	return out
}
