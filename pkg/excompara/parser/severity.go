package parser

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/prodsec/excompara/pkg/excompara/models"
)

// ExtractSeverity reads the per-severity count table from the named sheet.
// The first row is the header row; every following row is a category label
// followed by numeric counts. Missing trailing cells count as zero; rows
// wider than the header row are rejected rather than silently truncated.
func ExtractSeverity(f *excelize.File, sheetName string) (models.SeverityTable, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return models.SeverityTable{}, err
	}
	if len(rows) == 0 {
		return models.SeverityTable{}, fmt.Errorf("sheet %q is empty", sheetName)
	}

	table := models.SeverityTable{Headers: rows[0]}
	width := len(rows[0])

	for rowIdx, row := range rows[1:] {
		if len(row) > width {
			return models.SeverityTable{}, fmt.Errorf("sheet %q row %d: %d cells exceed the %d-column header row", sheetName, rowIdx+2, len(row), width)
		}
		sr := models.SeverityRow{Counts: make([]float64, 0, width-1)}
		if len(row) > 0 {
			sr.Label = row[0]
		}
		for col := 1; col < width; col++ {
			if col >= len(row) || row[col] == "" {
				sr.Counts = append(sr.Counts, 0)
				continue
			}
			n, err := strconv.ParseFloat(row[col], 64)
			if err != nil {
				cell, _ := excelize.CoordinatesToCellName(col+1, rowIdx+2)
				return models.SeverityTable{}, fmt.Errorf("sheet %q cell %s: not a number: %q", sheetName, cell, row[col])
			}
			sr.Counts = append(sr.Counts, n)
		}
		table.Rows = append(table.Rows, sr)
	}

	return table, nil
}
