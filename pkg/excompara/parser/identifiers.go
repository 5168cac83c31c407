// Package parser extracts identifier and severity tables from report
// workbooks.
package parser

import (
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/prodsec/excompara/pkg/excompara/models"
)

// ExtractIdentifiers builds the per-sheet identifier table of a workbook.
// Every sheet is visited except those named in skip. A sheet contributes an
// entry only if its first row contains a header exactly equal to column;
// the entry holds that column's non-empty values in row order, duplicates
// preserved. Sheets without the column are skipped silently.
func ExtractIdentifiers(f *excelize.File, column string, skip map[string]bool) (models.IdentifierTable, error) {
	table := make(models.IdentifierTable)

	for _, sheetName := range f.GetSheetList() {
		if skip[sheetName] {
			continue
		}

		rows, err := f.GetRows(sheetName)
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			continue
		}

		colIdx := -1
		for i, header := range rows[0] {
			if header == column {
				colIdx = i
				break
			}
		}
		if colIdx < 0 {
			slog.Debug("sheet has no identifier column, skipping",
				slog.String("sheet", sheetName),
				slog.String("column", column))
			continue
		}

		var ids []string
		for _, row := range rows[1:] {
			if colIdx >= len(row) {
				continue
			}
			if v := row[colIdx]; v != "" {
				ids = append(ids, v)
			}
		}

		table[sheetName] = ids
		slog.Debug("identifier column extracted",
			slog.String("sheet", sheetName),
			slog.Int("values", len(ids)))
	}

	return table, nil
}
