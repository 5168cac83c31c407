// Package report renders a comparison analysis into a styled workbook.
package report

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/xuri/excelize/v2"

	"github.com/prodsec/excompara/pkg/excompara"
	"github.com/prodsec/excompara/pkg/excompara/models"
)

// sectionGap is the number of blank rows between the stacked sections.
const sectionGap = 10

// Write assembles the analysis report workbook and saves it to path. The
// report is a single sheet with three vertically stacked sections: fixed
// identifiers, newly added identifiers, and the severity delta. Sheets are
// listed in sorted name order so repeated runs produce identical output.
//
// A permission failure on save is surfaced as excompara.ErrOutputLocked so
// callers can tell the operator to close the file, rather than treating it
// as fatal.
func Write(a *models.Analysis, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	st, err := newStyles(f)
	if err != nil {
		return fmt.Errorf("building styles: %w", err)
	}

	row := 1
	row, err = writeDiffSection(f, sheet, st, row, "Fixed CVEs", "CVE Fixed", a.Fixed)
	if err != nil {
		return err
	}
	row += sectionGap

	row, err = writeDiffSection(f, sheet, st, row, "Newly Added CVEs", "CVE Added", a.Added)
	if err != nil {
		return err
	}
	row += sectionGap

	if err := writeSeveritySection(f, sheet, st, row, a.Severity); err != nil {
		return err
	}

	if err := f.SetColWidth(sheet, "A", "B", 20); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return fmt.Errorf("%w: %s", excompara.ErrOutputLocked, path)
		}
		return fmt.Errorf("saving report: %w", err)
	}
	return nil
}

// styles holds the two cell styles used throughout the report.
type styles struct {
	header int
	data   int
}

func newStyles(f *excelize.File) (styles, error) {
	border := []excelize.Border{
		{Type: "left", Style: 1},
		{Type: "right", Style: 1},
		{Type: "top", Style: 1},
		{Type: "bottom", Style: 1},
	}

	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: "Calibri", Bold: true, Size: 14},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D9D9D9"}},
		Border:    border,
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err != nil {
		return styles{}, err
	}

	data, err := f.NewStyle(&excelize.Style{Border: border})
	if err != nil {
		return styles{}, err
	}

	return styles{header: header, data: data}, nil
}

// writeDiffSection writes one identifier section: a title cell, a two-column
// header row, and one row per identifier with the sheet it belongs to.
// Returns the first row after the section.
func writeDiffSection(f *excelize.File, sheet string, st styles, row int, title, idHeader string, d models.SheetDiff) (int, error) {
	if err := setHeaderCell(f, sheet, st, 1, row, title); err != nil {
		return 0, err
	}
	row++

	if err := setHeaderCell(f, sheet, st, 1, row, idHeader); err != nil {
		return 0, err
	}
	if err := setHeaderCell(f, sheet, st, 2, row, "Image"); err != nil {
		return 0, err
	}
	row++

	for _, sheetName := range d.SheetNames() {
		for _, id := range d[sheetName] {
			if err := setDataCell(f, sheet, st, 1, row, id); err != nil {
				return 0, err
			}
			if err := setDataCell(f, sheet, st, 2, row, sheetName); err != nil {
				return 0, err
			}
			row++
		}
	}
	return row, nil
}

// writeSeveritySection writes the severity delta: a title cell, the header
// row carried over from the input, then the delta rows.
func writeSeveritySection(f *excelize.File, sheet string, st styles, row int, t models.SeverityTable) error {
	if err := setHeaderCell(f, sheet, st, 1, row, "Severity Analysis"); err != nil {
		return err
	}
	row++

	for col, header := range t.Headers {
		if err := setHeaderCell(f, sheet, st, col+1, row, header); err != nil {
			return err
		}
	}
	row++

	for _, sr := range t.Rows {
		if err := setDataCell(f, sheet, st, 1, row, sr.Label); err != nil {
			return err
		}
		for i, count := range sr.Counts {
			if err := setDataCell(f, sheet, st, i+2, row, count); err != nil {
				return err
			}
		}
		row++
	}
	return nil
}

func setHeaderCell(f *excelize.File, sheet string, st styles, col, row int, value any) error {
	return setCell(f, sheet, col, row, value, st.header)
}

func setDataCell(f *excelize.File, sheet string, st styles, col, row int, value any) error {
	return setCell(f, sheet, col, row, value, st.data)
}

func setCell(f *excelize.File, sheet string, col, row int, value any, style int) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		return err
	}
	return f.SetCellStyle(sheet, cell, cell, style)
}
