package excompara

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/prodsec/excompara/pkg/excompara/models"
)

// reportFixture describes one input workbook: identifier sheets plus the
// summary sheet rows.
type reportFixture struct {
	sheets  map[string][]string
	summary [][]any
}

func writeFixture(t *testing.T, dir, name string, fx reportFixture) string {
	t.Helper()
	f := excelize.NewFile()

	for sheet, ids := range fx.sheets {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, "A1", "CVE_ID"))
		for i, id := range ids {
			cell, err := excelize.CoordinatesToCellName(1, i+2)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, id))
		}
	}

	if fx.summary != nil {
		_, err := f.NewSheet("vulnerability_count")
		require.NoError(t, err)
		for i, row := range fx.summary {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow("vulnerability_count", cell, &row))
		}
	}

	path := filepath.Join(dir, name)
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestCompare(t *testing.T) {
	dir := t.TempDir()
	summaryOld := [][]any{
		{"Image", "Critical", "High"},
		{"app", 5, 2},
	}
	summaryNew := [][]any{
		{"Image", "Critical", "High"},
		{"app", 3, 2},
	}

	oldPath := writeFixture(t, dir, "old.xlsx", reportFixture{
		sheets:  map[string][]string{"App1": {"CVE-1", "CVE-2"}},
		summary: summaryOld,
	})
	newPath := writeFixture(t, dir, "new.xlsx", reportFixture{
		sheets:  map[string][]string{"App1": {"CVE-2", "CVE-3"}, "App2": {"CVE-4"}},
		summary: summaryNew,
	})

	a, err := New(DefaultOptions()).Compare(oldPath, newPath)
	require.NoError(t, err)

	assert.Equal(t, models.SheetDiff{"App1": {"CVE-1"}}, a.Fixed)
	assert.Equal(t, models.SheetDiff{"App1": {"CVE-3"}, "App2": {"CVE-4"}}, a.Added)
	assert.Equal(t, models.AggregateStats{OldDistinct: 2, NewDistinct: 3, Percentage: 150}, a.Stats)

	require.Len(t, a.Severity.Rows, 1)
	assert.Equal(t, models.SeverityRow{Label: "app", Counts: []float64{2, 0}}, a.Severity.Rows[0])
}

func TestCompareSameFileYieldsNoDifferences(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "report.xlsx", reportFixture{
		sheets: map[string][]string{"App1": {"CVE-1", "CVE-2"}},
		summary: [][]any{
			{"Image", "Critical"},
			{"app", 4},
		},
	})

	a, err := New(DefaultOptions()).Compare(path, path)
	require.NoError(t, err)

	assert.Empty(t, a.Fixed)
	assert.Empty(t, a.Added)
	assert.Equal(t, 100.0, a.Stats.Percentage)
	assert.Equal(t, []float64{0}, a.Severity.Rows[0].Counts)
}

func TestCompareMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "old.xlsx", reportFixture{
		summary: [][]any{{"Image", "Critical"}, {"app", 1}},
	})

	_, err := New(DefaultOptions()).Compare(path, filepath.Join(dir, "nope.xlsx"))
	require.ErrorIs(t, err, ErrFileNotFound)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, filepath.Join(dir, "nope.xlsx"), loadErr.Path)
}

func TestCompareMissingSummarySheet(t *testing.T) {
	dir := t.TempDir()
	withSummary := writeFixture(t, dir, "old.xlsx", reportFixture{
		sheets:  map[string][]string{"App1": {"CVE-1"}},
		summary: [][]any{{"Image", "Critical"}, {"app", 1}},
	})
	withoutSummary := writeFixture(t, dir, "new.xlsx", reportFixture{
		sheets: map[string][]string{"App1": {"CVE-1"}},
	})

	_, err := New(DefaultOptions()).Compare(withSummary, withoutSummary)
	require.ErrorIs(t, err, ErrSummarySheetMissing)
}

func TestCompareSummaryShapeMismatch(t *testing.T) {
	dir := t.TempDir()
	oldPath := writeFixture(t, dir, "old.xlsx", reportFixture{
		summary: [][]any{{"Image", "Critical", "High"}, {"app", 1, 2}},
	})
	newPath := writeFixture(t, dir, "new.xlsx", reportFixture{
		summary: [][]any{{"Image", "Critical"}, {"app", 1}},
	})

	_, err := New(DefaultOptions()).Compare(oldPath, newPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shape mismatch")
}
