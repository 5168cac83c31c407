// Package models defines data structures for report comparison.
package models

import "sort"

// IdentifierTable maps a sheet name to the raw identifier values found in
// that sheet's identifier column. Order follows the sheet rows; duplicates
// are preserved.
type IdentifierTable map[string][]string

// SheetDiff maps a sheet name to the distinct identifiers that differ for
// that sheet. A sheet is present only when its diff is non-empty, and the
// identifiers are sorted lexicographically.
type SheetDiff map[string][]string

// SheetNames returns the sheet names of the diff in sorted order.
func (d SheetDiff) SheetNames() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SeverityRow is one row of a severity table: a category label followed by
// per-column counts.
type SeverityRow struct {
	// Label is the category name from the first column.
	Label string
	// Counts holds the numeric values of the remaining columns.
	Counts []float64
}

// SeverityTable represents the fixed-schema per-severity count table.
type SeverityTable struct {
	// Headers is the column header row, label column included.
	Headers []string
	// Rows are the data rows in sheet order.
	Rows []SeverityRow
}

// AggregateStats summarizes the distinct identifier population of the two
// reports.
type AggregateStats struct {
	// OldDistinct is the number of distinct identifiers across all sheets
	// of the old report.
	OldDistinct int
	// NewDistinct is the number of distinct identifiers across all sheets
	// of the new report.
	NewDistinct int
	// Percentage is NewDistinct/OldDistinct*100, or 0 when OldDistinct is 0.
	Percentage float64
}

// Analysis bundles the three comparison outputs for report assembly.
type Analysis struct {
	// Fixed holds identifiers present in the old report but gone from the new.
	Fixed SheetDiff
	// Added holds identifiers present in the new report but not in the old.
	Added SheetDiff
	// Stats is the aggregate distinct-identifier summary.
	Stats AggregateStats
	// Severity is the per-category count delta (old minus new).
	Severity SeverityTable
}
