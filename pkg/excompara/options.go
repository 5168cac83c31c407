// Package excompara compares two point-in-time vulnerability report
// workbooks and produces fixed/newly-added identifier sets, a severity
// count delta, and aggregate statistics.
package excompara

// Options configures comparison behavior.
type Options struct {
	// IdentifierColumn is the exact, case-sensitive header of the column
	// holding vulnerability identifiers.
	IdentifierColumn string
	// SummarySheet is the name of the per-severity count sheet. It is
	// excluded from identifier extraction and consumed by the severity
	// analysis instead.
	SummarySheet string
	// SkipSheets are sheet names never scanned for identifiers, such as the
	// default placeholder sheet left behind by spreadsheet tools.
	SkipSheets []string
	// OutputPath is where the analysis report workbook is written.
	OutputPath string
}

// DefaultOptions returns the default comparison options.
func DefaultOptions() Options {
	return Options{
		IdentifierColumn: "CVE_ID",
		SummarySheet:     "vulnerability_count",
		SkipSheets:       []string{"Sheet1"},
		OutputPath:       "analysis_report.xlsx",
	}
}

// skipSet returns the sheet names excluded from identifier extraction,
// summary sheet included.
func (o Options) skipSet() map[string]bool {
	skip := make(map[string]bool, len(o.SkipSheets)+1)
	skip[o.SummarySheet] = true
	for _, name := range o.SkipSheets {
		skip[name] = true
	}
	return skip
}
