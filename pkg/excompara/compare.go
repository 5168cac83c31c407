package excompara

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/prodsec/excompara/pkg/excompara/diff"
	"github.com/prodsec/excompara/pkg/excompara/models"
	"github.com/prodsec/excompara/pkg/excompara/parser"
)

// Comparator compares two report workbooks. Each input file is opened and
// parsed once per Compare call; the parsed tables are cached by path for
// the duration of that call only.
type Comparator struct {
	opts Options
}

// New creates a Comparator with the given options.
func New(opts Options) *Comparator {
	return &Comparator{opts: opts}
}

// workbook holds everything extracted from one input file.
type workbook struct {
	identifiers models.IdentifierTable
	severity    models.SeverityTable
}

// Compare loads the two report files and computes the fixed and newly added
// identifier sets, the aggregate statistics, and the severity count delta.
// Any read or parse failure aborts the run with no partial result.
func (c *Comparator) Compare(oldPath, newPath string) (*models.Analysis, error) {
	cache := make(map[string]*workbook, 2)

	oldWB, err := c.load(cache, oldPath)
	if err != nil {
		return nil, err
	}
	newWB, err := c.load(cache, newPath)
	if err != nil {
		return nil, err
	}

	severity, err := diff.Severity(oldWB.severity, newWB.severity)
	if err != nil {
		return nil, err
	}

	a := &models.Analysis{
		Fixed:    diff.Fixed(oldWB.identifiers, newWB.identifiers),
		Added:    diff.Added(oldWB.identifiers, newWB.identifiers),
		Stats:    diff.Aggregate(oldWB.identifiers, newWB.identifiers),
		Severity: severity,
	}

	slog.Debug("comparison complete",
		slog.Int("fixed_sheets", len(a.Fixed)),
		slog.Int("added_sheets", len(a.Added)),
		slog.Int("old_distinct", a.Stats.OldDistinct),
		slog.Int("new_distinct", a.Stats.NewDistinct))

	return a, nil
}

func (c *Comparator) load(cache map[string]*workbook, path string) (*workbook, error) {
	if wb, ok := cache[path]; ok {
		return wb, nil
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &LoadError{Path: path, Err: ErrFileNotFound}
		}
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	ids, err := parser.ExtractIdentifiers(f, c.opts.IdentifierColumn, c.opts.skipSet())
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	if idx, err := f.GetSheetIndex(c.opts.SummarySheet); err != nil || idx < 0 {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("%w: %q", ErrSummarySheetMissing, c.opts.SummarySheet)}
	}
	severity, err := parser.ExtractSeverity(f, c.opts.SummarySheet)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	wb := &workbook{identifiers: ids, severity: severity}
	cache[path] = wb
	return wb, nil
}
