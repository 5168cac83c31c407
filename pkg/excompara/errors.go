package excompara

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates an input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrSummarySheetMissing indicates the summary sheet is absent from an input
// workbook, so the severity analysis cannot run.
var ErrSummarySheetMissing = errors.New("summary sheet missing")

// ErrOutputLocked indicates the report destination is held open by another
// process. The operator can close the file and rerun.
var ErrOutputLocked = errors.New("output file locked")

// LoadError wraps a failure while reading one of the input workbooks.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
