package diff

import (
	"fmt"

	"github.com/prodsec/excompara/pkg/excompara/models"
)

// ShapeMismatchError reports severity tables whose shapes diverge, which
// would make the row-aligned subtraction meaningless.
type ShapeMismatchError struct {
	// Field names what diverged: "headers", "rows", or "columns".
	Field string
	Old   int
	New   int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("severity table shape mismatch: %s differ (old %d, new %d)", e.Field, e.Old, e.New)
}

// Severity computes the element-wise count delta old minus new, keeping the
// old table's label column and headers. Both tables must share identical
// headers and row count; a divergence returns a *ShapeMismatchError instead
// of a positionally misaligned result.
func Severity(old, new models.SeverityTable) (models.SeverityTable, error) {
	if err := checkShape(old, new); err != nil {
		return models.SeverityTable{}, err
	}

	delta := models.SeverityTable{
		Headers: append([]string(nil), old.Headers...),
		Rows:    make([]models.SeverityRow, len(old.Rows)),
	}
	for i, oldRow := range old.Rows {
		counts := make([]float64, len(oldRow.Counts))
		for j, v := range oldRow.Counts {
			counts[j] = v - new.Rows[i].Counts[j]
		}
		delta.Rows[i] = models.SeverityRow{Label: oldRow.Label, Counts: counts}
	}
	return delta, nil
}

func checkShape(old, new models.SeverityTable) error {
	if len(old.Headers) != len(new.Headers) {
		return &ShapeMismatchError{Field: "headers", Old: len(old.Headers), New: len(new.Headers)}
	}
	for i, h := range old.Headers {
		if h != new.Headers[i] {
			return fmt.Errorf("severity table shape mismatch: header %d is %q in the old report but %q in the new", i+1, h, new.Headers[i])
		}
	}
	if len(old.Rows) != len(new.Rows) {
		return &ShapeMismatchError{Field: "rows", Old: len(old.Rows), New: len(new.Rows)}
	}
	for i := range old.Rows {
		if len(old.Rows[i].Counts) != len(new.Rows[i].Counts) {
			return &ShapeMismatchError{Field: "columns", Old: len(old.Rows[i].Counts), New: len(new.Rows[i].Counts)}
		}
	}
	return nil
}
