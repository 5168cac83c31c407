package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prodsec/excompara/pkg/excompara/models"
)

func severityTable(headers []string, rows ...models.SeverityRow) models.SeverityTable {
	return models.SeverityTable{Headers: headers, Rows: rows}
}

func TestSeverity(t *testing.T) {
	old := severityTable(
		[]string{"Image", "Critical", "High"},
		models.SeverityRow{Label: "app1", Counts: []float64{5, 2}},
		models.SeverityRow{Label: "app2", Counts: []float64{1, 4}},
	)
	new := severityTable(
		[]string{"Image", "Critical", "High"},
		models.SeverityRow{Label: "app1", Counts: []float64{3, 2}},
		models.SeverityRow{Label: "app2", Counts: []float64{2, 0}},
	)

	delta, err := Severity(old, new)
	require.NoError(t, err)

	assert.Equal(t, []string{"Image", "Critical", "High"}, delta.Headers)
	require.Len(t, delta.Rows, 2)
	assert.Equal(t, models.SeverityRow{Label: "app1", Counts: []float64{2, 0}}, delta.Rows[0])
	assert.Equal(t, models.SeverityRow{Label: "app2", Counts: []float64{-1, 4}}, delta.Rows[1])
}

func TestSeverityLabelsComeFromOldTable(t *testing.T) {
	old := severityTable([]string{"Image", "Critical"}, models.SeverityRow{Label: "app1", Counts: []float64{1}})
	new := severityTable([]string{"Image", "Critical"}, models.SeverityRow{Label: "renamed", Counts: []float64{1}})

	delta, err := Severity(old, new)
	require.NoError(t, err)
	assert.Equal(t, "app1", delta.Rows[0].Label)
}

func TestSeverityShapeMismatch(t *testing.T) {
	base := severityTable(
		[]string{"Image", "Critical", "High"},
		models.SeverityRow{Label: "app1", Counts: []float64{5, 2}},
	)

	tests := []struct {
		name  string
		other models.SeverityTable
		field string
	}{
		{
			name:  "header count differs",
			other: severityTable([]string{"Image", "Critical"}, models.SeverityRow{Label: "app1", Counts: []float64{5}}),
			field: "headers",
		},
		{
			name: "row count differs",
			other: severityTable(
				[]string{"Image", "Critical", "High"},
				models.SeverityRow{Label: "app1", Counts: []float64{5, 2}},
				models.SeverityRow{Label: "app2", Counts: []float64{1, 1}},
			),
			field: "rows",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Severity(base, tt.other)
			var shapeErr *ShapeMismatchError
			require.ErrorAs(t, err, &shapeErr)
			assert.Equal(t, tt.field, shapeErr.Field)
		})
	}
}

func TestSeverityHeaderContentMismatch(t *testing.T) {
	old := severityTable([]string{"Image", "Critical"}, models.SeverityRow{Label: "app1", Counts: []float64{1}})
	new := severityTable([]string{"Image", "High"}, models.SeverityRow{Label: "app1", Counts: []float64{1}})

	_, err := Severity(old, new)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Critical")
	assert.Contains(t, err.Error(), "High")
}
