// Package diff computes the set and severity differences between two
// vulnerability reports.
package diff

import (
	"sort"

	"github.com/prodsec/excompara/pkg/excompara/models"
)

// Fixed returns, per sheet of the old table, the identifiers absent from
// the corresponding sheet of the new table. Sheets present only in the new
// table are never visited: an entirely new sheet has nothing fixed in it.
// Only non-empty difference sets are included.
func Fixed(old, new models.IdentifierTable) models.SheetDiff {
	result := make(models.SheetDiff)
	for sheet, oldIDs := range old {
		if missing := subtract(oldIDs, new[sheet]); len(missing) > 0 {
			result[sheet] = missing
		}
	}
	return result
}

// Added returns, per sheet of the new table, the identifiers absent from
// the corresponding sheet of the old table. A sheet present only in the new
// table contributes all of its identifiers.
func Added(old, new models.IdentifierTable) models.SheetDiff {
	result := make(models.SheetDiff)
	for sheet, newIDs := range new {
		if added := subtract(newIDs, old[sheet]); len(added) > 0 {
			result[sheet] = added
		}
	}
	return result
}

// Aggregate counts the distinct identifiers of each table across all of its
// sheets and computes the population percentage new/old*100. A zero old
// count yields a zero percentage.
func Aggregate(old, new models.IdentifierTable) models.AggregateStats {
	stats := models.AggregateStats{
		OldDistinct: len(distinct(old)),
		NewDistinct: len(distinct(new)),
	}
	if stats.OldDistinct != 0 {
		stats.Percentage = float64(stats.NewDistinct) / float64(stats.OldDistinct) * 100
	}
	return stats
}

// subtract returns the sorted distinct elements of a that do not occur in b.
func subtract(a, b []string) []string {
	exclude := make(map[string]bool, len(b))
	for _, v := range b {
		exclude[v] = true
	}

	seen := make(map[string]bool, len(a))
	var out []string
	for _, v := range a {
		if !exclude[v] && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

// distinct flattens all sheets of a table into one de-duplicated set.
func distinct(t models.IdentifierTable) map[string]bool {
	set := make(map[string]bool)
	for _, ids := range t {
		for _, id := range ids {
			set[id] = true
		}
	}
	return set
}
