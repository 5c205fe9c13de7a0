// Package timeline orders family events chronologically.
//
// Ordering is a stable sort by plain lexicographic comparison of the
// Date string. That only yields calendar order when dates are in a
// zero-padded sortable form (ISO 8601), which is what the data files
// use; the sort is deliberately not a date parse, so non-uniform date
// formats produce deterministic but non-chronological output rather
// than a parse failure. Events without a date sort as the empty string,
// first.
package timeline

import (
	"slices"
	"strings"

	"github.com/northhaven/kinship/pkg/family"
)

// Chronological returns the events ordered by date. The input slice is
// not modified; the sort is stable, so events sharing a date keep their
// relative input order, and applying Chronological to its own output is
// a no-op.
func Chronological(events []family.Event) []family.Event {
	sorted := slices.Clone(events)
	slices.SortStableFunc(sorted, func(a, b family.Event) int {
		return strings.Compare(a.Date, b.Date)
	})
	return sorted
}
