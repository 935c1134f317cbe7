package risk

import (
	"math"
	"strings"

	"student-risk-dashboard/app/models"
)

// Range is a closed numeric interval; both ends are inclusive.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v lies inside the interval.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// FilterSpec is the ephemeral filter state driven by the dashboard widgets.
// It narrows the displayed rows and never affects the underlying data. Use
// DefaultFilterSpec for a spec that passes everything.
type FilterSpec struct {
	SearchText      string
	AttendanceRange Range
	ScoreRange      Range
	FeeRange        Range
	StatusFilter    models.StatusFilter
	Classes         []string
}

// DefaultFilterSpec returns the identity spec: full [0,100] ranges, an
// unbounded fee range, empty search and no status or class restriction.
func DefaultFilterSpec() FilterSpec {
	return FilterSpec{
		AttendanceRange: Range{Min: 0, Max: 100},
		ScoreRange:      Range{Min: 0, Max: 100},
		FeeRange:        Range{Min: 0, Max: math.Inf(1)},
		StatusFilter:    models.FilterAll,
	}
}

// Apply returns the rows matching every predicate in spec, in input order.
// Neither rows nor spec is modified; filtering twice with the same spec
// returns the same subset.
func Apply(rows []models.ClassifiedRecord, spec FilterSpec) []models.ClassifiedRecord {
	out := make([]models.ClassifiedRecord, 0, len(rows))
	for _, rec := range rows {
		if Matches(rec, spec) {
			out = append(out, rec)
		}
	}
	return out
}

// Matches reports whether a single record passes every filter dimension.
// Dimensions combine with AND; there is no OR across dimensions.
func Matches(rec models.ClassifiedRecord, spec FilterSpec) bool {
	if !matchesSearch(rec, spec.SearchText) {
		return false
	}
	if !spec.AttendanceRange.Contains(rec.AttendancePct) {
		return false
	}
	if !spec.ScoreRange.Contains(rec.TestScore) {
		return false
	}
	if !spec.FeeRange.Contains(rec.PendingFees) {
		return false
	}
	if !spec.StatusFilter.Matches(rec.Status) {
		return false
	}
	if len(spec.Classes) > 0 && !containsFold(spec.Classes, rec.Class) {
		return false
	}
	return true
}

// Search text matches the name or the id, case-insensitive substring in both
// cases. Ids are matched on their string form, the same rule as names.
func matchesSearch(rec models.ClassifiedRecord, search string) bool {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(rec.Name), search) ||
		strings.Contains(strings.ToLower(rec.ID), search)
}

func containsFold(labels []string, label string) bool {
	for _, l := range labels {
		if strings.EqualFold(l, label) {
			return true
		}
	}
	return false
}
