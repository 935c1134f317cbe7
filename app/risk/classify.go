// Package risk is the decision core of the dashboard: pure functions that
// band each student record against fixed thresholds, derive an overall
// status, and narrow the row set for display. Nothing here touches the
// database or the request context.
package risk

import "student-risk-dashboard/app/models"

// Threshold boundaries. A boundary value belongs to the better band, so an
// attendance of exactly 90 is high and a score of exactly 40 is normal.
const (
	AttendanceLowBelow = 75.0
	AttendanceHighFrom = 90.0
	ScoreLowBelow      = 40.0
	ScoreHighFrom      = 80.0
)

func band(v, lowBelow, highFrom float64) models.Level {
	switch {
	case v < lowBelow:
		return models.LevelLow
	case v >= highFrom:
		return models.LevelHigh
	default:
		return models.LevelNormal
	}
}

// Classify annotates a single record with its per-field bands, fee flag and
// overall status. It is total: out-of-range values are banded by the same
// thresholds, never clamped or rejected.
func Classify(rec models.StudentRecord) models.ClassifiedRecord {
	out := models.ClassifiedRecord{
		StudentRecord:   rec,
		AttendanceLevel: band(rec.AttendancePct, AttendanceLowBelow, AttendanceHighFrom),
		ScoreLevel:      band(rec.TestScore, ScoreLowBelow, ScoreHighFrom),
		FeeFlag:         rec.PendingFees > 0,
	}
	out.Status = deriveStatus(out)
	return out
}

// deriveStatus flags a student on any single risk signal; all three must be
// clear for safe.
func deriveStatus(rec models.ClassifiedRecord) models.Status {
	if rec.AttendanceLevel == models.LevelLow || rec.ScoreLevel == models.LevelLow || rec.FeeFlag {
		return models.StatusAtRisk
	}
	return models.StatusSafe
}

// ClassifyAll classifies every record, preserving input order. Records are
// independent of each other; the input slice is not modified.
func ClassifyAll(recs []models.StudentRecord) []models.ClassifiedRecord {
	out := make([]models.ClassifiedRecord, 0, len(recs))
	for _, r := range recs {
		out = append(out, Classify(r))
	}
	return out
}
