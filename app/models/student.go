package models

// StudentRecord is one student's merged academic and financial standing as
// supplied by a loader: mean attendance percentage, mean test score and the
// outstanding fee balance. Records are immutable once loaded.
type StudentRecord struct {
	ID            string  `json:"student_id" validate:"required"`
	Name          string  `json:"name" validate:"required"`
	Class         string  `json:"class,omitempty"`
	AttendancePct float64 `json:"attendance_pct"`
	TestScore     float64 `json:"test_score"`
	PendingFees   float64 `json:"pending_fees"`
}

// ClassifiedRecord is a StudentRecord annotated with its per-field risk bands
// and derived status. It is recomputed on every classification pass and never
// stored, so the displayed status can not drift from the displayed bands.
type ClassifiedRecord struct {
	StudentRecord
	AttendanceLevel Level  `json:"attendance_level"`
	ScoreLevel      Level  `json:"score_level"`
	FeeFlag         bool   `json:"fee_flag"`
	Status          Status `json:"status"`
}
