package models

// DashboardStats summarises the full classified row set for the dashboard
// header cards.
type DashboardStats struct {
	TotalStudents    int     `json:"total_students"`
	AtRiskStudents   int     `json:"at_risk_students"`
	SafeStudents     int     `json:"safe_students"`
	StudentsWithFees int     `json:"students_with_fees"`
	AvgAttendance    float64 `json:"avg_attendance"`
	AvgScore         float64 `json:"avg_score"`
	TotalPendingFees float64 `json:"total_pending_fees"`
}

// Histogram is a binned distribution of one numeric column of the filtered
// row set. Edges has one more entry than Counts; Values carries the raw
// series in row order for renderers that bin client-side.
type Histogram struct {
	Field  string    `json:"field"`
	Edges  []float64 `json:"edges"`
	Counts []int     `json:"counts"`
	Values []float64 `json:"values"`
}

// StatusBreakdown counts the filtered rows per status for the distribution
// figure.
type StatusBreakdown struct {
	Safe   int `json:"safe"`
	AtRisk int `json:"at_risk"`
}
