package risk

import "student-risk-dashboard/app/models"

// Summarize computes the dashboard header statistics over the full
// classified row set. Averages are 0 for an empty set.
func Summarize(rows []models.ClassifiedRecord) models.DashboardStats {
	stats := models.DashboardStats{TotalStudents: len(rows)}

	var attendanceSum, scoreSum float64
	for _, rec := range rows {
		if rec.Status == models.StatusAtRisk {
			stats.AtRiskStudents++
		} else {
			stats.SafeStudents++
		}
		if rec.FeeFlag {
			stats.StudentsWithFees++
		}
		attendanceSum += rec.AttendancePct
		scoreSum += rec.TestScore
		stats.TotalPendingFees += rec.PendingFees
	}
	if len(rows) > 0 {
		stats.AvgAttendance = attendanceSum / float64(len(rows))
		stats.AvgScore = scoreSum / float64(len(rows))
	}
	return stats
}
