package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"student-risk-dashboard/app/models"
)

func TestSummarize(t *testing.T) {
	stats := Summarize(sampleRows())

	assert.Equal(t, 3, stats.TotalStudents)
	assert.Equal(t, 2, stats.AtRiskStudents)
	assert.Equal(t, 1, stats.SafeStudents)
	assert.Equal(t, 1, stats.StudentsWithFees)
	assert.InDelta(t, 83.0, stats.AvgAttendance, 0.01)
	assert.InDelta(t, 65.0, stats.AvgScore, 0.01)
	assert.Equal(t, 20.0, stats.TotalPendingFees)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, models.DashboardStats{}, Summarize(nil))
}
