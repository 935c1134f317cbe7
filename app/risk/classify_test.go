package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"student-risk-dashboard/app/models"
)

func TestClassify_AttendanceBands(t *testing.T) {
	tests := []struct {
		name string
		pct  float64
		want models.Level
	}{
		{"well below", 50, models.LevelLow},
		{"just below boundary", 74.99, models.LevelLow},
		{"boundary belongs to normal", 75, models.LevelNormal},
		{"mid normal", 80, models.LevelNormal},
		{"just below high", 89.99, models.LevelNormal},
		{"boundary belongs to high", 90, models.LevelHigh},
		{"full attendance", 100, models.LevelHigh},
		{"negative is still low", -5, models.LevelLow},
		{"above domain is still high", 120, models.LevelHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Classify(models.StudentRecord{ID: "s1", Name: "x", AttendancePct: tt.pct, TestScore: 50})
			assert.Equal(t, tt.want, rec.AttendanceLevel)
		})
	}
}

func TestClassify_ScoreBands(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  models.Level
	}{
		{"failing", 10, models.LevelLow},
		{"just below boundary", 39.99, models.LevelLow},
		{"boundary belongs to normal", 40, models.LevelNormal},
		{"just below high", 79.99, models.LevelNormal},
		{"boundary belongs to high", 80, models.LevelHigh},
		{"perfect", 100, models.LevelHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Classify(models.StudentRecord{ID: "s1", Name: "x", AttendancePct: 80, TestScore: tt.score})
			assert.Equal(t, tt.want, rec.ScoreLevel)
		})
	}
}

func TestClassify_FeeFlag(t *testing.T) {
	assert.False(t, Classify(models.StudentRecord{PendingFees: 0}).FeeFlag)
	assert.True(t, Classify(models.StudentRecord{PendingFees: 0.01}).FeeFlag)
	assert.True(t, Classify(models.StudentRecord{PendingFees: 2000}).FeeFlag)
}

// Any single risk signal is enough for at_risk; safe requires all three
// clear.
func TestClassify_StatusDerivation(t *testing.T) {
	tests := []struct {
		name string
		rec  models.StudentRecord
		want models.Status
	}{
		{"all clear", models.StudentRecord{AttendancePct: 80, TestScore: 60}, models.StatusSafe},
		{"low attendance only", models.StudentRecord{AttendancePct: 74, TestScore: 60}, models.StatusAtRisk},
		{"low score only", models.StudentRecord{AttendancePct: 80, TestScore: 39}, models.StatusAtRisk},
		{"fees only", models.StudentRecord{AttendancePct: 80, TestScore: 60, PendingFees: 1}, models.StatusAtRisk},
		{"high bands with fees", models.StudentRecord{AttendancePct: 95, TestScore: 90, PendingFees: 500}, models.StatusAtRisk},
		{"all high no fees", models.StudentRecord{AttendancePct: 95, TestScore: 90}, models.StatusSafe},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.rec).Status)
		})
	}
}

func TestClassify_WorkedExamples(t *testing.T) {
	amy := Classify(models.StudentRecord{ID: "1", Name: "Amy", AttendancePct: 74, TestScore: 85, PendingFees: 0})
	assert.Equal(t, models.LevelLow, amy.AttendanceLevel)
	assert.Equal(t, models.LevelHigh, amy.ScoreLevel)
	assert.False(t, amy.FeeFlag)
	assert.Equal(t, models.StatusAtRisk, amy.Status)

	bo := Classify(models.StudentRecord{ID: "2", Name: "Bo", AttendancePct: 95, TestScore: 50, PendingFees: 20})
	assert.Equal(t, models.LevelHigh, bo.AttendanceLevel)
	assert.Equal(t, models.LevelNormal, bo.ScoreLevel)
	assert.True(t, bo.FeeFlag)
	assert.Equal(t, models.StatusAtRisk, bo.Status)

	cy := Classify(models.StudentRecord{ID: "3", Name: "Cy", AttendancePct: 80, TestScore: 60, PendingFees: 0})
	assert.Equal(t, models.StatusSafe, cy.Status)
}

func TestClassifyAll_PreservesOrderAndInput(t *testing.T) {
	recs := []models.StudentRecord{
		{ID: "b", Name: "B", AttendancePct: 50, TestScore: 50},
		{ID: "a", Name: "A", AttendancePct: 95, TestScore: 95},
		{ID: "c", Name: "C", AttendancePct: 80, TestScore: 60},
	}

	out := ClassifyAll(recs)
	assert.Len(t, out, 3)
	assert.Equal(t, "b", out[0].ID)
	assert.Equal(t, "a", out[1].ID)
	assert.Equal(t, "c", out[2].ID)

	// input untouched
	assert.Equal(t, "b", recs[0].ID)
	assert.Equal(t, 50.0, recs[0].AttendancePct)
}
