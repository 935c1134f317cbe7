package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"student-risk-dashboard/app/models"
)

func TestSeries(t *testing.T) {
	rows := sampleRows()

	assert.Equal(t, []float64{74, 95, 80}, AttendanceSeries(rows))
	assert.Equal(t, []float64{85, 50, 60}, ScoreSeries(rows))
}

func TestBuildHistogram_Binning(t *testing.T) {
	h := BuildHistogram("test_score", []float64{0, 9.99, 10, 55, 99.99, 100})

	assert.Equal(t, "test_score", h.Field)
	assert.Len(t, h.Edges, HistogramBins+1)
	assert.Equal(t, 0.0, h.Edges[0])
	assert.Equal(t, 100.0, h.Edges[HistogramBins])

	// 0 and 9.99 in the first bin, 10 opens the second, 100 closes the last.
	assert.Equal(t, 2, h.Counts[0])
	assert.Equal(t, 1, h.Counts[1])
	assert.Equal(t, 1, h.Counts[5])
	assert.Equal(t, 2, h.Counts[9])
}

func TestBuildHistogram_OutOfDomainValues(t *testing.T) {
	h := BuildHistogram("attendance_pct", []float64{-10, 150})

	assert.Equal(t, 1, h.Counts[0])
	assert.Equal(t, 1, h.Counts[HistogramBins-1])
}

func TestBuildHistogram_Empty(t *testing.T) {
	h := BuildHistogram("attendance_pct", nil)

	total := 0
	for _, c := range h.Counts {
		total += c
	}
	assert.Zero(t, total)
	assert.Empty(t, h.Values)
}

func TestCountStatus(t *testing.T) {
	got := CountStatus(sampleRows())
	assert.Equal(t, models.StatusBreakdown{Safe: 1, AtRisk: 2}, got)

	assert.Equal(t, models.StatusBreakdown{}, CountStatus(nil))
}
