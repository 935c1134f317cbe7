package risk

import (
	"math"

	"student-risk-dashboard/app/models"
)

// HistogramBins is the number of fixed-width bins over the [0,100] domain.
const HistogramBins = 10

// AttendanceSeries returns the attendance percentages of rows in row order.
func AttendanceSeries(rows []models.ClassifiedRecord) []float64 {
	out := make([]float64, 0, len(rows))
	for _, rec := range rows {
		out = append(out, rec.AttendancePct)
	}
	return out
}

// ScoreSeries returns the test scores of rows in row order.
func ScoreSeries(rows []models.ClassifiedRecord) []float64 {
	out := make([]float64, 0, len(rows))
	for _, rec := range rows {
		out = append(out, rec.TestScore)
	}
	return out
}

// BuildHistogram bins values into HistogramBins equal-width bins over
// [0,100]. The last bin is closed so a value of exactly 100 counts; values
// outside the domain land in the nearest end bin.
func BuildHistogram(field string, values []float64) models.Histogram {
	width := 100.0 / HistogramBins
	edges := make([]float64, HistogramBins+1)
	for i := range edges {
		edges[i] = float64(i) * width
	}
	counts := make([]int, HistogramBins)
	for _, v := range values {
		idx := int(math.Floor(v / width))
		if idx < 0 {
			idx = 0
		}
		if idx >= HistogramBins {
			idx = HistogramBins - 1
		}
		counts[idx]++
	}
	return models.Histogram{Field: field, Edges: edges, Counts: counts, Values: values}
}

// CountStatus tallies rows per status for the distribution figure.
func CountStatus(rows []models.ClassifiedRecord) models.StatusBreakdown {
	var out models.StatusBreakdown
	for _, rec := range rows {
		if rec.Status == models.StatusAtRisk {
			out.AtRisk++
		} else {
			out.Safe++
		}
	}
	return out
}
