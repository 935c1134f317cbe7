// Package loader reads the four-file CSV export (students, attendance,
// tests, fees) and merges it into one StudentRecord per student, the shape
// the classifier works on.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"

	"student-risk-dashboard/app/models"
)

// ErrInvalidRecord marks a source row that is missing a required field or
// carries an unparsable number. It is surfaced to the caller rather than
// silently defaulted.
var ErrInvalidRecord = errors.New("invalid student record")

// CSVLoader loads the data directory written by the school's export job:
// students.csv (student_id,name,class), attendance.csv and tests.csv with
// one row per observation, and fees.csv with the pending amount.
type CSVLoader struct {
	Dir      string
	validate *validator.Validate
}

// NewCSVLoader loads from dir.
func NewCSVLoader(dir string) *CSVLoader {
	return &CSVLoader{Dir: dir, validate: validator.New()}
}

// Load merges the four files into one record per student, in students.csv
// order. Attendance and score observations are averaged per student; a
// student with no attendance or fee rows gets 0, matching the upstream
// export semantics. Attendance averages are rounded to two decimals.
func (l *CSVLoader) Load() ([]models.StudentRecord, error) {
	attendance, err := l.averageByStudent("attendance.csv", "attendance_percentage")
	if err != nil {
		return nil, err
	}
	scores, err := l.averageByStudent("tests.csv", "score")
	if err != nil {
		return nil, err
	}
	fees, err := l.sumByStudent("fees.csv", "pending_amount")
	if err != nil {
		return nil, err
	}

	rows, err := l.readFile("students.csv")
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	records := make([]models.StudentRecord, 0, len(rows))
	for _, row := range rows {
		rec := models.StudentRecord{
			ID:            row.get("student_id"),
			Name:          row.get("name"),
			Class:         row.get("class"),
			AttendancePct: round2(attendance[row.get("student_id")]),
			TestScore:     scores[row.get("student_id")],
			PendingFees:   fees[row.get("student_id")],
		}
		if err := l.validate.Struct(rec); err != nil {
			return nil, fmt.Errorf("%w: students.csv line %d: %v", ErrInvalidRecord, row.line, err)
		}
		if seen[rec.ID] {
			return nil, fmt.Errorf("%w: students.csv line %d: duplicate student_id %q", ErrInvalidRecord, row.line, rec.ID)
		}
		seen[rec.ID] = true
		records = append(records, rec)
	}
	return records, nil
}

type csvRow struct {
	line   int
	fields map[string]string
}

func (r csvRow) get(col string) string { return r.fields[col] }

// readFile parses a headered CSV into name-indexed rows.
func (l *CSVLoader) readFile(name string) ([]csvRow, error) {
	f, err := os.Open(filepath.Join(l.Dir, name))
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	raw, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: %s has no header row", ErrInvalidRecord, name)
	}

	header := raw[0]
	rows := make([]csvRow, 0, len(raw)-1)
	for i, line := range raw[1:] {
		fields := make(map[string]string, len(header))
		for j, col := range header {
			if j < len(line) {
				fields[col] = line[j]
			}
		}
		rows = append(rows, csvRow{line: i + 2, fields: fields})
	}
	return rows, nil
}

// averageByStudent reads one observation file and averages col per student.
func (l *CSVLoader) averageByStudent(name, col string) (map[string]float64, error) {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	if err := l.accumulate(name, col, func(id string, v float64) {
		sums[id] += v
		counts[id]++
	}); err != nil {
		return nil, err
	}
	for id := range sums {
		sums[id] /= float64(counts[id])
	}
	return sums, nil
}

// sumByStudent reads one file and totals col per student.
func (l *CSVLoader) sumByStudent(name, col string) (map[string]float64, error) {
	sums := make(map[string]float64)
	if err := l.accumulate(name, col, func(id string, v float64) {
		sums[id] += v
	}); err != nil {
		return nil, err
	}
	return sums, nil
}

func (l *CSVLoader) accumulate(name, col string, add func(id string, v float64)) error {
	rows, err := l.readFile(name)
	if err != nil {
		return err
	}
	for _, row := range rows {
		id := row.get("student_id")
		if id == "" {
			return fmt.Errorf("%w: %s line %d: missing student_id", ErrInvalidRecord, name, row.line)
		}
		v, err := strconv.ParseFloat(row.get(col), 64)
		if err != nil {
			return fmt.Errorf("%w: %s line %d: bad %s %q", ErrInvalidRecord, name, row.line, col, row.get(col))
		}
		add(id, v)
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
