package database

import (
	"database/sql"
	"fmt"

	"student-risk-dashboard/app/models"
)

// GetStudentRecords returns one merged row per student: mean test score,
// mean attendance percentage and the outstanding fee total, in student_id
// order. Students without attendance, test or fee rows get 0, matching the
// CSV loader's semantics.
func GetStudentRecords(db *sql.DB) ([]models.StudentRecord, error) {
	query := `
		SELECT s.student_id,
		       s.name,
		       COALESCE(s.class, ''),
		       ROUND(COALESCE(a.attendance_pct, 0)::numeric, 2),
		       COALESCE(t.avg_score, 0),
		       COALESCE(f.pending_amount, 0)
		FROM students s
		LEFT JOIN (
			SELECT student_id, AVG(attendance_percentage) AS attendance_pct
			FROM attendance GROUP BY student_id
		) a ON a.student_id = s.student_id
		LEFT JOIN (
			SELECT student_id, AVG(score) AS avg_score
			FROM tests GROUP BY student_id
		) t ON t.student_id = s.student_id
		LEFT JOIN (
			SELECT student_id, SUM(pending_amount) AS pending_amount
			FROM fees GROUP BY student_id
		) f ON f.student_id = s.student_id
		ORDER BY s.student_id
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.StudentRecord
	for rows.Next() {
		var rec models.StudentRecord
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Class,
			&rec.AttendancePct, &rec.TestScore, &rec.PendingFees); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// PostgresLoader adapts the database to the data.Loader interface.
type PostgresLoader struct {
	DB *sql.DB
}

// Load fetches the merged row set.
func (l *PostgresLoader) Load() ([]models.StudentRecord, error) {
	records, err := GetStudentRecords(l.DB)
	if err != nil {
		return nil, fmt.Errorf("querying student records: %w", err)
	}
	return records, nil
}
