package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the source tables if they do not exist yet. The
// dashboard only reads them; rows are written by the school's import jobs.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS students (
			student_id TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			class      TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS attendance (
			student_id            TEXT NOT NULL REFERENCES students(student_id),
			date                  DATE NOT NULL,
			attendance_percentage DOUBLE PRECISION NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS tests (
			student_id TEXT NOT NULL REFERENCES students(student_id),
			date       DATE NOT NULL,
			score      DOUBLE PRECISION NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS fees (
			student_id     TEXT NOT NULL REFERENCES students(student_id),
			pending_amount DOUBLE PRECISION NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_attendance_student ON attendance(student_id)`,
		`CREATE INDEX IF NOT EXISTS idx_tests_student ON tests(student_id)`,
		`CREATE INDEX IF NOT EXISTS idx_fees_student ON fees(student_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
