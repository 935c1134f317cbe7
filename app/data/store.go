// Package data holds the in-memory snapshot of the loaded row set. Records
// are loaded once per session, classified eagerly, and treated as immutable;
// Reload replaces the whole snapshot so readers never observe a partial
// update.
package data

import (
	"fmt"
	"sync"

	"student-risk-dashboard/app/models"
	"student-risk-dashboard/app/risk"
)

// Loader supplies the ordered row set from an external source (CSV files or
// the database). Missing or malformed fields are the loader's concern.
type Loader interface {
	Load() ([]models.StudentRecord, error)
}

// Store keeps the classified snapshot behind an RWMutex. The core itself is
// pure and synchronous; the lock only guards the snapshot swap against
// concurrent request handlers.
type Store struct {
	mu     sync.RWMutex
	loader Loader
	rows   []models.ClassifiedRecord
}

// NewStore wraps a loader without loading anything yet.
func NewStore(loader Loader) *Store {
	return &Store{loader: loader}
}

// Reload fetches the row set from the loader and reclassifies it. On error
// the previous snapshot stays in place.
func (s *Store) Reload() error {
	recs, err := s.loader.Load()
	if err != nil {
		return fmt.Errorf("loading student records: %w", err)
	}
	classified := risk.ClassifyAll(recs)

	s.mu.Lock()
	s.rows = classified
	s.mu.Unlock()
	return nil
}

// Rows returns the current classified snapshot in load order. Callers must
// treat the slice as read-only.
func (s *Store) Rows() []models.ClassifiedRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rows
}

// Find returns the classified record with the given id, or false when no
// such student exists.
func (s *Store) Find(id string) (models.ClassifiedRecord, bool) {
	for _, rec := range s.Rows() {
		if rec.ID == id {
			return rec, true
		}
	}
	return models.ClassifiedRecord{}, false
}

// Classes returns the distinct class labels present in the snapshot, in
// first-seen order, for the class filter dropdown.
func (s *Store) Classes() []string {
	seen := make(map[string]bool)
	var out []string
	for _, rec := range s.Rows() {
		if rec.Class == "" || seen[rec.Class] {
			continue
		}
		seen[rec.Class] = true
		out = append(out, rec.Class)
	}
	return out
}
