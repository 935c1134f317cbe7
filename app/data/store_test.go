package data

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student-risk-dashboard/app/models"
)

type stubLoader struct {
	records []models.StudentRecord
	err     error
}

func (l *stubLoader) Load() ([]models.StudentRecord, error) {
	return l.records, l.err
}

func TestStore_ReloadClassifies(t *testing.T) {
	store := NewStore(&stubLoader{records: []models.StudentRecord{
		{ID: "1", Name: "Amy", Class: "Grade 9", AttendancePct: 74, TestScore: 85},
		{ID: "2", Name: "Bo", Class: "Grade 10", AttendancePct: 95, TestScore: 50, PendingFees: 20},
	}})

	require.NoError(t, store.Reload())

	rows := store.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, models.StatusAtRisk, rows[0].Status)
	assert.Equal(t, models.LevelLow, rows[0].AttendanceLevel)
	assert.True(t, rows[1].FeeFlag)
}

func TestStore_ReloadErrorKeepsSnapshot(t *testing.T) {
	l := &stubLoader{records: []models.StudentRecord{{ID: "1", Name: "Amy", AttendancePct: 80, TestScore: 60}}}
	store := NewStore(l)
	require.NoError(t, store.Reload())

	l.err = errors.New("source unavailable")
	err := store.Reload()
	require.Error(t, err)
	assert.Len(t, store.Rows(), 1)
}

func TestStore_Find(t *testing.T) {
	store := NewStore(&stubLoader{records: []models.StudentRecord{
		{ID: "1", Name: "Amy", AttendancePct: 80, TestScore: 60},
	}})
	require.NoError(t, store.Reload())

	rec, ok := store.Find("1")
	assert.True(t, ok)
	assert.Equal(t, "Amy", rec.Name)

	_, ok = store.Find("missing")
	assert.False(t, ok)
}

func TestStore_Classes(t *testing.T) {
	store := NewStore(&stubLoader{records: []models.StudentRecord{
		{ID: "1", Name: "Amy", Class: "Grade 9", AttendancePct: 80, TestScore: 60},
		{ID: "2", Name: "Bo", Class: "Grade 10", AttendancePct: 80, TestScore: 60},
		{ID: "3", Name: "Cy", Class: "Grade 9", AttendancePct: 80, TestScore: 60},
		{ID: "4", Name: "Di", AttendancePct: 80, TestScore: 60},
	}})
	require.NoError(t, store.Reload())

	assert.Equal(t, []string{"Grade 9", "Grade 10"}, store.Classes())
}
