package repositoryImp

import (
	"errors"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"disha/entities"
	"disha/pkg/plan/repository"
)

func setup(t *testing.T) repository.PlanRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	if err := db.AutoMigrate(&entities.StudyPlan{}, &entities.DayEntry{}); err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	return New(db)
}

func newPlan(t *testing.T, r repository.PlanRepository) uint {
	t.Helper()
	p := &entities.StudyPlan{UserID: "u1", Title: "2-Day Plan"}
	days := []entities.DayEntry{
		{DayNumber: 1, Title: "Day 1: Algebra"},
		{DayNumber: 2, Title: "Day 2: Trig"},
	}
	if err := r.Create(p, days); err != nil {
		t.Fatalf("newPlan() failed: %v", err)
	}
	return p.PlanID
}

func TestPatchDayStaleVersionConflicts(t *testing.T) {
	r := setup(t)
	id := newPlan(t, r)

	now := time.Now()
	assert.NoError(t, r.PatchDay(id, 1, true, &now, 1))

	// same expected version again: a concurrent writer got there first
	err := r.PatchDay(id, 1, false, nil, 1)
	assert.True(t, errors.Is(err, repository.ErrConflict))

	// the stale write left the row untouched
	days, err := r.Days(id)
	assert.NoError(t, err)
	assert.True(t, days[0].IsCompleted)
	assert.Equal(t, 2, days[0].Version)

	// a re-read version goes through
	assert.NoError(t, r.PatchDay(id, 1, false, nil, 2))
	days, _ = r.Days(id)
	assert.False(t, days[0].IsCompleted)
	assert.Equal(t, 3, days[0].Version)
}

func TestPatchDayUnknownDay(t *testing.T) {
	r := setup(t)
	id := newPlan(t, r)

	err := r.PatchDay(id, 9, true, nil, 1)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
