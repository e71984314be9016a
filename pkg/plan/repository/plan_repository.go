package repository

import (
	"errors"
	"time"

	"disha/entities"
)

// ErrConflict means a conditional day patch lost a version race.
var ErrConflict = errors.New("day entry was modified concurrently")

type PlanRepository interface {
	// Create inserts the plan and its day entries in one transaction and
	// reports the assigned id back through p.PlanID.
	Create(p *entities.StudyPlan, days []entities.DayEntry) error
	List(userID string) ([]entities.PlanSummary, error)
	Get(id uint) (*entities.StudyPlan, error)
	Days(planID uint) ([]entities.DayEntry, error)
	// PatchDay conditionally updates one day's completion state; the write
	// only lands when the stored version still equals expectVersion.
	PatchDay(planID uint, dayNumber int, completed bool, completedAt *time.Time, expectVersion int) error
}
