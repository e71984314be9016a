package service

import (
	"time"

	"disha/entities"
	"disha/pkg/plan/types"
)

type PlanService interface {
	Generate(userID string, req types.GenerateRequest) (*entities.StudyPlan, error)
	Save(userID string, req types.SaveRequest) (*entities.StudyPlan, error)
	List(userID string) ([]entities.PlanSummary, error)
	Get(id uint) (*entities.StudyPlan, error)
	// ToggleDay applies one completion toggle through the progression gate
	// and returns the full updated routine list.
	ToggleDay(id uint, dayIndex int, completed bool, now time.Time) ([]entities.DayEntry, error)
}
