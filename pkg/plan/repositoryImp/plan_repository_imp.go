package repositoryImp

import (
	"time"

	"gorm.io/gorm"

	"disha/entities"
	"disha/pkg/plan/repository"
)

type planRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PlanRepository { return &planRepo{db} }

func (r *planRepo) Create(p *entities.StudyPlan, days []entities.DayEntry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		for i := range days {
			days[i].PlanID = p.PlanID
			if days[i].Version == 0 {
				days[i].Version = 1
			}
		}
		if len(days) == 0 {
			return nil
		}
		return tx.Create(&days).Error
	})
}

func (r *planRepo) List(userID string) ([]entities.PlanSummary, error) {
	var out []entities.PlanSummary
	err := r.db.Model(&entities.StudyPlan{}).
		Select("plan_id", "title", "created_at", "overview").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *planRepo) Get(id uint) (*entities.StudyPlan, error) {
	var p entities.StudyPlan
	if err := r.db.First(&p, "plan_id = ?", id).Error; err != nil {
		return nil, err
	}
	days, err := r.Days(id)
	if err != nil {
		return nil, err
	}
	p.DailyRoutines = days
	return &p, nil
}

func (r *planRepo) Days(planID uint) ([]entities.DayEntry, error) {
	var out []entities.DayEntry
	if err := r.db.Where("plan_id = ?", planID).Order("day_number ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *planRepo) PatchDay(planID uint, dayNumber int, completed bool, completedAt *time.Time, expectVersion int) error {
	res := r.db.Model(&entities.DayEntry{}).
		Where("plan_id = ? AND day_number = ? AND version = ?", planID, dayNumber, expectVersion).
		Updates(map[string]any{
			"is_completed": completed,
			"completed_at": completedAt,
			"version":      expectVersion + 1,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var n int64
		r.db.Model(&entities.DayEntry{}).
			Where("plan_id = ? AND day_number = ?", planID, dayNumber).Count(&n)
		if n == 0 {
			return gorm.ErrRecordNotFound
		}
		return repository.ErrConflict
	}
	return nil
}
