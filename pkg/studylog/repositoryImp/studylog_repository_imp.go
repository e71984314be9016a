package repositoryImp

import (
	"gorm.io/gorm"

	"disha/entities"
	"disha/pkg/studylog/repository"
)

type logRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.StudyLogRepository { return &logRepo{db} }

func (r *logRepo) Create(l *entities.StudyLog) error { return r.db.Create(l).Error }

func (r *logRepo) Recent(planID uint, limit int) ([]entities.StudyLog, error) {
	var out []entities.StudyLog
	if err := r.db.Where("plan_id = ?", planID).Order("date DESC").Limit(limit).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
