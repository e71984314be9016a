package repository

import "disha/entities"

type StudyLogRepository interface {
	Create(l *entities.StudyLog) error
	Recent(planID uint, limit int) ([]entities.StudyLog, error)
}
