package repository

import "disha/entities"

type ProfileRepository interface {
	Create(p *entities.StudyProfile) error
	FindByID(id uint, userID string) (*entities.StudyProfile, error)
	LatestByUser(userID string) (*entities.StudyProfile, error)
}
