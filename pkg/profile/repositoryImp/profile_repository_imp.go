package repositoryImp

import (
	"gorm.io/gorm"

	"disha/entities"
	"disha/pkg/profile/repository"
)

type profileRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ProfileRepository { return &profileRepo{db} }

func (r *profileRepo) Create(p *entities.StudyProfile) error { return r.db.Create(p).Error }

func (r *profileRepo) FindByID(id uint, userID string) (*entities.StudyProfile, error) {
	var p entities.StudyProfile
	if err := r.db.Where("profile_id = ? AND user_id = ?", id, userID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *profileRepo) LatestByUser(userID string) (*entities.StudyProfile, error) {
	var p entities.StudyProfile
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
