package repositoryImp

import (
	"gorm.io/gorm"

	"disha/pkg/quiz"
	"disha/pkg/quiz/repository"
)

type sqliteRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.Repo { return &sqliteRepo{db: db} }

func (r *sqliteRepo) Create(a *quiz.Attempt) error { return r.db.Create(a).Error }

func (r *sqliteRepo) Update(a *quiz.Attempt) error { return r.db.Save(a).Error }

func (r *sqliteRepo) FindByID(id uint, userID string) (*quiz.Attempt, error) {
	var out quiz.Attempt
	if err := r.db.Where("user_id = ?", userID).First(&out, id).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *sqliteRepo) ListByUser(userID string, limit int) ([]quiz.Attempt, error) {
	var list []quiz.Attempt
	return list, r.db.Where("user_id = ?", userID).Order("created_at desc").Limit(limit).Find(&list).Error
}
