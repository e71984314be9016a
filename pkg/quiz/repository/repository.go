package repository

import "disha/pkg/quiz"

type Repo interface {
	Create(a *quiz.Attempt) error
	Update(a *quiz.Attempt) error
	FindByID(id uint, userID string) (*quiz.Attempt, error)
	ListByUser(userID string, limit int) ([]quiz.Attempt, error)
}
