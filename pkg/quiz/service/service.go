package service

import "disha/pkg/quiz"

// AttemptPatch carries a partial update for a quiz attempt.
type AttemptPatch struct {
	Status *string  `json:"status"`
	Score  *float64 `json:"score"`
}

type Service interface {
	Generate(userID, subject, topic string, numQuestions int, difficulty string) (*quiz.Attempt, []quiz.Question, error)
	ListByUser(userID string) ([]quiz.Attempt, error)
	UpdatePartial(userID string, id uint, p AttemptPatch) (*quiz.Attempt, error)
}
