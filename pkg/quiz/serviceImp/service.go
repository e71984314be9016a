package serviceImp

import (
	"encoding/json"
	"errors"
	"fmt"

	"disha/pkg/ai"
	"disha/pkg/quiz"
	"disha/pkg/quiz/repository"
	svc "disha/pkg/quiz/service"
)

type service struct {
	repo repository.Repo
	llm  ai.Client
}

func New(r repository.Repo, llm ai.Client) svc.Service { return &service{repo: r, llm: llm} }

func (s *service) Generate(userID, subject, topic string, numQuestions int, difficulty string) (*quiz.Attempt, []quiz.Question, error) {
	if subject == "" {
		return nil, nil, errors.New("subject is required")
	}
	if numQuestions <= 0 || numQuestions > 50 {
		numQuestions = 10
	}

	raw, err := s.llm.GenerateQuiz(subject, topic, numQuestions, difficulty)
	if err != nil {
		return nil, nil, err
	}

	qs, err := parseQuestions(raw)
	if err != nil {
		return nil, nil, err
	}

	a := &quiz.Attempt{
		UserID: userID, Subject: subject, Topic: topic,
		Difficulty: difficulty, NumQuestions: len(qs),
		QuestionsJSON: raw, Status: "generated",
	}
	if err := s.repo.Create(a); err != nil {
		return nil, nil, err
	}
	return a, qs, nil
}

// parseQuestions accepts either {"questions":[...]} or a bare array; models
// don't always honor the envelope.
func parseQuestions(raw string) ([]quiz.Question, error) {
	var payload struct {
		Questions []quiz.Question `json:"questions"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil || len(payload.Questions) == 0 {
		var arr []quiz.Question
		if err2 := json.Unmarshal([]byte(raw), &arr); err2 != nil || len(arr) == 0 {
			return nil, fmt.Errorf("parse quiz: %v / raw: %.200s", err, raw)
		}
		payload.Questions = arr
	}
	return payload.Questions, nil
}

func (s *service) ListByUser(userID string) ([]quiz.Attempt, error) {
	return s.repo.ListByUser(userID, 50)
}

func (s *service) UpdatePartial(userID string, id uint, p svc.AttemptPatch) (*quiz.Attempt, error) {
	cur, err := s.repo.FindByID(id, userID)
	if err != nil {
		return nil, err
	}
	if p.Status != nil {
		cur.Status = *p.Status
	}
	if p.Score != nil {
		cur.Score = p.Score
		if cur.Status == "generated" {
			cur.Status = "submitted"
		}
	}
	return cur, s.repo.Update(cur)
}
