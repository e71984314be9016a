package serviceImp

import (
	"fmt"
	"time"

	"disha/entities"
	"disha/pkg/ai"
	"disha/pkg/exams"
	planrepo "disha/pkg/plan/repository"
	"disha/pkg/plan/types"
	"disha/pkg/planmd"
	"disha/pkg/progression"
)

type noteSearcher interface {
	Search(query string, k int) ([]entities.NoteChunk, error)
}

type PlanSvc struct {
	presets exams.PresetEngine
	llm     ai.Client
	repo    planrepo.PlanRepository
	notes   noteSearcher
	gate    progression.Gate
}

func NewPlanService(presets exams.PresetEngine, llm ai.Client, repo planrepo.PlanRepository, notes noteSearcher, gate progression.Gate) *PlanSvc {
	return &PlanSvc{presets: presets, llm: llm, repo: repo, notes: notes, gate: gate}
}

func (s *PlanSvc) Generate(userID string, req types.GenerateRequest) (*entities.StudyPlan, error) {
	ctx := ""
	if s.presets != nil {
		ctx = s.presets.PromptHint(req.Exam)
	}
	if s.notes != nil {
		snips, _ := s.notes.Search(req.Subject+" "+req.Topics+" "+req.Exam, 6)
		for _, ch := range snips {
			if len(ctx) > 6000 {
				break
			}
			ctx += "\n---\n" + ch.Text
		}
	}

	raw, err := s.llm.GeneratePlan(req, ctx)
	if err != nil {
		return nil, fmt.Errorf("plan generation failed: %w", err)
	}

	sections, blocks, err := planmd.ParseDocument(raw)
	if err != nil {
		return nil, err
	}
	if len(blocks) != req.NumDays {
		return nil, &planmd.DayCountError{Want: req.NumDays, Got: len(blocks)}
	}
	days := planmd.ExtractDays(blocks)

	p := &entities.StudyPlan{
		UserID:    userID,
		Title:     fmt.Sprintf("%d-Day %s Plan (%s)", req.NumDays, req.Subject, req.Exam),
		Exam:      req.Exam,
		Subject:   req.Subject,
		Overview:  sections.Overview,
		Topics:    sections.Topics,
		Resources: sections.Resources,
	}
	if err := s.repo.Create(p, days); err != nil {
		return nil, err
	}
	p.DailyRoutines = days
	return p, nil
}

func (s *PlanSvc) Save(userID string, req types.SaveRequest) (*entities.StudyPlan, error) {
	sections, err := planmd.ParseSections(req.GeneralInfo)
	if err != nil {
		return nil, err
	}
	days := planmd.ExtractDays(req.DailyRoutines)

	p := &entities.StudyPlan{
		UserID:    userID,
		Title:     req.Title,
		Overview:  sections.Overview,
		Topics:    sections.Topics,
		Resources: sections.Resources,
	}
	if err := s.repo.Create(p, days); err != nil {
		return nil, err
	}
	p.DailyRoutines = days
	return p, nil
}

func (s *PlanSvc) List(userID string) ([]entities.PlanSummary, error) {
	return s.repo.List(userID)
}

func (s *PlanSvc) Get(id uint) (*entities.StudyPlan, error) {
	return s.repo.Get(id)
}

func (s *PlanSvc) ToggleDay(id uint, dayIndex int, completed bool, now time.Time) ([]entities.DayEntry, error) {
	days, err := s.repo.Days(id)
	if err != nil {
		return nil, err
	}
	if dayIndex < 0 || dayIndex >= len(days) {
		return nil, fmt.Errorf("day index %d out of range", dayIndex)
	}
	if days[dayIndex].IsCompleted == completed {
		// already in the requested state; re-stamping completedAt here would
		// move the cooldown baseline for every other day
		return days, nil
	}

	if completed {
		err = s.gate.CheckComplete(days, dayIndex, now)
	} else {
		err = s.gate.CheckUncomplete(days, dayIndex)
	}
	if err != nil {
		return nil, err
	}

	entry := days[dayIndex]
	progression.Apply(&entry, completed, now)
	if err := s.repo.PatchDay(id, entry.DayNumber, entry.IsCompleted, entry.CompletedAt, entry.Version); err != nil {
		// nothing was written; the caller keeps its pre-toggle snapshot
		return nil, err
	}
	entry.Version++
	days[dayIndex] = entry
	return days, nil
}
