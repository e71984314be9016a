package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"disha/entities"
	"disha/pkg/profile/repository"
)

type ProfileCtrl struct{ repo repository.ProfileRepository }

func New(repo repository.ProfileRepository) *ProfileCtrl { return &ProfileCtrl{repo} }

type createReq struct {
	Name          string   `json:"name"`
	Exam          string   `json:"exam"`
	TargetDate    string   `json:"target_date"`
	DailyStudyHrs *float64 `json:"daily_study_hrs"`
	Difficulty    string   `json:"difficulty"`
	Language      string   `json:"language"`
	WeakSubjects  string   `json:"weak_subjects"`
}

func (h *ProfileCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	var target *time.Time
	if req.TargetDate != "" {
		if td, err := time.Parse("2006-01-02", req.TargetDate); err == nil {
			target = &td
		}
	}
	p := &entities.StudyProfile{
		UserID: uid, Name: req.Name, Exam: req.Exam, TargetDate: target,
		DailyStudyHrs: req.DailyStudyHrs, Difficulty: req.Difficulty,
		Language: req.Language, WeakSubjects: req.WeakSubjects,
	}
	if err := h.repo.Create(p); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *ProfileCtrl) Get(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	p, err := h.repo.FindByID(uint(id), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, p)
}
