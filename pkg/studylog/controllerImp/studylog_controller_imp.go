package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"disha/entities"
	repo "disha/pkg/studylog/repository"
)

type StudyLogCtrl struct{ repo repo.StudyLogRepository }

func New(repo repo.StudyLogRepository) *StudyLogCtrl { return &StudyLogCtrl{repo} }

type logReq struct {
	Date         string   `json:"date"`
	HoursStudied *float64 `json:"hours_studied"`
	Confidence   *int     `json:"confidence"`
	MockScore    *float64 `json:"mock_score"`
	Note         string   `json:"note"`
}

func (h *StudyLogCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	pid, _ := strconv.Atoi(c.Param("id"))
	var req logReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	d := time.Now()
	if req.Date != "" {
		if dd, err := time.Parse("2006-01-02", req.Date); err == nil {
			d = dd
		}
	}
	l := &entities.StudyLog{
		PlanID: uint(pid), UserID: uid, Date: d,
		HoursStudied: req.HoursStudied, Confidence: req.Confidence,
		MockScore: req.MockScore, Note: req.Note,
	}
	if err := h.repo.Create(l); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, l)
}

func (h *StudyLogCtrl) List(c echo.Context) error {
	pid, _ := strconv.Atoi(c.Param("id"))
	out, err := h.repo.Recent(uint(pid), 60)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
