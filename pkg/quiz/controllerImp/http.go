package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	qsvc "disha/pkg/quiz/service"
)

type httpCtrl struct{ s qsvc.Service }

func New(s qsvc.Service) *httpCtrl { return &httpCtrl{s: s} }

func (h *httpCtrl) Register(e *echo.Echo) {
	e.POST("/quiz", h.create)
	e.GET("/quiz", h.list)
	e.PATCH("/quiz/:id", h.patch)
}

type createReq struct {
	Subject      string `json:"subject"`
	Topic        string `json:"topic"`
	NumQuestions int    `json:"num_questions"`
	Difficulty   string `json:"difficulty"`
}

func (h *httpCtrl) create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var in createReq
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	a, qs, err := h.s.Generate(uid, in.Subject, in.Topic, in.NumQuestions, in.Difficulty)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, echo.Map{"attempt": a, "questions": qs})
}

func (h *httpCtrl) list(c echo.Context) error {
	uid := c.Get("uid").(string)
	list, err := h.s.ListByUser(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, list)
}

func (h *httpCtrl) patch(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var in qsvc.AttemptPatch
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	out, err := h.s.UpdatePartial(uid, uint(id), in)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "attempt not found"})
		}
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
