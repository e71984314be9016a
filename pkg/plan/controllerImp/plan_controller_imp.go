package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	planrepo "disha/pkg/plan/repository"
	"disha/pkg/plan/service"
	"disha/pkg/plan/types"
	"disha/pkg/planmd"
	"disha/pkg/progression"
)

type PlanCtrl struct{ svc service.PlanService }

func NewPlanCtrl(svc service.PlanService) *PlanCtrl { return &PlanCtrl{svc: svc} }

func fail(c echo.Context, code int, err error) error {
	return c.JSON(code, map[string]any{"success": false, "error": err.Error()})
}

func (h *PlanCtrl) Generate(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req types.GenerateRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, errors.New("bad json"))
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, err)
	}

	p, err := h.svc.Generate(uid, req)
	if err != nil {
		// collaborator failures and contract violations both surface as 502;
		// the message distinguishes a malformed generation from a dead endpoint
		return fail(c, http.StatusBadGateway, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{"success": true, "plan": p})
}

func (h *PlanCtrl) Save(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req types.SaveRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, errors.New("bad json"))
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, err)
	}

	p, err := h.svc.Save(uid, req)
	if err != nil {
		var mm *planmd.MissingMarkerError
		if errors.As(err, &mm) {
			return fail(c, http.StatusUnprocessableEntity, err)
		}
		return fail(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{"success": true, "id": p.PlanID})
}

func (h *PlanCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	plans, err := h.svc.List(uid)
	if err != nil {
		return fail(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "plans": plans})
}

func (h *PlanCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	p, err := h.svc.Get(uint(id))
	if err != nil {
		return fail(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "plan": p})
}

func (h *PlanCtrl) PatchDay(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var req types.ToggleRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, errors.New("bad json"))
	}

	days, err := h.svc.ToggleDay(uint(id), req.DayIndex, req.IsCompleted, time.Now())
	if err != nil {
		var seq *progression.SequenceError
		var cool *progression.CooldownError
		var ret *progression.RetractionError
		switch {
		case errors.As(err, &seq), errors.As(err, &cool), errors.As(err, &ret):
			return fail(c, http.StatusConflict, err)
		case errors.Is(err, planrepo.ErrConflict):
			return fail(c, http.StatusConflict, err)
		case errors.Is(err, gorm.ErrRecordNotFound):
			return fail(c, http.StatusInternalServerError, err)
		}
		return fail(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "updatedRoutines": days})
}
