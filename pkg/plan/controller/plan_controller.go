package controller

import "github.com/labstack/echo/v4"

type PlanController interface {
	Generate(c echo.Context) error
	Save(c echo.Context) error
	List(c echo.Context) error
	Get(c echo.Context) error
	PatchDay(c echo.Context) error
}
