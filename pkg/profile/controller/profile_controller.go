package controller

import "github.com/labstack/echo/v4"

type ProfileController interface {
	Create(c echo.Context) error
	Get(c echo.Context) error
}
