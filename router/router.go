package router

import (
	"github.com/labstack/echo/v4"

	"disha/pkg/middleware"
)

func New(
	e *echo.Echo,
	planCtrl interface {
		Generate(echo.Context) error
		Save(echo.Context) error
		List(echo.Context) error
		Get(echo.Context) error
		PatchDay(echo.Context) error
	},
	profileCtrl interface {
		Create(echo.Context) error
		Get(echo.Context) error
	},
	logCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
	},
	noteCtrl interface {
		IngestText(echo.Context) error
		IngestURL(echo.Context) error
		Search(echo.Context) error
		Summarize(echo.Context) error
	},
	authCtrl interface {
		DevLogin(echo.Context) error
		WhoAmI(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(middleware.DevLogin())
	api := e.Group("")

	api.GET("/whoami", authCtrl.WhoAmI)
	api.GET("/devlogin", authCtrl.DevLogin)
	e.GET("/health", healthCtrl.Health)

	// Study plans
	g := e.Group("/study-plans")
	g.POST("/generate", planCtrl.Generate)
	g.POST("", planCtrl.Save)
	g.GET("", planCtrl.List)
	g.GET("/:id", planCtrl.Get)
	g.PATCH("/:id", planCtrl.PatchDay)

	// Per-plan study logs
	api.POST("/study-plans/:id/logs", logCtrl.Create)
	api.GET("/study-plans/:id/logs", logCtrl.List)

	// Notes
	api.POST("/notes/ingest", noteCtrl.IngestText)
	api.POST("/notes/ingest/url", noteCtrl.IngestURL)
	api.GET("/notes/search", noteCtrl.Search)
	api.POST("/notes/summarize", noteCtrl.Summarize)

	// Profiles
	api.POST("/profiles", profileCtrl.Create)
	api.GET("/profiles/:id", profileCtrl.Get)

	return e
}
