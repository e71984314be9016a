package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"disha/config"
	"disha/database"
	"disha/router"

	// Auth
	authCtrlImp "disha/pkg/auth/controllerImp"

	// Profile
	profileCtrlImp "disha/pkg/profile/controllerImp"
	profileRepoImp "disha/pkg/profile/repositoryImp"

	// Study logs
	logCtrlImp "disha/pkg/studylog/controllerImp"
	logRepoImp "disha/pkg/studylog/repositoryImp"

	// Plan
	planCtrlImp "disha/pkg/plan/controllerImp"
	planRepoImp "disha/pkg/plan/repositoryImp"
	planSvc "disha/pkg/plan/serviceImp"

	// LLM + presets + gate
	"disha/pkg/ai"
	"disha/pkg/exams"
	"disha/pkg/progression"

	// Notes
	noteCtrlImp "disha/pkg/notes/controllerImp"
	noteEmbedder "disha/pkg/notes/embedder"
	noteRepoImp "disha/pkg/notes/repositoryImp"
	noteSvcImp "disha/pkg/notes/serviceImp"

	// Quiz
	"disha/pkg/quiz"
	quizCtrlImp "disha/pkg/quiz/controllerImp"
	quizRepoImp "disha/pkg/quiz/repositoryImp"
	quizSvcImp "disha/pkg/quiz/serviceImp"

	// Health
	healthCtrlImp "disha/pkg/health/controllerImp"

	"disha/pkg/validate"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)
	if err := db.AutoMigrate(&quiz.Attempt{}); err != nil {
		log.Fatalf("auto-migrate quiz: %v", err)
	}

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Validator = validate.New()

	// 4) Exam presets (CSV + optional books workbook)
	presets, err := exams.LoadFromFiles(cfg.ExamPresetsCSV, cfg.ResourceBooksXLSX)
	if err != nil {
		log.Printf("presets warn: %v", err)
	}

	// 5) LLM (mock fallback)
	var llm ai.Client
	llmMode := "mock"
	if cfg.LLMEndpoint != "" && cfg.LLMAPIKey != "" {
		llm = ai.NewOpenAI(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel)
		llmMode = "openai"
	} else {
		llm = ai.NewMock()
	}

	// 6) Notes wiring
	var emb *noteEmbedder.Client
	if cfg.EmbEndpoint != "" {
		emb = noteEmbedder.New(cfg.EmbEndpoint, cfg.EmbAPIKey, cfg.EmbModel)
	}
	noteRepo := noteRepoImp.New(db)
	noteSvc := noteSvcImp.New(noteRepo, emb, llm)
	noteCtrl := noteCtrlImp.New(noteSvc)

	// 7) Repos/Controllers
	pRepo := profileRepoImp.New(db)
	lRepo := logRepoImp.New(db)
	planRepo := planRepoImp.New(db)
	profileCtrl := profileCtrlImp.New(pRepo)
	logCtrl := logCtrlImp.New(lRepo)

	gate := progression.New(cfg.CooldownHours, cfg.FreeUncomplete)
	pSvc := planSvc.NewPlanService(presets, llm, planRepo, noteSvc, gate)
	planCtrl := planCtrlImp.NewPlanCtrl(pSvc)

	// Quiz registers its own routes
	qRepo := quizRepoImp.New(db)
	qSvc := quizSvcImp.New(qRepo, llm)
	quizCtrlImp.New(qSvc).Register(e)

	// Auth + Health
	authCtrl := authCtrlImp.NewAuthController()
	presetCount := 0
	if presets != nil {
		presetCount = len(presets.Exams())
	}
	hCtrl := healthCtrlImp.NewHealthCtrl(db, llmMode, presetCount)

	// 8) Router
	r := router.New(
		e,
		planCtrl,
		profileCtrl,
		logCtrl,
		noteCtrl,
		authCtrl,
		hCtrl,
	)

	// 9) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
