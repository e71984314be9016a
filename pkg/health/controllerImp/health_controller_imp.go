package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

var appStart = time.Now()

type HealthCtrl struct {
	db      *gorm.DB
	llmMode string
	presets int
}

// NewHealthCtrl wires the readiness probe. llmMode names the active plan
// generator ("openai" or "mock"); presets is the number of exam presets
// loaded at startup.
func NewHealthCtrl(db *gorm.DB, llmMode string, presets int) *HealthCtrl {
	return &HealthCtrl{db: db, llmMode: llmMode, presets: presets}
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	dbOK := true
	dbErr := ""
	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err != nil {
			dbOK = false
			dbErr = "db.DB(): " + err.Error()
		} else if err := sqlDB.PingContext(ctx); err != nil {
			dbOK = false
			dbErr = "ping: " + err.Error()
		}
	} else {
		dbOK = false
		dbErr = "gorm db is nil"
	}

	// only the database gates readiness; missing presets degrade generation
	// but the service still answers
	status := http.StatusOK
	if !dbOK {
		status = http.StatusServiceUnavailable
	}

	type sub struct {
		OK  bool   `json:"ok"`
		Err string `json:"err,omitempty"`
	}

	resp := map[string]any{
		"status":     map[string]any{"ok": dbOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"database":     sub{OK: dbOK, Err: dbErr},
			"exam_presets": sub{OK: h.presets > 0},
		},
		"llm_mode":       h.llmMode,
		"presets_loaded": h.presets,
		"time":           time.Now().Format(time.RFC3339),
	}

	return c.JSON(status, resp)
}
