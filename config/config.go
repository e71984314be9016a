package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port        string
	Timezone    string
	DBPath      string
	LLMEndpoint string
	LLMAPIKey   string
	LLMModel    string

	EmbEndpoint string
	EmbAPIKey   string
	EmbModel    string

	ExamPresetsCSV    string
	ResourceBooksXLSX string

	// Progression gate policy
	CooldownHours  float64
	FreeUncomplete bool
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	getf := func(k string, def float64) float64 {
		if v := os.Getenv(k); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f
			}
		}
		return def
	}
	cfg := AppConfig{
		Port:        get("PORT", "8080"),
		Timezone:    get("TZ", "Asia/Kolkata"),
		DBPath:      get("DB_PATH", "disha.db"),
		LLMEndpoint: get("LLM_ENDPOINT", ""),
		LLMAPIKey:   get("LLM_API_KEY", ""),
		LLMModel:    get("LLM_MODEL", "gpt-4o-mini"),

		EmbEndpoint: get("EMB_ENDPOINT", ""),
		EmbAPIKey:   get("EMB_API_KEY", ""),
		EmbModel:    get("EMB_MODEL", "text-embedding-3-small"),

		ExamPresetsCSV:    get("EXAM_PRESETS_CSV", "./ExamPresets.csv"),
		ResourceBooksXLSX: get("RESOURCE_BOOKS_XLSX", ""),

		CooldownHours:  getf("UNLOCK_COOLDOWN_HOURS", 20),
		FreeUncomplete: get("FREE_UNCOMPLETE", "true") == "true",
	}
	log.Printf("[cfg] %+v", cfg)
	return cfg
}
