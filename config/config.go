package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port            string
	DBPath          string
	GenEndpoint     string
	GenAPIKey       string
	BackendEndpoint string
	BackendAPIKey   string
	OrgID           string
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
	cfg := AppConfig{
		Port:            get("PORT", "8080"),
		DBPath:          get("DB_PATH", "composer.db"),
		GenEndpoint:     get("GEN_ENDPOINT", ""),
		GenAPIKey:       get("GEN_API_KEY", ""),
		BackendEndpoint: get("BACKEND_ENDPOINT", ""),
		BackendAPIKey:   get("BACKEND_API_KEY", ""),
		OrgID:           get("ORG_ID", "org_dev"),
	}
	log.Printf("[cfg] port=%s db=%s gen=%q backend=%q org=%s", cfg.Port, cfg.DBPath, cfg.GenEndpoint, cfg.BackendEndpoint, cfg.OrgID)
	return cfg
}
