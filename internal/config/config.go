package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort           string
	DatabaseDSN        string
	JWTSecret          string
	CORSOrigins        string
	AdminPasswordHash  string // bcrypt hash of the shared dashboard password
	LegacyWorkbookPath string // xlsx workbook for legacy import/export, optional
}

func Load() *Config {
	// Best effort: a missing .env is fine, real deployments set the
	// environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:        getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=fitclub port=5432 sslmode=disable"),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		CORSOrigins:        getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
		AdminPasswordHash:  getEnv("ADMIN_PASSWORD_HASH", ""),
		LegacyWorkbookPath: getEnv("LEGACY_WORKBOOK_PATH", ""),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET is not set. It is required.")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET must be at least 32 characters.")
	}
	if cfg.AdminPasswordHash == "" {
		log.Fatal("[FATAL] ADMIN_PASSWORD_HASH is not set. The admin dashboard cannot be unlocked without it.")
	}
	if cfg.DatabaseDSN == "host=localhost user=postgres password=postgres dbname=fitclub port=5432 sslmode=disable" {
		log.Println("[WARN] DATABASE_DSN is using the development default. Set your own Postgres DSN in production.")
	}
	if cfg.LegacyWorkbookPath == "" {
		log.Println("[WARN] LEGACY_WORKBOOK_PATH is not set. Legacy import/export will report failure until it is configured.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
