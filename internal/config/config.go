package config

import (
	"log/slog"
	"os"
	"time"
)

type Config struct {
	Port        string
	Env         string
	DatabaseDSN string
	JWTSecret   string
	JWTExpiry   time.Duration

	// Single static admin identity. AdminPasswordHash, when set, is an
	// argon2id PHC string and takes precedence over the raw password.
	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string

	UploadDir      string
	WhatsAppNumber string
}

func Load() Config {
	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		Env:               getEnv("ENV", "development"),
		DatabaseDSN:       getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/bakehouse?parseTime=true"),
		JWTSecret:         getEnv("JWT_SECRET", "dev-secret-change-in-production"),
		JWTExpiry:         24 * time.Hour,
		AdminUsername:     getEnv("ADMIN_USER", "admin"),
		AdminPassword:     getEnv("ADMIN_PASS", "admin"),
		AdminPasswordHash: getEnv("ADMIN_PASS_HASH", ""),
		UploadDir:         getEnv("UPLOAD_DIR", "uploads"),
		WhatsAppNumber:    getEnv("WHATSAPP_NUMBER", ""),
	}

	if cfg.Env == "production" {
		if cfg.JWTSecret == "dev-secret-change-in-production" {
			slog.Error("JWT_SECRET must be set in production environment")
			os.Exit(1)
		}
		if cfg.AdminPasswordHash == "" && cfg.AdminPassword == "admin" {
			slog.Error("ADMIN_PASS or ADMIN_PASS_HASH must be set in production environment")
			os.Exit(1)
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
