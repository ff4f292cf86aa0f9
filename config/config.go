package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string

	// Database. Driver selects the backend: "sqlite" (embedded file) or
	// "postgres" (networked, pooled). DatabaseURL is only used for postgres;
	// SQLitePath only for sqlite.
	DBDriver    string
	DatabaseURL string
	SQLitePath  string

	// Auth
	JWTSecret        string
	TokenExpiryHours int
	AdminEmail       string
	AdminPassword    string

	// HTTP
	FrontendURL  string
	MaxBodyBytes int64

	// Uploads
	UploadDir string

	// Redis (optional; rate limiter falls back to in-memory when absent)
	RedisURL      string
	RedisPassword string

	// Rate limiting
	RateLimitGlobal int // requests per window, all routes
	RateLimitLogin  int // login attempts per window
	RateLimitWindow int // window in seconds
}

func Load() (*Config, error) {
	// Load .env file (effective locally; ignored in production when absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "3002"),
		Environment: getEnv("APP_ENV", "development"),

		DBDriver:    getEnv("DB_DRIVER", "sqlite"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		SQLitePath:  getEnv("SQLITE_PATH", "data/portfolio.db"),

		JWTSecret:        getEnv("JWT_SECRET", ""),
		TokenExpiryHours: getEnvInt("TOKEN_EXPIRY_HOURS", 24),
		AdminEmail:       getEnv("ADMIN_EMAIL", "admin@portfolio.com"),
		AdminPassword:    getEnv("ADMIN_PASSWORD", ""),

		FrontendURL:  getEnv("FRONTEND_URL", "http://localhost:3003"),
		MaxBodyBytes: int64(getEnvInt("MAX_BODY_MB", 10)) << 20,

		UploadDir: getEnv("UPLOAD_DIR", "uploads"),

		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		RateLimitGlobal: getEnvInt("RATE_LIMIT_GLOBAL", 100),
		RateLimitLogin:  getEnvInt("RATE_LIMIT_LOGIN", 5),
		RateLimitWindow: getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 900),
	}

	if cfg.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET is missing. Admin login will not be usable.")
	}
	if cfg.DBDriver == "postgres" && cfg.DatabaseURL == "" {
		log.Println("WARNING: DB_DRIVER=postgres but DATABASE_URL is missing.")
	}
	if cfg.AdminPassword == "" {
		log.Println("WARNING: ADMIN_PASSWORD is missing. The admin account will only be seeded when it is set.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
