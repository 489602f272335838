package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"

	// devSessionSecret используется только вне production
	devSessionSecret = "dev-only-session-secret-key"
)

type Config struct {
	Environment     string
	HTTPAddr        string
	SessionSecret   string
	TeachersFile    string
	StaticDir       string
	DBDSN           string // пусто: журнал в памяти
	AllowedOrigins  []string
	ShutdownTimeout time.Duration

	// InsecureSessionSecret выставляется, если SESSION_SECRET_KEY не задан
	InsecureSessionSecret bool
}

// Load читает .env (если есть) и переменные окружения
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return FromEnv()
}

// FromEnv собирает конфиг только из переменных окружения
func FromEnv() (*Config, error) {
	cfg := &Config{
		Environment:    getEnv("ENV", EnvDevelopment),
		HTTPAddr:       getEnv("HTTP_ADDR", ":8000"),
		SessionSecret:  os.Getenv("SESSION_SECRET_KEY"),
		TeachersFile:   getEnv("TEACHERS_FILE", "teachers.json"),
		StaticDir:      getEnv("STATIC_DIR", "static"),
		DBDSN:          os.Getenv("DB_DSN"),
		AllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}

	timeout, err := time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("parse SHUTDOWN_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", timeout)
	}
	cfg.ShutdownTimeout = timeout

	// Проверяем секрет сессии
	if cfg.SessionSecret == "" {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("SESSION_SECRET_KEY is required in production")
		}
		cfg.SessionSecret = devSessionSecret
		cfg.InsecureSessionSecret = true
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// JournalEnabled показывает, что журнал пишется в PostgreSQL
func (c *Config) JournalEnabled() bool {
	return c.DBDSN != ""
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
