package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultDatabaseURL points at the local "tournament" database.
const DefaultDatabaseURL = "dbname=tournament sslmode=disable"

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	DatabaseURL       string
	DBConnectTimeout  time.Duration
	ApplySchema       bool
	JWTSecretKey      string
	AdminPasswordHash string
	ServerPort        int

	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicBaseURL   string
}

// R2Enabled reports whether snapshot publishing to Cloudflare R2 is configured.
func (c *Config) R2Enabled() bool {
	return c.R2AccountID != ""
}

// Load загружает конфигурацию из переменных окружения.
// Опционально подгружает .env файл (полезно для локальной разработки).
func Load() (*Config, error) {
	_ = godotenv.Load()
	return fromEnv(os.Getenv)
}

func fromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		DatabaseURL:       getenv("DATABASE_URL"),
		JWTSecretKey:      getenv("JWT_SECRET_KEY"),
		AdminPasswordHash: getenv("ADMIN_PASSWORD_HASH"),
		R2AccountID:       getenv("R2_ACCOUNT_ID"),
		R2AccessKeyID:     getenv("R2_ACCESS_KEY_ID"),
		R2SecretAccessKey: getenv("R2_SECRET_ACCESS_KEY"),
		R2BucketName:      getenv("R2_BUCKET_NAME"),
		R2PublicBaseURL:   getenv("R2_PUBLIC_BASE_URL"),
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = DefaultDatabaseURL
	}

	if cfg.JWTSecretKey == "" {
		return nil, errors.New("JWT_SECRET_KEY environment variable is not set")
	}

	timeoutStr := getenv("DB_CONNECT_TIMEOUT")
	if timeoutStr == "" {
		timeoutStr = "5s"
	}
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_CONNECT_TIMEOUT environment variable: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("DB_CONNECT_TIMEOUT must be positive, got %v", timeout)
	}
	cfg.DBConnectTimeout = timeout

	if s := getenv("APPLY_SCHEMA"); s != "" {
		apply, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("invalid APPLY_SCHEMA environment variable: %w", err)
		}
		cfg.ApplySchema = apply
	}

	portStr := getenv("SERVER_PORT")
	if portStr == "" {
		portStr = "8080" // Порт по умолчанию
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}
	cfg.ServerPort = port

	// R2 is all-or-nothing
	r2 := []string{cfg.R2AccountID, cfg.R2AccessKeyID, cfg.R2SecretAccessKey, cfg.R2BucketName, cfg.R2PublicBaseURL}
	set := 0
	for _, v := range r2 {
		if v != "" {
			set++
		}
	}
	if set != 0 && set != len(r2) {
		return nil, errors.New("R2 configuration is incomplete: set all of R2_ACCOUNT_ID, R2_ACCESS_KEY_ID, R2_SECRET_ACCESS_KEY, R2_BUCKET_NAME, R2_PUBLIC_BASE_URL or none")
	}

	return cfg, nil
}
