package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultSymbols is the dashboard's fixed ticker list
const DefaultSymbols = "AAPL,GOOGL,MSFT,AMZN,META"

// Config represents the application configuration
// SSOT: 모든 설정은 .env 파일 또는 환경 변수에서 로드됨
type Config struct {
	Server    ServerConfig
	Finnhub   FinnhubConfig
	Dashboard DashboardConfig
	Logging   LoggingConfig
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
}

// FinnhubConfig holds the market-data credential.
// An empty APIKey is not a load error: it is reported when a fetch is attempted.
type FinnhubConfig struct {
	APIKey  string
	BaseURL string
}

type DashboardConfig struct {
	Symbols string // comma-separated
}

type LoggingConfig struct {
	Level         string
	Format        string
	FileEnabled   bool
	FilePath      string
	RotationSize  int // MB
	RetentionDays int
}

// Load loads configuration from .env file (optional) and environment variables
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil {
		// .env 파일이 없어도 계속 진행 (환경 변수에서 로드 시도)
		fmt.Fprintln(os.Stderr, "Warning: .env file not found, using environment variables")
	}

	return FromEnv()
}

// FromEnv builds the configuration from the current environment only
func FromEnv() (*Config, error) {
	rotation, err := getEnvInt("LOG_ROTATION_MB", 50)
	if err != nil {
		return nil, err
	}
	retention, err := getEnvInt("LOG_RETENTION_DAYS", 7)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			AllowedOrigins:  splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173")),
		},
		Finnhub: FinnhubConfig{
			// VITE_ prefix is accepted for .env files shared with the web client
			APIKey:  strings.TrimSpace(getEnv("FINNHUB_API_KEY", os.Getenv("VITE_FINNHUB_API_KEY"))),
			BaseURL: getEnv("FINNHUB_BASE_URL", "https://finnhub.io/api/v1"),
		},
		Dashboard: DashboardConfig{
			Symbols: getEnv("DASHBOARD_SYMBOLS", DefaultSymbols),
		},
		Logging: LoggingConfig{
			Level:         getEnv("LOG_LEVEL", "info"),
			Format:        getEnv("LOG_FORMAT", "pretty"),
			FileEnabled:   getEnv("LOG_FILE_ENABLED", "false") == "true",
			FilePath:      getEnv("LOG_FILE_PATH", "logs"),
			RotationSize:  rotation,
			RetentionDays: retention,
		},
	}

	return cfg, nil
}

// getEnv gets environment variable with fallback
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvInt gets integer environment variable with fallback
func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
