package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	API       APIConfig
	Auth      AuthConfig
	HTTP      ServerConfig
	GRPC      ServerConfig
	Log       LogConfig
	Dashboard DashboardConfig
}

type AppConfig struct {
	ServiceName string
}

// APIConfig points the resource clients at the gym API.
type APIConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

type AuthConfig struct {
	JWTSecret string
}

type ServerConfig struct {
	Host string
	Port string
}

type LogConfig struct {
	Level string
}

type DashboardConfig struct {
	RefreshInterval time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	baseURL := strings.TrimRight(strings.TrimSpace(os.Getenv("GYM_API_URL")), "/")
	if baseURL == "" {
		return nil, errors.New("GYM_API_URL environment variable is required")
	}

	return &Config{
		App: AppConfig{
			ServiceName: getEnv("APP_SERVICE_NAME", "gym-console"),
		},
		API: APIConfig{
			BaseURL: baseURL,
			Token:   getEnv("GYM_API_TOKEN", ""),
			Timeout: getSecondsEnv("GYM_API_TIMEOUT_SECONDS", 15*time.Second),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
		},
		HTTP: ServerConfig{
			Host: getEnv("HTTP_HOST", "0.0.0.0"),
			Port: getEnv("HTTP_PORT", "8080"),
		},
		GRPC: ServerConfig{
			Host: getEnv("GRPC_HOST", "0.0.0.0"),
			Port: getEnv("GRPC_PORT", "9090"),
		},
		Log: LogConfig{Level: getEnv("LOG_LEVEL", "info")},
		Dashboard: DashboardConfig{
			RefreshInterval: getSecondsEnv("DASHBOARD_REFRESH_SECONDS", 30*time.Second),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getSecondsEnv(key string, defaultValue time.Duration) time.Duration {
	if seconds := getIntEnv(key, -1); seconds >= 0 {
		return time.Duration(seconds) * time.Second
	}
	return defaultValue
}
