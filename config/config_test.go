package config

import (
	"os"
	"testing"
	"time"
)

func setEnv(t *testing.T, key, value string) {
	t.Helper()
	old, had := os.LookupEnv(key)
	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("setenv %s failed: %v", key, err)
	}
	t.Cleanup(func() {
		if had {
			_ = os.Setenv(key, old)
		} else {
			_ = os.Unsetenv(key)
		}
	})
}

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	old, had := os.LookupEnv(key)
	_ = os.Unsetenv(key)
	t.Cleanup(func() {
		if had {
			_ = os.Setenv(key, old)
		}
	})
}

func TestLoadRequiresAPIURL(t *testing.T) {
	unsetEnv(t, "GYM_API_URL")
	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing GYM_API_URL")
	}
}

func TestLoadDefaults(t *testing.T) {
	setEnv(t, "GYM_API_URL", "http://localhost:3333/")
	unsetEnv(t, "GYM_API_TIMEOUT_SECONDS")
	unsetEnv(t, "DASHBOARD_REFRESH_SECONDS")
	unsetEnv(t, "HTTP_PORT")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:3333" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 15*time.Second {
		t.Fatalf("unexpected default timeout: %v", cfg.API.Timeout)
	}
	if cfg.Dashboard.RefreshInterval != 30*time.Second {
		t.Fatalf("unexpected default refresh: %v", cfg.Dashboard.RefreshInterval)
	}
	if cfg.HTTP.Port != "8080" {
		t.Fatalf("unexpected default http port: %s", cfg.HTTP.Port)
	}
}

func TestLoadOverrides(t *testing.T) {
	setEnv(t, "GYM_API_URL", "https://api.gym.test")
	setEnv(t, "GYM_API_TOKEN", "tok-1")
	setEnv(t, "GYM_API_TIMEOUT_SECONDS", "5")
	setEnv(t, "JWT_SECRET", "s3cret")
	setEnv(t, "APP_SERVICE_NAME", "gym-test")
	setEnv(t, "HTTP_PORT", "8181")
	setEnv(t, "GRPC_PORT", "9191")
	setEnv(t, "DASHBOARD_REFRESH_SECONDS", "0")
	setEnv(t, "LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.App.ServiceName != "gym-test" {
		t.Fatalf("unexpected app service name: %s", cfg.App.ServiceName)
	}
	if cfg.API.Token != "tok-1" || cfg.API.Timeout != 5*time.Second {
		t.Fatalf("unexpected api config: %+v", cfg.API)
	}
	if cfg.Auth.JWTSecret != "s3cret" {
		t.Fatalf("unexpected jwt secret: %q", cfg.Auth.JWTSecret)
	}
	if cfg.HTTP.Port != "8181" || cfg.GRPC.Port != "9191" {
		t.Fatalf("unexpected ports: http=%s grpc=%s", cfg.HTTP.Port, cfg.GRPC.Port)
	}
	if cfg.Dashboard.RefreshInterval != 0 {
		t.Fatalf("expected explicit zero refresh interval, got %v", cfg.Dashboard.RefreshInterval)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("unexpected log level: %s", cfg.Log.Level)
	}
}

func TestGetSecondsEnvIgnoresGarbage(t *testing.T) {
	setEnv(t, "GYM_TEST_SECONDS", "ten")
	if got := getSecondsEnv("GYM_TEST_SECONDS", 7*time.Second); got != 7*time.Second {
		t.Fatalf("expected default for unparsable value, got %v", got)
	}
}
