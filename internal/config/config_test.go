package config

import (
	"errors"
	"log/slog"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "LOG_LEVEL", "ENV", "PIN_STORE",
		"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "REDIS_TLS", "REDIS_PIN_NAMESPACE",
		"AMBIENT_PERIOD_MS", "BUBBLE_DISPLAY_MS", "PIN_ALERT_DELAY_MS", "AMBIENT_SEED", "CATALOG_PATH",
		"CORS_ALLOW_ORIGINS", "PROXIMITY_RATE_LIMIT_REQUESTS", "PROXIMITY_RATE_LIMIT_WINDOW_SECONDS",
		"OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_TRACES_SAMPLER_RATIO",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("expected port 8080, got %q", cfg.Port)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("expected info level, got %v", cfg.LogLevel)
	}
	if cfg.Environment != EnvDev {
		t.Errorf("expected dev environment, got %q", cfg.Environment)
	}
	if cfg.PinStore != PinStoreMemory {
		t.Errorf("expected memory pin store, got %q", cfg.PinStore)
	}
	if cfg.Redis.Namespace != "default" {
		t.Errorf("expected default namespace, got %q", cfg.Redis.Namespace)
	}

	s := cfg.Scheduler
	if s.AmbientPeriod != 8*time.Second || s.DisplayDuration != 4*time.Second || s.PinAlertDelay != 2*time.Second {
		t.Errorf("unexpected scheduler durations: %+v", s)
	}
	if s.Seed != 0 {
		t.Errorf("expected zero seed, got %d", s.Seed)
	}

	h := cfg.HTTP
	if len(h.CORSAllowOrigins) != 1 || h.CORSAllowOrigins[0] != "*" {
		t.Errorf("unexpected CORS origins: %v", h.CORSAllowOrigins)
	}
	if h.ProximityRateRequests != 10 || h.ProximityRateWindow != time.Minute {
		t.Errorf("unexpected proximity rate limit: %d per %v", h.ProximityRateRequests, h.ProximityRateWindow)
	}

	if err := ValidateForRun(cfg); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ENV", "production")
	t.Setenv("PIN_STORE", "redis")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("AMBIENT_PERIOD_MS", "1000")
	t.Setenv("BUBBLE_DISPLAY_MS", "500")
	t.Setenv("PIN_ALERT_DELAY_MS", "250")
	t.Setenv("AMBIENT_SEED", "42")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://localhost:3000, https://alo.example ,")
	t.Setenv("PROXIMITY_RATE_LIMIT_REQUESTS", "3")
	t.Setenv("PROXIMITY_RATE_LIMIT_WINDOW_SECONDS", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %q", cfg.Port)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", cfg.LogLevel)
	}
	if cfg.Environment != EnvProd {
		t.Errorf("expected prod environment, got %q", cfg.Environment)
	}
	if cfg.PinStore != PinStoreRedis {
		t.Errorf("expected redis pin store, got %q", cfg.PinStore)
	}
	if cfg.Redis.Addr != "redis:6379" || cfg.Redis.DB != 2 {
		t.Errorf("unexpected redis config: %+v", cfg.Redis)
	}
	if cfg.Scheduler.AmbientPeriod != time.Second {
		t.Errorf("expected 1s period, got %v", cfg.Scheduler.AmbientPeriod)
	}
	if cfg.Scheduler.DisplayDuration != 500*time.Millisecond {
		t.Errorf("expected 500ms display, got %v", cfg.Scheduler.DisplayDuration)
	}
	if cfg.Scheduler.PinAlertDelay != 250*time.Millisecond {
		t.Errorf("expected 250ms delay, got %v", cfg.Scheduler.PinAlertDelay)
	}
	if cfg.Scheduler.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Scheduler.Seed)
	}
	if got := cfg.HTTP.CORSAllowOrigins; len(got) != 2 || got[1] != "https://alo.example" {
		t.Errorf("unexpected CORS origins: %v", got)
	}
	if cfg.HTTP.ProximityRateRequests != 3 || cfg.HTTP.ProximityRateWindow != 5*time.Second {
		t.Errorf("unexpected proximity rate limit: %+v", cfg.HTTP)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr error
	}{
		{name: "unknown pin store", key: "PIN_STORE", value: "postgres", wantErr: ErrInvalidPinStore},
		{name: "invalid redis db", key: "REDIS_DB", value: "two", wantErr: ErrInvalidRedisDB},
		{name: "non-numeric period", key: "AMBIENT_PERIOD_MS", value: "fast", wantErr: ErrInvalidDuration},
		{name: "zero display", key: "BUBBLE_DISPLAY_MS", value: "0", wantErr: ErrInvalidDuration},
		{name: "negative delay", key: "PIN_ALERT_DELAY_MS", value: "-5", wantErr: ErrInvalidDuration},
		{name: "invalid seed", key: "AMBIENT_SEED", value: "-1", wantErr: ErrInvalidSeed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateForRun(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg.PinStore = PinStoreRedis
	cfg.Redis.Addr = ""
	cfg.Scheduler.AmbientPeriod = 0

	err = ValidateForRun(cfg)
	if !errors.Is(err, ErrRedisAddrMissing) {
		t.Errorf("expected ErrRedisAddrMissing in %v", err)
	}
	if !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("expected ErrInvalidDuration in %v", err)
	}

	cfg.PinStore = PinStoreMemory
	cfg.Scheduler.AmbientPeriod = time.Second
	if err := ValidateForRun(cfg); err != nil {
		t.Errorf("memory store should not require redis, got %v", err)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLogLevel(tt.input); got != tt.want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
