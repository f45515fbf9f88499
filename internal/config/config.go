package config

import (
	"log/slog"
	"os"
	"strings"
)

type PinStore string

const (
	PinStoreMemory PinStore = "memory"
	PinStoreRedis  PinStore = "redis"
)

type Environment string

const (
	EnvDev     Environment = "dev"
	EnvStaging Environment = "staging"
	EnvProd    Environment = "prod"
)

type Config struct {
	Port          string
	LogLevel      slog.Level
	Environment   Environment
	PinStore      PinStore
	Redis         *RedisConfig
	Scheduler     *SchedulerConfig
	HTTP          *HTTPConfig
	Observability *ObservabilityConfig
}

type ObservabilityConfig struct {
	OTLPEndpoint string
	GCPProjectID string
	SamplingRate float64
}

func Load() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	pinStore, err := parsePinStore(os.Getenv("PIN_STORE"))
	if err != nil {
		return nil, err
	}

	redisConfig, err := LoadRedisConfig()
	if err != nil {
		return nil, err
	}

	schedulerConfig, err := LoadSchedulerConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:          port,
		LogLevel:      parseLogLevel(os.Getenv("LOG_LEVEL")),
		Environment:   parseEnvironment(os.Getenv("ENV")),
		PinStore:      pinStore,
		Redis:         redisConfig,
		Scheduler:     schedulerConfig,
		HTTP:          LoadHTTPConfig(),
		Observability: LoadObservabilityConfig(),
	}, nil
}

func LoadObservabilityConfig() *ObservabilityConfig {
	projectID := os.Getenv("GCLOUD_PROJECT_ID")
	if projectID == "" {
		projectID = os.Getenv("GOOGLE_CLOUD_PROJECT")
	}

	return &ObservabilityConfig{
		OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		GCPProjectID: projectID,
		SamplingRate: parseFloatOrDefault(os.Getenv("OTEL_TRACES_SAMPLER_RATIO"), 1.0),
	}
}

func parsePinStore(raw string) (PinStore, error) {
	switch PinStore(strings.ToLower(raw)) {
	case "", PinStoreMemory:
		return PinStoreMemory, nil
	case PinStoreRedis:
		return PinStoreRedis, nil
	default:
		return "", ErrInvalidPinStore
	}
}

func parseEnvironment(env string) Environment {
	switch Environment(strings.ToLower(env)) {
	case EnvStaging:
		return EnvStaging
	case EnvProd, "production":
		return EnvProd
	default:
		return EnvDev
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
