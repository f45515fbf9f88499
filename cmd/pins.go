package main

import (
	"context"
	"crypto/tls"
	"log/slog"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/alo-bubble-scheduler/internal/config"
	"github.com/KasumiMercury/alo-bubble-scheduler/internal/domain"
	"github.com/KasumiMercury/alo-bubble-scheduler/internal/infra/repository"
)

// initPinRepository returns the configured pin store. The redis client is
// nil for the memory store.
func initPinRepository(ctx context.Context, cfg *config.Config) (domain.PinRepository, *redis.Client, func(), error) {
	if cfg.PinStore != config.PinStoreRedis {
		slog.Info("pin repository initialized", slog.String("type", "memory"))
		return repository.NewMemoryPinRepository(), nil, func() {}, nil
	}

	opts := &redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	if cfg.Redis.TLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	redisClient := redis.NewClient(opts)
	closeClient := func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", slog.String("error", err.Error()))
		}
	}

	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		slog.Error("failed to instrument redis tracing",
			slog.String("event", "redis.otel.tracing.fail"),
			slog.String("error", err.Error()),
		)
		closeClient()
		return nil, nil, nil, err
	}

	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		slog.Error("failed to instrument redis metrics",
			slog.String("event", "redis.otel.metrics.fail"),
			slog.String("error", err.Error()),
		)
		closeClient()
		return nil, nil, nil, err
	}

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect redis",
			slog.String("event", "redis.connect.fail"),
			slog.String("error", err.Error()),
		)
		closeClient()
		return nil, nil, nil, err
	}

	slog.Info("redis connected",
		slog.String("addr", cfg.Redis.Addr),
		slog.String("namespace", cfg.Redis.Namespace),
	)

	return repository.NewPinRepository(redisClient, cfg.Redis.Namespace), redisClient, closeClient, nil
}
