package main

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/KasumiMercury/alo-bubble-scheduler/internal/config"
	"github.com/KasumiMercury/alo-bubble-scheduler/internal/handler"
	"github.com/KasumiMercury/alo-bubble-scheduler/internal/health"
	"github.com/KasumiMercury/alo-bubble-scheduler/internal/infra/eventrecorder"
	"github.com/KasumiMercury/alo-bubble-scheduler/internal/observability/logging"
	"github.com/KasumiMercury/alo-bubble-scheduler/internal/observability/metrics"
	"github.com/KasumiMercury/alo-bubble-scheduler/internal/service/catalog"
	"github.com/KasumiMercury/alo-bubble-scheduler/internal/service/session"
)

const serviceModule = logging.Module("bubble-scheduler")

func newServeCommand(code *int) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and bubble scheduler",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			*code = runServe(cmd.Context())
		},
	}
}

func runServe(parent context.Context) int {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	obs, err := initObservability(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		slog.Error("failed to initialize HTTP metrics", slog.String("error", err.Error()))
		return 1
	}

	bubbleMetrics, err := metrics.NewBubbleMetrics()
	if err != nil {
		slog.Error("failed to initialize bubble metrics", slog.String("error", err.Error()))
		return 1
	}

	cat, err := catalog.Load(cfg.Scheduler.CatalogPath)
	if err != nil {
		slog.Error("failed to load catalog",
			slog.String("path", cfg.Scheduler.CatalogPath),
			slog.String("error", err.Error()),
		)
		return 1
	}

	// Bubble event recorder (InfluxDB for local, BigQuery for gcloud)
	recorderCfg := eventrecorder.LoadConfig()
	recorder, err := eventrecorder.NewRecorder(ctx, recorderCfg)
	if err != nil {
		slog.Error("failed to initialize bubble event recorder", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := recorder.Close(); err != nil {
			slog.Warn("failed to close bubble event recorder", slog.String("error", err.Error()))
		}
	}()

	worker := eventrecorder.NewWorker(recorder, recorderCfg)
	workerCtx, stopWorker := context.WithCancel(context.Background())
	go worker.Run(workerCtx)
	defer func() {
		stopWorker()
		<-worker.Done()
	}()

	pins, redisClient, closePins, err := initPinRepository(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize pin repository", slog.String("error", err.Error()))
		return 1
	}
	defer closePins()

	controller := session.NewController(cat, pins,
		session.WithConfig(session.Config{
			AmbientPeriod:   cfg.Scheduler.AmbientPeriod,
			DisplayDuration: cfg.Scheduler.DisplayDuration,
			PinAlertDelay:   cfg.Scheduler.PinAlertDelay,
		}),
		session.WithRand(newRand(cfg.Scheduler.Seed)),
		session.WithMetrics(bubbleMetrics),
		session.WithEventSink(worker),
	)
	defer controller.Leave(context.Background())

	srv := handler.NewServer(":"+cfg.Port, handler.NewRouter(handler.RouterConfig{
		Catalog:     cat,
		Session:     controller,
		Health:      health.NewChecker(redisClient, controller, Version),
		HTTP:        cfg.HTTP,
		HTTPMetrics: httpMetrics,
		Module:      serviceModule,
	}))

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.String("pin_store", string(cfg.PinStore)),
			slog.Duration("ambient_period", cfg.Scheduler.AmbientPeriod),
			slog.Duration("display_duration", cfg.Scheduler.DisplayDuration),
			slog.Duration("pin_alert_delay", cfg.Scheduler.PinAlertDelay),
			slog.Int("festivals", len(cat.Festivals)),
		)
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}

// newRand returns the ambient template picker. A zero seed is replaced by
// the current time.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed))
}
