//go:build gcloud

package main

import (
	"context"
	"os"

	"github.com/KasumiMercury/alo-bubble-scheduler/internal/config"
	"github.com/KasumiMercury/alo-bubble-scheduler/internal/observability"
	"github.com/KasumiMercury/alo-bubble-scheduler/internal/observability/logging"
)

func initObservability(ctx context.Context, cfg *config.Config) (*observability.Resources, error) {
	serviceName := os.Getenv("K_SERVICE")
	if serviceName == "" {
		serviceName = "bubble-scheduler"
	}

	// Cloud Run deployments default to prod unless ENV says otherwise.
	env := logging.EnvProd
	if os.Getenv("ENV") != "" {
		env = logging.Environment(cfg.Environment)
	}

	obs, err := observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:     serviceName,
			Version:  Version,
			Revision: os.Getenv("K_REVISION"),
		},
		Environment:   env,
		GCPProjectID:  cfg.Observability.GCPProjectID,
		SamplingRate:  cfg.Observability.SamplingRate,
		DefaultModule: serviceModule,
		LogLevel:      cfg.LogLevel,
		OTLPEndpoint:  cfg.Observability.OTLPEndpoint,
	})
	if err != nil {
		return nil, err
	}

	return obs, nil
}
