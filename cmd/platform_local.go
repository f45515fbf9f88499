//go:build !gcloud

package main

import (
	"context"
	"os"

	"github.com/KasumiMercury/alo-bubble-scheduler/internal/config"
	"github.com/KasumiMercury/alo-bubble-scheduler/internal/observability"
	"github.com/KasumiMercury/alo-bubble-scheduler/internal/observability/logging"
)

func initObservability(ctx context.Context, cfg *config.Config) (*observability.Resources, error) {
	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "bubble-scheduler"
	}

	obs, err := observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:     serviceName,
			Version:  Version,
			Revision: "",
		},
		Environment:   logging.Environment(cfg.Environment),
		GCPProjectID:  "",
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
