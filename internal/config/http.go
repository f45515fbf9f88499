package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	corsAllowOriginsEnv        = "CORS_ALLOW_ORIGINS"
	proximityRateRequestsEnv   = "PROXIMITY_RATE_LIMIT_REQUESTS"
	proximityRateWindowSecsEnv = "PROXIMITY_RATE_LIMIT_WINDOW_SECONDS"

	defaultCORSAllowOrigin       = "*"
	defaultProximityRateRequests = 10
	defaultProximityRateWindow   = 60 * time.Second
)

type HTTPConfig struct {
	CORSAllowOrigins []string
	// Proximity queries allowed per client IP within ProximityRateWindow.
	ProximityRateRequests int
	ProximityRateWindow   time.Duration
}

func LoadHTTPConfig() *HTTPConfig {
	origins := splitList(os.Getenv(corsAllowOriginsEnv))
	if len(origins) == 0 {
		origins = []string{defaultCORSAllowOrigin}
	}

	requests := defaultProximityRateRequests
	if v := os.Getenv(proximityRateRequestsEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			requests = parsed
		}
	}

	window := defaultProximityRateWindow
	if v := os.Getenv(proximityRateWindowSecsEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			window = time.Duration(parsed) * time.Second
		}
	}

	return &HTTPConfig{
		CORSAllowOrigins:      origins,
		ProximityRateRequests: requests,
		ProximityRateWindow:   window,
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseFloatOrDefault(raw string, defaultValue float64) float64 {
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 || v > 1 {
		return defaultValue
	}
	return v
}
