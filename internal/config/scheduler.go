package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	ambientPeriodMsEnv = "AMBIENT_PERIOD_MS"
	bubbleDisplayMsEnv = "BUBBLE_DISPLAY_MS"
	pinAlertDelayMsEnv = "PIN_ALERT_DELAY_MS"
	ambientSeedEnv     = "AMBIENT_SEED"
	catalogPathEnv     = "CATALOG_PATH"

	defaultAmbientPeriod = 8 * time.Second
	defaultBubbleDisplay = 4 * time.Second
	defaultPinAlertDelay = 2 * time.Second
)

type SchedulerConfig struct {
	AmbientPeriod   time.Duration
	DisplayDuration time.Duration
	PinAlertDelay   time.Duration
	// Seed of the ambient template picker. Zero seeds from the current time.
	Seed        uint64
	CatalogPath string
}

func LoadSchedulerConfig() (*SchedulerConfig, error) {
	period, err := parseMillis(ambientPeriodMsEnv, defaultAmbientPeriod)
	if err != nil {
		return nil, err
	}

	display, err := parseMillis(bubbleDisplayMsEnv, defaultBubbleDisplay)
	if err != nil {
		return nil, err
	}

	delay, err := parseMillis(pinAlertDelayMsEnv, defaultPinAlertDelay)
	if err != nil {
		return nil, err
	}

	var seed uint64
	if v := os.Getenv(ambientSeedEnv); v != "" {
		parsed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, ErrInvalidSeed
		}
		seed = parsed
	}

	return &SchedulerConfig{
		AmbientPeriod:   period,
		DisplayDuration: display,
		PinAlertDelay:   delay,
		Seed:            seed,
		CatalogPath:     os.Getenv(catalogPathEnv),
	}, nil
}

func (c *SchedulerConfig) Validate() error {
	if c.AmbientPeriod <= 0 || c.DisplayDuration <= 0 || c.PinAlertDelay <= 0 {
		return ErrInvalidDuration
	}
	return nil
}

func parseMillis(key string, defaultValue time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	ms, err := strconv.Atoi(v)
	if err != nil || ms <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidDuration, key, v)
	}

	return time.Duration(ms) * time.Millisecond, nil
}
