package eventrecorder

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"BUBBLE_EVENTS_DISABLED",
		"BUBBLE_EVENTS_BATCH_SIZE",
		"BUBBLE_EVENTS_BUFFER_SIZE",
		"BUBBLE_EVENTS_FLUSH_INTERVAL_MS",
		"INFLUXDB_URL",
		"INFLUXDB_BUCKET",
		"BIGQUERY_DATASET",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	if cfg.Disabled {
		t.Error("expected recording enabled by default")
	}
	if cfg.BatchSize != defaultBatchSize {
		t.Errorf("expected batch size %d, got %d", defaultBatchSize, cfg.BatchSize)
	}
	if cfg.FlushInterval != defaultFlushInterval {
		t.Errorf("expected flush interval %v, got %v", defaultFlushInterval, cfg.FlushInterval)
	}
	if cfg.InfluxDBURL != "http://localhost:8086" {
		t.Errorf("unexpected InfluxDB URL %q", cfg.InfluxDBURL)
	}
	if cfg.InfluxDBBucket != "bubble_events" {
		t.Errorf("unexpected InfluxDB bucket %q", cfg.InfluxDBBucket)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("BUBBLE_EVENTS_DISABLED", "true")
	t.Setenv("BUBBLE_EVENTS_BATCH_SIZE", "7")
	t.Setenv("BUBBLE_EVENTS_FLUSH_INTERVAL_MS", "250")
	t.Setenv("BUBBLE_EVENTS_BUFFER_SIZE", "not-a-number")

	cfg := LoadConfig()

	if !cfg.Disabled {
		t.Error("expected recording disabled")
	}
	if cfg.BatchSize != 7 {
		t.Errorf("expected batch size 7, got %d", cfg.BatchSize)
	}
	if cfg.FlushInterval != 250*time.Millisecond {
		t.Errorf("expected 250ms, got %v", cfg.FlushInterval)
	}
	if cfg.BufferSize != defaultBufferSize {
		t.Errorf("expected invalid buffer size to fall back to %d, got %d", defaultBufferSize, cfg.BufferSize)
	}
}
