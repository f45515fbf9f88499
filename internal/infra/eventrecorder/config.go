package eventrecorder

import (
	"os"
	"strconv"
	"time"
)

const (
	defaultBatchSize     = 50
	defaultBufferSize    = 1024
	defaultFlushInterval = 5 * time.Second
)

type Config struct {
	Disabled bool

	BatchSize     int
	BufferSize    int
	FlushInterval time.Duration

	InfluxDBURL    string
	InfluxDBToken  string
	InfluxDBOrg    string
	InfluxDBBucket string

	BigQueryProjectID string
	BigQueryDataset   string
	BigQueryTable     string
}

func LoadConfig() *Config {
	cfg := &Config{
		Disabled: os.Getenv("BUBBLE_EVENTS_DISABLED") == "true",

		BatchSize:     getEnvIntOrDefault("BUBBLE_EVENTS_BATCH_SIZE", defaultBatchSize),
		BufferSize:    getEnvIntOrDefault("BUBBLE_EVENTS_BUFFER_SIZE", defaultBufferSize),
		FlushInterval: time.Duration(getEnvIntOrDefault("BUBBLE_EVENTS_FLUSH_INTERVAL_MS", int(defaultFlushInterval/time.Millisecond))) * time.Millisecond,

		InfluxDBURL:    getEnvOrDefault("INFLUXDB_URL", "http://localhost:8086"),
		InfluxDBToken:  os.Getenv("INFLUXDB_TOKEN"),
		InfluxDBOrg:    os.Getenv("INFLUXDB_ORG"),
		InfluxDBBucket: getEnvOrDefault("INFLUXDB_BUCKET", "bubble_events"),

		BigQueryProjectID: getEnvOrDefault("BIGQUERY_PROJECT_ID", os.Getenv("GOOGLE_CLOUD_PROJECT")),
		BigQueryDataset:   getEnvOrDefault("BIGQUERY_DATASET", "bubble_events"),
		BigQueryTable:     getEnvOrDefault("BIGQUERY_TABLE", "bubble_events"),
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}
