package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all sawmill configuration.
type Config struct {
	Log     LogConfig
	Analyze AnalyzeConfig
	Monitor MonitorConfig
	Sink    SinkConfig
}

// LogConfig holds application logging settings.
type LogConfig struct {
	Level      string // "debug", "info", "warn", "error"
	File       string // when set, app logs rotate through this file
	MaxSizeMB  int
	MaxBackups int
}

// AnalyzeConfig holds analysis defaults.
type AnalyzeConfig struct {
	TopN int
}

// MonitorConfig holds tail-follow settings.
type MonitorConfig struct {
	PollInterval  time.Duration
	AlertCooldown time.Duration
	LargeResponse int64 // bytes; responses above this trigger the large-response rule
}

// SinkConfig holds export destination settings.
type SinkConfig struct {
	PostgresDSN string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Log: LogConfig{
			Level:      getenv("SAWMILL_LOG_LEVEL", "info"),
			File:       os.Getenv("SAWMILL_LOG_FILE"),
			MaxSizeMB:  getenvInt("SAWMILL_LOG_MAX_SIZE_MB", 50),
			MaxBackups: getenvInt("SAWMILL_LOG_MAX_BACKUPS", 3),
		},
		Analyze: AnalyzeConfig{
			TopN: getenvInt("SAWMILL_TOP_N", 10),
		},
		Monitor: MonitorConfig{
			PollInterval:  getenvDuration("SAWMILL_POLL_INTERVAL", 500*time.Millisecond),
			AlertCooldown: getenvDuration("SAWMILL_ALERT_COOLDOWN", 30*time.Second),
			LargeResponse: int64(getenvInt("SAWMILL_LARGE_RESPONSE_BYTES", 1<<20)),
		},
		Sink: SinkConfig{
			PostgresDSN: os.Getenv("SAWMILL_POSTGRES_DSN"),
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
