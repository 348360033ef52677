package config

import (
	"os"
	"strconv"
	"time"
)

// Config is the full environment-driven configuration
type Config struct {
	AI       AIConfig
	Notifx   NotifxConfig
	Research ResearchConfig
}

// Load reads the configuration from the environment
func Load() Config {
	return Config{
		AI:       loadAIConfig(),
		Notifx:   loadNotifxConfig(),
		Research: loadResearchConfig(),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
