package config

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

const (
	defaultPort          = "8080"
	defaultLogLevel      = "info"
	defaultAssetsDir     = "./assets"
	defaultFrameInterval = 16 * time.Millisecond
	defaultEnterDuration = 400 * time.Millisecond
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	cfg, err := FromLookup(os.LookupEnv)
	if err != nil {
		log.Fatalf("Invalid configuration: %s", err)
	}
	return cfg
}

// FromLookup builds a Config from lookup, falling back to defaults for unset keys.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	getEnv := func(key, fallback string) string {
		if value, ok := lookup(key); ok && value != "" {
			return value
		}
		return fallback
	}
	getDuration := func(key string, fallback time.Duration) (time.Duration, error) {
		value, ok := lookup(key)
		if !ok || value == "" {
			return fallback, nil
		}
		d, err := time.ParseDuration(value)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		if d < 0 {
			return 0, fmt.Errorf("%s: must not be negative, got %s", key, d)
		}
		return d, nil
	}

	frame, err := getDuration("FRAME_INTERVAL", defaultFrameInterval)
	if err != nil {
		return Config{}, err
	}
	enter, err := getDuration("ENTER_DURATION", defaultEnterDuration)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Port:      getEnv("PORT", defaultPort),
		LogLevel:  getEnv("LOG_LEVEL", defaultLogLevel),
		AssetsDir: getEnv("ASSETS_DIR", defaultAssetsDir),
		Selector: SelectorConfig{
			FrameInterval: frame,
			EnterDuration: enter,
		},
	}, nil
}
