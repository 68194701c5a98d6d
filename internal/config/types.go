package config

import "time"

// Config holds all configuration for the application.
type Config struct {
	Port      string
	LogLevel  string
	AssetsDir string
	Selector  SelectorConfig
}

type SelectorConfig struct {
	FrameInterval time.Duration
	EnterDuration time.Duration
}
