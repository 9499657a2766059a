package config

import (
	"fmt"
	"time"
)

type SessionsConfig struct {
	TTL             time.Duration `mapstructure:"ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

func (config SessionsConfig) validate() error {
	if config.TTL <= 0 {
		return fmt.Errorf("ttl must be positive")
	}
	if config.CleanupInterval < 0 {
		return fmt.Errorf("cleanup_interval must be non-negative")
	}
	return nil
}

func (config SessionsConfig) bindEnvironmentVariables() error {
	return bindEnv(map[string]string{
		"sessions.ttl":              "SESSIONS_TTL",
		"sessions.cleanup_interval": "SESSIONS_CLEANUP_INTERVAL",
	})
}
