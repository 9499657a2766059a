package config

import (
	"fmt"
	"github.com/spf13/viper"
)

type DBConfig struct {
	ConnectionString         string `mapstructure:"connection_string"`
	ApplicationRetentionDays int    `mapstructure:"application_retention_days"`
}

func (config DBConfig) validate() error {
	if config.ConnectionString == "" {
		return fmt.Errorf("missing variable: db connection string")
	}
	if config.ApplicationRetentionDays <= 0 {
		return fmt.Errorf("application_retention_days must be greater than zero")
	}
	return nil
}

func (config DBConfig) bindEnvironmentVariables() error {
	if err := viper.BindEnv("db.application_retention_days", "DB_APPLICATION_RETENTION_DAYS"); err != nil {
		return err
	}
	return viper.BindEnv("db.connection_string", "DB_CONNECTION_STRING")
}
