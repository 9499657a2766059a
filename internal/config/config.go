package config

import (
	"errors"
	"fmt"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"os"
)

type Config struct {
	Logger   LoggerConfig   `mapstructure:"logger"`
	Board    BoardConfig    `mapstructure:"board"`
	Source   SourceConfig   `mapstructure:"source"`
	DB       DBConfig       `mapstructure:"db"`
	Sessions SessionsConfig `mapstructure:"sessions"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

var configFile = "./configs/config.yaml"

// Get loads the config file, CONFIG_PATH overriding its location. Values bound to
// command-line flags before the call take precedence over environment and file.
func Get() *Config {

	if value, ok := os.LookupEnv("CONFIG_PATH"); ok {
		configFile = value
	}

	config, err := loadConfig(configFile)
	if err != nil {
		log.Fatal(err)
	}

	return config
}

func loadConfig(file string) (*Config, error) {

	viper.SetConfigFile(file)
	viper.AutomaticEnv()

	setDefaults()

	err := bindEnvironmentVariables()
	if err != nil {
		return nil, err
	}

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	config := Config{}
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	err = config.validate()
	if err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("logger.log_level", string(LevelInfo))
	viper.SetDefault("board.feed_page_size", 5)
	viper.SetDefault("board.search_page_size", 15)
	viper.SetDefault("board.id_strategy", "sequential")
	viper.SetDefault("source.kind", string(SourceSeed))
	viper.SetDefault("source.per_page", 50)
	viper.SetDefault("sessions.ttl", "24h")
	viper.SetDefault("sessions.cleanup_interval", "1h")
	viper.SetDefault("metrics.addr", ":8080")
	viper.SetDefault("metrics.facet_stats_schedule", "*/5 * * * *")
}

func bindEnvironmentVariables() error {
	var errs []error

	logger, board, source, db, sessions, metrics :=
		LoggerConfig{}, BoardConfig{}, SourceConfig{}, DBConfig{}, SessionsConfig{}, MetricsConfig{}

	if err := logger.bindEnvironmentVariables(); err != nil {
		errs = append(errs, fmt.Errorf("LoggerConfig: %w", err))
	}

	if err := board.bindEnvironmentVariables(); err != nil {
		errs = append(errs, fmt.Errorf("BoardConfig: %w", err))
	}

	if err := source.bindEnvironmentVariables(); err != nil {
		errs = append(errs, fmt.Errorf("SourceConfig: %w", err))
	}

	if err := db.bindEnvironmentVariables(); err != nil {
		errs = append(errs, fmt.Errorf("DBConfig: %w", err))
	}

	if err := sessions.bindEnvironmentVariables(); err != nil {
		errs = append(errs, fmt.Errorf("SessionsConfig: %w", err))
	}

	if err := metrics.bindEnvironmentVariables(); err != nil {
		errs = append(errs, fmt.Errorf("MetricsConfig: %w", err))
	}

	if len(errs) > 0 {
		return createMultiError(errs)
	}

	return nil
}

func (config Config) validate() error {
	var errs []error

	if err := config.Logger.validate(); err != nil {
		errs = append(errs, fmt.Errorf("LoggerConfig: %w", err))
	}

	if err := config.Board.validate(); err != nil {
		errs = append(errs, fmt.Errorf("BoardConfig: %w", err))
	}

	if err := config.Source.validate(); err != nil {
		errs = append(errs, fmt.Errorf("SourceConfig: %w", err))
	}

	if config.Source.Kind == SourceSqlite {
		if err := config.DB.validate(); err != nil {
			errs = append(errs, fmt.Errorf("DBConfig: %w", err))
		}
	}

	if err := config.Sessions.validate(); err != nil {
		errs = append(errs, fmt.Errorf("SessionsConfig: %w", err))
	}

	if err := config.Metrics.validate(); err != nil {
		errs = append(errs, fmt.Errorf("MetricsConfig: %w", err))
	}

	if len(errs) > 0 {
		return createMultiError(errs)
	}

	return nil
}

func createMultiError(errs []error) error {
	return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
}

func bindEnv(bindings map[string]string) error {
	var errs []error
	for key, env := range bindings {
		if err := viper.BindEnv(key, env); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return createMultiError(errs)
	}
	return nil
}
