package config

import (
	"errors"
	"fmt"
	"github.com/spf13/viper"
)

type BoardConfig struct {
	FeedPageSize   int    `mapstructure:"feed_page_size"`
	SearchPageSize int    `mapstructure:"search_page_size"`
	IDStrategy     string `mapstructure:"id_strategy"`
}

func (config BoardConfig) validate() error {
	var errs []error

	if config.FeedPageSize < 1 {
		errs = append(errs, fmt.Errorf("feed_page_size must be at least 1"))
	}
	if config.SearchPageSize < 1 {
		errs = append(errs, fmt.Errorf("search_page_size must be at least 1"))
	}
	if config.IDStrategy != "sequential" && config.IDStrategy != "uuid" {
		errs = append(errs, fmt.Errorf("id_strategy must be sequential or uuid, got %q", config.IDStrategy))
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}

func (config BoardConfig) bindEnvironmentVariables() error {
	if err := viper.BindEnv("board.feed_page_size", "BOARD_FEED_PAGE_SIZE"); err != nil {
		return err
	}

	if err := viper.BindEnv("board.search_page_size", "BOARD_SEARCH_PAGE_SIZE"); err != nil {
		return err
	}

	return viper.BindEnv("board.id_strategy", "BOARD_ID_STRATEGY")
}
