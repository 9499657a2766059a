package config

import (
	"fmt"
	"github.com/robfig/cron/v3"
)

type MetricsConfig struct {
	Addr               string `mapstructure:"addr"`
	FacetStatsSchedule string `mapstructure:"facet_stats_schedule"`
}

func (config MetricsConfig) validate() error {
	if _, err := cron.ParseStandard(config.FacetStatsSchedule); err != nil {
		return fmt.Errorf("invalid facet_stats_schedule: %w", err)
	}
	return nil
}

func (config MetricsConfig) bindEnvironmentVariables() error {
	return bindEnv(map[string]string{
		"metrics.addr":                 "METRICS_ADDR",
		"metrics.facet_stats_schedule": "METRICS_FACET_STATS_SCHEDULE",
	})
}
