package config

import (
	"fmt"
	"strings"
)

type SourceKind string

const (
	SourceSeed   SourceKind = "seed"
	SourceSqlite SourceKind = "sqlite"
	SourceRemote SourceKind = "remote"
)

type SourceConfig struct {
	Kind                 SourceKind `mapstructure:"kind"`
	URL                  string     `mapstructure:"url"`
	PerPage              int        `mapstructure:"per_page"`
	MaxRequestsPerSecond float32    `mapstructure:"max_requests_per_second"`
}

func (config SourceConfig) validate() error {

	var problems []string

	switch config.Kind {
	case SourceSeed, SourceSqlite:
	case SourceRemote:
		if config.URL == "" {
			problems = append(problems, "url is required for the remote source")
		}
		if config.PerPage < 1 || config.PerPage > 100 {
			problems = append(problems, "per_page must be between 1 and 100")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown kind %q", config.Kind))
	}

	if config.MaxRequestsPerSecond < 0 {
		problems = append(problems, "max_requests_per_second must be non-negative")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid source: %s", strings.Join(problems, ", "))
	}

	return nil
}

func (config SourceConfig) bindEnvironmentVariables() error {
	return bindEnv(map[string]string{
		"source.kind":                    "SOURCE_KIND",
		"source.url":                     "SOURCE_URL",
		"source.per_page":                "SOURCE_PER_PAGE",
		"source.max_requests_per_second": "SOURCE_MAX_REQUESTS_PER_SECOND",
	})
}
