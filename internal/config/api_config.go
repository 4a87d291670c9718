package config

import (
	"fmt"
	"github.com/spf13/viper"
	"net/url"
)

type APIConfig struct {
	BaseURL              string  `mapstructure:"base_url"`
	MaxRequestsPerSecond float32 `mapstructure:"max_requests_per_second"`
}

func (config APIConfig) validate() error {

	if config.BaseURL == "" {
		return fmt.Errorf("missing required variable: base_url")
	}

	if _, err := url.ParseRequestURI(config.BaseURL); err != nil {
		return fmt.Errorf("invalid base_url: %w", err)
	}

	return nil
}

func (config APIConfig) bindEnvironmentVariables() error {
	var errs []error

	if err := viper.BindEnv("api.base_url", "API_BASE_URL"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("api.max_requests_per_second", "API_MAX_REQUESTS_PER_SECOND"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return createMultiError(errs)
	}

	return nil
}
