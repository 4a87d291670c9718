package config

import (
	"fmt"
	"github.com/spf13/viper"
)

type StateConfig struct {
	ConnectionString string `mapstructure:"connection_string"`
}

func (config StateConfig) validate() error {
	if config.ConnectionString == "" {
		return fmt.Errorf("missing variable: state connection string")
	}
	return nil
}

func (config StateConfig) bindEnvironmentVariables() error {
	return viper.BindEnv("state.connection_string", "STATE_CONNECTION_STRING")
}
