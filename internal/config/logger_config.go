package config

import (
	"fmt"
	"slices"

	"github.com/spf13/viper"
)

type logLevel string

const (
	LevelInfo    logLevel = "INFO"
	LevelDebug   logLevel = "DEBUG"
	LevelWarning logLevel = "WARNING"
	LevelError   logLevel = "ERROR"
	LevelFatal   logLevel = "FATAL"
)

var logLevels = []logLevel{LevelInfo, LevelDebug, LevelWarning, LevelError, LevelFatal}

// LoggerConfig configures logrus output and the optional Loki push hook. The
// Loki fields are empty by default; the hook is only attached when loki_url
// is set.
type LoggerConfig struct {
	LogLevel     logLevel `mapstructure:"log_level"`
	AppName      string   `mapstructure:"app_name"`
	LokiURL      string   `mapstructure:"loki_url"`
	LokiUser     string   `mapstructure:"loki_user"`
	LokiPassword string   `mapstructure:"loki_password"`
	OutputFile   string   `mapstructure:"output_file"`
}

func (config LoggerConfig) validate() error {
	var errs []error

	if config.LogLevel == "" {
		errs = append(errs, fmt.Errorf("missing required variable: log_level"))
	} else if !slices.Contains(logLevels, config.LogLevel) {
		errs = append(errs, fmt.Errorf("invalid log_level: %s", config.LogLevel))
	}

	if config.OutputFile == "" {
		errs = append(errs, fmt.Errorf("missing required variable: output_file"))
	}

	if len(errs) > 0 {
		return createMultiError(errs)
	}

	return nil
}

func (config LoggerConfig) bindEnvironmentVariables() error {
	var errs []error

	bindings := []struct{ key, env string }{
		{"logger.log_level", "LOG_LEVEL"},
		{"logger.app_name", "APP_NAME"},
		{"logger.loki_url", "LOKI_URL"},
		{"logger.loki_user", "LOKI_USER"},
		{"logger.loki_password", "LOKI_PASSWORD"},
		{"logger.output_file", "LOG_OUTPUT_FILE"},
	}

	for _, b := range bindings {
		if err := viper.BindEnv(b.key, b.env); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return createMultiError(errs)
	}

	return nil
}
