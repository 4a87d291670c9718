package config

import (
	"github.com/stretchr/testify/assert"
	"os"
	"testing"
)

func Test_Config_EnvironmentOverrideWorksCorrect(t *testing.T) {

	os.Setenv("API_BASE_URL", "https://staging.example.com/api")
	os.Setenv("API_MAX_REQUESTS_PER_SECOND", "5.0")
	os.Setenv("STATE_CONNECTION_STRING", "./override-state.db")
	os.Setenv("LOG_LEVEL", "DEBUG")
	os.Setenv("APP_NAME", "ats-admin-test")
	defer func() {
		os.Unsetenv("API_BASE_URL")
		os.Unsetenv("API_MAX_REQUESTS_PER_SECOND")
		os.Unsetenv("STATE_CONNECTION_STRING")
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("APP_NAME")
	}()

	cfg, err := loadConfig("../../configs/config.yaml")
	assert.NoError(t, err)

	assert.Equal(t, "https://staging.example.com/api", cfg.API.BaseURL)
	assert.Equal(t, float32(5.0), cfg.API.MaxRequestsPerSecond)
	assert.Equal(t, "./override-state.db", cfg.State.ConnectionString)
	assert.Equal(t, LevelDebug, cfg.Logger.LogLevel)
	assert.Equal(t, "ats-admin-test", cfg.Logger.AppName)
}

func Test_Config_MissingBaseURL_ShouldFailValidation(t *testing.T) {

	cfg := Config{
		Logger: LoggerConfig{LogLevel: LevelInfo, OutputFile: "./logs/errors.log"},
		State:  StateConfig{ConnectionString: "./state.db"},
	}

	err := cfg.validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "base_url")
}
