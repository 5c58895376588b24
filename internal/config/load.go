package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. DESTINY_SERVER_PORT.
const EnvPrefix = "DESTINY"

// ConfigDirEnv names a directory searched for config.yaml in addition to the
// working directory.
const ConfigDirEnv = "DESTINY_CONFIG_DIR"

// configKeys are bound explicitly so values supplied only through the
// environment still reach Unmarshal.
var configKeys = []string{
	"server.port",
	"server.log_level",
	"server.shutdown_timeout_seconds",
	"matrix.strong_threshold",
	"matrix.triad_threshold",
	"matrix.batch_max_size",
	"matrix.batch_concurrency",
	"metrics.enabled",
	"metrics.path",
	"tracing.enabled",
	"tracing.endpoint",
	"tracing.service_name",
}

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return unmarshalAndValidate(v)
}

// LoadFile loads configuration from an explicit YAML file, still honouring
// environment overrides.
func LoadFile(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return unmarshalAndValidate(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.shutdown_timeout_seconds", 10)
	v.SetDefault("matrix.strong_threshold", 3)
	v.SetDefault("matrix.triad_threshold", 2)
	v.SetDefault("matrix.batch_max_size", 50)
	v.SetDefault("matrix.batch_concurrency", 4)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.endpoint", "")
	v.SetDefault("tracing.service_name", "destiny-matrix")
}

func unmarshalAndValidate(v *viper.Viper) (*Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, key := range configKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("error binding environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
