package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server" validate:"required"`
	Matrix  MatrixConfig  `mapstructure:"matrix" validate:"required"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Tracing TracingConfig `mapstructure:"tracing"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// ShutdownTimeoutSeconds bounds graceful shutdown.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`
}

// MatrixConfig contains the interpretation thresholds and batch limits.
type MatrixConfig struct {
	StrongThreshold  int `mapstructure:"strong_threshold" validate:"gte=1,lte=11"`
	TriadThreshold   int `mapstructure:"triad_threshold" validate:"gte=1,lte=11"`
	BatchMaxSize     int `mapstructure:"batch_max_size" validate:"gte=1,lte=1000"`
	BatchConcurrency int `mapstructure:"batch_concurrency" validate:"gte=1,lte=64"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path" validate:"omitempty,startswith=/"`
}

// TracingConfig controls OpenTelemetry span export. Tracing stays a no-op
// unless Enabled is set.
type TracingConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	Endpoint    string `mapstructure:"endpoint" validate:"required_if=Enabled true"`
	ServiceName string `mapstructure:"service_name" validate:"required"`
}
