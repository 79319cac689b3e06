package config

import (
	_ "embed"
	"fmt"

	structValidator "github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	DEFAULT_HOST = "localhost"
	DEFAULT_PORT = "8000"
)

//go:embed config.yaml
var defaultConfig []byte

// ServiceConfig holds the configuration for the service.
type ServiceConfig struct {
	ServiceName string          `yaml:"service_name" validate:"required"`
	LogLevel    string          `yaml:"loglevel" validate:"required,oneof=debug info warn error"`
	Host        string          `yaml:"host" validate:"required"`
	Port        string          `yaml:"port" validate:"required,numeric"`
	Metrics     MetricsConfig   `yaml:"metrics"`
	RateLimit   RateLimitConfig `yaml:"rate_limit"`
}

// MetricsConfig describes the listener that exposes prometheus metrics.
// It is kept apart from the API listener so that /metrics never shadows
// an API route.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host" validate:"required_if=Enabled true"`
	Port    string `yaml:"port" validate:"required_if=Enabled true"`
}

// RateLimitConfig configures the token bucket in front of the API.
// A zero RequestsPerSecond disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" validate:"gte=0"`
	Burst             int     `yaml:"burst" validate:"gte=0"`
}

// DefaultConfig returns the configuration embedded in the binary.
func DefaultConfig() (*ServiceConfig, error) {
	return LoadConfig(defaultConfig)
}

// LoadConfig unmarshals YAML content into a ServiceConfig and validates it.
func LoadConfig(data []byte) (*ServiceConfig, error) {
	config := &ServiceConfig{}

	err := yaml.Unmarshal(data, config)
	if err != nil {
		return nil, err
	}

	if err := Validate(config); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the struct tags of cfg.
func Validate(cfg *ServiceConfig) error {
	validator := structValidator.New()
	if err := validator.Struct(cfg); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	return nil
}

// ValidatePort reports whether port is a usable TCP port number.
func ValidatePort(port string) error {
	validator := structValidator.New()
	if err := validator.Var(port, "required,numeric,port"); err != nil {
		return fmt.Errorf("invalid port %q: %w", port, err)
	}
	return nil
}

// Address joins host and port.
func (c *ServiceConfig) Address() string {
	return c.Host + ":" + c.Port
}

// Address joins the metrics host and port.
func (m MetricsConfig) Address() string {
	return m.Host + ":" + m.Port
}
