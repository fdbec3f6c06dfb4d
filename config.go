package meridian

import (
	"fmt"
	"os"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v2"
)

const (
	// DefaultBaseURL is the production gateway endpoint.
	DefaultBaseURL = "https://api.meridianpay.dev"

	apiVersionPath = "/v1"

	defaultTimeout = 30 * time.Second
)

// Config carries the connection settings of a client.
type Config struct {
	PrivateKey string        `yaml:"private_key"`
	BaseURL    string        `yaml:"base_url"`
	Timeout    time.Duration `yaml:"timeout"`
	// Locale is sent as Accept-Language so customer messages come back
	// localized. Empty means gateway default.
	Locale string `yaml:"locale"`
}

// DefaultConfig returns a production config for the given private key.
func DefaultConfig(privateKey string) *Config {
	return &Config{
		PrivateKey: privateKey,
		BaseURL:    DefaultBaseURL,
		Timeout:    defaultTimeout,
	}
}

// ConfigFromEnv builds a config from MERIDIAN_* environment variables.
func ConfigFromEnv() *Config {
	return &Config{
		PrivateKey: os.Getenv("MERIDIAN_PRIVATE_KEY"),
		BaseURL:    getEnv("MERIDIAN_BASE_URL", DefaultBaseURL),
		Timeout:    getEnvDuration("MERIDIAN_TIMEOUT", defaultTimeout),
		Locale:     os.Getenv("MERIDIAN_LOCALE"),
	}
}

// LoadConfigFile reads a config from a YAML file. Missing optional fields
// fall back to defaults.
func LoadConfigFile(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout == 0 {
		c.Timeout = defaultTimeout
	}
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.PrivateKey) == "" {
		return &ValidationError{Field: "private key", Reason: "must not be empty"}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
