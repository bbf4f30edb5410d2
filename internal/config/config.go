package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"brandkit/internal/branding"
)

// TokenEnv is the environment variable the credential is read from. The
// token itself never lives in the config file.
const TokenEnv = "BRANDCTL_TOKEN"

// Config holds everything the client side needs at startup: where the
// backend lives and what to display when it cannot answer.
type Config struct {
	ServerURL          string `yaml:"server_url"`
	TimeoutSeconds     int    `yaml:"timeout_seconds"`
	FallbackLogoURL    string `yaml:"fallback_logo_url"`
	FallbackFooterText string `yaml:"fallback_footer_text"`
	LogFile            string `yaml:"log_file"`
}

// DefaultConfig returns a Config with built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		ServerURL:          "http://127.0.0.1:8089",
		TimeoutSeconds:     10,
		FallbackLogoURL:    "/static/default-logo.svg",
		FallbackFooterText: "Powered by Brandkit",
		LogFile:            "",
	}
}

// Load reads a YAML config file over the defaults. A missing file is not an
// error: the defaults stand.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = DefaultConfig().TimeoutSeconds
	}
	return cfg, nil
}

// Defaults builds the fallback table handed to the coordinator.
func (c *Config) Defaults() branding.Defaults {
	return branding.Defaults{
		LogoURL:    c.FallbackLogoURL,
		FooterText: c.FallbackFooterText,
	}
}

// Timeout returns the transport timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Token reads the bearer credential from the environment. Empty means no
// credential is present.
func Token() string {
	return os.Getenv(TokenEnv)
}
