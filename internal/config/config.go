// Package config loads runtime configuration from the environment.
package config

import "os"

// Config holds the relay's runtime settings. The OpenAI key may be empty;
// the server still boots and every format call then fails with a
// configuration error.
type Config struct {
	OpenAIKey string
	Host      string
	Port      string
	Env       string
	DBPath    string
	UsagePath string
	TonesPath string
}

// FromEnv reads configuration from environment variables, applying
// defaults where unset.
func FromEnv() Config {
	cfg := Config{
		OpenAIKey: os.Getenv("OPENAI_API_KEY"),
		Host:      os.Getenv("HOST"),
		Port:      os.Getenv("PORT"),
		Env:       os.Getenv("APP_ENV"),
		DBPath:    os.Getenv("TONERELAY_DB"),
		UsagePath: os.Getenv("TONERELAY_USAGE_FILE"),
		TonesPath: os.Getenv("TONERELAY_TONES_FILE"),
	}

	if cfg.Host == "" {
		cfg.Host = "127.0.0.1" // Set HOST=0.0.0.0 for LAN access
	}
	if cfg.Port == "" {
		if os.Getenv("TONERELAY_MODE") == "release" {
			cfg.Port = "8086" // Default for release builds (Homebrew, etc.)
		} else {
			cfg.Port = "8080" // Default for development
		}
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "tonerelay.db"
	}
	if cfg.UsagePath == "" {
		cfg.UsagePath = "usage.json"
	}
	return cfg
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}
