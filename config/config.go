package config

import (
	"encoding/json"
	"os"
)

// Page identifies which screen the UI is showing.
type Page int

const (
	PageHome Page = iota
	PageWallets
	PageDetails
	PageChat
	PageSettings
)

// Config represents the application configuration. It is loaded once at
// startup and read-only afterwards; the backend base URL reaches the API
// client through construction, never through package state.
type Config struct {
	Backends []Backend `json:"backends"`
	Logger   bool      `json:"logger"`
}

// Backend represents a backend API endpoint.
type Backend struct {
	Name   string `json:"name"`
	URL    string `json:"url"`
	Active bool   `json:"active"`
}

// ActiveBackendURL returns the URL of the active backend, or "" when none is
// marked active.
func (c Config) ActiveBackendURL() string {
	for _, b := range c.Backends {
		if b.Active {
			return b.URL
		}
	}
	return ""
}

// Load reads the config from the specified path
func Load(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}
	}

	return cfg
}

// Save writes the config to the specified path
func Save(path string, cfg Config) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return
	}
	_ = os.WriteFile(path, data, 0644)
}

// DefaultConfig returns a new configuration with sensible defaults
func DefaultConfig() Config {
	return Config{
		Backends: []Backend{
			{
				Name:   "Local",
				URL:    "http://localhost:8001/api",
				Active: true,
			},
		},
		Logger: false,
	}
}

// LoadOrCreate loads config from path, or creates a default one if not found
func LoadOrCreate(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		// File doesn't exist, create default
		cfg := DefaultConfig()
		Save(path, cfg)
		return cfg
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		// Invalid config, return default
		return DefaultConfig()
	}

	return cfg
}
