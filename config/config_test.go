package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := Config{
		Backends: []Backend{
			{Name: "Local", URL: "http://localhost:8001/api", Active: true},
			{Name: "Staging", URL: "https://staging.example.com/api"},
		},
		Logger: true,
	}
	Save(path, cfg)

	loaded := Load(path)
	if len(loaded.Backends) != 2 {
		t.Fatalf("Expected 2 backends, got %d", len(loaded.Backends))
	}
	if loaded.Backends[0].Name != "Local" || !loaded.Backends[0].Active {
		t.Errorf("Unexpected first backend: %+v", loaded.Backends[0])
	}
	if !loaded.Logger {
		t.Error("Logger flag lost in round trip")
	}
}

func TestLoad(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		cfg := Load(filepath.Join(t.TempDir(), "nope.json"))
		if len(cfg.Backends) != 0 {
			t.Errorf("Expected zero config, got %+v", cfg)
		}
	})

	t.Run("corrupt file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		os.WriteFile(path, []byte("{not json"), 0644)
		cfg := Load(path)
		if len(cfg.Backends) != 0 {
			t.Errorf("Expected zero config for corrupt file, got %+v", cfg)
		}
	})
}

func TestLoadOrCreate(t *testing.T) {
	t.Run("creates default", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		cfg := LoadOrCreate(path)

		if cfg.ActiveBackendURL() != "http://localhost:8001/api" {
			t.Errorf("Unexpected default backend: %s", cfg.ActiveBackendURL())
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("Default config must be written to disk: %v", err)
		}
	})

	t.Run("keeps existing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		Save(path, Config{Backends: []Backend{{Name: "Mine", URL: "http://10.0.0.1/api", Active: true}}})

		cfg := LoadOrCreate(path)
		if cfg.ActiveBackendURL() != "http://10.0.0.1/api" {
			t.Errorf("Existing config overwritten: %s", cfg.ActiveBackendURL())
		}
	})
}

func TestActiveBackendURL(t *testing.T) {
	cfg := Config{Backends: []Backend{
		{Name: "A", URL: "http://a/api"},
		{Name: "B", URL: "http://b/api", Active: true},
	}}
	if got := cfg.ActiveBackendURL(); got != "http://b/api" {
		t.Errorf("Expected active backend b, got %s", got)
	}

	if got := (Config{}).ActiveBackendURL(); got != "" {
		t.Errorf("No active backend must yield empty URL, got %q", got)
	}
}
