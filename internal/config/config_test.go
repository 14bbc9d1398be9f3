package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPrecedence(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("HANGAR_API_URL", "")
	t.Setenv("HANGAR_TOKEN", "")
	t.Setenv("HANGAR_LOG_LEVEL", "")
	t.Setenv("HANGAR_LOG_FILE", "")

	globalDir := filepath.Join(home, ".config", "hangarctl")
	if err := os.MkdirAll(globalDir, 0o755); err != nil {
		t.Fatalf("mkdir global: %v", err)
	}
	content := "api_url: https://file.example.com\ntoken: file-token\n"
	if err := os.WriteFile(filepath.Join(globalDir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write global config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIURL != "https://file.example.com" || cfg.Token != "file-token" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("default log level = %q", cfg.LogLevel)
	}

	t.Setenv("HANGAR_API_URL", "https://env.example.com")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load with env: %v", err)
	}
	if cfg.APIURL != "https://env.example.com" {
		t.Errorf("env should override file, got %q", cfg.APIURL)
	}
	if cfg.Token != "file-token" {
		t.Errorf("file token should survive, got %q", cfg.Token)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("HANGAR_API_URL", "")
	t.Setenv("HANGAR_TOKEN", "")
	t.Setenv("HANGAR_LOG_LEVEL", "")
	t.Setenv("HANGAR_LOG_FILE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIURL != DefaultAPIURL {
		t.Errorf("APIURL = %q, want default", cfg.APIURL)
	}
}
