package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultAPIURL is used when no API endpoint is configured.
const DefaultAPIURL = "https://api.hangar.garageisep.com"

// Config holds hangarctl configuration.
type Config struct {
	APIURL   string `yaml:"api_url"`
	Token    string `yaml:"token"`
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

const configFile = "config.yaml"

// Load loads configuration with the following precedence (highest first):
// 1. Environment variables (HANGAR_API_URL, HANGAR_TOKEN, HANGAR_LOG_LEVEL)
// 2. Global ~/.config/hangarctl/config.yaml
// Command-line flags override both and are applied by the CLI layer.
func Load() (*Config, error) {
	cfg := &Config{
		APIURL:   DefaultAPIURL,
		LogLevel: "warn",
	}

	if path := globalConfigPath(); path != "" {
		if err := loadFromFile(path, cfg); err != nil && !os.IsNotExist(err) {
			return nil, err
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

// StateDir returns the directory for runtime state such as log files and
// persisted UI settings, creating it if necessary.
func StateDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".local", "state", "hangarctl")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

func globalConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "hangarctl", configFile)
}

// loadFromFile merges non-empty values from a YAML file into cfg.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return err
	}

	if fileCfg.APIURL != "" {
		cfg.APIURL = fileCfg.APIURL
	}
	if fileCfg.Token != "" {
		cfg.Token = fileCfg.Token
	}
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if fileCfg.LogFile != "" {
		cfg.LogFile = fileCfg.LogFile
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("HANGAR_API_URL"); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv("HANGAR_TOKEN"); v != "" {
		cfg.Token = v
	}
	if v := os.Getenv("HANGAR_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("HANGAR_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
}
