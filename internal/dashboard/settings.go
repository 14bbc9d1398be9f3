package dashboard

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/s41205/hangarctl/internal/config"
)

// UISettings holds persistent UI settings for the dashboard.
type UISettings struct {
	MaskPassword bool `yaml:"mask_password"`
}

const uiSettingsFile = "dashboard-settings.yaml"

// DefaultUISettings returns the default UI settings. Database credentials
// start out masked.
func DefaultUISettings() *UISettings {
	return &UISettings{
		MaskPassword: true,
	}
}

func settingsFilePath() string {
	dir, err := config.StateDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, uiSettingsFile)
}

// LoadUISettings loads UI settings from the state directory.
// Falls back to defaults if the file doesn't exist.
func LoadUISettings(path string) *UISettings {
	settings := DefaultUISettings()
	if path == "" {
		return settings
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return settings
	}

	var loaded UISettings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return settings
	}
	settings.MaskPassword = loaded.MaskPassword
	return settings
}

// Save writes the UI settings to the state directory. Failures are
// harmless; the setting just does not stick across sessions.
func (s *UISettings) Save(path string) error {
	if path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
