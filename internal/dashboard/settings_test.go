package dashboard

import (
	"path/filepath"
	"testing"
)

func TestLoadUISettingsDefaults(t *testing.T) {
	s := LoadUISettings(filepath.Join(t.TempDir(), "missing.yaml"))
	if !s.MaskPassword {
		t.Fatal("credentials must start out masked")
	}
	if s := LoadUISettings(""); !s.MaskPassword {
		t.Fatal("empty path must fall back to defaults")
	}
}

func TestUISettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "dashboard-settings.yaml")

	s := DefaultUISettings()
	s.MaskPassword = false
	if err := s.Save(path); err != nil {
		t.Fatal(err)
	}

	loaded := LoadUISettings(path)
	if loaded.MaskPassword {
		t.Fatal("persisted mask setting not restored")
	}
}
