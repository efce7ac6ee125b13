package main

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings is the flat JSON record persisted between runs.
type Settings struct {
	SoundEnabled bool    `json:"sound_enabled"`
	Volume       float64 `json:"volume"`
	Sound        string  `json:"sound"`
}

func DefaultSettings() Settings {
	return Settings{
		SoundEnabled: true,
		Volume:       1.0,
	}
}

// settingsPath is <user config dir>/keysound/settings.json.
func settingsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "keysound", "settings.json")
}

// loadSettingsFrom reads settings, falling back to defaults when the file
// is missing or unreadable. Fields absent from the file keep their
// defaults.
func loadSettingsFrom(path string) Settings {
	settings := DefaultSettings()
	if path == "" {
		return settings
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return DefaultSettings()
	}
	if err := json.Unmarshal(content, &settings); err != nil {
		log.Warnf("Ignoring corrupt settings file %s: %v", path, err)
		return DefaultSettings()
	}
	if settings.Volume < 0 {
		settings.Volume = 0
	}
	if settings.Volume > 1 {
		settings.Volume = 1
	}
	return settings
}

func saveSettingsTo(path string, settings Settings) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	content, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, content, 0644)
}
