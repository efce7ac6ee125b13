//go:build linux

package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// LinuxAutostart implements Autostart for Linux using XDG autostart
type LinuxAutostart struct{}

// NewAutostart creates a new autostart handler for Linux
func NewAutostart() Autostart {
	return &LinuxAutostart{}
}

func (a *LinuxAutostart) getAutostartDir() string {
	config := os.Getenv("XDG_CONFIG_HOME")
	if config == "" {
		home, _ := os.UserHomeDir()
		config = filepath.Join(home, ".config")
	}
	return filepath.Join(config, "autostart")
}

func (a *LinuxAutostart) getDesktopFilePath() string {
	return filepath.Join(a.getAutostartDir(), "keysound.desktop")
}

func (a *LinuxAutostart) IsEnabled() bool {
	_, err := os.Stat(a.getDesktopFilePath())
	return err == nil
}

func (a *LinuxAutostart) Enable() error {
	autostartDir := a.getAutostartDir()
	if err := os.MkdirAll(autostartDir, 0755); err != nil {
		return err
	}

	exe, _ := os.Executable()

	desktopEntry := fmt.Sprintf(`[Desktop Entry]
Type=Application
Name=KeySound
Comment=Keyboard sound effects
Exec=%s
Icon=audio-volume-high
Terminal=false
Categories=Utility;Audio;
X-GNOME-Autostart-enabled=true
`, exe)

	return os.WriteFile(a.getDesktopFilePath(), []byte(desktopEntry), 0644)
}

func (a *LinuxAutostart) Disable() error {
	err := os.Remove(a.getDesktopFilePath())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
