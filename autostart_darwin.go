//go:build darwin

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DarwinAutostart implements Autostart for macOS using a LaunchAgent
type DarwinAutostart struct{}

// NewAutostart creates a new autostart handler for macOS
func NewAutostart() Autostart {
	return &DarwinAutostart{}
}

func (a *DarwinAutostart) getLaunchAgentPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, "Library", "LaunchAgents", "com.keysound.app.plist")
}

func (a *DarwinAutostart) getAppPath() string {
	exe, _ := os.Executable()
	// If running from a .app bundle, register the bundle itself.
	// exe will be like /Applications/KeySound.app/Contents/MacOS/keysound
	if idx := strings.Index(exe, ".app/"); idx != -1 {
		return exe[:idx+4]
	}
	return exe
}

func (a *DarwinAutostart) IsEnabled() bool {
	_, err := os.Stat(a.getLaunchAgentPath())
	return err == nil
}

func (a *DarwinAutostart) Enable() error {
	appPath := a.getAppPath()
	var plist string

	if strings.HasSuffix(appPath, ".app") {
		// Use open for .app bundles so LaunchServices handles activation
		plist = fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
    <key>Label</key>
    <string>com.keysound.app</string>
    <key>ProgramArguments</key>
    <array>
        <string>/usr/bin/open</string>
        <string>-a</string>
        <string>%s</string>
    </array>
    <key>RunAtLoad</key>
    <true/>
    <key>KeepAlive</key>
    <false/>
</dict>
</plist>`, appPath)
	} else {
		plist = fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
    <key>Label</key>
    <string>com.keysound.app</string>
    <key>ProgramArguments</key>
    <array>
        <string>%s</string>
    </array>
    <key>RunAtLoad</key>
    <true/>
    <key>KeepAlive</key>
    <false/>
</dict>
</plist>`, appPath)
	}

	return os.WriteFile(a.getLaunchAgentPath(), []byte(plist), 0644)
}

func (a *DarwinAutostart) Disable() error {
	return os.Remove(a.getLaunchAgentPath())
}
