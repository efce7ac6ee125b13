package main

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SoundClip is one selectable sound effect.
type SoundClip struct {
	Name string
	Path string
}

// builtinSounds are macOS system sounds that need no bundled assets.
var builtinSounds = []SoundClip{
	{Name: "Tink", Path: "/System/Library/Sounds/Tink.aiff"},
	{Name: "Glass", Path: "/System/Library/Sounds/Glass.aiff"},
	{Name: "Ping", Path: "/System/Library/Sounds/Ping.aiff"},
	{Name: "Pop", Path: "/System/Library/Sounds/Pop.aiff"},
	{Name: "Purr", Path: "/System/Library/Sounds/Purr.aiff"},
	{Name: "Submarine", Path: "/System/Library/Sounds/Submarine.aiff"},
}

var soundExtensions = map[string]bool{
	".aiff": true,
	".wav":  true,
	".mp3":  true,
}

// locateDefaultSound checks the same candidate locations the app has
// always shipped its clip in: the working directory, the app bundle
// resources, and the executable's directory.
func locateDefaultSound() string {
	var candidates []string

	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, "assets", "sound.mp3"))
	} else {
		candidates = append(candidates, filepath.Join("assets", "sound.mp3"))
	}

	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		// Contents/MacOS/<exe> -> Contents/Resources when bundled.
		contents := filepath.Dir(exeDir)
		candidates = append(candidates,
			filepath.Join(contents, "Resources", "assets", "sound.mp3"),
			filepath.Join(contents, "Resources", "sound.mp3"),
			filepath.Join(exeDir, "sound.mp3"),
			filepath.Join(exeDir, "assets", "sound.mp3"),
		)
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			log.Debugf("Found sound file: %s", path)
			return path
		}
	}
	return ""
}

// SoundLibrary lists every selectable clip: a bundled default if present,
// the built-in system sounds, and anything in the configured sounds
// directory.
func SoundLibrary(soundsDir string) []SoundClip {
	var library []SoundClip

	if path := locateDefaultSound(); path != "" {
		library = append(library, SoundClip{Name: "Default", Path: path})
	}
	library = append(library, builtinSounds...)

	if soundsDir != "" {
		entries, err := os.ReadDir(soundsDir)
		if err != nil {
			log.Warnf("Cannot read sounds directory %s: %v", soundsDir, err)
			return library
		}
		var extra []SoundClip
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			ext := strings.ToLower(filepath.Ext(entry.Name()))
			if !soundExtensions[ext] {
				continue
			}
			extra = append(extra, SoundClip{
				Name: strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())),
				Path: filepath.Join(soundsDir, entry.Name()),
			})
		}
		sort.Slice(extra, func(i, j int) bool { return extra[i].Name < extra[j].Name })
		library = append(library, extra...)
	}
	return library
}
