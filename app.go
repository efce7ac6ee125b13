package main

import "sync"

// AppState is the externally-owned state the capture core consults: the
// enabled flag, volume, and selected clip. It persists every change to the
// settings file.
type AppState struct {
	mu           sync.Mutex
	settings     Settings
	settingsFile string
	player       SoundPlayer
	library      []SoundClip
}

func NewAppState(player SoundPlayer, settingsFile, soundsDir string) *AppState {
	a := &AppState{
		settings:     loadSettingsFrom(settingsFile),
		settingsFile: settingsFile,
		player:       player,
		library:      SoundLibrary(soundsDir),
	}
	if len(a.library) == 0 {
		log.Warn("No sound clips found; key presses will fall back to a beep")
	}
	return a
}

func (a *AppState) SoundEnabled() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.settings.SoundEnabled
}

// ToggleSound flips the enabled flag and returns the new value.
func (a *AppState) ToggleSound() bool {
	a.mu.Lock()
	a.settings.SoundEnabled = !a.settings.SoundEnabled
	enabled := a.settings.SoundEnabled
	a.persistLocked()
	a.mu.Unlock()
	log.Infof("Sound effects %s", onOff(enabled))
	return enabled
}

func (a *AppState) Volume() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.settings.Volume
}

func (a *AppState) SetVolume(volume float64) {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	a.mu.Lock()
	a.settings.Volume = volume
	a.persistLocked()
	a.mu.Unlock()
	log.Infof("Volume set to %.0f%%", volume*100)
}

func (a *AppState) SelectedSound() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.settings.Sound
}

func (a *AppState) SelectSound(name string) {
	a.mu.Lock()
	a.settings.Sound = name
	a.persistLocked()
	a.mu.Unlock()
	log.Infof("Selected sound: %s", name)
}

// Library returns the selectable clips, fixed at startup.
func (a *AppState) Library() []SoundClip {
	return a.library
}

// HandleKeyPress is the tap callback target. It must return fast: playback
// happens on a fresh goroutine, one per key press.
func (a *AppState) HandleKeyPress(press KeyPress) {
	keyPressesTotal.Inc()
	log.Debugf("Key pressed: %s", press)

	a.mu.Lock()
	enabled := a.settings.SoundEnabled
	volume := a.settings.Volume
	clip := a.clipPathLocked()
	player := a.player
	a.mu.Unlock()

	if !enabled {
		return
	}

	go func() {
		if err := player.Play(clip, volume); err != nil {
			playbackFailuresTotal.Inc()
			log.Errorf("Playback failed: %v", err)
			return
		}
		soundsPlayedTotal.Inc()
	}()
}

// clipPathLocked resolves the selected sound to a path. An empty selection
// means the first library entry; an unknown name plays nothing.
func (a *AppState) clipPathLocked() string {
	if a.settings.Sound == "" {
		if len(a.library) > 0 {
			return a.library[0].Path
		}
		return ""
	}
	for _, clip := range a.library {
		if clip.Name == a.settings.Sound {
			return clip.Path
		}
	}
	log.Warnf("Selected sound %q is not in the library", a.settings.Sound)
	return ""
}

func (a *AppState) persistLocked() {
	if err := saveSettingsTo(a.settingsFile, a.settings); err != nil {
		log.Errorf("Cannot save settings: %v", err)
	}
}

func onOff(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}
