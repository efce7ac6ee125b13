package main

import "fmt"

// MenuEntry is one declarative tray menu item. The tray binding turns the
// list into native widgets; everything here is plain data plus an action.
type MenuEntry struct {
	Title     string
	Tooltip   string
	Checkable bool
	Checked   bool
	Disabled  bool
	Separator bool
	OnSelect  func()
}

var volumePresets = []float64{0, 0.25, 0.5, 0.75, 1.0}

// BuildMenu derives the full menu from current state. Called once at
// startup to create the items and again after every change to refresh
// titles and check marks; the entry count and order never change within a
// run.
func BuildMenu(app *AppState, state SessionState, autostart Autostart, quit func()) []MenuEntry {
	entries := []MenuEntry{
		{Title: statusTitle(state), Disabled: true},
		{Separator: true},
		{
			Title:     "Enable Sound",
			Tooltip:   "Play a sound on every key press",
			Checkable: true,
			Checked:   app.SoundEnabled(),
			OnSelect:  func() { app.ToggleSound() },
		},
		{Separator: true},
		{Title: "Volume", Disabled: true},
	}

	current := app.Volume()
	for _, preset := range volumePresets {
		preset := preset
		entries = append(entries, MenuEntry{
			Title:     fmt.Sprintf("%.0f%%", preset*100),
			Checkable: true,
			Checked:   nearlyEqual(current, preset),
			OnSelect:  func() { app.SetVolume(preset) },
		})
	}

	entries = append(entries,
		MenuEntry{Separator: true},
		MenuEntry{Title: "Sound", Disabled: true},
	)

	selected := app.SelectedSound()
	for i, clip := range app.Library() {
		clip := clip
		checked := clip.Name == selected || (selected == "" && i == 0)
		entries = append(entries, MenuEntry{
			Title:     clip.Name,
			Checkable: true,
			Checked:   checked,
			OnSelect:  func() { app.SelectSound(clip.Name) },
		})
	}

	entries = append(entries,
		MenuEntry{Separator: true},
		MenuEntry{
			Title:     "Start at Login",
			Checkable: true,
			Checked:   autostart.IsEnabled(),
			OnSelect: func() {
				var err error
				if autostart.IsEnabled() {
					err = autostart.Disable()
				} else {
					err = autostart.Enable()
				}
				if err != nil {
					log.Errorf("Autostart change failed: %v", err)
				}
			},
		},
		MenuEntry{Title: "Quit", Tooltip: "Quit KeySound", OnSelect: quit},
	)
	return entries
}

func statusTitle(state SessionState) string {
	switch state {
	case StateListening:
		return "● Listening"
	case StateStarting, StateRetrying:
		return "◌ Starting…"
	case StateFailed:
		return "⚠ Permission needed"
	default:
		return "○ Not listening"
	}
}

func nearlyEqual(a, b float64) bool {
	diff := a - b
	return diff < 0.005 && diff > -0.005
}
