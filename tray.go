package main

import (
	"sync"
	"time"

	"github.com/getlantern/systray"
)

// onReady builds the tray menu from the declarative model and keeps it in
// sync with state changes.
func onReady(app *AppState, sup *Supervisor, autostart Autostart) func() {
	return func() {
		systray.SetIcon(trayIconPNG())
		systray.SetTitle("")
		systray.SetTooltip("KeySound - keyboard sound effects")

		build := func() []MenuEntry {
			return BuildMenu(app, sup.State(), autostart, systray.Quit)
		}

		entries := build()
		items := make([]*systray.MenuItem, len(entries))
		for i, entry := range entries {
			if entry.Separator {
				systray.AddSeparator()
				continue
			}
			var item *systray.MenuItem
			if entry.Checkable {
				item = systray.AddMenuItemCheckbox(entry.Title, entry.Tooltip, entry.Checked)
			} else {
				item = systray.AddMenuItem(entry.Title, entry.Tooltip)
			}
			if entry.Disabled {
				item.Disable()
			}
			items[i] = item
		}

		var refreshMu sync.Mutex
		refresh := func() {
			refreshMu.Lock()
			defer refreshMu.Unlock()
			for i, entry := range build() {
				if entry.Separator || items[i] == nil {
					continue
				}
				items[i].SetTitle(entry.Title)
				if entry.Checkable {
					if entry.Checked {
						items[i].Check()
					} else {
						items[i].Uncheck()
					}
				}
			}
		}

		for i, entry := range entries {
			if entry.Separator || entry.Disabled || entry.OnSelect == nil {
				continue
			}
			go func(idx int, item *systray.MenuItem) {
				for range item.ClickedCh {
					// Rebuild so the action sees current state, not the
					// state at menu construction.
					current := build()
					if current[idx].OnSelect != nil {
						current[idx].OnSelect()
					}
					refresh()
				}
			}(i, items[i])
		}

		// Keep the status line current while the supervisor retries or
		// fails in the background.
		go func() {
			last := sup.State()
			for {
				time.Sleep(500 * time.Millisecond)
				if state := sup.State(); state != last {
					last = state
					refresh()
				}
			}
		}()
	}
}

func onExit(sup *Supervisor) func() {
	return func() {
		sup.Stop()
		log.Info("KeySound exiting")
	}
}
