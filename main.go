package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/getlantern/systray"
)

var configPath = flag.String("config", "", "Path to config.yaml (optional).")

func main() {
	flag.Parse()

	config, err := ParseConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	InitLogger(config)
	log.Info("KeySound starting")
	log.Debugf("Parsed config: %+v", config)

	ServeMetrics(config.MetricsListenAddr)

	app := NewAppState(ExecPlayer{}, settingsPath(), config.SoundsDir)

	sup := NewSupervisor(NewKeyboardHook)
	sup.SetRetryPolicy(config.RetryAttempts, config.RetryBackoff())
	if err := sup.Start(app.HandleKeyPress); err != nil {
		// Can only be a double start; the menu still works without capture.
		log.Errorf("Cannot start keyboard capture: %v", err)
	}

	go watchSession(sup)

	systray.Run(onReady(app, sup, NewAutostart()), onExit(sup))
}

// watchSession logs session transitions. A terminal failure leaves the app
// running: the tray stays usable, key sounds just never fire.
func watchSession(sup *Supervisor) {
	for state := range sup.Status() {
		log.Debugf("Capture session state: %s", state)
		if state == StateFailed {
			if errors.Is(sup.Err(), ErrUnsupported) {
				log.Warn("Running without keyboard capture on this platform")
			}
			return
		}
		if state == StateStopped {
			return
		}
	}
}
