package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	keyPressesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "keysound_key_presses_total",
		Help: "Key-down events observed by the event tap.",
	})
	soundsPlayedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "keysound_sounds_played_total",
		Help: "Sound effects played to completion.",
	})
	playbackFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "keysound_playback_failures_total",
		Help: "Sound effect playback attempts that failed.",
	})
	tapRestartsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "keysound_tap_restarts_total",
		Help: "Event tap restarts after unexpected termination.",
	})
	tapFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "keysound_tap_failures_total",
		Help: "Capture sessions that exhausted their retry budget.",
	})
)

// ServeMetrics exposes /metrics when an address is configured. Off by
// default; this is a tray app, not a daemon.
func ServeMetrics(addr string) {
	if addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Infof("Serving metrics on %s", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Errorf("Metrics server stopped: %v", err)
		}
	}()
}
