package main

import (
	"fmt"
	"os/exec"

	"github.com/gen2brain/beeep"
)

// SoundPlayer plays one clip to completion. Implementations may block;
// callers run them off the tap thread.
type SoundPlayer interface {
	Play(path string, volume float64) error
}

// ExecPlayer shells out to the platform audio player: afplay on macOS,
// paplay/aplay on Linux. With no player or no clip it degrades to a system
// beep, then the terminal bell.
type ExecPlayer struct{}

func (ExecPlayer) Play(path string, volume float64) error {
	if path != "" {
		if _, err := exec.LookPath("afplay"); err == nil {
			return exec.Command("afplay", "-v", fmt.Sprintf("%g", volume), path).Run()
		}
		if _, err := exec.LookPath("paplay"); err == nil {
			return exec.Command("paplay", path).Run()
		}
		if _, err := exec.LookPath("aplay"); err == nil {
			return exec.Command("aplay", "-q", path).Run()
		}
	}

	if err := beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration/4); err == nil {
		return nil
	}
	fmt.Print("\a")
	return nil
}
