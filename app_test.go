package main

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type playCall struct {
	path   string
	volume float64
}

type fakePlayer struct {
	mu    sync.Mutex
	block time.Duration
	calls []playCall
}

func (p *fakePlayer) Play(path string, volume float64) error {
	if p.block > 0 {
		time.Sleep(p.block)
	}
	p.mu.Lock()
	p.calls = append(p.calls, playCall{path: path, volume: volume})
	p.mu.Unlock()
	return nil
}

func (p *fakePlayer) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.calls)
}

func (p *fakePlayer) last() playCall {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls[len(p.calls)-1]
}

func newTestApp(t *testing.T, player SoundPlayer) *AppState {
	t.Helper()
	return NewAppState(player, filepath.Join(t.TempDir(), "settings.json"), "")
}

func TestHandleKeyPressPlaysSelectedClip(t *testing.T) {
	player := &fakePlayer{}
	app := newTestApp(t, player)
	require.NotEmpty(t, app.Library())

	app.HandleKeyPress(KeyPress{Key: KeySpace, Code: 49})

	require.Eventually(t, func() bool { return player.count() == 1 },
		time.Second, 5*time.Millisecond)
	assert.Equal(t, app.Library()[0].Path, player.last().path)
	assert.Equal(t, 1.0, player.last().volume)
}

func TestHandleKeyPressRespectsEnabledFlag(t *testing.T) {
	player := &fakePlayer{}
	app := newTestApp(t, player)

	app.ToggleSound() // off
	app.HandleKeyPress(KeyPress{Key: KeyA, Code: 0})

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, player.count(), "disabled sound must not play")

	app.ToggleSound() // back on
	app.HandleKeyPress(KeyPress{Key: KeyA, Code: 0})
	require.Eventually(t, func() bool { return player.count() == 1 },
		time.Second, 5*time.Millisecond)
}

func TestHandleKeyPressDoesNotBlock(t *testing.T) {
	player := &fakePlayer{block: 200 * time.Millisecond}
	app := newTestApp(t, player)

	start := time.Now()
	app.HandleKeyPress(KeyPress{Key: KeyB, Code: 11})
	elapsed := time.Since(start)

	assert.Less(t, elapsed, 50*time.Millisecond,
		"tap callback path must not wait for playback")
	require.Eventually(t, func() bool { return player.count() == 1 },
		time.Second, 5*time.Millisecond)
}

func TestHandleKeyPressUsesCurrentVolume(t *testing.T) {
	player := &fakePlayer{}
	app := newTestApp(t, player)

	app.SetVolume(0.25)
	app.HandleKeyPress(KeyPress{Key: KeyC, Code: 8})

	require.Eventually(t, func() bool { return player.count() == 1 },
		time.Second, 5*time.Millisecond)
	assert.Equal(t, 0.25, player.last().volume)
}

func TestSelectSoundChangesClip(t *testing.T) {
	player := &fakePlayer{}
	app := newTestApp(t, player)
	library := app.Library()
	require.Greater(t, len(library), 1)

	app.SelectSound(library[1].Name)
	app.HandleKeyPress(KeyPress{Key: KeyD, Code: 2})

	require.Eventually(t, func() bool { return player.count() == 1 },
		time.Second, 5*time.Millisecond)
	assert.Equal(t, library[1].Path, player.last().path)
}

func TestUnknownSelectionPlaysNothing(t *testing.T) {
	player := &fakePlayer{}
	app := newTestApp(t, player)

	app.SelectSound("no-such-clip")
	app.HandleKeyPress(KeyPress{Key: KeyE, Code: 14})

	require.Eventually(t, func() bool { return player.count() == 1 },
		time.Second, 5*time.Millisecond)
	assert.Empty(t, player.last().path)
}

func TestSettingsPersistAcrossAppStates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	player := &fakePlayer{}

	first := NewAppState(player, path, "")
	first.SetVolume(0.5)
	first.ToggleSound()

	second := NewAppState(player, path, "")
	assert.Equal(t, 0.5, second.Volume())
	assert.False(t, second.SoundEnabled())
}
