package main

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHook stands in for the event tap. Emit plays the role of the OS
// invoking the tap callback on its own thread.
type fakeHook struct {
	mu       sync.Mutex
	startErr error
	running  bool
	callback func(KeyPress)
	done     chan struct{}
}

func newFakeHook(startErr error) *fakeHook {
	h := &fakeHook{startErr: startErr, done: make(chan struct{})}
	close(h.done)
	return h
}

func (h *fakeHook) Start(callback func(KeyPress)) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.running {
		return ErrAlreadyRunning
	}
	if h.startErr != nil {
		return h.startErr
	}
	h.running = true
	h.callback = callback
	h.done = make(chan struct{})
	return nil
}

func (h *fakeHook) Stop() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.running {
		h.running = false
		close(h.done)
	}
	return nil
}

func (h *fakeHook) Done() <-chan struct{} {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.done
}

// Emit delivers a key-down like the tap would: synchronously, on the
// calling goroutine.
func (h *fakeHook) Emit(code int64) {
	h.mu.Lock()
	cb := h.callback
	running := h.running
	h.mu.Unlock()
	if running && cb != nil {
		cb(KeyPress{Key: TranslateKeycode(code), Code: code})
	}
}

// Kill simulates the OS tearing the tap down.
func (h *fakeHook) Kill() {
	h.Stop()
}

// hookFactory builds a fresh fakeHook per attempt and remembers them all.
type hookFactory struct {
	mu       sync.Mutex
	startErr error
	hooks    []*fakeHook
}

func (f *hookFactory) new() KeyboardHook {
	f.mu.Lock()
	defer f.mu.Unlock()
	h := newFakeHook(f.startErr)
	f.hooks = append(f.hooks, h)
	return h
}

func (f *hookFactory) attempts() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.hooks)
}

func (f *hookFactory) hook(i int) *fakeHook {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hooks[i]
}

func waitForState(t *testing.T, s *Supervisor, want SessionState) {
	t.Helper()
	require.Eventually(t, func() bool { return s.State() == want },
		time.Second, 5*time.Millisecond, "supervisor never reached %s", want)
}

func TestSupervisorRetriesThenFails(t *testing.T) {
	factory := &hookFactory{startErr: ErrPermissionDenied}
	var presses atomic.Int64

	sup := NewSupervisor(factory.new)
	sup.SetRetryPolicy(3, 10*time.Millisecond)

	err := sup.Listen(func(KeyPress) { presses.Add(1) })

	require.ErrorIs(t, err, ErrPermissionDenied)
	assert.Equal(t, 3, factory.attempts(), "should try exactly the configured bound")
	assert.Equal(t, StateFailed, sup.State())
	assert.Zero(t, presses.Load(), "no key press may be delivered without a tap")

	// Exactly one terminal report on the status channel.
	failed := 0
	for {
		select {
		case st := <-sup.Status():
			if st == StateFailed {
				failed++
			}
			continue
		default:
		}
		break
	}
	assert.Equal(t, 1, failed)
}

func TestSupervisorDoubleStart(t *testing.T) {
	factory := &hookFactory{}
	sup := NewSupervisor(factory.new)

	require.NoError(t, sup.Start(func(KeyPress) {}))
	assert.ErrorIs(t, sup.Start(func(KeyPress) {}), ErrAlreadyRunning)

	sup.Stop()
	select {
	case <-sup.Done():
	case <-time.After(time.Second):
		t.Fatal("supervisor did not stop")
	}
}

func TestSupervisorDeliversKeyPresses(t *testing.T) {
	factory := &hookFactory{}
	var got []KeyPress
	var mu sync.Mutex

	sup := NewSupervisor(factory.new)
	require.NoError(t, sup.Start(func(p KeyPress) {
		mu.Lock()
		got = append(got, p)
		mu.Unlock()
	}))
	defer sup.Stop()
	waitForState(t, sup, StateListening)

	factory.hook(0).Emit(49)
	factory.hook(0).Emit(999)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 2)
	assert.Equal(t, KeyPress{Key: KeySpace, Code: 49}, got[0])
	assert.Equal(t, KeyPress{Key: KeyUnknown, Code: 999}, got[1])
}

func TestSupervisorNoDeliveryAfterStop(t *testing.T) {
	factory := &hookFactory{}
	var presses atomic.Int64

	sup := NewSupervisor(factory.new)
	require.NoError(t, sup.Start(func(KeyPress) { presses.Add(1) }))
	waitForState(t, sup, StateListening)

	factory.hook(0).Emit(49)
	sup.Stop()
	select {
	case <-sup.Done():
	case <-time.After(time.Second):
		t.Fatal("supervisor did not stop")
	}

	before := presses.Load()
	factory.hook(0).Emit(49)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, before, presses.Load(), "no delivery after stop")
	assert.Equal(t, StateStopped, sup.State())
}

func TestSupervisorRestartsAfterTapDeath(t *testing.T) {
	factory := &hookFactory{}
	sup := NewSupervisor(factory.new)
	sup.SetRetryPolicy(3, 10*time.Millisecond)

	require.NoError(t, sup.Start(func(KeyPress) {}))
	defer sup.Stop()
	waitForState(t, sup, StateListening)

	factory.hook(0).Kill()

	require.Eventually(t, func() bool {
		return factory.attempts() == 2 && sup.State() == StateListening
	}, time.Second, 5*time.Millisecond, "tap death should trigger a restart")
}

func TestSupervisorStopDuringBlockedCallback(t *testing.T) {
	factory := &hookFactory{}
	sup := NewSupervisor(factory.new)

	require.NoError(t, sup.Start(func(KeyPress) {
		time.Sleep(50 * time.Millisecond)
	}))
	waitForState(t, sup, StateListening)

	emitted := make(chan struct{})
	go func() {
		factory.hook(0).Emit(49)
		close(emitted)
	}()

	time.Sleep(10 * time.Millisecond) // let the callback block first
	sup.Stop()

	select {
	case <-sup.Done():
	case <-time.After(time.Second):
		t.Fatal("stop deadlocked against a blocked callback")
	}
	<-emitted
}

func TestListenUnsupportedOffDarwin(t *testing.T) {
	if runtime.GOOS == "darwin" {
		t.Skip("real event tap would require input monitoring permission")
	}
	err := Listen(func(KeyPress) {})
	assert.ErrorIs(t, err, ErrUnsupported)
}
