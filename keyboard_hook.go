package main

import "errors"

// Capture errors. Permission and run-loop failures are retryable by the
// supervisor; the rest are caller errors.
var (
	// ErrPermissionDenied means the OS refused to create the event tap.
	// The only fix is granting Accessibility / Input Monitoring permission
	// in System Settings.
	ErrPermissionDenied = errors.New("event tap refused: accessibility or input monitoring permission missing")

	// ErrRunLoopSource means the tap was created but its run-loop source
	// could not be.
	ErrRunLoopSource = errors.New("failed to create run loop source for event tap")

	// ErrAlreadyRunning is returned on Start while a capture session is
	// active for this instance.
	ErrAlreadyRunning = errors.New("keyboard hook already running")

	// ErrUnsupported is returned on platforms without an event tap.
	ErrUnsupported = errors.New("global keyboard capture is only supported on macOS")
)

// KeyboardHook is a single system-wide, listen-only key-down tap.
//
// The callback runs synchronously on the tap's own thread and must not
// block; blocking there delays system-wide input delivery. Delegate any
// slow work (audio playback in particular) to another goroutine.
type KeyboardHook interface {
	// Start installs the tap and returns without blocking. The tap runs on
	// a dedicated thread until Stop. Fails with ErrPermissionDenied,
	// ErrRunLoopSource or ErrAlreadyRunning.
	Start(callback func(KeyPress)) error

	// Stop asks the tap thread to exit. Best effort: the thread observes
	// the request within its poll interval (under a second) and releases
	// the tap on the way out.
	Stop() error

	// Done is closed when the tap thread has exited, whether through Stop
	// or because the OS tore the tap down.
	Done() <-chan struct{}
}

// Listen installs the tap and blocks the calling goroutine until capture
// ends. Convenience entry point for callers with nothing else to run.
func Listen(callback func(KeyPress)) error {
	h := NewKeyboardHook()
	if err := h.Start(callback); err != nil {
		return err
	}
	<-h.Done()
	return nil
}
